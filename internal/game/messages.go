package game

// Message is one line of the game log.
type Message struct {
	Turn int
	Text string
}

// MessageLog keeps the most recent messages.
type MessageLog struct {
	entries []Message
	limit   int
}

// NewMessageLog creates a log holding at most limit messages.
func NewMessageLog(limit int) *MessageLog {
	return &MessageLog{limit: limit}
}

// Add appends a message, dropping the oldest when full.
func (l *MessageLog) Add(turn int, text string) {
	l.entries = append(l.entries, Message{Turn: turn, Text: text})
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = l.entries[over:]
	}
}

// Latest returns the newest message.
func (l *MessageLog) Latest() (Message, bool) {
	if len(l.entries) == 0 {
		return Message{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// All returns messages oldest first.
func (l *MessageLog) All() []Message {
	return l.entries
}
