// Package ui is the terminal front end: it draws game frames with tcell and
// decodes key presses into player intents.
package ui

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen is the terminal the game draws on. Once closed, drawing is a no-op
// and PollEvent returns nil.
type Screen struct {
	screen tcell.Screen

	mu     sync.Mutex
	closed bool
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

// newScreen takes over an uninitialised tcell screen, real or simulated.
func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal. Safe to call more than once.
func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}

// CloseOnDone closes the screen when ctx ends, which wakes a blocked
// PollEvent with nil.
func (s *Screen) CloseOnDone(ctx context.Context) {
	go func() {
		<-ctx.Done()
		s.Close()
	}()
}

// draw runs fn while holding the screen, unless it is already closed.
func (s *Screen) draw(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	fn()
}

// PollEvent blocks for the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear blanks the back buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show pushes the back buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent puts one glyph in a cell.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size reports the terminal size in cells.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync repaints every cell, e.g. after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}
