// Package logger provides the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLogFile is where logs go when LOG_FILE is unset. The terminal owns
// stdout while the game runs, so logs never go there by default.
const DefaultLogFile = "dungeoncrawl.log"

// Log is the global logger for the whole application. It is usable before
// Init is called.
var Log = logrus.New()

// Init configures the global logger from the environment.
//
//   - LOG_LEVEL: logrus level name, "info" by default.
//   - LOG_FORMAT: "json" for JSON lines, anything else for text.
//   - LOG_FILE: file to append to, DefaultLogFile by default. "-" means stderr.
//
// It returns a close function for the opened file.
func Init() (func() error, error) {
	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	path := envOr("LOG_FILE", DefaultLogFile)
	if path == "-" {
		Log.SetOutput(os.Stderr)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	Log.SetOutput(f)
	return f.Close, nil
}

// SetOutput redirects the global logger, mostly for tests.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

// For returns an entry tagged with the given component name.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
