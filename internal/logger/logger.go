// Package logger holds dupfinder's process-wide logger.
//
// The finder and the CLI log through Get/With; until Setup or Init runs
// every call goes to a NullLogger, so library use stays silent.
package logger

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadyInitialized is returned by Init when a logger is installed
var ErrAlreadyInitialized = errors.New("logger already initialized")

var (
	mu     sync.RWMutex
	active Logger // nil until Init
)

// Init installs a slog-backed logger built from config
func Init(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	if active != nil {
		return fmt.Errorf("%w: call Shutdown() first", ErrAlreadyInitialized)
	}

	l, err := NewSlogLogger(config)
	if err != nil {
		return fmt.Errorf("failed to create slog logger: %w", err)
	}
	active = l
	return nil
}

// Setup calls Init and returns a func that shuts the logger down,
// suitable for defer in a command's run function.
func Setup(config Config) (func(), error) {
	if err := Init(config); err != nil {
		return nil, err
	}
	return func() { _ = Shutdown() }, nil
}

// Get returns the installed logger, or a NullLogger
func Get() Logger {
	mu.RLock()
	defer mu.RUnlock()

	if active == nil {
		return NullLogger{}
	}
	return active
}

// With is shorthand for Get().With
func With(args ...any) Logger {
	return Get().With(args...)
}

// Shutdown uninstalls the logger and closes its file output.
// Safe to call when nothing is installed.
func Shutdown() error {
	mu.Lock()
	l := active
	active = nil
	mu.Unlock()

	if l == nil {
		return nil
	}
	return l.Shutdown()
}

// NullLogger discards everything
type NullLogger struct{}

func (NullLogger) Debug(string, ...any) {}
func (NullLogger) Info(string, ...any)  {}
func (NullLogger) Warn(string, ...any)  {}
func (NullLogger) Error(string, ...any) {}
func (n NullLogger) With(...any) Logger { return n }
func (NullLogger) Shutdown() error      { return nil }
