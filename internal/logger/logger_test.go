package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogger_InitAndGet(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Init(Config{Level: LevelInfo, Writer: buf}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Shutdown()

	Get().Info("test message")

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("log output missing message: %s", buf.String())
	}
}

func TestLogger_DoubleInit(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Init(Config{Writer: buf}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Shutdown()

	if err := Init(Config{Writer: buf}); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Init() error = %v, want ErrAlreadyInitialized", err)
	}
}

func TestLogger_NullLogger(t *testing.T) {
	Shutdown()

	logger := Get()
	if _, ok := logger.(NullLogger); !ok {
		t.Fatalf("Get() before Init = %T, want NullLogger", logger)
	}
	// 不應該 panic
	logger.Info("should not crash")
	logger.With("k", "v").Error("should not crash")
}

func TestLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Config{Level: LevelInfo, Writer: buf})
	defer Shutdown()

	With("component", "test").Info("message")

	if !strings.Contains(buf.String(), "component=test") {
		t.Errorf("output missing context: %s", buf.String())
	}
}

func TestLogger_ShutdownTwice(t *testing.T) {
	Init(Config{Writer: &bytes.Buffer{}})

	if err := Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if err := Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetup(t *testing.T) {
	buf := &bytes.Buffer{}
	shutdown, err := Setup(Config{Level: LevelInfo, Writer: buf})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	Get().Info("via setup")
	shutdown()

	if !strings.Contains(buf.String(), "via setup") {
		t.Errorf("log output missing message: %s", buf.String())
	}
	if _, ok := Get().(NullLogger); !ok {
		t.Errorf("Get() after shutdown = %T, want NullLogger", Get())
	}
}
