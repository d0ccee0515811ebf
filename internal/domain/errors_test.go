package domain

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestParseError(t *testing.T) {
	err := error(&ParseError{
		Kind:   ErrMalformedFileToken,
		Line:   4,
		Token:  "abc1",
		Reason: "missing opening parenthesis '('",
	})

	if !errors.Is(err, ErrMalformedFileToken) {
		t.Error("errors.Is(ErrMalformedFileToken) = false")
	}
	if errors.Is(err, ErrMalformedEntry) {
		t.Error("errors.Is(ErrMalformedEntry) = true")
	}
	for _, part := range []string{"index 4", "abc1", "missing opening"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("Error() = %q, missing %q", err.Error(), part)
		}
	}
}

func TestSourceError(t *testing.T) {
	err := error(&SourceError{Kind: ErrSourceIO, Path: "in.txt", Err: fs.ErrClosed})

	if !errors.Is(err, ErrSourceIO) {
		t.Error("errors.Is(ErrSourceIO) = false")
	}
	if !errors.Is(err, fs.ErrClosed) {
		t.Error("errors.Is(cause) = false")
	}
	if !strings.Contains(err.Error(), `"in.txt"`) {
		t.Errorf("Error() = %q, missing path", err.Error())
	}

	plain := &SourceError{Kind: ErrEmptySource}
	if plain.Error() != ErrEmptySource.Error() {
		t.Errorf("Error() = %q", plain.Error())
	}
}

func TestFullPath(t *testing.T) {
	if got := FullPath("root/sub", "ghi"); got != "root/sub/ghi" {
		t.Errorf("FullPath() = %q", got)
	}
}
