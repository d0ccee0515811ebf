// Package source resolves the ordered, non-empty list of raw lines fed to the finder.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/Ning0612/dupfinder/internal/domain"
)

// Lines is a validated, non-empty sequence of input lines.
// Only the constructors in this package produce one.
type Lines struct {
	name  string
	lines []string

	// tail is reported once every line before it has been processed
	tail error
}

// Name describes where the lines came from
func (l Lines) Name() string {
	return l.name
}

// Len returns the number of lines
func (l Lines) Len() int {
	return len(l.lines)
}

// All returns a copy of the lines in input order
func (l Lines) All() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Err returns the error that follows the last line, if any.
// A list with a non-string element keeps the lines before it and
// reports the element here, so earlier parse failures take precedence.
func (l Lines) Err() error {
	return l.tail
}

// FromLines uses an explicit list as-is, without trimming or filtering
func FromLines(lines []string) (Lines, error) {
	if len(lines) == 0 {
		return Lines{}, &domain.SourceError{Kind: domain.ErrEmptySource}
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return Lines{name: "<lines>", lines: out}, nil
}

// FromPath reads all non-blank lines from the file at path.
// Line endings are stripped; order is preserved.
func FromPath(path string) (Lines, error) {
	f, err := os.Open(path)
	if err != nil {
		return Lines{}, classifyOpenError(path, err)
	}
	defer f.Close()

	return readLines(path, f)
}

// FromReader reads lines from r with the same filtering as FromPath
func FromReader(name string, r io.Reader) (Lines, error) {
	return readLines(name, r)
}

// Resolve dispatches on the dynamic type of src.
// string is a file path, []string an explicit list, and []any a list whose
// elements must all be strings.
func Resolve(src any) (Lines, error) {
	switch v := src.(type) {
	case string:
		return FromPath(v)
	case []string:
		return FromLines(v)
	case []any:
		return fromValues(v)
	default:
		return Lines{}, fmt.Errorf("%w: source must be a file path or a list, got %T",
			domain.ErrInvalidSourceType, src)
	}
}

// fromValues keeps the string elements up to the first non-string one
func fromValues(values []any) (Lines, error) {
	if len(values) == 0 {
		return Lines{}, &domain.SourceError{Kind: domain.ErrEmptySource}
	}

	lines := make([]string, 0, len(values))
	for i, item := range values {
		s, ok := item.(string)
		if !ok {
			bad := &domain.ParseError{
				Kind:   domain.ErrInvalidEntryType,
				Line:   i,
				Reason: fmt.Sprintf("must be a string, got %T", item),
			}
			if i == 0 {
				return Lines{}, bad
			}
			return Lines{name: "<lines>", lines: lines, tail: bad}, nil
		}
		lines = append(lines, s)
	}
	return Lines{name: "<lines>", lines: lines}, nil
}

// readLines splits r on \n, \r\n and a lone \r, dropping blank lines.
// Line length is unbounded.
func readLines(name string, r io.Reader) (Lines, error) {
	var lines []string

	br := bufio.NewReader(r)
	for {
		chunk, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Lines{}, &domain.SourceError{Kind: domain.ErrSourceIO, Path: name, Err: err}
		}

		for _, line := range strings.Split(strings.TrimSuffix(chunk, "\n"), "\r") {
			if strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}

		if err != nil {
			break
		}
	}

	if len(lines) == 0 {
		return Lines{}, &domain.SourceError{
			Kind: domain.ErrEmptySource,
			Path: name,
			Err:  errors.New("no valid entries"),
		}
	}

	return Lines{name: name, lines: lines}, nil
}

func classifyOpenError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &domain.SourceError{Kind: domain.ErrSourceNotFound, Path: path}
	case errors.Is(err, fs.ErrPermission):
		return &domain.SourceError{Kind: domain.ErrSourceUnreadable, Path: path}
	default:
		return &domain.SourceError{Kind: domain.ErrSourceIO, Path: path, Err: err}
	}
}
