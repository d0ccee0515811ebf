package domain

import (
	"errors"
	"fmt"
)

// Source errors - 輸入來源錯誤
var (
	// ErrInvalidSourceType indicates the source is neither a path nor a line list
	ErrInvalidSourceType = errors.New("invalid source type")

	// ErrEmptySource indicates the resolved line list has no entries
	ErrEmptySource = errors.New("empty source")

	// ErrSourceNotFound indicates the source file does not exist
	ErrSourceNotFound = errors.New("source not found")

	// ErrSourceUnreadable indicates insufficient permissions to read the source
	ErrSourceUnreadable = errors.New("source unreadable")

	// ErrSourceIO indicates any other I/O failure while reading the source
	ErrSourceIO = errors.New("source i/o error")

	// ErrInvalidEntryType indicates a non-string line in an explicit list
	ErrInvalidEntryType = errors.New("invalid entry type")
)

// Parse errors - 解析錯誤
var (
	// ErrMalformedEntry indicates a line with fewer than two tokens
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrMalformedFileToken indicates a file token not of the form name(content)
	ErrMalformedFileToken = errors.New("malformed file token")
)

// Config errors - 設定檔錯誤
var (
	// ErrConfigNotFound indicates config file not found
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates config file is malformed
	ErrConfigInvalid = errors.New("invalid config")
)

// ParseError carries the line index and offending token of a parse failure.
// Kind is ErrMalformedEntry, ErrMalformedFileToken or ErrInvalidEntryType.
type ParseError struct {
	Kind   error
	Line   int
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v: entry at index %d: %s", e.Kind, e.Line, e.Reason)
	}
	return fmt.Sprintf("%v: entry at index %d: %s in %q", e.Kind, e.Line, e.Reason, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// SourceError describes a failure to resolve the line source.
type SourceError struct {
	Kind error
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is.
func (e *SourceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
