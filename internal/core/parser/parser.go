// Package parser turns input lines of the form
//
//	<directory> <name1>(<content1>) <name2>(<content2>) ...
//
// into domain entries.
package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/Ning0612/dupfinder/internal/domain"
)

// Options configures the parser
type Options struct {
	// StrictClose requires the final character of a file token to be ')'.
	// When false, any final character is dropped as long as the token
	// contains a ')' somewhere.
	StrictClose bool
}

// Parser parses input lines into entries
type Parser struct {
	opts Options
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// ParseEntry parses one line. index is the position of the line in the
// source and is reported in errors.
func (p *Parser) ParseEntry(index int, line string) (domain.Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return domain.Entry{}, &domain.ParseError{
			Kind:   domain.ErrMalformedEntry,
			Line:   index,
			Token:  line,
			Reason: "expected format 'directory file1(content1) file2(content2)'",
		}
	}

	entry := domain.Entry{
		Index:     index,
		Directory: fields[0],
		Files:     make([]domain.FileToken, 0, len(fields)-1),
	}
	for _, token := range fields[1:] {
		file, err := p.ParseFileToken(index, token)
		if err != nil {
			return domain.Entry{}, err
		}
		entry.Files = append(entry.Files, file)
	}

	return entry, nil
}

// ParseFileToken parses a single name(content) token
func (p *Parser) ParseFileToken(index int, token string) (domain.FileToken, error) {
	fail := func(reason string) (domain.FileToken, error) {
		return domain.FileToken{}, &domain.ParseError{
			Kind:   domain.ErrMalformedFileToken,
			Line:   index,
			Token:  token,
			Reason: reason,
		}
	}

	if !strings.Contains(token, "(") {
		return fail("missing opening parenthesis '('")
	}
	if !strings.Contains(token, ")") {
		return fail("missing closing parenthesis ')'")
	}

	name, rest, ok := strings.Cut(token, "(")
	if !ok {
		return fail("cannot parse file name and content")
	}
	if p.opts.StrictClose && !strings.HasSuffix(rest, ")") {
		return fail("file token must end with ')'")
	}

	// The last character is the closing delimiter.
	_, size := utf8.DecodeLastRuneInString(rest)
	content := rest[:len(rest)-size]

	if name == "" {
		return fail("empty filename")
	}
	if content == "" {
		return fail("empty content")
	}

	return domain.FileToken{Name: name, Content: content}, nil
}
