package service

import (
	"fmt"

	"github.com/Ning0612/dupfinder/internal/core/group"
	"github.com/Ning0612/dupfinder/internal/core/index"
	"github.com/Ning0612/dupfinder/internal/core/parser"
	"github.com/Ning0612/dupfinder/internal/domain"
	"github.com/Ning0612/dupfinder/internal/logger"
	"github.com/Ning0612/dupfinder/internal/source"
)

// Options configures a Finder
type Options struct {
	// Parser options forwarded to the entry parser
	Parser parser.Options
}

// Stats summarises a completed run
type Stats struct {
	Lines    int
	Files    int
	Contents int
	Groups   int
}

// Finder groups files with identical content from one line source.
// A Finder runs once; construct a new one per input. It is not safe
// for concurrent use.
type Finder struct {
	lines  source.Lines
	parser *parser.Parser

	ran    bool
	groups []domain.DuplicateGroup
	err    error
	stats  Stats
}

// NewFinder creates a finder over validated lines
func NewFinder(lines source.Lines, opts Options) *Finder {
	return &Finder{
		lines:  lines,
		parser: parser.New(opts.Parser),
	}
}

// NewFinderFromPath reads the line source from a file
func NewFinderFromPath(path string, opts Options) (*Finder, error) {
	lines, err := source.FromPath(path)
	if err != nil {
		return nil, err
	}
	return NewFinder(lines, opts), nil
}

// NewFinderFromLines uses an explicit list of lines
func NewFinderFromLines(lines []string, opts Options) (*Finder, error) {
	src, err := source.FromLines(lines)
	if err != nil {
		return nil, err
	}
	return NewFinder(src, opts), nil
}

// Result parses the source and returns the ordered duplicate groups.
// Repeated calls return the same groups without re-parsing.
func (f *Finder) Result() ([]domain.DuplicateGroup, error) {
	if !f.ran {
		f.groups, f.err = f.run()
		f.ran = true
	}
	if f.err != nil {
		return nil, f.err
	}
	return cloneGroups(f.groups), nil
}

// Stats returns counters from the last run. Zero before Result is called.
func (f *Finder) Stats() Stats {
	return f.stats
}

func (f *Finder) run() ([]domain.DuplicateGroup, error) {
	log := logger.With("source", f.lines.Name())
	log.Debug("indexing entries", "lines", f.lines.Len())

	m, err := index.Build(f.lines.All(), f.parser)
	if err != nil {
		log.Error("failed to index entries", "error", err)
		return nil, fmt.Errorf("process %s: %w", f.lines.Name(), err)
	}
	if err := f.lines.Err(); err != nil {
		log.Error("invalid entry after indexed lines", "error", err)
		return nil, fmt.Errorf("process %s: %w", f.lines.Name(), err)
	}

	groups := group.Find(m)
	f.stats = Stats{
		Lines:    f.lines.Len(),
		Files:    m.Files(),
		Contents: m.Len(),
		Groups:   len(groups),
	}

	log.Info("duplicate search completed",
		"lines", f.stats.Lines,
		"files", f.stats.Files,
		"contents", f.stats.Contents,
		"groups", f.stats.Groups)

	return groups, nil
}

func cloneGroups(groups []domain.DuplicateGroup) []domain.DuplicateGroup {
	out := make([]domain.DuplicateGroup, len(groups))
	for i, g := range groups {
		out[i] = append(domain.DuplicateGroup(nil), g...)
	}
	return out
}
