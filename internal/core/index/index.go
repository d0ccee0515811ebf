// Package index folds parsed entries into a content -> full paths map.
package index

import (
	"sort"

	"github.com/Ning0612/dupfinder/internal/domain"
)

// EntryParser parses one input line
type EntryParser interface {
	ParseEntry(index int, line string) (domain.Entry, error)
}

// ContentMap maps a content value to the set of full paths carrying it
type ContentMap struct {
	sets  map[string]map[string]struct{}
	files int
}

// NewContentMap creates an empty map
func NewContentMap() *ContentMap {
	return &ContentMap{sets: make(map[string]map[string]struct{})}
}

// Add inserts fullPath under content. Re-adding the same pair is a no-op.
func (m *ContentMap) Add(content, fullPath string) {
	set, ok := m.sets[content]
	if !ok {
		set = make(map[string]struct{})
		m.sets[content] = set
	}
	if _, seen := set[fullPath]; !seen {
		set[fullPath] = struct{}{}
		m.files++
	}
}

// AddEntry inserts every file of the entry
func (m *ContentMap) AddEntry(e domain.Entry) {
	for _, f := range e.Files {
		m.Add(f.Content, domain.FullPath(e.Directory, f.Name))
	}
}

// Len returns the number of distinct content values
func (m *ContentMap) Len() int {
	return len(m.sets)
}

// Files returns the number of distinct (content, path) pairs indexed
func (m *ContentMap) Files() int {
	return m.files
}

// Contents returns all content keys in ascending order
func (m *ContentMap) Contents() []string {
	keys := make([]string, 0, len(m.sets))
	for k := range m.sets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the number of paths sharing content
func (m *ContentMap) Count(content string) int {
	return len(m.sets[content])
}

// Paths returns the paths sharing content, sorted ascending
func (m *ContentMap) Paths(content string) []string {
	set := m.sets[content]
	paths := make([]string, 0, len(set))
	for p := range set {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Build parses lines in order and indexes them.
// It stops at the first invalid line so errors always name the earliest failure.
func Build(lines []string, p EntryParser) (*ContentMap, error) {
	m := NewContentMap()
	for i, line := range lines {
		entry, err := p.ParseEntry(i, line)
		if err != nil {
			return nil, err
		}
		m.AddEntry(entry)
	}
	return m, nil
}
