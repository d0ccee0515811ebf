// Package group extracts ordered duplicate groups from a content map.
package group

import (
	"sort"

	"github.com/Ning0612/dupfinder/internal/core/index"
	"github.com/Ning0612/dupfinder/internal/domain"
)

// MinGroupSize is the smallest number of paths reported as a group
const MinGroupSize = 2

// Find returns every content value shared by at least MinGroupSize paths.
// Groups are ordered by size descending, then by smallest path ascending.
// Paths within a group are sorted ascending.
func Find(m *index.ContentMap) []domain.DuplicateGroup {
	groups := []domain.DuplicateGroup{}
	for _, content := range m.Contents() {
		if m.Count(content) < MinGroupSize {
			continue
		}
		groups = append(groups, domain.DuplicateGroup(m.Paths(content)))
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i]) != len(groups[j]) {
			return len(groups[i]) > len(groups[j])
		}
		return groups[i].Smallest() < groups[j].Smallest()
	})

	return groups
}
