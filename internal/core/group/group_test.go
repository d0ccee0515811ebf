package group

import (
	"reflect"
	"testing"

	"github.com/Ning0612/dupfinder/internal/core/index"
	"github.com/Ning0612/dupfinder/internal/core/parser"
	"github.com/Ning0612/dupfinder/internal/domain"
)

func build(t *testing.T, lines ...string) *index.ContentMap {
	t.Helper()

	m, err := index.Build(lines, parser.New(parser.Options{}))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return m
}

func TestFind_Example(t *testing.T) {
	got := Find(build(t, "root abc(1) def(1)", "root/sub ghi(2)"))

	want := []domain.DuplicateGroup{{"root/abc", "root/def"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find() = %v, want %v", got, want)
	}
}

func TestFind_NoDuplicates(t *testing.T) {
	got := Find(build(t, "root a(1) b(2)"))

	if got == nil || len(got) != 0 {
		t.Errorf("Find() = %#v, want empty non-nil slice", got)
	}
}

func TestFind_OrderBySizeThenSmallestPath(t *testing.T) {
	got := Find(build(t,
		"z p(small) q(small)",
		"b x(big)",
		"a x(big) y(other)",
		"c x(big) y(other)",
	))

	want := []domain.DuplicateGroup{
		{"a/x", "b/x", "c/x"},
		{"a/y", "c/y"},
		{"z/p", "z/q"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find() = %v, want %v", got, want)
	}
}

func TestFind_Properties(t *testing.T) {
	got := Find(build(t,
		"d1 a(1) b(2) c(3)",
		"d2 a(1) b(2) c(4)",
		"d3 a(1) e(5) f(5)",
		"d4 g(3)",
	))

	seen := make(map[string]bool)
	for i, g := range got {
		if len(g) < MinGroupSize {
			t.Errorf("group %d too small: %v", i, g)
		}
		for j := 1; j < len(g); j++ {
			if g[j-1] >= g[j] {
				t.Errorf("group %d not sorted: %v", i, g)
			}
		}
		for _, p := range g {
			if seen[p] {
				t.Errorf("path %s appears in more than one group", p)
			}
			seen[p] = true
		}
		if i > 0 {
			prev := got[i-1]
			if len(prev) < len(g) || (len(prev) == len(g) && prev.Smallest() > g.Smallest()) {
				t.Errorf("groups %d and %d out of order: %v, %v", i-1, i, prev, g)
			}
		}
	}
}
