package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindSimilar(t *testing.T) {
	nouns := []string{"cat", "hat", "bat", "goose"}

	tests := []struct {
		name  string
		query string
		pool  []string
		eps   int
		limit int
		want  []string
	}{
		{"query not in pool", "rat", nouns, 1, 25, []string{"cat", "hat", "bat"}},
		{"query excluded from its own pool", "cat", nouns, 1, 25, []string{"hat", "bat"}},
		{"nothing close", "elephant", nouns, 2, 25, nil},
		{"limit caps the result", "rat", nouns, 1, 2, []string{"cat", "hat"}},
		{"limit one", "rat", nouns, 1, 1, []string{"cat"}},
		{"zero limit is unbounded", "rat", nouns, 1, 0, []string{"cat", "hat", "bat"}},
		{"epsilon zero", "rat", nouns, 0, 25, nil},
		{"empty pool", "rat", nil, 3, 25, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FindSimilar(tc.query, tc.pool, tc.eps, tc.limit)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("FindSimilar(%q) mismatch (-want +got):\n%s", tc.query, diff)
			}
		})
	}
}

func TestSearcherFind(t *testing.T) {
	s := New(2, 10)
	got := s.Find("goose", []string{"geese", "moose", "goose", "loose"})
	want := []string{"geese", "moose", "loose"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Find mismatch (-want +got):\n%s", diff)
	}
}
