package search

import (
	"github.com/revelaction/pluralis/distance"
)

// Searcher finds the representations of a candidate pool that are similar to
// a query representation.
type Searcher struct {
	// Epsilon is the largest distance at which two representations are
	// considered similar.
	Epsilon int

	// Limit caps the number of similar representations returned. Zero or a
	// negative value means no cap.
	Limit int
}

// New creates a Searcher with the given epsilon and limit.
func New(epsilon, limit int) *Searcher {
	return &Searcher{Epsilon: epsilon, Limit: limit}
}

// Find returns the candidates similar to query. See FindSimilar.
func (s *Searcher) Find(query string, candidates []string) []string {
	return FindSimilar(query, candidates, s.Epsilon, s.Limit)
}

// FindSimilar scans candidates in order and returns those similar to query,
// preserving pool order. The scan stops as soon as limit matches have been
// collected, so at most limit candidates are returned when limit > 0.
//
// The query itself never matches: a representation is not similar to an
// identical one.
func FindSimilar(query string, candidates []string, epsilon, limit int) []string {
	var similar []string
	for _, c := range candidates {
		if limit > 0 && len(similar) >= limit {
			break
		}

		if distance.Similar(query, c, epsilon) {
			similar = append(similar, c)
		}
	}

	return similar
}
