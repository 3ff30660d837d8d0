// Package distance implements the string metrics used to decide whether two
// noun representations are similar.
//
// All metrics operate on runes: phonological representations are IPA
// strings where most symbols are multi-byte.
package distance

import (
	"math"
	"unicode"
)

// Inf is returned when a distance is undefined or exceeds the cutoff.
const Inf = math.MaxInt

// Levenshtein returns the edit distance between a and b when it is at most
// epsilon, and Inf otherwise.
//
// Only the diagonal band of width 2*epsilon+1 of the dynamic programming
// table is filled, and the computation stops at the first row whose cells
// all exceed epsilon. A negative epsilon always yields Inf.
func Levenshtein(a, b string, epsilon int) int {
	if epsilon < 0 {
		return Inf
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	n, m := len(ra), len(rb)
	if n-m > epsilon {
		return Inf
	}
	if m == 0 {
		return n
	}
	if epsilon > n {
		epsilon = n
	}

	// Cells outside the band hold at least their distance to the diagonal,
	// which is above epsilon; over stands in for all of them.
	over := epsilon + 1

	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		lo, hi := max(1, i-epsilon), min(m, i+epsilon)

		cur[0] = i
		if lo > 1 {
			cur[lo-1] = over
		}

		rowMin := cur[0]
		for j := lo; j <= hi; j++ {
			d := prev[j-1]
			if ra[i-1] != rb[j-1] {
				d++
			}
			if del := prev[j] + 1; del < d {
				d = del
			}
			if ins := cur[j-1] + 1; ins < d {
				d = ins
			}

			cur[j] = d
			if d < rowMin {
				rowMin = d
			}
		}

		if hi < m {
			cur[hi+1] = over
		}

		if rowMin > epsilon {
			return Inf
		}

		prev, cur = cur, prev
	}

	if prev[m] > epsilon {
		return Inf
	}

	return prev[m]
}

// Hamming returns the number of positions at which a and b differ, ignoring
// case. Strings of different length are at distance Inf.
func Hamming(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return Inf
	}

	count := 0
	for i := range ra {
		if unicode.ToLower(ra[i]) != unicode.ToLower(rb[i]) {
			count++
		}
	}

	return count
}

// Similar reports whether a and b are different strings within epsilon of
// each other under either metric. A string is never similar to itself.
func Similar(a, b string, epsilon int) bool {
	if a == b {
		return false
	}

	return Levenshtein(a, b, epsilon) <= epsilon || Hamming(a, b) <= epsilon
}
