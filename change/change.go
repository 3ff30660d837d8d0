// Package change encodes how a singular representation turns into its
// plural, and applies such an encoding to other words.
//
// A change-string is positional. Each position holds Wildcard when the
// singular and plural agree there, or the plural rune when they differ.
// Runes the plural adds past the end of the singular are appended verbatim.
// Runes the plural drops from the end of the singular are marked with one
// Delete each:
//
//	duck  -> ducks  ****s
//	goose -> geese  *ee**
//	oxen  -> ox     **--
package change

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	Wildcard = '*'
	Delete   = '-'
)

var (
	// ErrMisaligned is returned by Format when a change-string cannot be
	// shifted onto a shorter target because its leading positions are not
	// wildcards.
	ErrMisaligned = errors.New("change does not align with target")

	// ErrOutOfRange is returned by Apply when a wildcard falls past the end
	// of the word.
	ErrOutOfRange = errors.New("change is longer than word")
)

// Encode returns the change-string that turns singular into plural.
func Encode(singular, plural string) string {
	if singular == plural {
		return strings.Repeat(string(Wildcard), utf8.RuneCountInString(singular))
	}

	rs, rp := []rune(singular), []rune(plural)

	var b strings.Builder
	for i := 0; i < min(len(rs), len(rp)); i++ {
		if unicode.ToLower(rs[i]) == unicode.ToLower(rp[i]) {
			b.WriteRune(Wildcard)
		} else {
			b.WriteRune(unicode.ToLower(rp[i]))
		}
	}

	if len(rp) >= len(rs) {
		b.WriteString(string(rp[len(rs):]))
	} else {
		b.WriteString(strings.Repeat(string(Delete), len(rs)-len(rp)))
	}

	return b.String()
}

// Strip removes the Delete markers of a change-string.
func Strip(change string) string {
	return strings.ReplaceAll(change, string(Delete), "")
}

// Format computes the change-string of singular -> plural and aligns it to
// the end of target, so that it can be applied to a word of a different
// length.
//
// A longer target is left padded with wildcards. For a shorter target the
// surplus leading positions are dropped; they must all be wildcards, or the
// transformation touches the start of the word and ErrMisaligned is
// returned.
func Format(target, singular, plural string) (string, error) {
	change := []rune(Strip(Encode(singular, plural)))

	diff := utf8.RuneCountInString(target) - utf8.RuneCountInString(singular)
	if diff >= 0 {
		return strings.Repeat(string(Wildcard), diff) + string(change), nil
	}

	for i := 0; i < -diff; i++ {
		if i >= len(change) || change[i] != Wildcard {
			return "", fmt.Errorf("%w: %q -> %q onto %q", ErrMisaligned, singular, plural, target)
		}
	}

	return string(change[-diff:]), nil
}

// Apply walks change and builds the output: a wildcard copies the
// lower-cased rune of word at the same position, any other rune is copied
// lower-cased from change.
func Apply(word, change string) (string, error) {
	rw := []rune(word)

	var b strings.Builder
	for i, c := range []rune(change) {
		if c != Wildcard {
			b.WriteRune(unicode.ToLower(c))
			continue
		}

		if i >= len(rw) {
			return "", fmt.Errorf("%w: %q onto %q at position %d", ErrOutOfRange, change, word, i)
		}

		b.WriteRune(unicode.ToLower(rw[i]))
	}

	return b.String(), nil
}
