// Package represent builds the singular/plural representation pair of a noun
// in either its spelling or its IPA transcription.
package represent

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/revelaction/pluralis/inflect"
	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/pron"
)

// Normalize lower-cases s and removes punctuation (hyphens, underscores and
// apostrophes included) and diacritics.
func Normalize(s string) string {
	// transformers and casers keep state, build them per call
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.In(unicode.P)),
		norm.NFC,
	)

	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	return strings.TrimSpace(cases.Lower(language.English).String(out))
}

// Builder produces representation pairs. Dict is only needed for the
// phonological mode.
type Builder struct {
	Plurals inflect.Inflector
	Dict    pron.Transcriber
}

func NewBuilder(plurals inflect.Inflector, dict pron.Transcriber) *Builder {
	return &Builder{Plurals: plurals, Dict: dict}
}

// Build returns the representation pair of a singular noun. It reports
// false when either form cannot be produced; such nouns must be left out of
// the model.
func (b *Builder) Build(n string, mode noun.Mode) (noun.Pair, bool) {
	singular := Normalize(n)
	if singular == "" {
		return noun.Pair{}, false
	}

	plural := Normalize(b.Plurals.Plural(singular))
	if plural == "" {
		return noun.Pair{}, false
	}

	if mode == noun.Orthographic {
		return noun.Pair{Singular: singular, Plural: plural}, true
	}

	if b.Dict == nil {
		return noun.Pair{}, false
	}

	s, ok := b.Dict.Transcribe(singular)
	if !ok {
		return noun.Pair{}, false
	}

	p, ok := b.Dict.Transcribe(plural)
	if !ok {
		return noun.Pair{}, false
	}

	pair := noun.Pair{Singular: pron.StripStress(s), Plural: pron.StripStress(p)}
	return pair, pair.Valid()
}
