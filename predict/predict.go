// Package predict guesses the plural of a representation from the plural
// transformations of similar representations.
package predict

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/revelaction/pluralis/change"
	"github.com/revelaction/pluralis/noun"
)

// PluralSource returns the known plural of a singular representation.
type PluralSource interface {
	Plural(singular string) (string, bool)
}

// PluralFunc adapts a function to PluralSource.
type PluralFunc func(singular string) (string, bool)

func (f PluralFunc) Plural(singular string) (string, bool) {
	return f(singular)
}

// Prediction is the outcome of Predict.
type Prediction struct {
	// Plural is the predicted plural representation.
	Plural string

	// Change is the winning change-string, aligned to the target. Empty
	// when the regular rule was used.
	Change string

	// Votes counts each aligned change-string among the similar words.
	Votes map[string]int

	// Skipped counts similar words whose vote could not be cast.
	Skipped int

	// Fallback is set when the regular rule produced the plural.
	Fallback bool
}

// Predictor applies the majority transformation of similar words.
type Predictor struct {
	Mode    noun.Mode
	Plurals PluralSource
	Logger  *slog.Logger
}

func NewPredictor(mode noun.Mode, plurals PluralSource, logger *slog.Logger) *Predictor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Predictor{Mode: mode, Plurals: plurals, Logger: logger}
}

// Predict returns the predicted plural of target given its similar words.
//
// Each similar word votes for its own change-string, aligned to target.
// The most voted change wins; ties go to the change seen first. A word
// whose plural is unknown, or whose change cannot be aligned to target,
// does not vote. Without any vote the regular rule is used.
func (p *Predictor) Predict(target string, similar []string) (Prediction, error) {
	if len(similar) == 0 {
		return Prediction{Plural: Regular(target, p.Mode), Fallback: true}, nil
	}

	votes := make(map[string]int, len(similar))
	var order []string
	skipped := 0

	for _, word := range similar {
		plural, ok := p.Plurals.Plural(word)
		if !ok {
			skipped++
			p.Logger.Warn("no plural for similar word", "target", target, "word", word)
			continue
		}

		c, err := change.Format(target, word, plural)
		if err != nil {
			if errors.Is(err, change.ErrMisaligned) {
				skipped++
				p.Logger.Warn("skipping vote", "target", target, "word", word, "plural", plural, "err", err)
				continue
			}
			return Prediction{}, err
		}

		if votes[c] == 0 {
			order = append(order, c)
		}
		votes[c]++
	}

	if len(order) == 0 {
		return Prediction{Plural: Regular(target, p.Mode), Votes: votes, Skipped: skipped, Fallback: true}, nil
	}

	winner := order[0]
	for _, c := range order[1:] {
		if votes[c] > votes[winner] {
			winner = c
		}
	}

	plural, err := change.Apply(target, winner)
	if err != nil {
		return Prediction{}, fmt.Errorf("applying %q to %q: %w", winner, target, err)
	}

	return Prediction{
		Plural:  plural,
		Change:  winner,
		Votes:   votes,
		Skipped: skipped,
	}, nil
}

// Regular pluralizes rep as if it were a regular noun.
//
// Spelling: -es after s, x, z, sh and ch, -s otherwise. Sound: /s/ after the
// voiceless stops t, k and p, /iz/ after s, /z/ otherwise.
func Regular(rep string, mode noun.Mode) string {
	if mode == noun.Phonological {
		switch {
		case strings.HasSuffix(rep, "t"), strings.HasSuffix(rep, "k"), strings.HasSuffix(rep, "p"):
			return rep + "s"
		case strings.HasSuffix(rep, "s"):
			return rep + "iz"
		}
		return rep + "z"
	}

	for _, suffix := range []string{"s", "x", "z", "ss", "sh", "ch"} {
		if strings.HasSuffix(rep, suffix) {
			return rep + "es"
		}
	}
	return rep + "s"
}
