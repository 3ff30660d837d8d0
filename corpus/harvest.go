package corpus

import (
	"io"
	"strings"
	"unicode/utf8"
)

// NounTag is the Penn Treebank tag of a singular common noun.
const NounTag = "NN"

// DefaultExclude holds words tagged as common nouns that are proper nouns of
// the usual corpus.
var DefaultExclude = []string{"sherlock"}

// Classifier decides whether a noun has a regular plural.
type Classifier interface {
	IsRegular(noun string) bool
}

// Harvest is the noun list of a corpus split by plural class, each in first
// occurrence order without duplicates.
type Harvest struct {
	Regular   []string
	Irregular []string
}

// All returns the regular nouns followed by the irregular ones.
func (h Harvest) All() []string {
	all := make([]string, 0, len(h.Regular)+len(h.Irregular))
	all = append(all, h.Regular...)
	return append(all, h.Irregular...)
}

// Merge appends the nouns of o not already in h.
func (h Harvest) Merge(o Harvest) Harvest {
	seen := make(map[string]bool, len(h.Regular)+len(h.Irregular))
	for _, n := range h.All() {
		seen[n] = true
	}

	out := Harvest{
		Regular:   append([]string(nil), h.Regular...),
		Irregular: append([]string(nil), h.Irregular...),
	}
	for _, n := range o.Regular {
		if !seen[n] {
			seen[n] = true
			out.Regular = append(out.Regular, n)
		}
	}
	for _, n := range o.Irregular {
		if !seen[n] {
			seen[n] = true
			out.Irregular = append(out.Irregular, n)
		}
	}
	return out
}

// Harvester collects singular common nouns.
type Harvester struct {
	Exclude    map[string]bool
	Classifier Classifier
}

func NewHarvester(c Classifier, exclude ...string) *Harvester {
	ex := make(map[string]bool, len(exclude))
	for _, w := range exclude {
		ex[strings.ToLower(w)] = true
	}
	return &Harvester{Exclude: ex, Classifier: c}
}

// keep reports whether a tagged word is a harvestable noun.
func (h *Harvester) keep(word, tag string) bool {
	return tag == NounTag && utf8.RuneCountInString(word) > 2 && !h.Exclude[word]
}

type collector struct {
	h    *Harvester
	seen map[string]bool
	out  Harvest
}

func (c *collector) add(word, tag string) {
	word = strings.ToLower(word)
	if !c.h.keep(word, tag) || c.seen[word] {
		return
	}
	c.seen[word] = true

	if c.h.Classifier.IsRegular(word) {
		c.out.Regular = append(c.out.Regular, word)
		return
	}
	c.out.Irregular = append(c.out.Irregular, word)
}

// HarvestDoc collects the nouns of a tagged document.
func (h *Harvester) HarvestDoc(doc Doc) Harvest {
	c := &collector{h: h, seen: map[string]bool{}}
	for _, sentence := range doc.Tokens {
		for _, token := range sentence {
			c.add(token.Text, token.Tag)
		}
	}
	return c.out
}

// HarvestText tokenizes r, tags the words with t and collects the nouns.
func (h *Harvester) HarvestText(r io.Reader, t Tagger) (Harvest, error) {
	words, err := Tokenize(r)
	if err != nil {
		return Harvest{}, err
	}

	c := &collector{h: h, seen: map[string]bool{}}
	for i, tag := range t.Tag(words) {
		c.add(words[i], tag)
	}
	return c.out, nil
}
