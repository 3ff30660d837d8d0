// Package phoneme holds the phoneme cache: the singular -> plural IPA table
// of a noun list, built once through the pronouncing dictionary and reused
// across runs.
package phoneme

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/revelaction/pluralis/noun"
)

// Builder produces representation pairs, see represent.Builder.
type Builder interface {
	Build(n string, mode noun.Mode) (noun.Pair, bool)
}

// Entry is the phonological pair of one noun.
type Entry struct {
	Noun     string `json:"noun"`
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
}

// Cache is the phonological table of a noun list. Entries keep the order of
// the noun list; nouns without a transcription have no entry.
type Cache struct {
	Class noun.Class `json:"class"`

	// Fingerprint identifies the noun list the cache was built from.
	Fingerprint string `json:"fingerprint"`

	Entries []Entry `json:"entries"`

	bySingular map[string]string
	byNoun     map[string]int
	singulars  []string
}

// New returns an empty cache for the noun list with the given fingerprint.
func New(class noun.Class, fingerprint string) *Cache {
	return &Cache{Class: class, Fingerprint: fingerprint}
}

// Fingerprint is the hex SHA-256 of the sorted, deduplicated noun list. Two
// lists with the same nouns share a fingerprint whatever their order.
func Fingerprint(nouns []string) string {
	uniq := make(map[string]struct{}, len(nouns))
	sorted := make([]string, 0, len(nouns))
	for _, n := range nouns {
		if _, ok := uniq[n]; ok {
			continue
		}
		uniq[n] = struct{}{}
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	sum := sha256.Sum256([]byte(strings.Join(sorted, "\n")))
	return hex.EncodeToString(sum[:])
}

// Build scans nouns once and records the phonological pair of every noun
// the builder can transcribe. progress, when not nil, is called before each
// noun.
func Build(class noun.Class, nouns []string, b Builder, progress func(current, total int, n string)) *Cache {
	c := New(class, Fingerprint(nouns))
	for i, n := range nouns {
		if progress != nil {
			progress(i+1, len(nouns), n)
		}

		pair, ok := b.Build(n, noun.Phonological)
		if !ok {
			continue
		}
		c.Add(n, pair)
	}

	return c
}

// Add records the pair of noun n. A noun already present is ignored.
func (c *Cache) Add(n string, pair noun.Pair) {
	c.index()
	if _, ok := c.byNoun[n]; ok {
		return
	}

	c.Entries = append(c.Entries, Entry{Noun: n, Singular: pair.Singular, Plural: pair.Plural})
	c.insert(len(c.Entries) - 1)
}

// index builds the lookup tables, after loading from storage.
func (c *Cache) index() {
	if c.byNoun != nil {
		return
	}

	c.bySingular = make(map[string]string, len(c.Entries))
	c.byNoun = make(map[string]int, len(c.Entries))
	c.singulars = make([]string, 0, len(c.Entries))
	for i := range c.Entries {
		c.insert(i)
	}
}

// insert indexes entry i. The first noun of a set of homophones keeps the
// singular.
func (c *Cache) insert(i int) {
	e := c.Entries[i]
	c.byNoun[e.Noun] = i
	if _, ok := c.bySingular[e.Singular]; !ok {
		c.bySingular[e.Singular] = e.Plural
		c.singulars = append(c.singulars, e.Singular)
	}
}

// Plural returns the plural transcription of a singular transcription.
func (c *Cache) Plural(singular string) (string, bool) {
	c.index()
	p, ok := c.bySingular[singular]
	return p, ok
}

// Pair returns the phonological pair of noun n.
func (c *Cache) Pair(n string) (noun.Pair, bool) {
	c.index()
	i, ok := c.byNoun[n]
	if !ok {
		return noun.Pair{}, false
	}
	return noun.Pair{Singular: c.Entries[i].Singular, Plural: c.Entries[i].Plural}, true
}

// Build returns the cached pair of n, so that a model can read the cache in
// place of the dictionary. Only the phonological mode is served.
func (c *Cache) Build(n string, mode noun.Mode) (noun.Pair, bool) {
	if mode != noun.Phonological {
		return noun.Pair{}, false
	}
	return c.Pair(n)
}

// Singulars returns the distinct singular transcriptions in noun order. This
// is the candidate pool of a phonological model.
func (c *Cache) Singulars() []string {
	c.index()
	return c.singulars
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	return len(c.Entries)
}

// Stale reports whether the cache was built from a different noun list.
func (c *Cache) Stale(nouns []string) bool {
	return c.Fingerprint != Fingerprint(nouns)
}
