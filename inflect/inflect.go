// Package inflect wraps the English pluralization rules of
// github.com/jinzhu/inflection and classifies nouns as regular or irregular.
package inflect

import (
	"strings"
	"sync"

	"github.com/jinzhu/inflection"
)

// Inflector maps a singular spelling to its plural spelling.
type Inflector interface {
	Plural(singular string) string
}

// Irregular is a singular/plural spelling pair registered on top of the
// default rules.
type Irregular struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
}

// defaultIrregulars fills common gaps of the inflection rule set. Rules
// match word suffixes, so entries must not be suffixes of unrelated words.
var defaultIrregulars = []Irregular{
	{"foot", "feet"},
	{"tooth", "teeth"},
	{"goose", "geese"},
	{"criterion", "criteria"},
	{"phenomenon", "phenomena"},
	{"cactus", "cacti"},
	{"fungus", "fungi"},
	{"nucleus", "nuclei"},
	{"radius", "radii"},
	{"stimulus", "stimuli"},
	{"appendix", "appendices"},
	{"leaf", "leaves"},
	{"loaf", "loaves"},
	{"thief", "thieves"},
}

var defaultUncountables = []string{"deer", "aircraft", "salmon", "trout", "offspring"}

// The rule tables of jinzhu/inflection are process wide. registered keeps
// each pair from being compiled twice when several engines are created.
var (
	mu         sync.Mutex
	registered = map[Irregular]bool{}
	defaults   sync.Once
)

// Engine pluralizes English nouns.
type Engine struct{}

var _ Inflector = (*Engine)(nil)

// NewEngine returns an Engine with the default irregular pairs and the given
// extra ones registered.
func NewEngine(irregulars ...Irregular) *Engine {
	defaults.Do(func() {
		inflection.AddUncountable(defaultUncountables...)
		register(defaultIrregulars)
	})

	register(irregulars)
	return &Engine{}
}

func register(irregulars []Irregular) {
	mu.Lock()
	defer mu.Unlock()

	for _, ir := range irregulars {
		ir.Singular = strings.ToLower(ir.Singular)
		ir.Plural = strings.ToLower(ir.Plural)
		if ir.Singular == "" || ir.Plural == "" || registered[ir] {
			continue
		}

		inflection.AddIrregular(ir.Singular, ir.Plural)
		registered[ir] = true
	}
}

// Plural returns the plural spelling of singular.
func (e *Engine) Plural(singular string) string {
	if singular == "" {
		return ""
	}
	return inflection.Plural(singular)
}

// Lookup is Plural lower-cased, reporting false when no plural exists.
func (e *Engine) Lookup(singular string) (string, bool) {
	p := strings.ToLower(e.Plural(singular))
	return p, p != ""
}

// IsRegular reports whether the plural of noun is the noun followed by -s or
// -es, allowing for the consonant+y -> -ies spelling rule.
func (e *Engine) IsRegular(noun string) bool {
	stem := regularStem(strings.ToLower(noun))
	plural := strings.ToLower(e.Plural(noun))
	if stem == "" || plural == "" {
		return false
	}

	return plural == stem+"es" || plural == stem+"s"
}

// regularStem replaces a final y preceded by a consonant with i, so that
// city + es matches cities.
func regularStem(noun string) string {
	n := len(noun)
	if n >= 2 && noun[n-1] == 'y' && !isVowel(noun[n-2]) {
		return noun[:n-1] + "i"
	}
	return noun
}

func isVowel(b byte) bool {
	return strings.IndexByte("aeiou", b) >= 0
}
