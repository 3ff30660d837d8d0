// Package noun holds the data shared by the representation builder, the
// prediction engine and the storage backends.
package noun

import (
	"fmt"
	"time"
)

// Mode selects the representation a model compares: spelling or IPA.
type Mode int

const (
	Orthographic Mode = iota
	Phonological
)

func (m Mode) String() string {
	if m == Phonological {
		return "phonology"
	}
	return "orthography"
}

// ParseMode accepts the String form and the short aliases "orth" and "phon".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "orthography", "orth", "o":
		return Orthographic, nil
	case "phonology", "phon", "p":
		return Phonological, nil
	}
	return Orthographic, fmt.Errorf("unknown mode: %q", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Modes returns all modes, orthography first.
func Modes() []Mode {
	return []Mode{Orthographic, Phonological}
}

// Class is the ingestion split of a noun list.
type Class int

const (
	// Regular nouns form the plural with a plain -s or -es.
	Regular Class = iota
	Irregular
	// All is the union of both lists, in that order.
	All
)

func (c Class) String() string {
	switch c {
	case Regular:
		return "regular"
	case Irregular:
		return "irregular"
	}
	return "all"
}

func ParseClass(s string) (Class, error) {
	switch s {
	case "regular", "reg":
		return Regular, nil
	case "irregular", "irreg":
		return Irregular, nil
	case "all", "":
		return All, nil
	}
	return All, fmt.Errorf("unknown class: %q", s)
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Class) UnmarshalText(b []byte) error {
	v, err := ParseClass(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Pair associates the singular representation of a noun with its plural in
// the same representation.
type Pair struct {
	Singular string
	Plural   string
}

// Valid reports whether both forms are present. Nouns with an invalid pair
// never enter a model.
func (p Pair) Valid() bool {
	return p.Singular != "" && p.Plural != ""
}

// Columns are the field names of a Result, in table order.
var Columns = []string{"noun", "noun_rep", "similar_words", "predicted_plural", "actual_plural", "accurate_prediction"}

// Result is the outcome of predicting the plural of one noun.
type Result struct {
	Noun      string   `json:"noun"`
	Rep       string   `json:"noun_rep"`
	Similar   []string `json:"similar_words"`
	Predicted string   `json:"predicted_plural"`
	Actual    string   `json:"actual_plural"`
	Correct   bool     `json:"accurate_prediction"`
}

// RunInfo describes a persisted Run without its results.
type RunInfo struct {
	Id      int64     `json:"id"`
	Mode    Mode      `json:"mode"`
	Class   Class     `json:"class"`
	Epsilon int       `json:"epsilon"`
	Limit   int       `json:"limit"`
	Created time.Time `json:"created"`
	Total   int       `json:"total"`
	Correct int       `json:"correct"`
}

// Run is one execution of the model over a noun list.
type Run struct {
	RunInfo
	Results []Result `json:"results"`
}

// Name is the file stem used when a run is stored as a single file.
func (r RunInfo) Name() string {
	return fmt.Sprintf("%s_%s_epsilon=%d", r.Mode, r.Class, r.Epsilon)
}
