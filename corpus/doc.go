// Package corpus reads tagged documents and plain text and harvests the
// singular common nouns the models are run on.
package corpus

import (
	"encoding/json"
	"os"
)

type Doc struct {
	Title string `json:"title"`

	Tokens [][]Token `json:"tokens"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	Id  int    `json:"id"`
	Pos string `json:"pos"`

	// A string containing detailed POS data, Penn Treebank tags for
	// English models
	Tag string `json:"tag"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Doc{}, err
	}

	var doc Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return Doc{}, err
	}

	return doc, nil
}
