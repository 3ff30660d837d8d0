// Package pron loads a pronouncing dictionary in the CMUdict format and
// transliterates its ARPAbet entries to IPA.
//
// A dictionary line holds a word followed by its phones:
//
//	GOOSE  G UW1 S
//	GEESE  G IY1 S
//	READ(2)  R EH1 D
//
// Lines starting with ";;;" are comments. A parenthesized suffix marks an
// alternative pronunciation; the first one listed is the one transcribed.
package pron

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Transcriber maps a spelling to its phonetic transcription, reporting
// whether the word is known.
type Transcriber interface {
	Transcribe(word string) (string, bool)
}

// Dictionary maps a normalized spelling to its pronunciations, each a
// sequence of ARPAbet phones.
type Dictionary struct {
	entries map[string][][]string
}

var _ Transcriber = (*Dictionary)(nil)

// Open loads the dictionary file at path.
func Open(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Load parses a dictionary from r.
func Load(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{entries: make(map[string][][]string, 1<<17)}

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: no phones for %q", lineNum, fields[0])
		}

		word := normalizeKey(fields[0])
		d.entries[word] = append(d.entries[word], fields[1:])
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// normalizeKey lower-cases a headword and drops the variant suffix.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexByte(s, '('); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}
	return s
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Contains reports whether word has at least one pronunciation.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.entries[normalizeKey(word)]
	return ok
}

// Lookup returns the ARPAbet phones of the first pronunciation of word.
func (d *Dictionary) Lookup(word string) ([]string, bool) {
	prons, ok := d.entries[normalizeKey(word)]
	if !ok || len(prons) == 0 {
		return nil, false
	}
	return prons[0], true
}

// Transcribe returns the IPA transcription of word without stress marks.
// Words missing from the dictionary, or whose phones are not ARPAbet,
// are reported as unknown.
func (d *Dictionary) Transcribe(word string) (string, bool) {
	phones, ok := d.Lookup(word)
	if !ok {
		return "", false
	}

	ipa, err := ToIPA(phones)
	if err != nil || ipa == "" {
		return "", false
	}

	return ipa, true
}
