package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Tokenize splits r into lower-cased words. Punctuation at either end of a
// word is dropped; inner punctuation (don't, mother-in-law) is kept.
func Tokenize(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var words []string
	for scanner.Scan() {
		w := strings.TrimFunc(scanner.Text(), func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if w == "" {
			continue
		}
		words = append(words, strings.ToLower(w))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// Tagger assigns a part of speech tag to each word.
type Tagger interface {
	Tag(words []string) []string
}

// LexiconTagger tags words from a fixed word -> tag table. Unknown words get
// an empty tag.
type LexiconTagger struct {
	lexicon map[string]string
}

func NewLexiconTagger(lexicon map[string]string) *LexiconTagger {
	return &LexiconTagger{lexicon: lexicon}
}

func (t *LexiconTagger) Tag(words []string) []string {
	tags := make([]string, len(words))
	for i, w := range words {
		tags[i] = t.lexicon[w]
	}
	return tags
}

// Len returns the number of words in the lexicon.
func (t *LexiconTagger) Len() int {
	return len(t.lexicon)
}

// LoadLexicon reads "word<TAB>TAG" lines. Empty lines and lines starting with
// '#' are skipped. The first tag of a word wins.
func LoadLexicon(r io.Reader) (*LexiconTagger, error) {
	lexicon := map[string]string{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		word, tag, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, fmt.Errorf("lexicon line %d: missing tab separator", line)
		}

		word = strings.ToLower(strings.TrimSpace(word))
		if _, seen := lexicon[word]; !seen {
			lexicon[word] = strings.TrimSpace(tag)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return NewLexiconTagger(lexicon), nil
}

// OpenLexicon loads the lexicon file at path.
func OpenLexicon(path string) (*LexiconTagger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadLexicon(f)
}
