package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/pluralis/noun"
)

// ReadNouns reads one noun per line. Empty lines and lines starting with '#'
// are skipped.
func ReadNouns(r io.Reader) ([]string, error) {
	var nouns []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		nouns = append(nouns, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return nouns, nil
}

// WriteNouns writes one noun per line.
func WriteNouns(w io.Writer, nouns []string) error {
	bw := bufio.NewWriter(w)
	for _, n := range nouns {
		if _, err := fmt.Fprintln(bw, n); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// OpenNouns reads the noun list file at path.
func OpenNouns(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadNouns(f)
}

const (
	RegularFile   = "regular.txt"
	IrregularFile = "irregular.txt"
)

// ReadCorpus reads the noun list of class from dir. The list of All is the
// regular list followed by the irregular one.
func ReadCorpus(dir string, class noun.Class) ([]string, error) {
	switch class {
	case noun.Regular:
		return OpenNouns(filepath.Join(dir, RegularFile))
	case noun.Irregular:
		return OpenNouns(filepath.Join(dir, IrregularFile))
	}

	regular, err := OpenNouns(filepath.Join(dir, RegularFile))
	if err != nil {
		return nil, err
	}
	irregular, err := OpenNouns(filepath.Join(dir, IrregularFile))
	if err != nil {
		return nil, err
	}
	return Harvest{Regular: regular, Irregular: irregular}.All(), nil
}

// WriteCorpus writes both noun lists of h into dir, creating it if needed.
func WriteCorpus(dir string, h Harvest) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for name, nouns := range map[string][]string{RegularFile: h.Regular, IrregularFile: h.Irregular} {
		if err := writeNounFile(filepath.Join(dir, name), nouns); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}

func writeNounFile(path string, nouns []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteNouns(f, nouns); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
