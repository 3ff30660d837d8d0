// Package config reads the YAML configuration of pluralis.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/revelaction/pluralis/inflect"
)

const (
	DefaultEpsilon    = 3
	DefaultLimit      = 25
	DefaultMaxEpsilon = 5
	DefaultCorpus     = "corpus"
)

// Config holds the settings shared by all commands. Command line flags take
// precedence over it.
type Config struct {
	// Dict is the CMUdict-format pronouncing dictionary.
	Dict string `yaml:"dict"`

	// Store is the repository: a directory for the filesystem backend, a
	// file for SQLite.
	Store string `yaml:"store"`

	// Corpus is the directory of the harvested noun lists.
	Corpus string `yaml:"corpus"`

	// Lexicon is the word<TAB>tag file used to tag plain text.
	Lexicon string `yaml:"lexicon"`

	Epsilon    int `yaml:"epsilon"`
	Limit      int `yaml:"limit"`
	MaxEpsilon int `yaml:"max_epsilon"`

	// Exclude lists words never harvested as nouns.
	Exclude []string `yaml:"exclude"`

	// Irregulars are registered on top of the default plural rules.
	Irregulars []inflect.Irregular `yaml:"irregulars"`
}

func Default() Config {
	return Config{
		Corpus:     DefaultCorpus,
		Epsilon:    DefaultEpsilon,
		Limit:      DefaultLimit,
		MaxEpsilon: DefaultMaxEpsilon,
		Exclude:    []string{"sherlock"},
	}
}

// Decode reads a configuration over the defaults. Keys absent from r keep
// their default value.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("syntax error in config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load reads the configuration file at path. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func (c Config) Validate() error {
	if c.Epsilon < 0 {
		return fmt.Errorf("epsilon must not be negative, got %d", c.Epsilon)
	}
	if c.MaxEpsilon < 1 {
		return fmt.Errorf("max_epsilon must be at least 1, got %d", c.MaxEpsilon)
	}
	for _, ir := range c.Irregulars {
		if ir.Singular == "" || ir.Plural == "" {
			return fmt.Errorf("irregular entry needs singular and plural: %+v", ir)
		}
	}
	return nil
}
