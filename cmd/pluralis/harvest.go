package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/pluralis/corpus"
)

func harvestCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "harvest",
		Usage:     "collect the singular nouns of tagged docs (.json) or plain text",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "exclude", Usage: "words never harvested (default from config)"},
			&cli.BoolFlag{Name: "dry-run", Aliases: []string{"n"}, Usage: "print counts, write nothing"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("at least one file is required")
			}

			exclude := e.cfg.Exclude
			if c.IsSet("exclude") {
				exclude = c.StringSlice("exclude")
			}

			return harvest(e, c.Args().Slice(), exclude, c.Bool("dry-run"))
		},
	}
}

func harvest(e *env, paths, exclude []string, dryRun bool) error {
	h := corpus.NewHarvester(e.inflector(), exclude...)

	var tagger corpus.Tagger
	var all corpus.Harvest
	for _, path := range paths {
		var got corpus.Harvest

		if strings.EqualFold(filepath.Ext(path), ".json") {
			doc, err := corpus.ReadDoc(path)
			if err != nil {
				return fmt.Errorf("reading doc %s: %w", path, err)
			}
			got = h.HarvestDoc(doc)
		} else {
			if tagger == nil {
				if e.cfg.Lexicon == "" {
					return errors.New("plain text needs a lexicon via --lexicon or PLURALIS_LEXICON")
				}
				lt, err := corpus.OpenLexicon(e.cfg.Lexicon)
				if err != nil {
					return fmt.Errorf("reading lexicon: %w", err)
				}
				tagger = lt
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			got, err = h.HarvestText(f, tagger)
			f.Close()
			if err != nil {
				return fmt.Errorf("reading text %s: %w", path, err)
			}
		}

		e.logger.Debug("harvested", "file", path, "regular", len(got.Regular), "irregular", len(got.Irregular))
		all = all.Merge(got)
	}

	fmt.Fprintf(e.ui.Out, "✍  %d regular, %d irregular nouns\n", len(all.Regular), len(all.Irregular))
	if dryRun {
		return nil
	}

	if err := corpus.WriteCorpus(e.cfg.Corpus, all); err != nil {
		return err
	}
	fmt.Fprintf(e.ui.Out, "Written to %s\n", e.cfg.Corpus)
	return nil
}
