package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/pluralis/model"
	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/phoneme"
	"github.com/revelaction/pluralis/represent"
)

func cacheCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "build or inspect the phoneme cache of a noun class",
		Flags: []cli.Flag{
			classFlag(),
			&cli.BoolFlag{Name: "rebuild", Usage: "build even if the stored cache is current"},
			&cli.BoolFlag{Name: "list", Usage: "print the cache entries"},
		},
		Action: func(c *cli.Context) error {
			class, err := noun.ParseClass(c.String("class"))
			if err != nil {
				return err
			}

			cache, err := loadCache(e, class, c.Bool("rebuild"))
			if err != nil {
				return err
			}

			fmt.Fprintf(e.ui.Out, "%s: %d entries, %d distinct singulars, fingerprint %.12s\n",
				class, cache.Len(), len(cache.Singulars()), cache.Fingerprint)

			if c.Bool("list") {
				for _, entry := range cache.Entries {
					fmt.Fprintf(e.ui.Out, "%s\t%s\t%s\n", entry.Noun, entry.Singular, entry.Plural)
				}
			}
			return nil
		},
	}
}

func loadCache(e *env, class noun.Class, rebuild bool) (*phoneme.Cache, error) {
	nouns, err := e.nouns(class)
	if err != nil {
		return nil, err
	}

	dict, err := e.dictionary()
	if err != nil {
		return nil, err
	}

	repo, err := e.repository()
	if err != nil {
		return nil, err
	}

	b := represent.NewBuilder(e.inflector(), dict)
	progress, stop := e.progress("phonemes")
	defer stop()

	if !rebuild {
		return model.LoadPhonemes(repo, class, nouns, b, e.logger, progress)
	}

	cache := phoneme.Build(class, nouns, b, progress)
	if err := repo.WriteCache(cache); err != nil {
		return nil, fmt.Errorf("writing phoneme cache: %w", err)
	}
	return cache, nil
}
