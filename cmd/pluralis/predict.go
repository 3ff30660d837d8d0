package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/pluralis/model"
	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/pron"
	"github.com/revelaction/pluralis/search"
)

func predictCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "predict",
		Usage:     "predict the plural of the given nouns against the corpus",
		ArgsUsage: "NOUN...",
		Flags: []cli.Flag{
			modeFlag(noun.Orthographic.String()),
			classFlag(),
			epsilonFlag(),
			limitFlag(),
			formatFlag(),
			noColorFlag(),
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("at least one noun is required")
			}

			mode, err := noun.ParseMode(c.String("mode"))
			if err != nil {
				return err
			}
			class, err := noun.ParseClass(c.String("class"))
			if err != nil {
				return err
			}

			nouns, err := e.nouns(class)
			if err != nil {
				return err
			}

			var dict *pron.Dictionary
			if mode == noun.Phonological {
				if dict, err = e.dictionary(); err != nil {
					return err
				}
			}

			eng, err := e.engine(mode, class, nouns, search.New(e.epsilon(c), e.limit(c)), dict)
			if err != nil {
				return err
			}

			var results []noun.Result
			for _, n := range c.Args().Slice() {
				res, _, err := eng.Model.Predict(n, eng.Pool, eng.Plurals)
				if errors.Is(err, model.ErrNoRepresentation) {
					e.logger.Warn("skipping noun", "noun", n, "err", err)
					fprintErr(e.ui.Err, err)
					continue
				}
				if err != nil {
					return err
				}
				results = append(results, res)
			}

			r, err := e.renderer(c)
			if err != nil {
				return err
			}
			return r.Render(results)
		},
	}
}
