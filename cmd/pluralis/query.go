package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/pron"
	"github.com/revelaction/pluralis/query"
	"github.com/revelaction/pluralis/search"
)

func queryCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "interactive plural prediction",
		Flags: []cli.Flag{
			classFlag(),
			epsilonFlag(),
			limitFlag(),
			noColorFlag(),
		},
		Action: func(c *cli.Context) error {
			class, err := noun.ParseClass(c.String("class"))
			if err != nil {
				return err
			}

			nouns, err := e.nouns(class)
			if err != nil {
				return err
			}

			// the phonological mode is offered only with a dictionary
			ms := []noun.Mode{noun.Orthographic}
			var dict *pron.Dictionary
			if e.cfg.Dict != "" {
				if dict, err = e.dictionary(); err != nil {
					return err
				}
				ms = append(ms, noun.Phonological)
			}

			s := search.New(e.epsilon(c), e.limit(c))
			engines := map[noun.Mode]*query.Engine{}
			for _, mode := range ms {
				eng, err := e.engine(mode, class, nouns, s, dict)
				if err != nil {
					return err
				}
				engines[mode] = eng
			}

			h := query.NewHandler(s, engines, nouns, e.ui.Out)
			h.HasColor = !c.Bool("no-color")
			return h.Run()
		},
	}
}
