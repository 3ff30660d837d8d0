package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/pron"
	"github.com/revelaction/pluralis/render"
	"github.com/revelaction/pluralis/search"
	"github.com/revelaction/pluralis/stat"
)

func sweepCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "sweep",
		Usage: "accuracy for every epsilon from 1 to the max epsilon",
		Flags: []cli.Flag{
			modeFlag("both"),
			classFlag(),
			limitFlag(),
			&cli.IntFlag{Name: "max-epsilon", Usage: "largest epsilon of the sweep"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "curve", Usage: "curve, csv or json"},
		},
		Action: func(c *cli.Context) error {
			ms, err := modes(c.String("mode"))
			if err != nil {
				return err
			}
			class, err := noun.ParseClass(c.String("class"))
			if err != nil {
				return err
			}

			maxEpsilon := e.cfg.MaxEpsilon
			if c.IsSet("max-epsilon") {
				maxEpsilon = c.Int("max-epsilon")
			}

			points, err := sweep(e, ms, class, e.limit(c), maxEpsilon)
			if err != nil {
				return err
			}

			switch c.String("format") {
			case "csv":
				return render.CurveCSV(e.ui.Out, points)
			case "json":
				return render.CurveJSON(e.ui.Out, points)
			case "curve":
				return render.Curve(e.ui.Out, points)
			}
			return fmt.Errorf("unknown format %q", c.String("format"))
		},
	}
}

func sweep(e *env, ms []noun.Mode, class noun.Class, limit, maxEpsilon int) ([]stat.Point, error) {
	if maxEpsilon < 1 {
		return nil, fmt.Errorf("max epsilon must be at least 1, got %d", maxEpsilon)
	}

	nouns, err := e.nouns(class)
	if err != nil {
		return nil, err
	}

	var dict *pron.Dictionary
	if needsDict(ms) {
		if dict, err = e.dictionary(); err != nil {
			return nil, err
		}
	}

	var points []stat.Point
	for _, mode := range ms {
		eng, err := e.engine(mode, class, nouns, search.New(1, limit), dict)
		if err != nil {
			return nil, err
		}

		progress, stop := e.progress(mode.String())
		eng.Model.Progress = progress
		got, err := eng.Model.Sweep(eng.Pool.Nouns, eng.Plurals, maxEpsilon)
		stop()
		if err != nil {
			return nil, err
		}
		points = append(points, got...)
	}

	return points, nil
}
