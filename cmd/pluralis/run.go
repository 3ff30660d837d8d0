package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/pron"
	"github.com/revelaction/pluralis/search"
	"github.com/revelaction/pluralis/stat"
)

func runCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "predict the plural of every corpus noun at one epsilon",
		Flags: []cli.Flag{
			modeFlag(noun.Orthographic.String()),
			classFlag(),
			epsilonFlag(),
			limitFlag(),
			formatFlag(),
			noColorFlag(),
			&cli.BoolFlag{Name: "save", Usage: "persist the run in the store"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "print only the summary"},
		},
		Action: func(c *cli.Context) error {
			mode, err := noun.ParseMode(c.String("mode"))
			if err != nil {
				return err
			}
			class, err := noun.ParseClass(c.String("class"))
			if err != nil {
				return err
			}

			return runModel(e, c, mode, class)
		},
	}
}

func runModel(e *env, c *cli.Context, mode noun.Mode, class noun.Class) error {
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

	s := search.New(e.epsilon(c), e.limit(c))
	eng, err := e.engine(mode, class, nouns, s, dict)
	if err != nil {
		return err
	}

	progress, stop := e.progress(mode.String())
	eng.Model.Progress = progress
	run, err := eng.Model.Run(eng.Pool.Nouns, eng.Plurals)
	stop()
	if err != nil {
		return err
	}
	run.Class = class

	if !c.Bool("quiet") {
		r, err := e.renderer(c)
		if err != nil {
			return err
		}
		if err := r.Render(run.Results); err != nil {
			return err
		}
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(run.Results)
	stats := hdl.Get()
	fmt.Fprintf(e.ui.Err, "%s: %d/%d correct (%.1f%%), %d without similar nouns, %d similar nouns per noun\n",
		run.Name(), stats.Correct, stats.Total, stats.Accuracy*100, stats.NoSimilar, stats.SimilarMean)

	if !c.Bool("save") {
		return nil
	}

	repo, err := e.repository()
	if err != nil {
		return err
	}
	id, err := repo.WriteRun(run)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	fmt.Fprintf(e.ui.Err, "Saved run %d\n", id)
	return nil
}
