package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/pluralis/stat"
)

func runsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "list or show the persisted runs",
		Subcommands: []*cli.Command{
			{
				Name:    "ls",
				Aliases: []string{"list"},
				Usage:   "list the runs of the store",
				Action: func(c *cli.Context) error {
					return listRuns(e)
				},
			},
			{
				Name:      "show",
				Usage:     "render the results of a run",
				ArgsUsage: "ID",
				Flags:     []cli.Flag{formatFlag(), noColorFlag()},
				Action: func(c *cli.Context) error {
					id, err := strconv.ParseInt(c.Args().First(), 10, 64)
					if err != nil {
						return fmt.Errorf("run id must be a number: %q", c.Args().First())
					}
					return showRun(e, c, id)
				},
			},
		},
		Action: func(c *cli.Context) error {
			return listRuns(e)
		},
	}
}

func listRuns(e *env) error {
	repo, err := e.repository()
	if err != nil {
		return err
	}

	infos, err := repo.Runs()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.ui.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLIMIT\tACCURACY\tCREATED")
	for _, info := range infos {
		p := stat.NewPoint(info)
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.1f%% (%d/%d)\t%s\n",
			info.Id, info.Name(), info.Limit, p.Accuracy*100, p.Correct, p.Total, info.Created.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func showRun(e *env, c *cli.Context, id int64) error {
	repo, err := e.repository()
	if err != nil {
		return err
	}

	run, err := repo.ReadRun(id)
	if err != nil {
		return err
	}

	r, err := e.renderer(c)
	if err != nil {
		return err
	}
	return r.Render(run.Results)
}
