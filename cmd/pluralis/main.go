package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/pluralis/config"
	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/render"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "pluralis: %v\n", err)
}

// env is the state shared by the commands of one invocation.
type env struct {
	ui     UI
	cfg    config.Config
	logger *slog.Logger
	pool   Pool
}

func newApp(ui UI) *cli.App {
	e := &env{ui: ui}

	return &cli.App{
		Name:                 "pluralis",
		Usage:                "predict English plurals by analogy with similar nouns",
		HideVersion:          true,
		EnableBashCompletion: true,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", EnvVars: []string{"PLURALIS_CONFIG"}, Usage: "YAML configuration file"},
			&cli.BoolFlag{Name: "verbose", Usage: "log data quality observations"},
			&cli.StringFlag{Name: "dict", EnvVars: []string{"PLURALIS_DICT"}, Usage: "CMUdict pronouncing dictionary"},
			&cli.StringFlag{Name: "store", Aliases: []string{"s"}, EnvVars: []string{"PLURALIS_STORE"}, Usage: "repository: a directory or a SQLite file"},
			&cli.StringFlag{Name: "lexicon", EnvVars: []string{"PLURALIS_LEXICON"}, Usage: "word<TAB>tag lexicon to tag plain text"},
			&cli.StringFlag{Name: "corpus", Aliases: []string{"c"}, EnvVars: []string{"PLURALIS_CORPUS"}, Usage: "directory of the harvested noun lists"},
		},
		Before: e.before,
		After: func(c *cli.Context) error {
			return e.pool.Close()
		},
		Commands: []*cli.Command{
			harvestCommand(e),
			runCommand(e),
			sweepCommand(e),
			predictCommand(e),
			cacheCommand(e),
			runsCommand(e),
			queryCommand(e),
			bashCommand(e),
			versionCommand(e),
		},
	}
}

// before loads the configuration. Flags and their environment variables
// override the file.
func (e *env) before(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	for name, dst := range map[string]*string{
		"dict":    &cfg.Dict,
		"store":   &cfg.Store,
		"lexicon": &cfg.Lexicon,
		"corpus":  &cfg.Corpus,
	} {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	e.cfg = cfg

	level := slog.LevelError
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	e.logger = slog.New(slog.NewTextHandler(e.ui.Err, &slog.HandlerOptions{Level: level}))

	return nil
}

// Flags shared by several commands.

func modeFlag(value string) *cli.StringFlag {
	return &cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: value, Usage: "orthography, phonology or both"}
}

func classFlag() *cli.StringFlag {
	return &cli.StringFlag{Name: "class", Value: noun.All.String(), Usage: "regular, irregular or all"}
}

func epsilonFlag() *cli.IntFlag {
	return &cli.IntFlag{Name: "epsilon", Aliases: []string{"e"}, Usage: "largest distance of a similar noun"}
}

func limitFlag() *cli.IntFlag {
	return &cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "most similar nouns per prediction, 0 for no limit"}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: render.Defaultformat, Usage: "text, json or csv"}
}

func noColorFlag() *cli.BoolFlag {
	return &cli.BoolFlag{Name: "no-color", Usage: "do not color wrong predictions"}
}

// epsilon returns the flag value, or the configured one.
func (e *env) epsilon(c *cli.Context) int {
	if c.IsSet("epsilon") {
		return c.Int("epsilon")
	}
	return e.cfg.Epsilon
}

func (e *env) limit(c *cli.Context) int {
	if c.IsSet("limit") {
		return c.Int("limit")
	}
	return e.cfg.Limit
}

// modes parses the mode flag. "both" selects every mode.
func modes(s string) ([]noun.Mode, error) {
	if s == "both" {
		return noun.Modes(), nil
	}

	m, err := noun.ParseMode(s)
	if err != nil {
		return nil, err
	}
	return []noun.Mode{m}, nil
}

func (e *env) renderer(c *cli.Context) (render.Renderer, error) {
	r, err := render.New(c.String("format"), e.ui.Out)
	if err != nil {
		return nil, err
	}

	if tr, ok := r.(*render.TextRenderer); ok {
		tr.HasColor = !c.Bool("no-color")
	}
	return r, nil
}
