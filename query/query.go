package query

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/pluralis/model"
	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/predict"
	"github.com/revelaction/pluralis/render"
	"github.com/revelaction/pluralis/search"
)

const (
	completionThreshold = 2

	// commandPrefix starts a setting command in the prompt
	commandPrefix = ":"
)

// Engine is a model ready to predict in one mode.
type Engine struct {
	Model   *model.Model
	Pool    *model.Pool
	Plurals predict.PluralSource
}

type Handler struct {
	// Searcher is shared by the models of all engines.
	Searcher *search.Searcher

	Engines map[noun.Mode]*Engine
	Mode    noun.Mode

	// Nouns feed the completion.
	Nouns []string

	HasColor bool
	Out      io.Writer
}

func NewHandler(s *search.Searcher, engines map[noun.Mode]*Engine, nouns []string, out io.Writer) *Handler {
	mode := noun.Orthographic
	if _, ok := engines[mode]; !ok {
		mode = noun.Phonological
	}

	return &Handler{
		Searcher: s,
		Engines:  engines,
		Mode:     mode,
		Nouns:    nouns,
		Out:      out,
	}
}

func (h *Handler) Run() error {
	fmt.Fprintln(h.Out, "🔑 Ctrl+F: next mode, :eps N, :limit N, :mode orth|phon, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔤 ", h.completer,
			prompt.OptionTitle("pluralis query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.nextMode()
					fmt.Fprintln(h.Out, "Mode set to: "+h.Mode.String())
				}}),
		)

		in = strings.TrimSpace(in)
		if in == "quit" {
			return nil
		}
		if in == "" {
			continue
		}

		history = append(history, in)
		if err := h.Eval(in); err != nil {
			fmt.Fprintf(h.Out, "Error: %v\n", err)
		}
	}
}

// Eval runs one prompt line: a setting command or a noun to predict.
func (h *Handler) Eval(in string) error {
	if strings.HasPrefix(in, commandPrefix) {
		return h.command(strings.Fields(strings.TrimPrefix(in, commandPrefix)))
	}

	for _, n := range strings.Fields(in) {
		if err := h.predict(n); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) command(fields []string) error {
	if len(fields) != 2 {
		return errors.New("usage: :eps N | :limit N | :mode orth|phon")
	}

	switch fields[0] {
	case "eps", "epsilon":
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return fmt.Errorf("bad epsilon %q", fields[1])
		}
		h.Searcher.Epsilon = n
		fmt.Fprintf(h.Out, "Epsilon set to: %d\n", n)
	case "limit":
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("bad limit %q", fields[1])
		}
		h.Searcher.Limit = n
		fmt.Fprintf(h.Out, "Limit set to: %d\n", n)
	case "mode":
		m, err := noun.ParseMode(fields[1])
		if err != nil {
			return err
		}
		if _, ok := h.Engines[m]; !ok {
			return fmt.Errorf("mode %s not available", m)
		}
		h.Mode = m
		fmt.Fprintln(h.Out, "Mode set to: "+m.String())
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}

	return nil
}

func (h *Handler) nextMode() {
	for _, m := range noun.Modes() {
		if m != h.Mode {
			if _, ok := h.Engines[m]; ok {
				h.Mode = m
				return
			}
		}
	}
}

func (h *Handler) predict(n string) error {
	e, ok := h.Engines[h.Mode]
	if !ok {
		return fmt.Errorf("mode %s not available", h.Mode)
	}

	res, p, err := e.Model.Predict(strings.ToLower(n), e.Pool, e.Plurals)
	if err != nil {
		return err
	}

	mark := "✘"
	color := render.Red
	if res.Correct {
		mark = "✔"
		color = render.Green
	}
	if !h.HasColor {
		color, mark = "", mark+" "
	} else {
		mark = mark + render.Off + " "
	}

	fmt.Fprintf(h.Out, "%s [%s] → %s%s %s(actual %s)\n", res.Noun, res.Rep, color, res.Predicted, mark, res.Actual)
	if p.Fallback {
		fmt.Fprintln(h.Out, "  regular rule")
	}
	if len(res.Similar) > 0 {
		fmt.Fprintf(h.Out, "  similar: %s\n", strings.Join(res.Similar, " "))
	}
	if len(p.Votes) > 0 {
		fmt.Fprintf(h.Out, "  votes: %s\n", formatVotes(p.Votes))
	}

	return nil
}

// formatVotes lists the votes by decreasing count.
func formatVotes(votes map[string]int) string {
	changes := make([]string, 0, len(votes))
	for c := range votes {
		changes = append(changes, c)
	}
	sort.Slice(changes, func(i, j int) bool {
		if votes[changes[i]] != votes[changes[j]] {
			return votes[changes[i]] > votes[changes[j]]
		}
		return changes[i] < changes[j]
	})

	parts := make([]string, len(changes))
	for i, c := range changes {
		parts[i] = fmt.Sprintf("%s=%d", c, votes[c])
	}
	return strings.Join(parts, " ")
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	return h.complete(in.GetWordBeforeCursor())
}

func (h *Handler) complete(word string) []prompt.Suggest {
	if strings.HasPrefix(word, commandPrefix) || utf8.RuneCountInString(word) < completionThreshold {
		return []prompt.Suggest{}
	}

	s := make([]prompt.Suggest, 0, len(h.Nouns))
	for _, n := range h.Nouns {
		s = append(s, prompt.Suggest{Text: n})
	}

	return prompt.FilterHasPrefix(s, word, true)
}
