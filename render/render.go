package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/revelaction/pluralis/noun"
)

const (
	Defaultformat = "text"

	// similarSep joins the similar words in a single CSV field.
	similarSep = "|"
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Gray      = "\033[0;37m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"text", "json", "csv"}
}

// Renderer writes prediction results.
type Renderer interface {
	Render(results []noun.Result) error
}

// New returns the renderer of format writing to w.
func New(format string, w io.Writer) (Renderer, error) {
	switch format {
	case "text", "":
		return NewTextRenderer(w), nil
	case "json":
		return NewJSONRenderer(w), nil
	case "csv":
		return NewCSVRenderer(w), nil
	}
	return nil, fmt.Errorf("unknown format %q, supported: %s", format, strings.Join(SupportedFormats(), ", "))
}

// TextRenderer writes results as an aligned table.
type TextRenderer struct {
	W io.Writer

	// HasColor marks wrong predictions in red and right ones in green.
	HasColor bool

	// NumSimilar caps the similar words shown per row. Zero shows all.
	NumSimilar int
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

func (r *TextRenderer) Render(results []noun.Result) error {
	tw := tabwriter.NewWriter(r.W, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NOUN\tREP\tPREDICTED\tACTUAL\tSIMILAR")

	for _, res := range results {
		predicted := res.Predicted
		if r.HasColor {
			predicted = r.color(res)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", res.Noun, res.Rep, predicted, res.Actual, r.similar(res.Similar))
	}

	return tw.Flush()
}

func (r *TextRenderer) color(res noun.Result) string {
	if res.Correct {
		return Green + res.Predicted + Off
	}
	return Red + res.Predicted + Off
}

func (r *TextRenderer) similar(words []string) string {
	if r.NumSimilar > 0 && len(words) > r.NumSimilar {
		return strings.Join(words[:r.NumSimilar], " ") + fmt.Sprintf(" (+%d)", len(words)-r.NumSimilar)
	}
	return strings.Join(words, " ")
}

// CSVRenderer writes results as CSV with a header row.
type CSVRenderer struct {
	W io.Writer
}

func NewCSVRenderer(w io.Writer) *CSVRenderer {
	return &CSVRenderer{W: w}
}

func (r *CSVRenderer) Render(results []noun.Result) error {
	cw := csv.NewWriter(r.W)
	if err := cw.Write(noun.Columns); err != nil {
		return err
	}

	for _, res := range results {
		record := []string{
			res.Noun,
			res.Rep,
			strings.Join(res.Similar, similarSep),
			res.Predicted,
			res.Actual,
			strconv.FormatBool(res.Correct),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

var (
	_ Renderer = (*TextRenderer)(nil)
	_ Renderer = (*CSVRenderer)(nil)
)
