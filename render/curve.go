package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/revelaction/pluralis/stat"
)

const curveWidth = 40

// Curve draws the accuracy of each point as a horizontal bar.
func Curve(w io.Writer, points []stat.Point) error {
	for _, p := range points {
		filled := int(p.Accuracy*curveWidth + 0.5)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", curveWidth-filled)
		_, err := fmt.Fprintf(w, "%-11s ε=%-2d %s %5.1f%% (%d/%d)\n", p.Mode, p.Epsilon, bar, p.Accuracy*100, p.Correct, p.Total)
		if err != nil {
			return err
		}
	}
	return nil
}

// CurveCSV writes the points as CSV, ready for an external plotting tool.
func CurveCSV(w io.Writer, points []stat.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"mode", "epsilon", "total", "correct", "accuracy"}); err != nil {
		return err
	}

	for _, p := range points {
		record := []string{
			p.Mode.String(),
			strconv.Itoa(p.Epsilon),
			strconv.Itoa(p.Total),
			strconv.Itoa(p.Correct),
			strconv.FormatFloat(p.Accuracy, 'f', 4, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CurveJSON writes the points as a JSON array.
func CurveJSON(w io.Writer, points []stat.Point) error {
	if points == nil {
		points = []stat.Point{}
	}
	return json.NewEncoder(w).Encode(points)
}
