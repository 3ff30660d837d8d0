package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/stat"
)

var results = []noun.Result{
	{Noun: "rat", Rep: "rat", Similar: []string{"cat", "hat", "bat"}, Predicted: "rats", Actual: "rats", Correct: true},
	{Noun: "goose", Rep: "goose", Similar: []string{}, Predicted: "gooses", Actual: "geese", Correct: false},
}

func TestNew(t *testing.T) {
	for _, f := range SupportedFormats() {
		if _, err := New(f, &bytes.Buffer{}); err != nil {
			t.Errorf("New(%q): %v", f, err)
		}
	}

	if _, err := New("xml", &bytes.Buffer{}); err == nil {
		t.Error("want error for an unknown format")
	}
}

func TestCSVRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVRenderer(&buf).Render(results); err != nil {
		t.Fatal(err)
	}

	want := "noun,noun_rep,similar_words,predicted_plural,actual_plural,accurate_prediction\n" +
		"rat,rat,cat|hat|bat,rats,rats,true\n" +
		"goose,goose,,gooses,geese,false\n"
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)
	r.NumSimilar = 2
	if err := r.Render(results); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "NOUN") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "cat hat (+1)") {
		t.Errorf("row = %q", lines[1])
	}
	if strings.Contains(buf.String(), Red) {
		t.Error("color without HasColor")
	}

	buf.Reset()
	r.HasColor = true
	if err := r.Render(results); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), Red+"gooses"+Off) {
		t.Errorf("wrong prediction not marked:\n%s", buf.String())
	}
}

func TestCurve(t *testing.T) {
	points := []stat.Point{
		{Mode: noun.Orthographic, Epsilon: 1, Total: 4, Correct: 3, Accuracy: 0.75},
		{Mode: noun.Orthographic, Epsilon: 2, Total: 4, Correct: 0, Accuracy: 0},
	}

	var buf bytes.Buffer
	if err := Curve(&buf, points); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if strings.Count(lines[0], "█") != 30 {
		t.Errorf("75%% bar: %q", lines[0])
	}
	if strings.Count(lines[1], "█") != 0 || !strings.Contains(lines[1], "0.0%") {
		t.Errorf("0%% bar: %q", lines[1])
	}

	buf.Reset()
	if err := CurveCSV(&buf, points); err != nil {
		t.Fatal(err)
	}
	want := "mode,epsilon,total,correct,accuracy\northography,1,4,3,0.7500\northography,2,4,0,0.0000\n"
	if buf.String() != want {
		t.Errorf("CurveCSV() = %q", buf.String())
	}
}
