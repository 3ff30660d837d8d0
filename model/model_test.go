package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/revelaction/pluralis/inflect"
	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/predict"
	"github.com/revelaction/pluralis/represent"
	"github.com/revelaction/pluralis/search"
)

type fakeBuilder map[string]noun.Pair

func (f fakeBuilder) Build(n string, mode noun.Mode) (noun.Pair, bool) {
	p, ok := f[n]
	return p, ok
}

func orthographic(eps int) (*Model, predict.PluralSource) {
	engine := inflect.NewEngine()
	b := represent.NewBuilder(engine, nil)
	return New(b, search.New(eps, 25), noun.Orthographic, nil), predict.PluralFunc(engine.Lookup)
}

func TestRunOrthographic(t *testing.T) {
	m, plurals := orthographic(1)

	var seen []string
	m.Progress = func(current, total int, n string) {
		seen = append(seen, n)
	}

	run, err := m.Run([]string{"cat", "hat", "bat", "goose", "rat", "cat"}, plurals)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"cat", "hat", "bat", "goose", "rat"}, seen); diff != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", diff)
	}

	if run.Total != 5 || run.Correct != 4 {
		t.Errorf("got %d/%d correct, want 4/5", run.Correct, run.Total)
	}
	if run.Mode != noun.Orthographic || run.Epsilon != 1 || run.Limit != 25 {
		t.Errorf("unexpected run info %+v", run.RunInfo)
	}

	want := noun.Result{
		Noun:      "rat",
		Rep:       "rat",
		Similar:   []string{"cat", "hat", "bat"},
		Predicted: "rats",
		Actual:    "rats",
		Correct:   true,
	}
	if diff := cmp.Diff(want, run.Results[4]); diff != "" {
		t.Errorf("rat mismatch (-want +got):\n%s", diff)
	}

	goose := run.Results[3]
	if goose.Correct || goose.Predicted != "gooses" || len(goose.Similar) != 0 {
		t.Errorf("goose: got %+v", goose)
	}
}

func TestPredictOutsidePool(t *testing.T) {
	m, plurals := orthographic(1)
	pool := m.Pool([]string{"cat", "hat", "bat"})

	res, p, err := m.Predict("rat", pool, plurals)
	if err != nil {
		t.Fatal(err)
	}

	if res.Predicted != "rats" || !res.Correct || p.Fallback {
		t.Errorf("got %+v, %+v", res, p)
	}
	if p.Votes["***s"] != 3 {
		t.Errorf("votes = %v", p.Votes)
	}

	_, _, err = m.Predict("---", pool, plurals)
	if err == nil {
		t.Error("want error for a noun without representation")
	}
}

func TestPoolPhonological(t *testing.T) {
	b := fakeBuilder{
		"son":   {Singular: "sən", Plural: "sənz"},
		"sun":   {Singular: "sən", Plural: "sənz"},
		"cat":   {Singular: "kæt", Plural: "kæts"},
		"goose": {Singular: "gus", Plural: "gis"},
	}
	m := New(b, search.New(1, 0), noun.Phonological, nil)

	pool := m.Pool([]string{"son", "xyzzy", "sun", "cat", "goose"})

	if diff := cmp.Diff([]string{"son", "sun", "cat", "goose"}, pool.Nouns); diff != "" {
		t.Errorf("nouns mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"sən", "kæt", "gus"}, pool.Reps); diff != "" {
		t.Errorf("reps mismatch (-want +got):\n%s", diff)
	}
}

func TestRunPhonological(t *testing.T) {
	b := fakeBuilder{
		"cat": {Singular: "kæt", Plural: "kæts"},
		"hat": {Singular: "hæt", Plural: "hæts"},
		"bat": {Singular: "bæt", Plural: "bæts"},
		"dog": {Singular: "dɔg", Plural: "dɔgz"},
	}
	plurals := predict.PluralFunc(func(s string) (string, bool) {
		for _, p := range b {
			if p.Singular == s {
				return p.Plural, true
			}
		}
		return "", false
	})

	m := New(b, search.New(1, 0), noun.Phonological, nil)
	run, err := m.Run([]string{"cat", "hat", "bat", "dog"}, plurals)
	if err != nil {
		t.Fatal(err)
	}

	if run.Correct != 4 {
		t.Errorf("got %d correct, want 4: %+v", run.Correct, run.Results)
	}

	// no neighbour: regular /z/ after g
	if got := run.Results[3].Predicted; got != "dɔgz" {
		t.Errorf("dog predicted %q", got)
	}
}

func TestSweep(t *testing.T) {
	m, plurals := orthographic(3)

	points, err := m.Sweep([]string{"cat", "hat", "bat", "goose", "rat"}, plurals, 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	for i, p := range points {
		if p.Epsilon != i+1 {
			t.Errorf("point %d has epsilon %d", i, p.Epsilon)
		}
		if p.Total != 5 {
			t.Errorf("point %d has total %d", i, p.Total)
		}
	}
	if points[0].Accuracy != 0.8 {
		t.Errorf("accuracy at epsilon 1 = %v, want 0.8", points[0].Accuracy)
	}

	if m.Searcher.Epsilon != 3 {
		t.Errorf("searcher not restored, epsilon %d", m.Searcher.Epsilon)
	}
}

func TestBuilders(t *testing.T) {
	first := fakeBuilder{"cat": {Singular: "kæt", Plural: "kæts"}}
	second := fakeBuilder{"cat": {Singular: "x", Plural: "y"}, "dog": {Singular: "dɔg", Plural: "dɔgz"}}

	bs := Builders{first, second}

	if p, _ := bs.Build("cat", noun.Phonological); p.Singular != "kæt" {
		t.Errorf("cat: got %+v", p)
	}
	if p, _ := bs.Build("dog", noun.Phonological); p.Singular != "dɔg" {
		t.Errorf("dog: got %+v", p)
	}
	if _, ok := bs.Build("eel", noun.Phonological); ok {
		t.Error("eel: want false")
	}
}
