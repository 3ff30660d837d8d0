package predict

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/revelaction/pluralis/noun"
)

func mapSource(m map[string]string) PluralSource {
	return PluralFunc(func(s string) (string, bool) {
		p, ok := m[s]
		return p, ok
	})
}

func TestRegularOrthographic(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"bus", "buses"},
		{"cat", "cats"},
		{"box", "boxes"},
		{"quiz", "quizes"},
		{"dish", "dishes"},
		{"church", "churches"},
		{"glass", "glasses"},
		{"day", "days"},
	}
	for _, tc := range tests {
		if got := Regular(tc.in, noun.Orthographic); got != tc.want {
			t.Errorf("Regular(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRegularPhonological(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"kæt", "kæts"},
		{"bʊk", "bʊks"},
		{"ʃɪp", "ʃɪps"},
		{"bəs", "bəsiz"},
		{"dɔg", "dɔgz"},
		{"bi", "biz"},
	}
	for _, tc := range tests {
		if got := Regular(tc.in, noun.Phonological); got != tc.want {
			t.Errorf("Regular(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPredictFallback(t *testing.T) {
	p := NewPredictor(noun.Orthographic, mapSource(nil), nil)

	got, err := p.Predict("bus", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Plural != "buses" || !got.Fallback {
		t.Errorf("got %+v", got)
	}
}

func TestPredictMajority(t *testing.T) {
	plurals := map[string]string{
		"luck":  "lucks",
		"tuck":  "tucks",
		"muck":  "mucks",
		"dux":   "duxes",
		"deck":  "decks",
		"goose": "geese",
	}
	p := NewPredictor(noun.Orthographic, mapSource(plurals), nil)

	got, err := p.Predict("duck", []string{"dux", "luck", "tuck", "muck"})
	if err != nil {
		t.Fatal(err)
	}

	want := Prediction{
		Plural: "ducks",
		Change: "****s",
		Votes:  map[string]int{"****s": 3, "****es": 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Predict mismatch (-want +got):\n%s", diff)
	}
}

func TestPredictTieGoesToFirstSeen(t *testing.T) {
	plurals := map[string]string{
		"dux":  "duxes",
		"luck": "lucks",
	}
	p := NewPredictor(noun.Orthographic, mapSource(plurals), nil)

	got, err := p.Predict("duck", []string{"dux", "luck"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Plural != "duckes" {
		t.Errorf("got %q, want the first seen change applied", got.Plural)
	}
}

func TestPredictEndToEndScenario(t *testing.T) {
	plurals := map[string]string{
		"cat": "cats", "hat": "hats", "bat": "bats", "goose": "geese",
	}
	p := NewPredictor(noun.Orthographic, mapSource(plurals), nil)

	got, err := p.Predict("rat", []string{"cat", "hat", "bat"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Plural != "rats" || got.Change != "***s" {
		t.Errorf("got %+v", got)
	}
}

func TestPredictSkipsMisalignedAndUnknown(t *testing.T) {
	plurals := map[string]string{
		"goose": "geese",
		"ax":    "axes",
	}
	p := NewPredictor(noun.Orthographic, mapSource(plurals), nil)

	// goose -> geese cannot shrink onto "ox"; "mystery" has no plural.
	got, err := p.Predict("ox", []string{"goose", "mystery", "ax"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Plural != "oxes" || got.Skipped != 2 || got.Fallback {
		t.Errorf("got %+v", got)
	}
}

func TestPredictAllSkippedFallsBack(t *testing.T) {
	p := NewPredictor(noun.Orthographic, mapSource(map[string]string{"goose": "geese"}), nil)

	got, err := p.Predict("ox", []string{"goose"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Plural != "oxes" || !got.Fallback || got.Skipped != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestPredictPhonological(t *testing.T) {
	plurals := map[string]string{
		"kæt": "kæts",
		"hæt": "hæts",
		"gus": "gis",
	}
	p := NewPredictor(noun.Phonological, mapSource(plurals), nil)

	got, err := p.Predict("ræt", []string{"kæt", "hæt", "gus"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Plural != "ræts" {
		t.Errorf("got %+v", got)
	}
}
