package noun

import (
	"encoding/json"
	"testing"
)

func TestParseMode(t *testing.T) {
	for _, in := range []string{"orthography", "orth", "o"} {
		if m, err := ParseMode(in); err != nil || m != Orthographic {
			t.Errorf("ParseMode(%q) = %v, %v", in, m, err)
		}
	}
	for _, in := range []string{"phonology", "phon", "p"} {
		if m, err := ParseMode(in); err != nil || m != Phonological {
			t.Errorf("ParseMode(%q) = %v, %v", in, m, err)
		}
	}
	if _, err := ParseMode("ipa"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestParseClass(t *testing.T) {
	tests := []struct {
		in   string
		want Class
	}{
		{"regular", Regular},
		{"irreg", Irregular},
		{"", All},
		{"all", All},
	}
	for _, tc := range tests {
		got, err := ParseClass(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseClass(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestPairValid(t *testing.T) {
	if (Pair{Singular: "cat"}).Valid() {
		t.Error("pair without plural must be invalid")
	}
	if !(Pair{Singular: "cat", Plural: "cats"}).Valid() {
		t.Error("full pair must be valid")
	}
}

func TestRunInfoJSON(t *testing.T) {
	info := RunInfo{Mode: Phonological, Class: Irregular, Epsilon: 2}
	b, err := json.Marshal(info)
	if err != nil {
		t.Fatal(err)
	}

	var got RunInfo
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if got.Mode != Phonological || got.Class != Irregular {
		t.Errorf("got %+v", got)
	}
	if info.Name() != "phonology_irregular_epsilon=2" {
		t.Errorf("Name() = %q", info.Name())
	}
}
