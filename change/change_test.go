package change

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		singular, plural, want string
	}{
		{"duck", "ducks", "****s"},
		{"bus", "buses", "***es"},
		{"goose", "geese", "*ee**"},
		{"foot", "feet", "*ee*"},
		{"oxen", "ox", "**--"},
		{"mouse", "mice", "*ice-"},
		{"sheep", "sheep", "*****"},
		{"city", "cities", "***ies"},
		{"Cat", "cats", "***s"},
		{"kæt", "kæts", "***s"},
		{"", "", ""},
	}

	for _, tc := range tests {
		if got := Encode(tc.singular, tc.plural); got != tc.want {
			t.Errorf("Encode(%q, %q) = %q, want %q", tc.singular, tc.plural, got, tc.want)
		}
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("*ice-"); got != "*ice" {
		t.Errorf("Strip = %q", got)
	}
}

func TestApplyReconstructsPlural(t *testing.T) {
	pairs := [][2]string{
		{"duck", "ducks"},
		{"bus", "buses"},
		{"goose", "geese"},
		{"city", "cities"},
		{"child", "children"},
		{"sheep", "sheep"},
		{"ʃɪp", "ʃɪps"},
		{"bʌs", "bʌsɪz"},
	}

	for _, p := range pairs {
		c := Encode(p[0], p[1])
		got, err := Apply(p[0], Strip(c))
		if err != nil {
			t.Fatalf("Apply(%q, %q): %v", p[0], c, err)
		}
		if got != p[1] {
			t.Errorf("Apply(%q, Encode(%q, %q)) = %q, want %q", p[0], p[0], p[1], got, p[1])
		}
	}
}

func TestApply(t *testing.T) {
	got, err := Apply("duck", "****s")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ducks" {
		t.Errorf("got %q, want ducks", got)
	}

	got, err = Apply("DUCK", "****S")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ducks" {
		t.Errorf("got %q, want lower-cased ducks", got)
	}
}

func TestApplyOutOfRange(t *testing.T) {
	_, err := Apply("ox", "****s")
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}

	// literal positions past the end are fine
	got, err := Apply("ox", "**en")
	if err != nil {
		t.Fatal(err)
	}
	if got != "oxen" {
		t.Errorf("got %q, want oxen", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		target, singular, plural string
		want                     string
	}{
		{"rat", "hat", "hats", "***s"},
		{"duck", "cat", "cats", "****s"},
		{"horse", "bus", "buses", "*****es"},
		{"cat", "horse", "horses", "***s"},
		{"ox", "criterion", "criteria", "a"},
		{"tooth", "foot", "feet", "**ee*"},
		{"rat", "sheep", "sheep", "***"},
	}

	for _, tc := range tests {
		got, err := Format(tc.target, tc.singular, tc.plural)
		if err != nil {
			t.Errorf("Format(%q, %q, %q): %v", tc.target, tc.singular, tc.plural, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Format(%q, %q, %q) = %q, want %q", tc.target, tc.singular, tc.plural, got, tc.want)
		}
	}
}

func TestFormatMisaligned(t *testing.T) {
	tests := []struct {
		target, singular, plural string
	}{
		{"ox", "goose", "geese"},
		{"cat", "mouse", "mice"},
		{"a", "man", "men"},
	}

	for _, tc := range tests {
		_, err := Format(tc.target, tc.singular, tc.plural)
		if !errors.Is(err, ErrMisaligned) {
			t.Errorf("Format(%q, %q, %q) err = %v, want ErrMisaligned", tc.target, tc.singular, tc.plural, err)
		}
	}
}

func TestFormatThenApply(t *testing.T) {
	c, err := Format("louse", "mouse", "mice")
	if err != nil {
		t.Fatal(err)
	}

	got, err := Apply("louse", c)
	if err != nil {
		t.Fatal(err)
	}
	if got != "lice" {
		t.Errorf("got %q, want lice", got)
	}
}
