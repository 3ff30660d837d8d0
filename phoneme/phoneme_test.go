package phoneme

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/revelaction/pluralis/noun"
)

type fakeBuilder map[string]noun.Pair

func (f fakeBuilder) Build(n string, mode noun.Mode) (noun.Pair, bool) {
	p, ok := f[n]
	return p, ok
}

var builder = fakeBuilder{
	"cat":   {Singular: "kæt", Plural: "kæts"},
	"goose": {Singular: "gus", Plural: "gis"},
	"son":   {Singular: "sən", Plural: "sənz"},
	"sun":   {Singular: "sən", Plural: "sənz"},
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]string{"cat", "goose", "sun"})
	b := Fingerprint([]string{"sun", "cat", "goose", "cat"})
	if a != b {
		t.Error("fingerprint must not depend on order or duplicates")
	}

	// same size, different nouns
	c := Fingerprint([]string{"cat", "goose", "son"})
	if a == c {
		t.Error("different noun lists must have different fingerprints")
	}
}

func TestBuild(t *testing.T) {
	nouns := []string{"cat", "sherlock", "goose", "son", "sun"}

	var seen []string
	c := Build(noun.Irregular, nouns, builder, func(cur, total int, n string) {
		if total != len(nouns) {
			t.Errorf("total = %d", total)
		}
		seen = append(seen, n)
	})

	if diff := cmp.Diff(nouns, seen); diff != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", diff)
	}

	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
	if diff := cmp.Diff([]string{"kæt", "gus", "sən"}, c.Singulars()); diff != "" {
		t.Errorf("Singulars mismatch (-want +got):\n%s", diff)
	}

	if p, ok := c.Plural("gus"); !ok || p != "gis" {
		t.Errorf("Plural(gus) = %q, %v", p, ok)
	}
	if pair, ok := c.Pair("sun"); !ok || pair.Singular != "sən" {
		t.Errorf("Pair(sun) = %+v, %v", pair, ok)
	}
	if _, ok := c.Pair("sherlock"); ok {
		t.Error("untranscribed noun must have no pair")
	}
	if c.Stale(nouns) {
		t.Error("cache must not be stale for its own noun list")
	}
	if !c.Stale(nouns[:2]) {
		t.Error("cache must be stale for another noun list")
	}
}

func TestIndexAfterDecode(t *testing.T) {
	c := Build(noun.Regular, []string{"cat", "goose"}, builder, nil)
	b, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}

	var loaded Cache
	if err := json.Unmarshal(b, &loaded); err != nil {
		t.Fatal(err)
	}
	if p, ok := loaded.Plural("kæt"); !ok || p != "kæts" {
		t.Errorf("Plural(kæt) = %q, %v", p, ok)
	}
	if loaded.Class != noun.Regular {
		t.Errorf("Class = %v", loaded.Class)
	}
}

func TestCacheAsBuilder(t *testing.T) {
	c := Build(noun.All, []string{"cat", "goose"}, builder, nil)

	var b Builder = c
	pair, ok := b.Build("goose", noun.Phonological)
	if !ok || pair.Plural != "gis" {
		t.Errorf("Build(goose) = %+v, %v", pair, ok)
	}

	if _, ok := b.Build("goose", noun.Orthographic); ok {
		t.Error("the cache serves only the phonological mode")
	}
	if _, ok := b.Build("sun", noun.Phonological); ok {
		t.Error("sun is not cached")
	}
}
