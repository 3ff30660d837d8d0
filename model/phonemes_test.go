package model

import (
	"errors"
	"testing"

	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/phoneme"
	"github.com/revelaction/pluralis/storage"
)

type memRepo struct {
	caches map[noun.Class]*phoneme.Cache
	writes int
	err    error
}

func (r *memRepo) ReadCache(class noun.Class) (*phoneme.Cache, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.caches[class]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return c, nil
}

func (r *memRepo) WriteCache(c *phoneme.Cache) error {
	r.writes++
	r.caches[c.Class] = c
	return nil
}

type countingBuilder struct {
	fakeBuilder
	calls int
}

func (b *countingBuilder) Build(n string, mode noun.Mode) (noun.Pair, bool) {
	b.calls++
	return b.fakeBuilder.Build(n, mode)
}

func TestLoadPhonemes(t *testing.T) {
	repo := &memRepo{caches: map[noun.Class]*phoneme.Cache{}}
	b := &countingBuilder{fakeBuilder: fakeBuilder{
		"cat":  {Singular: "kæt", Plural: "kæts"},
		"ship": {Singular: "ʃɪp", Plural: "ʃɪps"},
	}}

	nouns := []string{"cat", "ship", "zzz"}

	c, err := LoadPhonemes(repo, noun.Regular, nouns, b, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 || repo.writes != 1 || b.calls != 3 {
		t.Fatalf("first load: len %d, writes %d, calls %d", c.Len(), repo.writes, b.calls)
	}

	// same list in another order: reused
	if _, err := LoadPhonemes(repo, noun.Regular, []string{"zzz", "ship", "cat"}, b, nil, nil); err != nil {
		t.Fatal(err)
	}
	if repo.writes != 1 || b.calls != 3 {
		t.Errorf("cache not reused: writes %d, calls %d", repo.writes, b.calls)
	}

	// same size, one noun changed: rebuilt
	c, err = LoadPhonemes(repo, noun.Regular, []string{"cat", "ship", "yyy"}, b, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if repo.writes != 2 {
		t.Errorf("stale cache not rebuilt: writes %d", repo.writes)
	}
	if c.Stale([]string{"cat", "ship", "yyy"}) {
		t.Error("rebuilt cache is stale")
	}
}

func TestLoadPhonemesReadError(t *testing.T) {
	boom := errors.New("boom")
	repo := &memRepo{caches: map[noun.Class]*phoneme.Cache{}, err: boom}

	_, err := LoadPhonemes(repo, noun.All, []string{"cat"}, fakeBuilder{}, nil, nil)
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want %v", err, boom)
	}
	if repo.writes != 0 {
		t.Error("cache written after a read error")
	}
}
