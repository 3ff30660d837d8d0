package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/revelaction/pluralis/corpus"
	"github.com/revelaction/pluralis/inflect"
	"github.com/revelaction/pluralis/model"
	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/predict"
	"github.com/revelaction/pluralis/pron"
	"github.com/revelaction/pluralis/query"
	"github.com/revelaction/pluralis/represent"
	"github.com/revelaction/pluralis/search"
	"github.com/revelaction/pluralis/storage"
	"github.com/revelaction/pluralis/storage/filesystem"
	"github.com/revelaction/pluralis/storage/sqlite/zombiezen"
)

// sqliteExts are the file extensions that select the SQLite backend for a
// repository that does not exist yet.
var sqliteExts = map[string]bool{".db": true, ".sqlite": true, ".sqlite3": true}

// NewRepository returns the filesystem store for a directory and the SQLite
// store for a file.
func NewRepository(p *Pool, path string) (storage.Repository, error) {
	if path == "" {
		return nil, errors.New("store must be specified via --store or PLURALIS_STORE")
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return filesystem.NewStore(path)
	case err == nil:
		// a file
	case errors.Is(err, os.ErrNotExist) && !sqliteExts[filepath.Ext(path)]:
		return filesystem.NewStore(path)
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("repository %s: %w", path, err)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewStore(pool), nil
}

func (e *env) repository() (storage.Repository, error) {
	return NewRepository(&e.pool, e.cfg.Store)
}

func (e *env) dictionary() (*pron.Dictionary, error) {
	if e.cfg.Dict == "" {
		return nil, errors.New("pronouncing dictionary must be specified via --dict or PLURALIS_DICT")
	}

	d, err := pron.Open(e.cfg.Dict)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	e.logger.Debug("dictionary loaded", "path", e.cfg.Dict, "words", d.Len())
	return d, nil
}

func (e *env) nouns(class noun.Class) ([]string, error) {
	nouns, err := corpus.ReadCorpus(e.cfg.Corpus, class)
	if err != nil {
		return nil, fmt.Errorf("reading %s nouns from %s: %w", class, e.cfg.Corpus, err)
	}
	if len(nouns) == 0 {
		return nil, fmt.Errorf("no %s nouns in %s", class, e.cfg.Corpus)
	}
	return nouns, nil
}

func (e *env) inflector() *inflect.Engine {
	return inflect.NewEngine(e.cfg.Irregulars...)
}

// engine prepares the model of mode over nouns. The phonological model reads
// the phoneme cache of the class, building it when needed; nouns outside the
// cache are transcribed through dict.
func (e *env) engine(mode noun.Mode, class noun.Class, nouns []string, s *search.Searcher, dict *pron.Dictionary) (*query.Engine, error) {
	inf := e.inflector()

	if mode == noun.Orthographic {
		m := model.New(represent.NewBuilder(inf, nil), s, mode, e.logger)
		return &query.Engine{Model: m, Pool: m.Pool(nouns), Plurals: predict.PluralFunc(inf.Lookup)}, nil
	}

	if dict == nil {
		return nil, errors.New("the phonological model needs a pronouncing dictionary")
	}

	repo, err := e.repository()
	if err != nil {
		return nil, err
	}

	rb := represent.NewBuilder(inf, dict)
	progress, stop := e.progress("phonemes")
	cache, err := model.LoadPhonemes(repo, class, nouns, rb, e.logger, progress)
	stop()
	if err != nil {
		return nil, err
	}

	m := model.New(model.Builders{cache, rb}, s, mode, e.logger)
	return &query.Engine{Model: m, Pool: m.Pool(nouns), Plurals: cache}, nil
}

// needsDict reports whether any of modes transcribes nouns.
func needsDict(modes []noun.Mode) bool {
	for _, m := range modes {
		if m == noun.Phonological {
			return true
		}
	}
	return false
}
