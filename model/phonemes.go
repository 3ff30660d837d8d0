package model

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/phoneme"
	"github.com/revelaction/pluralis/storage"
)

// LoadPhonemes returns the phoneme cache of nouns. A stored cache built from
// the same noun list is reused; otherwise the cache is built with b and
// written back to repo.
func LoadPhonemes(repo storage.CacheRepository, class noun.Class, nouns []string, b phoneme.Builder, logger *slog.Logger, progress func(current, total int, n string)) (*phoneme.Cache, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c, err := repo.ReadCache(class)
	switch {
	case err == nil && !c.Stale(nouns):
		logger.Debug("phoneme cache hit", "class", class, "entries", c.Len())
		return c, nil
	case err == nil:
		logger.Info("phoneme cache stale, rebuilding", "class", class)
	case errors.Is(err, storage.ErrNotFound):
		logger.Info("phoneme cache not found, building", "class", class)
	default:
		return nil, fmt.Errorf("reading phoneme cache: %w", err)
	}

	c = phoneme.Build(class, nouns, b, progress)
	if err := repo.WriteCache(c); err != nil {
		return nil, fmt.Errorf("writing phoneme cache: %w", err)
	}

	logger.Info("phoneme cache written", "class", class, "entries", c.Len(), "nouns", len(nouns))
	return c, nil
}
