package storage

import (
	"errors"

	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/phoneme"
)

// ErrNotFound is returned by readers when the requested item is not stored.
var ErrNotFound = errors.New("not found")

// CacheReader defines read operations for phoneme cache storage
type CacheReader interface {
	// ReadCache returns the phoneme cache of a noun class
	ReadCache(class noun.Class) (*phoneme.Cache, error)
}

// CacheWriter defines write operations for phoneme cache storage
type CacheWriter interface {
	// WriteCache replaces the stored cache of c.Class
	WriteCache(c *phoneme.Cache) error
}

// CacheRepository combines read and write operations
type CacheRepository interface {
	CacheReader
	CacheWriter
}

// RunReader defines read operations for model runs
type RunReader interface {
	// Runs returns the metadata of all stored runs, without results.
	Runs() ([]noun.RunInfo, error)

	// ReadRun returns a run with its results
	ReadRun(id int64) (noun.Run, error)
}

// RunWriter defines write operations for model runs
type RunWriter interface {
	// WriteRun persists a run and returns its id
	WriteRun(run noun.Run) (int64, error)
}

// RunRepository combines read and write operations
type RunRepository interface {
	RunReader
	RunWriter
}

// Repository is the full storage surface of a backend.
type Repository interface {
	CacheRepository
	RunRepository
}
