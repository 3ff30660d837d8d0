package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/phoneme"
	"github.com/revelaction/pluralis/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Store keeps phoneme caches and runs in a SQLite database.
type Store struct {
	pool *sqlitex.Pool
}

var _ storage.Repository = (*Store)(nil)

// NewStore returns a store over pool. The schema must exist, see
// CreateSchema.
func NewStore(pool *sqlitex.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) ReadCache(class noun.Class) (*phoneme.Cache, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var c *phoneme.Cache
	err = sqlitex.Execute(conn, "SELECT fingerprint FROM phoneme_caches WHERE class = ?", &sqlitex.ExecOptions{
		Args: []any{class.String()},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			c = phoneme.New(class, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("phoneme cache %s: %w", class, storage.ErrNotFound)
	}

	err = sqlitex.Execute(conn, "SELECT noun, singular, plural FROM phoneme_entries WHERE class = ? ORDER BY position", &sqlitex.ExecOptions{
		Args: []any{class.String()},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			c.Entries = append(c.Entries, phoneme.Entry{
				Noun:     stmt.ColumnText(0),
				Singular: stmt.ColumnText(1),
				Plural:   stmt.ColumnText(2),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// WriteCache replaces the cache of c.Class in a single savepoint.
func (s *Store) WriteCache(c *phoneme.Cache) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	class := c.Class.String()
	err = sqlitex.Execute(conn, "DELETE FROM phoneme_entries WHERE class = ?", &sqlitex.ExecOptions{
		Args: []any{class},
	})
	if err != nil {
		return fmt.Errorf("failed to clear phoneme entries: %w", err)
	}

	err = sqlitex.Execute(conn, `
		INSERT INTO phoneme_caches (class, fingerprint, updated)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT(class) DO UPDATE SET
			fingerprint = excluded.fingerprint,
			updated = excluded.updated
	`, &sqlitex.ExecOptions{
		Args: []any{class, c.Fingerprint},
	})
	if err != nil {
		return fmt.Errorf("failed to write phoneme cache: %w", err)
	}

	for i, e := range c.Entries {
		err = sqlitex.Execute(conn, "INSERT INTO phoneme_entries (class, position, noun, singular, plural) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []any{class, i, e.Noun, e.Singular, e.Plural},
		})
		if err != nil {
			return fmt.Errorf("failed to insert phoneme entry %q: %w", e.Noun, err)
		}
	}

	return nil
}

const runColumns = "id, mode, class, epsilon, lim, total, correct, created"

func scanRunInfo(stmt *sqlite.Stmt) (noun.RunInfo, error) {
	info := noun.RunInfo{
		Id:      stmt.ColumnInt64(0),
		Epsilon: stmt.ColumnInt(3),
		Limit:   stmt.ColumnInt(4),
		Total:   stmt.ColumnInt(5),
		Correct: stmt.ColumnInt(6),
	}

	var err error
	if info.Mode, err = noun.ParseMode(stmt.ColumnText(1)); err != nil {
		return info, err
	}
	if info.Class, err = noun.ParseClass(stmt.ColumnText(2)); err != nil {
		return info, err
	}
	if info.Created, err = time.Parse(time.RFC3339, stmt.ColumnText(7)); err != nil {
		return info, err
	}

	return info, nil
}

func (s *Store) Runs() ([]noun.RunInfo, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var infos []noun.RunInfo
	err = sqlitex.Execute(conn, "SELECT "+runColumns+" FROM runs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			info, err := scanRunInfo(stmt)
			if err != nil {
				return err
			}
			infos = append(infos, info)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return infos, nil
}

func (s *Store) ReadRun(id int64) (noun.Run, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return noun.Run{}, err
	}
	defer s.pool.Put(conn)

	var run noun.Run
	found := false
	err = sqlitex.Execute(conn, "SELECT "+runColumns+" FROM runs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			info, err := scanRunInfo(stmt)
			if err != nil {
				return err
			}
			run.RunInfo = info
			found = true
			return nil
		},
	})
	if err != nil {
		return noun.Run{}, err
	}
	if !found {
		return noun.Run{}, fmt.Errorf("run %d: %w", id, storage.ErrNotFound)
	}

	err = sqlitex.Execute(conn, `
		SELECT noun, noun_rep, similar_words, predicted_plural, actual_plural, accurate_prediction
		FROM results WHERE run_id = ? ORDER BY position`, &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			r := noun.Result{
				Noun:      stmt.ColumnText(0),
				Rep:       stmt.ColumnText(1),
				Predicted: stmt.ColumnText(3),
				Actual:    stmt.ColumnText(4),
				Correct:   stmt.ColumnInt(5) != 0,
			}
			if err := json.Unmarshal([]byte(stmt.ColumnText(2)), &r.Similar); err != nil {
				return err
			}
			run.Results = append(run.Results, r)
			return nil
		},
	})
	if err != nil {
		return noun.Run{}, err
	}

	return run, nil
}

// WriteRun inserts the run and its results in a single savepoint.
func (s *Store) WriteRun(run noun.Run) (id int64, err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	created := run.Created
	if created.IsZero() {
		created = time.Now().UTC()
	}

	err = sqlitex.Execute(conn, "INSERT INTO runs (mode, class, epsilon, lim, total, correct, created) VALUES (?, ?, ?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []any{run.Mode.String(), run.Class.String(), run.Epsilon, run.Limit, run.Total, run.Correct, created.Format(time.RFC3339)},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id = conn.LastInsertRowID()

	for i, r := range run.Results {
		similar, marshalErr := json.Marshal(r.Similar)
		if marshalErr != nil {
			return 0, marshalErr
		}

		correct := 0
		if r.Correct {
			correct = 1
		}

		err = sqlitex.Execute(conn, `
			INSERT INTO results (run_id, position, noun, noun_rep, similar_words, predicted_plural, actual_plural, accurate_prediction)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, &sqlitex.ExecOptions{
			Args: []any{id, i, r.Noun, r.Rep, string(similar), r.Predicted, r.Actual, correct},
		})
		if err != nil {
			return 0, fmt.Errorf("failed to insert result %q: %w", r.Noun, err)
		}
	}

	return id, nil
}
