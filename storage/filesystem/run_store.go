package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/revelaction/pluralis/noun"
	"github.com/revelaction/pluralis/storage"
)

// Runs are stored one per file, named <id>_<mode>_<class>_epsilon=<e>.json.

func (s *Store) runFiles() (map[int64]string, error) {
	files, err := os.ReadDir(filepath.Join(s.root, runDir))
	if err != nil {
		return nil, err
	}

	runs := map[int64]string{}
	for _, file := range files {
		name := file.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}

		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			continue
		}

		id, err := strconv.ParseInt(prefix, 10, 64)
		if err != nil {
			continue
		}
		runs[id] = filepath.Join(s.root, runDir, name)
	}

	return runs, nil
}

// Runs returns the stored runs ordered by id.
func (s *Store) Runs() ([]noun.RunInfo, error) {
	files, err := s.runFiles()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(files))
	for id := range files {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	infos := make([]noun.RunInfo, 0, len(ids))
	for _, id := range ids {
		var run noun.Run
		if err := readJSON(files[id], &run); err != nil {
			return nil, err
		}
		infos = append(infos, run.RunInfo)
	}

	return infos, nil
}

func (s *Store) ReadRun(id int64) (noun.Run, error) {
	files, err := s.runFiles()
	if err != nil {
		return noun.Run{}, err
	}

	path, ok := files[id]
	if !ok {
		return noun.Run{}, fmt.Errorf("run %d: %w", id, storage.ErrNotFound)
	}

	var run noun.Run
	if err := readJSON(path, &run); err != nil {
		return noun.Run{}, err
	}

	return run, nil
}

// WriteRun stores run under the next free id.
func (s *Store) WriteRun(run noun.Run) (int64, error) {
	files, err := s.runFiles()
	if err != nil {
		return 0, err
	}

	var id int64 = 1
	for existing := range files {
		if existing >= id {
			id = existing + 1
		}
	}

	run.Id = id
	if run.Created.IsZero() {
		run.Created = time.Now().UTC()
	}

	name := fmt.Sprintf("%d_%s.json", id, run.Name())
	if err := writeJSON(filepath.Join(s.root, runDir, name), run); err != nil {
		return 0, err
	}

	return id, nil
}
