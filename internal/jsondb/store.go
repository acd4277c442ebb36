package jsondb

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"slices"

	"github.com/natefinch/atomic"
)

// Store holds every record of one entity type in memory, backed by a single
// JSON file.
//
// T is normally a pointer type so that SetID and Clone behave as expected.
type Store[T Entity[T]] struct {
	path string
	rows []T

	// lastID is the largest identifier loaded or assigned so far.
	lastID int
}

// Open creates a Store bound to path and loads its records.
//
// A missing file is created empty. A file whose content is not a JSON array of
// records, or whose records break the identifier invariants, yields an error
// matching ErrMalformedStore.
func Open[T Entity[T]](path string) (*Store[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:gosec // G301: data directories are world readable.
		return nil, persistence(fmt.Sprintf("failed to create directory for %s", path), err)
	}
	s := &Store[T]{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store[T]) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return persistence(fmt.Sprintf("failed to read %s", s.path), err)
		}
		f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G302: the store is a plain data file.
		if err != nil {
			return persistence(fmt.Sprintf("failed to create %s", s.path), err)
		}
		if err := f.Close(); err != nil {
			return persistence(fmt.Sprintf("failed to create %s", s.path), err)
		}
		slog.Debug("jsondb: created store", "path", s.path)
		s.rows = []T{}
		return nil
	}

	rows, err := decodeRows[T](data)
	if err != nil {
		return malformed(s.path, err)
	}
	slog.Debug("jsondb: loaded store", "path", s.path, "records", len(rows))
	s.rows = rows
	for _, row := range rows {
		s.lastID = max(s.lastID, row.GetID())
	}
	return nil
}

// decodeRows parses a JSON array of records. Empty content and a JSON null are
// an empty set.
func decodeRows[T Entity[T]](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []T{}, nil
	}
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		return []T{}, nil
	}
	seen := make(map[int]struct{}, len(rows))
	for i, row := range rows {
		if isNil(row) {
			return nil, fmt.Errorf("record %d is null", i)
		}
		id := row.GetID()
		if id <= 0 {
			return nil, fmt.Errorf("record %d has non-positive Id %d", i, id)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("record %d has duplicate Id %d", i, id)
		}
		seen[id] = struct{}{}
	}
	return rows, nil
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	return len(s.rows)
}

// Add assigns entity a fresh identifier and appends a copy of it.
//
// The identifier is one plus the largest identifier this store has seen, or 1
// for a fresh store. It is also written back to entity. Add fails once the
// largest identifier is math.MaxInt.
func (s *Store[T]) Add(entity T) Result[T] {
	if err := check(entity); err != nil {
		return Fail[T](err)
	}
	if s.lastID == math.MaxInt {
		return Fail[T](invalidEntity("identifier space exhausted"))
	}
	id := s.lastID + 1
	entity.SetID(id)
	s.rows = append(s.rows, entity.Clone())
	s.lastID = id
	return Ok[T]()
}

// Update replaces the record with entity's identifier by a copy of entity.
func (s *Store[T]) Update(entity T) Result[T] {
	if err := check(entity); err != nil {
		return Fail[T](err)
	}
	i := s.index(entity.GetID())
	if i < 0 {
		return Fail[T](notFound(entity.GetID()))
	}
	s.rows[i] = entity.Clone()
	return Ok[T]()
}

// Get returns a copy of the record with the given identifier.
func (s *Store[T]) Get(id int) Result[T] {
	i := s.index(id)
	if i < 0 {
		return Fail[T](notFound(id))
	}
	return Value(s.rows[i].Clone())
}

// Delete removes the record with the given identifier.
func (s *Store[T]) Delete(id int) Result[T] {
	i := s.index(id)
	if i < 0 {
		return Fail[T](notFound(id))
	}
	s.rows = slices.Delete(s.rows, i, i+1)
	return Ok[T]()
}

// GetAll returns copies of all records in insertion order.
func (s *Store[T]) GetAll() Result[T] {
	items := make([]T, 0, len(s.rows))
	for _, row := range s.rows {
		items = append(items, row.Clone())
	}
	return Value(items...)
}

// Save overwrites the backing file with all records.
//
// The write goes to a temporary file that is renamed over the target, so the
// file always holds either the previous or the new content. On failure the
// in-memory records are untouched and Save may be retried.
func (s *Store[T]) Save() Result[T] {
	data, err := json.MarshalIndent(s.rows, "", "  ")
	if err != nil {
		return Fail[T](persistence("failed to marshal records", err))
	}
	data = append(data, '\n')
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return Fail[T](persistence(fmt.Sprintf("failed to write %s", s.path), err))
	}
	slog.Debug("jsondb: saved store", "path", s.path, "records", len(s.rows))
	return Ok[T]()
}

func (s *Store[T]) index(id int) int {
	return slices.IndexFunc(s.rows, func(row T) bool {
		return row.GetID() == id
	})
}

func check[T Entity[T]](entity T) *Error {
	if isNil(entity) {
		return invalidEntity("entity is nil")
	}
	if v, ok := any(entity).(Validator); ok {
		if err := v.Validate(); err != nil {
			return invalidEntity("invalid entity").Wrap(err)
		}
	}
	return nil
}
