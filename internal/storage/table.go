package storage

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("record not found")

// Row is any record stored in a Table. Tables assign primary keys on insert.
type Row interface {
	RowID() uint64
	SetRowID(uint64)
}

// Table is an in-memory record table with auto-incrementing uint64 primary
// keys. It backs all runtime simulation state (entities, conditions, events).
//
// Rows are stored by pointer; callers that mutate a row must work on a copy
// and commit it with Update so that a failed operation leaves no partial
// writes behind. Update replaces the stored pointer wholesale, which is what
// gives each engine invocation its all-or-nothing semantics.
type Table[T Row] struct {
	mu     sync.RWMutex
	nextID uint64
	rows   map[uint64]T
}

func NewTable[T Row]() *Table[T] {
	return &Table[T]{
		nextID: 1,
		rows:   make(map[uint64]T),
	}
}

// Insert assigns the next primary key to row and stores it.
func (t *Table[T]) Insert(row T) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	row.SetRowID(id)
	t.rows[id] = row
	return id
}

// Get returns the stored row for id. Callers must copy before mutating.
func (t *Table[T]) Get(id uint64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// Update replaces the stored row keyed by row's primary key.
func (t *Table[T]) Update(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := row.RowID()
	if _, ok := t.rows[id]; !ok {
		return ErrNotFound
	}
	t.rows[id] = row
	return nil
}

func (t *Table[T]) Delete(id uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

// Select returns every row matching pred. An index-scoped scan (conditions
// for entity X, rooms in region Y) is a Select with a foreign-key predicate.
func (t *Table[T]) Select(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []T
	for _, row := range t.rows {
		if pred(row) {
			out = append(out, row)
		}
	}
	return out
}

// All returns every row in the table.
func (t *Table[T]) All() []T {
	return t.Select(func(T) bool { return true })
}

// Find returns the first row matching pred. Used for single-field
// uniqueness checks (e.g. account usernames).
func (t *Table[T]) Find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, row := range t.rows {
		if pred(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *Table[T]) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
