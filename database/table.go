package database

import (
	"fmt"
	"maps"
	"slices"
)

// Table is an id-keyed set of rows. Ids are assigned from a high-water mark
// and are never handed out twice, even after the highest row is deleted.
type Table[T any] struct {
	name   string
	rows   map[int64]T
	lastID int64
	copyFn func(T) T
	frozen bool
}

func newTable[T any](name string, copyFn func(T) T) *Table[T] {
	if copyFn == nil {
		copyFn = func(row T) T { return row }
	}
	return &Table[T]{name: name, rows: make(map[int64]T), copyFn: copyFn}
}

// Name returns the table name.
func (t *Table[T]) Name() string {
	return t.name
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	return len(t.rows)
}

// Get returns a copy of the row with the given id.
func (t *Table[T]) Get(id int64) (T, bool) {
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.copyFn(row), true
}

// Has reports whether a row with the given id exists.
func (t *Table[T]) Has(id int64) bool {
	_, ok := t.rows[id]
	return ok
}

// List returns copies of every row in ascending id order, which is also
// insertion order.
func (t *Table[T]) List() []T {
	return t.Filter(nil)
}

// Filter returns the rows matching keep in ascending id order. A nil keep
// matches everything.
func (t *Table[T]) Filter(keep func(T) bool) []T {
	out := make([]T, 0, len(t.rows))
	for _, id := range t.ids() {
		row := t.rows[id]
		if keep == nil || keep(row) {
			out = append(out, t.copyFn(row))
		}
	}
	return out
}

// First returns the lowest-id row matching keep.
func (t *Table[T]) First(keep func(T) bool) (T, bool) {
	for _, id := range t.ids() {
		if row := t.rows[id]; keep(row) {
			return t.copyFn(row), true
		}
	}
	var zero T
	return zero, false
}

// Count returns how many rows match keep.
func (t *Table[T]) Count(keep func(T) bool) int {
	n := 0
	for _, row := range t.rows {
		if keep(row) {
			n++
		}
	}
	return n
}

// NextID returns the id the next Insert will assign.
func (t *Table[T]) NextID() int64 {
	return t.lastID + 1
}

// Insert assigns the next id, builds the row with it and stores it.
func (t *Table[T]) Insert(build func(id int64) T) T {
	t.mustWrite()
	id := t.NextID()
	row := build(id)
	t.rows[id] = t.copyFn(row)
	t.lastID = id
	return row
}

// Put stores row under id, replacing any existing row. Explicit ids raise
// the high-water mark so later inserts never collide with them.
func (t *Table[T]) Put(id int64, row T) {
	t.mustWrite()
	t.rows[id] = t.copyFn(row)
	if id > t.lastID {
		t.lastID = id
	}
}

// Delete removes the row with the given id and reports whether it existed.
func (t *Table[T]) Delete(id int64) bool {
	t.mustWrite()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

func (t *Table[T]) ids() []int64 {
	return slices.Sorted(maps.Keys(t.rows))
}

func (t *Table[T]) clone() *Table[T] {
	c := &Table[T]{
		name:   t.name,
		rows:   make(map[int64]T, len(t.rows)),
		lastID: t.lastID,
		copyFn: t.copyFn,
	}
	for id, row := range t.rows {
		c.rows[id] = t.copyFn(row)
	}
	return c
}

func (t *Table[T]) mustWrite() {
	if t.frozen {
		panic(fmt.Sprintf("database: write to table %q outside Store.Update", t.name))
	}
}
