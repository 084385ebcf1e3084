package reference

import "fmt"

// Record is a reference row addressable by slug.
type Record interface {
	Key() string
	Label() string
}

// Listing is the type-erased view of a table used for introspection.
type Listing interface {
	Name() string
	Len() int
	Keys() []string
	Lookup(slug string) (any, error)
}

// Table is an ordered, immutable set of records indexed by slug.
type Table[T Record] struct {
	name  string
	rows  []T
	index map[string]int
}

// NewTable builds a table from rows, keeping their order.
// Empty and duplicate slugs are rejected.
func NewTable[T Record](name string, rows []T) (*Table[T], error) {
	t := &Table[T]{
		name:  name,
		rows:  make([]T, len(rows)),
		index: make(map[string]int, len(rows)),
	}
	copy(t.rows, rows)
	for i, r := range t.rows {
		key := r.Key()
		if key == "" {
			return nil, fmt.Errorf("%s: row %d has an empty slug", name, i)
		}
		if _, dup := t.index[key]; dup {
			return nil, fmt.Errorf("%s: %w: %q", name, ErrDuplicateSlug, key)
		}
		t.index[key] = i
	}
	return t, nil
}

// Resolve returns the record for slug or a *LookupError.
func (t *Table[T]) Resolve(slug string) (T, error) {
	i, ok := t.index[slug]
	if !ok {
		var zero T
		return zero, &LookupError{Table: t.name, Slug: slug}
	}
	return t.rows[i], nil
}

// Name is the table name used in errors and the CLI.
func (t *Table[T]) Name() string { return t.name }

// Len is the number of records.
func (t *Table[T]) Len() int { return len(t.rows) }

// All returns a copy of the records in table order.
func (t *Table[T]) All() []T {
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

// Keys returns the slugs in table order.
func (t *Table[T]) Keys() []string {
	keys := make([]string, len(t.rows))
	for i, r := range t.rows {
		keys[i] = r.Key()
	}
	return keys
}

// Lookup is Resolve with the record boxed, for Listing.
func (t *Table[T]) Lookup(slug string) (any, error) {
	return t.Resolve(slug)
}
