package reference

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrUnknownSlug indicates a slug with no matching reference record.
	ErrUnknownSlug = constError("unknown reference slug")

	// ErrDuplicateSlug indicates a table that lists the same slug twice.
	ErrDuplicateSlug = constError("duplicate reference slug")

	// ErrUnknownTable indicates a table name outside the catalog.
	ErrUnknownTable = constError("unknown reference table")

	// ErrIncompatibleVersion indicates a catalog version outside the accepted range.
	ErrIncompatibleVersion = constError("incompatible reference catalog version")
)

// LookupError identifies the table and slug of a failed lookup.
type LookupError struct {
	Table string
	Slug  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: no record for slug %q", e.Table, e.Slug)
}

func (e *LookupError) Unwrap() error { return ErrUnknownSlug }
