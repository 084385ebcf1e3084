// Package reference holds the static coefficient tables the emissions
// engine consults by slug: crops, tillages, fertilizer, manure and fuel
// types, irrigation regimes, flooding practices and rice nutrient
// management.
//
// Tables are immutable once loaded and safe for concurrent reads. A
// lookup miss is a data-integrity fault and is reported as a
// *LookupError wrapping ErrUnknownSlug, never as a zero-value record.
//
// The catalog carries a semantic version so callers can refuse a data
// set authored for a different schema:
//
//	cat, err := reference.LoadFile("catalog.yaml")
//	if err != nil { ... }
//	if err := cat.CheckCompatible(">= 1.0.0, < 2.0.0"); err != nil { ... }
package reference
