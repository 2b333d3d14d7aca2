// Package sqltype defines the native type tag enumeration.
//
// A tag names the caller-declared element type of a bound external buffer.
// The set is closed: it mirrors the call-level SQL standard's C-type
// constants, which are frozen by that standard, so no open extension
// mechanism exists.
//
// This package is internal to appbuf; the appbuf package re-exports the
// tags for callers.
package sqltype
