// Package numconv provides generic helpers for the numeric conversion
// matrix: raw bit extraction, canonical text formatting, lenient parsing,
// and decimal digit counting.
//
// The narrowing policy is deliberately silent: converting between numeric
// kinds uses plain Go conversions (integers wrap, floats truncate), exactly
// as the external standard's lenient conversion rules demand. Range checks
// are the concern of neither the put nor the get path.
//
// This package is internal to appbuf.
package numconv
