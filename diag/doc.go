// Package diag accumulates status records: the non-fatal warnings a
// driver raises while parsing configuration or converting data, keyed by
// five-character state codes.
package diag
