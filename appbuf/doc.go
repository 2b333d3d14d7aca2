// Package appbuf implements the application data buffer: the conversion
// engine between the driver's internal typed values and caller-supplied
// raw buffers.
//
// # Overview
//
// A caller binds a memory location once, declaring its native element type,
// and the engine is invoked repeatedly to push (put) or pull (get) one value
// per row:
//
//	┌────────────────────────────────────────────────────────────┐
//	│ Internal Value ←→ [DataBuffer] ←→ Caller Memory + Indicator │
//	└────────────────────────────────────────────────────────────┘
//
// # Conversion Matrix
//
// Roughly twenty caller-declared native tags convert to and from a dozen
// internal value kinds. Fixed-width numeric targets narrow silently (plain
// Go conversion, integers wrap); text targets receive the canonical text
// form; struct targets (numeric, date, time, timestamp, GUID) are written
// byte-exactly in their external layouts.
//
// # Element Sizes
//
//	Tag                      Size
//	───────────────────────────────
//	tinyint/bit              1
//	short                    2
//	long, float              4
//	bigint, double           8
//	date, time               6
//	timestamp, guid          16
//	numeric                  19
//	char/wchar/binary        declared buffer capacity
//	default/unsupported      0
//
// # Truncation and Indicators
//
// The single most important invariant: the indicator slot always receives
// the length the full value would need, never the length actually written.
// A text value that does not fit is copied as the longest prefix leaving
// room for the terminator, the full length is reported, and the operation
// returns ConvVarlenTruncated so the caller can retry with more space.
//
// # Array Binding
//
// Row N of an array-bound buffer is addressed as
//
//	byteOffset + N*elementSize
//
// via SetByteOffset and SetElementOffset; the indicator array uses the same
// formula with the fixed indicator width.
//
// # Data at Execution
//
// An indicator holding a value at or below the deferred-length base marks a
// parameter whose data arrives later in caller-controlled chunks; the
// declared total is recovered from the encoded indicator value. Fixed-width
// tags always transfer whole elements and report their element size.
//
// # Thread Safety
//
// A DataBuffer holds no state beyond the caller memory it points at.
// Distinct buffers are safe for concurrent use; operations on the same
// buffer must be serialized by the caller.
package appbuf
