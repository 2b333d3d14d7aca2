// Package godbc provides the data-buffer marshaling core of a call-level
// SQL (ODBC-style) client driver.
//
// The driver standard hands the client raw, caller-owned memory buffers
// tagged with a declared native element type; the client must move values
// between its internal typed representation and those buffers byte-exactly,
// honoring the standard's truncation and indicator rules.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	godbc/           Root package with the Memory abstraction, byte-exact
//	                 external struct layouts, and ODBC length sentinels
//	├── appbuf/      Application data buffer: the conversion engine between
//	                 internal values and tagged caller buffers
//	├── param/       Parameter binding set: array binding and streamed
//	                 data-at-execution transfer
//	├── config/      Connection configuration and address-list parsing
//	├── diag/        Diagnostic status records
//	├── errors/      Structured error types for debugging
//	└── cmd/         bufspect conversion inspector tool
//
// # Quick Start
//
// Bind a buffer and push a value into it:
//
//	region := godbc.NewRegion(64)
//	ind := godbc.NewRegion(8)
//
//	buf := appbuf.New(appbuf.TypeChar, region, 64, ind)
//	res, err := buf.PutString("hello")
//	// res == appbuf.ConvSuccess, region holds "hello\x00", ind holds 5
//
// # Buffer Ownership
//
// The engine never owns memory. A DataBuffer is a non-owning view over a
// caller buffer plus an optional indicator slot; the caller keeps both alive
// for the descriptor's whole lifetime and is free to rebind or discard them
// between statements.
//
// # Outcome Codes
//
// Conversions never fail fatally. Every put operation reports one of five
// outcome codes (success, variable-length truncated, fractional truncated,
// indicator needed, unsupported conversion); truncation is part of the
// standard's retry protocol, not an error. The error return of an operation
// carries only memory-access faults.
//
// # Thread Safety
//
// Distinct DataBuffer values are safe for concurrent use. Operations on the
// same DataBuffer must be serialized by the caller, matching the driver's
// single-statement-at-a-time execution model.
package godbc
