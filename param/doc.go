// Package param manages statement parameters: per-parameter bindings
// over application data buffers, deferred data-at-execution transfer,
// and the row-status bookkeeping of array execution.
package param
