// Package layout provides the element-size tables for native type tags.
//
// Fixed-width tags have sizes frozen by the external standard (integers
// 1/2/4/8, float 4, double 8, and the fixed struct layouts for numeric,
// date, time, timestamp and GUID). Long-data tags (char, wchar, binary)
// take the caller's declared buffer capacity as their element size, since
// those buffers are not array-bound the way fixed types are.
//
// This package is internal to appbuf.
package layout
