package appbuf

import (
	"github.com/cleodb/godbc"
	"github.com/cleodb/godbc/appbuf/internal/layout"
	"github.com/cleodb/godbc/appbuf/internal/sqltype"
)

// DataBuffer describes one caller-bound buffer: a native type tag, the
// data memory, its declared capacity, and an optional indicator memory.
// Either memory may be nil; a nil data memory makes puts length-only
// probes and a nil indicator memory drops length reporting.
type DataBuffer struct {
	typ    sqltype.Type
	mem    godbc.Memory
	bufLen int64
	ind    godbc.Memory

	byteOffset int64
	elemOffset int64
}

// New binds a buffer descriptor. bufLen is the declared capacity in bytes;
// it only matters for char, wchar and binary tags, whose element size it
// defines.
func New(typ TypeKind, mem godbc.Memory, bufLen int64, ind godbc.Memory) *DataBuffer {
	return &DataBuffer{typ: typ, mem: mem, bufLen: bufLen, ind: ind}
}

// Type returns the native tag the buffer was bound with.
func (b *DataBuffer) Type() TypeKind { return b.typ }

// Capacity returns the declared buffer length in bytes.
func (b *DataBuffer) Capacity() int64 { return b.bufLen }

// ElementSize returns the per-row stride: the declared capacity for
// variable-length tags, the fixed width otherwise.
func (b *DataBuffer) ElementSize() int64 {
	return layout.ElementSize(b.typ, b.bufLen)
}

// SetByteOffset sets the base displacement applied to both the data and
// indicator addresses. Used for whole-block row-wise binding.
func (b *DataBuffer) SetByteOffset(off int64) { b.byteOffset = off }

// SetElementOffset selects the row inside an array-bound buffer.
func (b *DataBuffer) SetElementOffset(idx int64) { b.elemOffset = idx }

func (b *DataBuffer) dataAddr() (uint32, bool) {
	if b.mem == nil {
		return 0, false
	}
	return uint32(b.byteOffset + b.elemOffset*b.ElementSize()), true
}

func (b *DataBuffer) indAddr() (uint32, bool) {
	if b.ind == nil {
		return 0, false
	}
	return uint32(b.byteOffset + b.elemOffset*layout.IndicatorSize), true
}

// setIndicator stores v in the indicator slot for the current row. A
// missing indicator memory is not an error; the value is simply dropped.
func (b *DataBuffer) setIndicator(v int64) error {
	addr, ok := b.indAddr()
	if !ok {
		return nil
	}
	return b.ind.WriteU64(addr, uint64(v))
}

// readIndicator loads the indicator slot for the current row. The second
// result is false when no indicator memory is bound or the slot cannot
// be read.
func (b *DataBuffer) readIndicator() (int64, bool) {
	addr, ok := b.indAddr()
	if !ok {
		return 0, false
	}
	v, err := b.ind.ReadU64(addr)
	if err != nil {
		return 0, false
	}
	return int64(v), true
}

// IsDataAtExec reports whether the current row's indicator marks the value
// as deferred: supplied later in chunks rather than present in the buffer.
func (b *DataBuffer) IsDataAtExec() bool {
	v, ok := b.readIndicator()
	if !ok {
		return false
	}
	return v == godbc.DataAtExec || v <= godbc.DataAtExecOffset
}

// DataAtExecSize recovers the declared total length of a deferred value
// from its encoded indicator. Wide character buffers report bytes, so the
// recovered element count is doubled. Fixed-width tags always transfer a
// whole element.
func (b *DataBuffer) DataAtExecSize() int64 {
	switch b.typ {
	case sqltype.Char, sqltype.Wchar, sqltype.Binary:
		v, ok := b.readIndicator()
		if !ok {
			return 0
		}
		var n int64
		if v <= godbc.DataAtExecOffset {
			n = -v + godbc.DataAtExecOffset
		}
		if b.typ == sqltype.Wchar {
			n *= 2
		}
		return n
	default:
		return layout.FixedSize(b.typ)
	}
}

// InputSize returns how many bytes of caller data the current row holds:
// the indicator value for inline data, the recovered total for deferred
// data, or the terminated-string sentinel when no indicator is bound.
func (b *DataBuffer) InputSize() int64 {
	if !b.IsDataAtExec() {
		if v, ok := b.readIndicator(); ok {
			return v
		}
		return godbc.NTS
	}
	return b.DataAtExecSize()
}
