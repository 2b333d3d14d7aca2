package param

import (
	"github.com/cleodb/godbc/appbuf"
)

// Parameter is one bound statement parameter: the caller's data buffer
// plus the declared SQL type, and a staging area for data supplied at
// execution time.
type Parameter struct {
	buf        *appbuf.DataBuffer
	sqlType    int16
	columnSize uint64
	decDigits  int16

	storedData []byte
	nullStored bool
	complete   bool
}

// New binds a parameter over buf with its declared SQL type attributes.
func New(buf *appbuf.DataBuffer, sqlType int16, columnSize uint64, decDigits int16) *Parameter {
	return &Parameter{
		buf:        buf,
		sqlType:    sqlType,
		columnSize: columnSize,
		decDigits:  decDigits,
	}
}

// Buffer returns the underlying data buffer.
func (p *Parameter) Buffer() *appbuf.DataBuffer { return p.buf }

// SQLType returns the declared SQL type code.
func (p *Parameter) SQLType() int16 { return p.sqlType }

// ColumnSize returns the declared column size.
func (p *Parameter) ColumnSize() uint64 { return p.columnSize }

// DecDigits returns the declared decimal digits.
func (p *Parameter) DecDigits() int16 { return p.decDigits }

// PutData appends one chunk of execution-time data. A nil chunk stores
// the null marker and completes the transfer.
func (p *Parameter) PutData(chunk []byte) {
	if chunk == nil {
		p.nullStored = true
		p.complete = true
		return
	}
	p.storedData = append(p.storedData, chunk...)
	declared := p.buf.DataAtExecSize()
	if declared > 0 && int64(len(p.storedData)) >= declared {
		p.complete = true
	}
}

// FinishData marks the transfer complete regardless of the declared
// total. Callers with open-ended long data end the stream this way.
func (p *Parameter) FinishData() {
	p.complete = true
}

// IsDataReady reports whether all execution-time data has arrived.
func (p *Parameter) IsDataReady() bool {
	return p.complete
}

// IsNullStored reports whether the execution-time data was the null
// marker.
func (p *Parameter) IsNullStored() bool {
	return p.nullStored
}

// StoredData returns the accumulated execution-time data.
func (p *Parameter) StoredData() []byte {
	return p.storedData
}

// ResetStoredData clears the staging area for the next execution.
func (p *Parameter) ResetStoredData() {
	p.storedData = nil
	p.nullStored = false
	p.complete = false
}
