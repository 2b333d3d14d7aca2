package godbc

import (
	"encoding/binary"

	"github.com/cleodb/godbc/errors"
)

// Memory is a non-owning, bounds-checked view over caller memory.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	ReadU8(offset uint32) (uint8, error)
	ReadU16(offset uint32) (uint16, error)
	ReadU32(offset uint32) (uint32, error)
	ReadU64(offset uint32) (uint64, error)
	WriteU8(offset uint32, value uint8) error
	WriteU16(offset uint32, value uint16) error
	WriteU32(offset uint32, value uint32) error
	WriteU64(offset uint32, value uint64) error
}

// MemorySizer provides the size of a memory view in bytes.
type MemorySizer interface {
	Size() uint32
}

// Region is a Memory backed by a byte slice. Multi-byte loads and stores
// are little-endian, matching the external struct layouts.
type Region struct {
	data []byte
}

// NewRegion allocates a zeroed region of the given size.
func NewRegion(size int) *Region {
	return &Region{data: make([]byte, size)}
}

// RegionOf wraps an existing slice without copying. The region reads and
// writes the caller's bytes directly.
func RegionOf(data []byte) *Region {
	return &Region{data: data}
}

// Bytes returns the underlying slice.
func (r *Region) Bytes() []byte {
	return r.data
}

func (r *Region) Size() uint32 {
	return uint32(len(r.data))
}

func (r *Region) check(offset, length uint32) error {
	if uint64(offset)+uint64(length) > uint64(len(r.data)) {
		return errors.OutOfBounds(errors.PhaseBuffer, nil, int(offset)+int(length), len(r.data))
	}
	return nil
}

func (r *Region) Read(offset, length uint32) ([]byte, error) {
	if err := r.check(offset, length); err != nil {
		return nil, err
	}
	return r.data[offset : offset+length], nil
}

func (r *Region) Write(offset uint32, data []byte) error {
	if err := r.check(offset, uint32(len(data))); err != nil {
		return err
	}
	copy(r.data[offset:], data)
	return nil
}

func (r *Region) ReadU8(offset uint32) (uint8, error) {
	if err := r.check(offset, 1); err != nil {
		return 0, err
	}
	return r.data[offset], nil
}

func (r *Region) ReadU16(offset uint32) (uint16, error) {
	if err := r.check(offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.data[offset:]), nil
}

func (r *Region) ReadU32(offset uint32) (uint32, error) {
	if err := r.check(offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.data[offset:]), nil
}

func (r *Region) ReadU64(offset uint32) (uint64, error) {
	if err := r.check(offset, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(r.data[offset:]), nil
}

func (r *Region) WriteU8(offset uint32, value uint8) error {
	if err := r.check(offset, 1); err != nil {
		return err
	}
	r.data[offset] = value
	return nil
}

func (r *Region) WriteU16(offset uint32, value uint16) error {
	if err := r.check(offset, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(r.data[offset:], value)
	return nil
}

func (r *Region) WriteU32(offset uint32, value uint32) error {
	if err := r.check(offset, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(r.data[offset:], value)
	return nil
}

func (r *Region) WriteU64(offset uint32, value uint64) error {
	if err := r.check(offset, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(r.data[offset:], value)
	return nil
}
