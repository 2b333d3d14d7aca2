package param

import (
	"sort"

	"go.uber.org/zap"

	"github.com/cleodb/godbc"
	"github.com/cleodb/godbc/errors"
)

// Per-row execution status codes, written to the caller's status array.
const (
	StatusSuccess         uint16 = 0
	StatusSuccessWithInfo uint16 = 6
	StatusError           uint16 = 5
	StatusUnused          uint16 = 7
)

// Set holds the parameters bound to one statement, indexed from one,
// plus the array-execution plumbing: the row count, the bind offset and
// the caller's processed-count and status slots.
type Set struct {
	params map[uint16]*Parameter

	paramSetSize int64
	bindOffset   int64

	processed godbc.Memory // one uint64 slot
	statuses  godbc.Memory // uint16 per row

	selected uint16 // current data-at-exec parameter, 0 = none
}

// NewSet returns an empty parameter set for a single-row execution.
func NewSet() *Set {
	return &Set{
		params:       make(map[uint16]*Parameter),
		paramSetSize: 1,
	}
}

// BindParameter binds p at the one-based index idx, replacing any
// previous binding there.
func (s *Set) BindParameter(idx uint16, p *Parameter) error {
	if idx == 0 {
		return errors.New(errors.PhaseBind, errors.KindInvalidInput).
			Path("parameter").Detail("parameter index is one-based").Build()
	}
	if p == nil {
		return errors.NilPointer(errors.PhaseBind, []string{"parameter"}, "parameter")
	}
	s.params[idx] = p
	Logger().Debug("parameter bound", zap.Uint16("index", idx))
	return nil
}

// UnbindParameter removes the binding at idx, if any.
func (s *Set) UnbindParameter(idx uint16) {
	delete(s.params, idx)
}

// UnbindAll removes every binding.
func (s *Set) UnbindAll() {
	s.params = make(map[uint16]*Parameter)
}

// Parameter returns the binding at the one-based idx.
func (s *Set) Parameter(idx uint16) (*Parameter, bool) {
	p, ok := s.params[idx]
	return p, ok
}

// Len returns the number of bound parameters.
func (s *Set) Len() int {
	return len(s.params)
}

// indices returns the bound indices in ascending order.
func (s *Set) indices() []uint16 {
	out := make([]uint16, 0, len(s.params))
	for idx := range s.params {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetParamSetSize declares how many rows each execution carries.
func (s *Set) SetParamSetSize(n int64) {
	if n < 1 {
		n = 1
	}
	s.paramSetSize = n
}

// ParamSetSize returns the declared row count.
func (s *Set) ParamSetSize() int64 {
	return s.paramSetSize
}

// SetBindOffset sets the displacement applied to every bound buffer.
func (s *Set) SetBindOffset(off int64) {
	s.bindOffset = off
}

// SetProcessedSlot binds the caller slot that receives the processed
// row count.
func (s *Set) SetProcessedSlot(mem godbc.Memory) {
	s.processed = mem
}

// SetStatusSlot binds the caller array that receives per-row statuses.
func (s *Set) SetStatusSlot(mem godbc.Memory) {
	s.statuses = mem
}

// SetRow points every bound buffer at the given zero-based row.
func (s *Set) SetRow(row int64) {
	for _, p := range s.params {
		p.Buffer().SetByteOffset(s.bindOffset)
		p.Buffer().SetElementOffset(row)
	}
}

// Prepare readies the set for a fresh execution: the data-at-exec cursor
// rewinds, staged data is dropped and the processed count zeroes.
func (s *Set) Prepare() error {
	s.selected = 0
	for _, p := range s.params {
		p.ResetStoredData()
	}
	return s.SetProcessed(0)
}

// IsDataAtExecNeeded reports whether any parameter still waits for
// execution-time data.
func (s *Set) IsDataAtExecNeeded() bool {
	for _, p := range s.params {
		if p.Buffer().IsDataAtExec() && !p.IsDataReady() {
			return true
		}
	}
	return false
}

// SelectNextParameter advances the data-at-exec cursor to the next
// parameter still waiting for data and returns its index.
func (s *Set) SelectNextParameter() (uint16, *Parameter, bool) {
	for _, idx := range s.indices() {
		if idx <= s.selected {
			continue
		}
		p := s.params[idx]
		if p.Buffer().IsDataAtExec() && !p.IsDataReady() {
			s.selected = idx
			Logger().Debug("parameter selected for data", zap.Uint16("index", idx))
			return idx, p, true
		}
	}
	s.selected = 0
	return 0, nil, false
}

// SelectedParameter returns the parameter currently receiving data.
func (s *Set) SelectedParameter() (*Parameter, bool) {
	if s.selected == 0 {
		return nil, false
	}
	p, ok := s.params[s.selected]
	return p, ok
}

// CalculateRowLen sums the element sizes of all bound buffers: the
// stride of one row under whole-block binding.
func (s *Set) CalculateRowLen() int64 {
	var total int64
	for _, p := range s.params {
		total += p.Buffer().ElementSize()
	}
	return total
}

// SetProcessed writes the processed row count to the caller's slot, if
// bound.
func (s *Set) SetProcessed(n uint64) error {
	if s.processed == nil {
		return nil
	}
	return s.processed.WriteU64(0, n)
}

// SetStatus writes one row's execution status to the caller's array, if
// bound.
func (s *Set) SetStatus(row int64, status uint16) error {
	if s.statuses == nil {
		return nil
	}
	return s.statuses.WriteU16(uint32(row*2), status)
}
