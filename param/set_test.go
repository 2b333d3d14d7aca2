package param

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleodb/godbc"
	"github.com/cleodb/godbc/appbuf"
)

// deferredParam binds a char parameter whose indicator declares total
// bytes of execution-time data.
func deferredParam(t *testing.T, total int64) *Parameter {
	t.Helper()
	ind := godbc.NewRegion(8)
	binary.LittleEndian.PutUint64(ind.Bytes(), uint64(-total+godbc.DataAtExecOffset))
	buf := appbuf.New(appbuf.TypeChar, godbc.NewRegion(16), 16, ind)
	return New(buf, 1, 0, 0)
}

// inlineParam binds an int64 parameter with inline data.
func inlineParam(t *testing.T) *Parameter {
	t.Helper()
	ind := godbc.NewRegion(8)
	binary.LittleEndian.PutUint64(ind.Bytes(), 8)
	buf := appbuf.New(appbuf.TypeSignedBigint, godbc.NewRegion(8), 0, ind)
	return New(buf, 2, 0, 0)
}

func TestBindParameter(t *testing.T) {
	s := NewSet()

	require.Error(t, s.BindParameter(0, inlineParam(t)), "index zero must fail")
	require.Error(t, s.BindParameter(1, nil), "nil parameter must fail")

	require.NoError(t, s.BindParameter(1, inlineParam(t)))
	require.NoError(t, s.BindParameter(3, inlineParam(t)))
	assert.Equal(t, 2, s.Len())

	_, ok := s.Parameter(1)
	assert.True(t, ok)
	_, ok = s.Parameter(2)
	assert.False(t, ok)

	s.UnbindParameter(1)
	assert.Equal(t, 1, s.Len())
	s.UnbindAll()
	assert.Equal(t, 0, s.Len())
}

func TestDataAtExecCycle(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.BindParameter(1, inlineParam(t)))
	require.NoError(t, s.BindParameter(2, deferredParam(t, 5)))
	require.NoError(t, s.BindParameter(3, deferredParam(t, 4)))

	require.NoError(t, s.Prepare())
	assert.True(t, s.IsDataAtExecNeeded())

	idx, p, ok := s.SelectNextParameter()
	require.True(t, ok)
	assert.Equal(t, uint16(2), idx)

	p.PutData([]byte("he"))
	assert.False(t, p.IsDataReady())
	p.PutData([]byte("llo"))
	assert.True(t, p.IsDataReady())
	assert.Equal(t, []byte("hello"), p.StoredData())

	idx, p, ok = s.SelectNextParameter()
	require.True(t, ok)
	assert.Equal(t, uint16(3), idx)

	sel, ok := s.SelectedParameter()
	require.True(t, ok)
	assert.Same(t, p, sel)

	p.PutData(nil) // null marker completes the transfer
	assert.True(t, p.IsDataReady())
	assert.True(t, p.IsNullStored())

	assert.False(t, s.IsDataAtExecNeeded())
	_, _, ok = s.SelectNextParameter()
	assert.False(t, ok)
	_, ok = s.SelectedParameter()
	assert.False(t, ok)
}

func TestPrepareResetsStoredData(t *testing.T) {
	s := NewSet()
	p := deferredParam(t, 3)
	require.NoError(t, s.BindParameter(1, p))

	p.PutData([]byte("abc"))
	require.True(t, p.IsDataReady())

	require.NoError(t, s.Prepare())
	assert.False(t, p.IsDataReady())
	assert.Empty(t, p.StoredData())
	assert.True(t, s.IsDataAtExecNeeded())
}

func TestParamSetSize(t *testing.T) {
	s := NewSet()
	assert.Equal(t, int64(1), s.ParamSetSize())
	s.SetParamSetSize(16)
	assert.Equal(t, int64(16), s.ParamSetSize())
	s.SetParamSetSize(0)
	assert.Equal(t, int64(1), s.ParamSetSize(), "row count is clamped to one")
}

func TestCalculateRowLen(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.BindParameter(1, inlineParam(t))) // bigint: 8
	require.NoError(t, s.BindParameter(2, New(appbuf.New(appbuf.TypeChar, nil, 37, nil), 1, 0, 0)))

	assert.Equal(t, int64(45), s.CalculateRowLen())
}

func TestSetRowAddressing(t *testing.T) {
	// Two int32 rows in one region.
	data := godbc.NewRegion(8)
	ind := godbc.NewRegion(16)
	buf := appbuf.New(appbuf.TypeSignedLong, data, 0, ind)
	p := New(buf, 1, 0, 0)

	s := NewSet()
	require.NoError(t, s.BindParameter(1, p))
	s.SetParamSetSize(2)

	s.SetRow(1)
	_, err := buf.PutInt32(7)
	require.NoError(t, err)

	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(data.Bytes()[:4]),
		"row 0 untouched")
	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(data.Bytes()[4:]))
}

func TestProcessedAndStatusSlots(t *testing.T) {
	s := NewSet()
	processed := godbc.NewRegion(8)
	statuses := godbc.NewRegion(8)
	s.SetProcessedSlot(processed)
	s.SetStatusSlot(statuses)

	require.NoError(t, s.SetProcessed(3))
	assert.Equal(t, uint64(3), binary.LittleEndian.Uint64(processed.Bytes()))

	require.NoError(t, s.SetStatus(0, StatusSuccess))
	require.NoError(t, s.SetStatus(1, StatusSuccessWithInfo))
	require.NoError(t, s.SetStatus(2, StatusError))
	require.NoError(t, s.SetStatus(3, StatusUnused))

	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(statuses.Bytes()[0:]))
	assert.Equal(t, uint16(6), binary.LittleEndian.Uint16(statuses.Bytes()[2:]))
	assert.Equal(t, uint16(5), binary.LittleEndian.Uint16(statuses.Bytes()[4:]))
	assert.Equal(t, uint16(7), binary.LittleEndian.Uint16(statuses.Bytes()[6:]))

	// Unbound slots are a no-op, not an error.
	bare := NewSet()
	require.NoError(t, bare.SetProcessed(1))
	require.NoError(t, bare.SetStatus(0, StatusSuccess))
}
