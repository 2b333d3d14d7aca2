package layout

import (
	"testing"

	"github.com/cleodb/godbc/appbuf/internal/sqltype"
)

func TestFixedSize(t *testing.T) {
	tests := []struct {
		typ  sqltype.Type
		want int64
	}{
		{sqltype.SignedTinyint, 1},
		{sqltype.Bit, 1},
		{sqltype.UnsignedTinyint, 1},
		{sqltype.SignedShort, 2},
		{sqltype.UnsignedShort, 2},
		{sqltype.SignedLong, 4},
		{sqltype.UnsignedLong, 4},
		{sqltype.SignedBigint, 8},
		{sqltype.UnsignedBigint, 8},
		{sqltype.Float, 4},
		{sqltype.Double, 8},
		{sqltype.Date, 6},
		{sqltype.Time, 6},
		{sqltype.Timestamp, 16},
		{sqltype.Numeric, 19},
		{sqltype.GUID, 16},
		{sqltype.Char, 0},
		{sqltype.Wchar, 0},
		{sqltype.Binary, 0},
		{sqltype.Default, 0},
		{sqltype.Unsupported, 0},
	}

	for _, tc := range tests {
		t.Run(tc.typ.String(), func(t *testing.T) {
			if got := FixedSize(tc.typ); got != tc.want {
				t.Errorf("FixedSize(%s) = %d, want %d", tc.typ, got, tc.want)
			}
		})
	}
}

func TestElementSize_LongData(t *testing.T) {
	for _, typ := range []sqltype.Type{sqltype.Char, sqltype.Wchar, sqltype.Binary} {
		if got := ElementSize(typ, 42); got != 42 {
			t.Errorf("ElementSize(%s, 42) = %d, want declared capacity", typ, got)
		}
	}
}

func TestElementSize_FixedIgnoresDeclared(t *testing.T) {
	if got := ElementSize(sqltype.SignedLong, 42); got != 4 {
		t.Errorf("ElementSize(signed-long, 42) = %d, want 4", got)
	}
	if got := ElementSize(sqltype.Default, 42); got != 0 {
		t.Errorf("ElementSize(default, 42) = %d, want 0", got)
	}
}
