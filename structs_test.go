package godbc

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

func TestEncodeGUIDBitCarving(t *testing.T) {
	g := EncodeGUID(0x0011223344556677, 0x8899AABBCCDDEEFF)

	if g.Data1 != 0x00112233 {
		t.Errorf("Data1 = %08x, want 00112233", g.Data1)
	}
	if g.Data2 != 0x4455 {
		t.Errorf("Data2 = %04x, want 4455", g.Data2)
	}
	if g.Data3 != 0x6677 {
		t.Errorf("Data3 = %04x, want 6677", g.Data3)
	}
	want := [8]byte{0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	if g.Data4 != want {
		t.Errorf("Data4 = %x, want %x", g.Data4, want)
	}
}

func TestGUIDBitsRoundTrip(t *testing.T) {
	const msb, lsb uint64 = 0xDEADBEEF01234567, 0x89ABCDEF55AA55AA
	g := EncodeGUID(msb, lsb)
	gotMSB, gotLSB := g.Bits()
	if gotMSB != msb || gotLSB != lsb {
		t.Errorf("Bits() = (%016x, %016x), want (%016x, %016x)", gotMSB, gotLSB, msb, lsb)
	}
}

func TestGUIDUUIDRoundTrip(t *testing.T) {
	u := uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")
	g := GUIDFromUUID(u)
	if got := g.UUID(); got != u {
		t.Errorf("round trip = %v, want %v", got, u)
	}
}

func TestGUIDStructLayout(t *testing.T) {
	g := EncodeGUID(0x0011223344556677, 0x8899AABBCCDDEEFF)
	data, err := g.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	// Data1..Data3 little-endian, Data4 as-is.
	want := []byte{
		0x33, 0x22, 0x11, 0x00,
		0x55, 0x44,
		0x77, 0x66,
		0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
	}
	if !bytes.Equal(data, want) {
		t.Errorf("layout = %x, want %x", data, want)
	}

	var back GUIDStruct
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if back != g {
		t.Errorf("round trip = %+v, want %+v", back, g)
	}
}

func TestNumericStructLayout(t *testing.T) {
	ns := NumericStruct{Precision: 3, Scale: -2, Sign: 0}
	ns.Val[0] = 0x41
	ns.Val[1] = 0x01

	data, err := ns.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != NumericStructSize {
		t.Fatalf("len = %d, want %d", len(data), NumericStructSize)
	}
	if data[0] != 3 || int8(data[1]) != -2 || data[2] != 0 {
		t.Errorf("header = %v", data[:3])
	}

	var back NumericStruct
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if back != ns {
		t.Errorf("round trip = %+v, want %+v", back, ns)
	}
}

func TestTimestampStructLayout(t *testing.T) {
	ts := TimestampStruct{
		Year: 2024, Month: 3, Day: 15,
		Hour: 13, Minute: 45, Second: 59,
		Fraction: 123456789,
	}
	data, err := ts.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != TimestampStructSize {
		t.Fatalf("len = %d, want %d", len(data), TimestampStructSize)
	}

	var back TimestampStruct
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if back != ts {
		t.Errorf("round trip = %+v, want %+v", back, ts)
	}
}
