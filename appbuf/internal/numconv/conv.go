package numconv

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Numeric is the closed set of internal fixed-width numeric kinds the
// engine converts between.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// SizeOf returns the byte width of the numeric kind.
func SizeOf[T Numeric]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}

// Bits returns the value's raw bit pattern in the low bytes of a uint64,
// together with the value's byte width. Integer bits are the two's
// complement representation, float bits the IEEE 754 one.
func Bits[T Numeric](v T) (bits uint64, size int) {
	switch x := any(v).(type) {
	case int8:
		return uint64(uint8(x)), 1
	case uint8:
		return uint64(x), 1
	case int16:
		return uint64(uint16(x)), 2
	case uint16:
		return uint64(x), 2
	case int32:
		return uint64(uint32(x)), 4
	case uint32:
		return uint64(x), 4
	case int64:
		return uint64(x), 8
	case uint64:
		return x, 8
	case float32:
		return uint64(math.Float32bits(x)), 4
	case float64:
		return math.Float64bits(x), 8
	}
	return 0, 0
}

// Format renders the value in its canonical text form: base-10 digits for
// integers, shortest round-trip form for floats.
func Format[T Numeric](v T) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case uint8, uint16, uint32, uint64:
		return strconv.FormatUint(uint64(v), 10)
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}

// Parse reads the value back from its text form. Unparseable input yields
// the zero value; the lenient policy mirrors the numeric narrowing rules.
func Parse[T Numeric](s string) T {
	s = strings.TrimSpace(s)
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return zero
		}
		return T(f)
	case uint8, uint16, uint32, uint64:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return zero
		}
		return T(u)
	default:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero
		}
		return T(i)
	}
}

// DigitLength counts the base-10 digits of the magnitude; zero has one.
func DigitLength(v uint64) uint8 {
	n := uint8(1)
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}
