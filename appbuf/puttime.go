package appbuf

import (
	"time"

	"go.uber.org/zap"

	"github.com/cleodb/godbc"
	"github.com/cleodb/godbc/appbuf/internal/sqltype"
)

const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	timestampLayout = "2006-01-02 15:04:05"
)

// PutDate stores a calendar date. A time-of-day target receives the
// value's clock fields, midnight for a pure date.
func (b *DataBuffer) PutDate(v time.Time) (ConvRes, error) {
	Logger().Debug("put date", zap.Time("value", v), zap.Stringer("type", b.typ))
	switch b.typ {
	case sqltype.Char, sqltype.Wchar:
		_, res, err := b.putText(v.Format(dateLayout))
		return res, err
	case sqltype.Date:
		ds := godbc.DateStruct{
			Year:  int16(v.Year()),
			Month: uint16(v.Month()),
			Day:   uint16(v.Day()),
		}
		data, _ := ds.MarshalBinary()
		return ConvSuccess, b.writeStruct(data)
	case sqltype.Time:
		ts := godbc.TimeStruct{
			Hour:   uint16(v.Hour()),
			Minute: uint16(v.Minute()),
			Second: uint16(v.Second()),
		}
		data, _ := ts.MarshalBinary()
		return ConvSuccess, b.writeStruct(data)
	case sqltype.Timestamp:
		ts := godbc.TimestampStruct{
			Year:   int16(v.Year()),
			Month:  uint16(v.Month()),
			Day:    uint16(v.Day()),
			Hour:   uint16(v.Hour()),
			Minute: uint16(v.Minute()),
			Second: uint16(v.Second()),
		}
		data, _ := ts.MarshalBinary()
		return ConvSuccess, b.writeStruct(data)
	default:
		return ConvUnsupportedConversion, nil
	}
}

// PutTime stores a time of day. A timestamp target anchors it to the
// epoch date. A date target cannot express it at all.
func (b *DataBuffer) PutTime(v time.Time) (ConvRes, error) {
	Logger().Debug("put time", zap.Time("value", v), zap.Stringer("type", b.typ))
	switch b.typ {
	case sqltype.Char, sqltype.Wchar:
		_, res, err := b.putText(v.Format(timeLayout))
		return res, err
	case sqltype.Time:
		ts := godbc.TimeStruct{
			Hour:   uint16(v.Hour()),
			Minute: uint16(v.Minute()),
			Second: uint16(v.Second()),
		}
		data, _ := ts.MarshalBinary()
		return ConvSuccess, b.writeStruct(data)
	case sqltype.Timestamp:
		ts := godbc.TimestampStruct{
			Year:   1970,
			Month:  1,
			Day:    1,
			Hour:   uint16(v.Hour()),
			Minute: uint16(v.Minute()),
			Second: uint16(v.Second()),
		}
		data, _ := ts.MarshalBinary()
		return ConvSuccess, b.writeStruct(data)
	default:
		return ConvUnsupportedConversion, nil
	}
}

// PutTimestamp stores a point in time. Date and time-of-day targets each
// keep their half of the value and report the loss of the other half.
func (b *DataBuffer) PutTimestamp(v time.Time) (ConvRes, error) {
	Logger().Debug("put timestamp", zap.Time("value", v), zap.Stringer("type", b.typ))
	switch b.typ {
	case sqltype.Char, sqltype.Wchar:
		_, res, err := b.putText(v.Format(timestampLayout))
		return res, err
	case sqltype.Date:
		ds := godbc.DateStruct{
			Year:  int16(v.Year()),
			Month: uint16(v.Month()),
			Day:   uint16(v.Day()),
		}
		data, _ := ds.MarshalBinary()
		if err := b.writeStruct(data); err != nil {
			return ConvSuccess, err
		}
		return ConvFractionalTruncated, nil
	case sqltype.Time:
		ts := godbc.TimeStruct{
			Hour:   uint16(v.Hour()),
			Minute: uint16(v.Minute()),
			Second: uint16(v.Second()),
		}
		data, _ := ts.MarshalBinary()
		if err := b.writeStruct(data); err != nil {
			return ConvSuccess, err
		}
		return ConvFractionalTruncated, nil
	case sqltype.Timestamp:
		ts := godbc.TimestampStruct{
			Year:     int16(v.Year()),
			Month:    uint16(v.Month()),
			Day:      uint16(v.Day()),
			Hour:     uint16(v.Hour()),
			Minute:   uint16(v.Minute()),
			Second:   uint16(v.Second()),
			Fraction: uint32(v.Nanosecond()),
		}
		data, _ := ts.MarshalBinary()
		return ConvSuccess, b.writeStruct(data)
	default:
		return ConvUnsupportedConversion, nil
	}
}
