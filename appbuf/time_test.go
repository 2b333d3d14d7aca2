package appbuf

import (
	"testing"
	"time"

	"github.com/cleodb/godbc"
)

func TestPutDate(t *testing.T) {
	d := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("struct", func(t *testing.T) {
		b := bind(t, TypeDate, 0)
		res, err := b.buf.PutDate(d)
		if err != nil || res != ConvSuccess {
			t.Fatalf("PutDate = (%v, %v)", res, err)
		}
		if got := b.indicator(); got != godbc.DateStructSize {
			t.Errorf("indicator = %d, want %d", got, godbc.DateStructSize)
		}
		got, err := b.buf.GetDate()
		if err != nil || !got.Equal(d) {
			t.Errorf("GetDate = (%v, %v), want %v", got, err, d)
		}
	})

	t.Run("text", func(t *testing.T) {
		b := bind(t, TypeChar, 16)
		res, err := b.buf.PutDate(d)
		if err != nil || res != ConvSuccess {
			t.Fatalf("PutDate = (%v, %v)", res, err)
		}
		if got := string(b.data.Bytes()[:11]); got != "2024-03-15\x00" {
			t.Errorf("text = %q", got)
		}
		if got := b.indicator(); got != 10 {
			t.Errorf("indicator = %d, want 10", got)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		b := bind(t, TypeSignedLong, 0)
		res, err := b.buf.PutDate(d)
		if err != nil {
			t.Fatalf("PutDate: %v", err)
		}
		if res != ConvUnsupportedConversion {
			t.Errorf("res = %v, want %v", res, ConvUnsupportedConversion)
		}
	})
}

func TestPutTime(t *testing.T) {
	v := time.Date(2024, time.March, 15, 13, 45, 59, 0, time.UTC)

	t.Run("struct", func(t *testing.T) {
		b := bind(t, TypeTime, 0)
		res, err := b.buf.PutTime(v)
		if err != nil || res != ConvSuccess {
			t.Fatalf("PutTime = (%v, %v)", res, err)
		}
		got, err := b.buf.GetTime()
		if err != nil {
			t.Fatalf("GetTime: %v", err)
		}
		want := time.Date(1970, time.January, 1, 13, 45, 59, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("GetTime = %v, want %v", got, want)
		}
	})

	t.Run("text", func(t *testing.T) {
		b := bind(t, TypeChar, 16)
		if res, err := b.buf.PutTime(v); err != nil || res != ConvSuccess {
			t.Fatalf("PutTime = (%v, %v)", res, err)
		}
		if got := string(b.data.Bytes()[:9]); got != "13:45:59\x00" {
			t.Errorf("text = %q", got)
		}
	})

	t.Run("timestamp gets epoch date", func(t *testing.T) {
		b := bind(t, TypeTimestamp, 0)
		if res, err := b.buf.PutTime(v); err != nil || res != ConvSuccess {
			t.Fatalf("PutTime = (%v, %v)", res, err)
		}
		got, err := b.buf.GetTimestamp()
		if err != nil {
			t.Fatalf("GetTimestamp: %v", err)
		}
		want := time.Date(1970, time.January, 1, 13, 45, 59, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("GetTimestamp = %v, want %v", got, want)
		}
	})

	t.Run("date target is unsupported", func(t *testing.T) {
		b := bind(t, TypeDate, 0)
		res, err := b.buf.PutTime(v)
		if err != nil {
			t.Fatalf("PutTime: %v", err)
		}
		if res != ConvUnsupportedConversion {
			t.Errorf("res = %v, want %v", res, ConvUnsupportedConversion)
		}
	})
}

func TestPutTimestamp(t *testing.T) {
	v := time.Date(2024, time.March, 15, 13, 45, 59, 123456789, time.UTC)

	t.Run("struct keeps nanoseconds", func(t *testing.T) {
		b := bind(t, TypeTimestamp, 0)
		res, err := b.buf.PutTimestamp(v)
		if err != nil || res != ConvSuccess {
			t.Fatalf("PutTimestamp = (%v, %v)", res, err)
		}
		if got := b.indicator(); got != godbc.TimestampStructSize {
			t.Errorf("indicator = %d, want %d", got, godbc.TimestampStructSize)
		}
		got, err := b.buf.GetTimestamp()
		if err != nil || !got.Equal(v) {
			t.Errorf("GetTimestamp = (%v, %v), want %v", got, err, v)
		}
	})

	t.Run("date target drops the clock", func(t *testing.T) {
		b := bind(t, TypeDate, 0)
		res, err := b.buf.PutTimestamp(v)
		if err != nil {
			t.Fatalf("PutTimestamp: %v", err)
		}
		if res != ConvFractionalTruncated {
			t.Errorf("res = %v, want %v", res, ConvFractionalTruncated)
		}
		got, err := b.buf.GetDate()
		want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
		if err != nil || !got.Equal(want) {
			t.Errorf("GetDate = (%v, %v), want %v", got, err, want)
		}
	})

	t.Run("time target drops the date", func(t *testing.T) {
		b := bind(t, TypeTime, 0)
		res, err := b.buf.PutTimestamp(v)
		if err != nil {
			t.Fatalf("PutTimestamp: %v", err)
		}
		if res != ConvFractionalTruncated {
			t.Errorf("res = %v, want %v", res, ConvFractionalTruncated)
		}
	})

	t.Run("text", func(t *testing.T) {
		b := bind(t, TypeChar, 32)
		if res, err := b.buf.PutTimestamp(v); err != nil || res != ConvSuccess {
			t.Fatalf("PutTimestamp = (%v, %v)", res, err)
		}
		if got := string(b.data.Bytes()[:19]); got != "2024-03-15 13:45:59" {
			t.Errorf("text = %q", got)
		}
		if got := b.indicator(); got != 19 {
			t.Errorf("indicator = %d, want 19", got)
		}
	})
}

func TestGetTemporalFromText(t *testing.T) {
	t.Run("date", func(t *testing.T) {
		b := bind(t, TypeChar, 32)
		if _, err := b.buf.PutString("2023-11-05"); err != nil {
			t.Fatalf("PutString: %v", err)
		}
		got, err := b.buf.GetDate()
		want := time.Date(2023, time.November, 5, 0, 0, 0, 0, time.UTC)
		if err != nil || !got.Equal(want) {
			t.Errorf("GetDate = (%v, %v), want %v", got, err, want)
		}
	})

	t.Run("timestamp", func(t *testing.T) {
		b := bind(t, TypeChar, 32)
		if _, err := b.buf.PutString("2023-11-05 08:30:00"); err != nil {
			t.Fatalf("PutString: %v", err)
		}
		got, err := b.buf.GetTimestamp()
		want := time.Date(2023, time.November, 5, 8, 30, 0, 0, time.UTC)
		if err != nil || !got.Equal(want) {
			t.Errorf("GetTimestamp = (%v, %v), want %v", got, err, want)
		}
	})

	t.Run("time", func(t *testing.T) {
		b := bind(t, TypeChar, 32)
		if _, err := b.buf.PutString("08:30:15"); err != nil {
			t.Fatalf("PutString: %v", err)
		}
		got, err := b.buf.GetTime()
		want := time.Date(1970, time.January, 1, 8, 30, 15, 0, time.UTC)
		if err != nil || !got.Equal(want) {
			t.Errorf("GetTime = (%v, %v), want %v", got, err, want)
		}
	})

	t.Run("garbage yields zero", func(t *testing.T) {
		b := bind(t, TypeChar, 32)
		if _, err := b.buf.PutString("not a date"); err != nil {
			t.Fatalf("PutString: %v", err)
		}
		got, err := b.buf.GetDate()
		if err != nil || !got.IsZero() {
			t.Errorf("GetDate = (%v, %v), want zero", got, err)
		}
	})
}
