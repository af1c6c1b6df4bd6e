package core

import (
	"math"
	"strconv"
	"time"
)

const (
	// TimestampLayout is the second-resolution part of every timestamp.
	TimestampLayout = "2006-01-02 15:04:05"
	// TimestampWidth is the fixed byte length of a formatted timestamp.
	TimestampWidth = len(TimestampLayout) + 1 + fractionWidth

	fractionWidth  = 10
	fractionDigits = 4
)

// AppendTimestamp appends the timestamp of t in local time to dst. The
// fractional field is the sub-second part rounded to four digits and padded
// with zeros to ten digits, so every timestamp is TimestampWidth bytes wide.
// A fraction that rounds up to a whole second renders as all zeros; the
// seconds field is not carried.
func AppendTimestamp(dst []byte, t time.Time) []byte {
	t = t.Local()
	dst = t.AppendFormat(dst, TimestampLayout)
	dst = append(dst, '.')

	frac := int64(math.Round(float64(t.Nanosecond()) / 1e5))
	if frac >= 10000 {
		frac = 0
	}

	var digits [fractionDigits]byte
	s := strconv.AppendInt(digits[:0], frac, 10)
	for i := len(s); i < fractionDigits; i++ {
		dst = append(dst, '0')
	}
	dst = append(dst, s...)
	for i := fractionDigits; i < fractionWidth; i++ {
		dst = append(dst, '0')
	}
	return dst
}

// Timestamp returns the formatted timestamp of t.
func Timestamp(t time.Time) string {
	return string(AppendTimestamp(make([]byte, 0, TimestampWidth), t))
}
