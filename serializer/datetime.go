package serializer

import (
	"fmt"
	"strings"

	"github.com/gojxc/jxc/decode"
)

// DateTime emits a dt"..." literal for v, the mirror image of
// decode.ParseDate/decode.ParseDateTime: a date-only value (zero time of
// day, decode.TZUTC) is written without a time-of-day component at all, and
// every other combination of timezone kind round-trips through the same
// sign/width rules the decoder accepts.
func (s *Serializer) DateTime(v decode.DateTime) *Serializer {
	s.preValue(false)
	s.writeRaw(`dt"`)
	s.writeRaw(formatDate(v.Date))
	if !isDateOnly(v) {
		s.writeByte('T')
		fmt.Fprintf(&dateTimeBuf{s}, "%02d:%02d", v.Hour, v.Minute)
		if v.Second != 0 || v.Nanosecond != 0 {
			fmt.Fprintf(&dateTimeBuf{s}, ":%02d", v.Second)
		}
		if v.Nanosecond != 0 {
			frac := fmt.Sprintf("%09d", v.Nanosecond)
			frac = strings.TrimRight(frac, "0")
			s.writeByte('.')
			s.writeRaw(frac)
		}
		switch v.TZ {
		case decode.TZUTC:
			s.writeByte('Z')
		case decode.TZOffset:
			sign := byte('+')
			h, m := v.TZHour, v.TZMinute
			if h < 0 || m < 0 {
				sign = '-'
				h, m = -h, -m
			}
			s.writeByte(sign)
			fmt.Fprintf(&dateTimeBuf{s}, "%02d:%02d", h, m)
		case decode.TZLocal:
			// no designator
		}
	}
	s.writeByte('"')
	s.afterValue()
	return s
}

func isDateOnly(v decode.DateTime) bool {
	return v.Hour == 0 && v.Minute == 0 && v.Second == 0 && v.Nanosecond == 0 && v.TZ == decode.TZUTC
}

func formatDate(d decode.Date) string {
	year := d.Year
	sign := ""
	if year < 0 {
		sign = "-"
		year = -year
	}
	width := 4
	if year >= 100000 {
		width = 6
	}
	return fmt.Sprintf("%s%0*d-%02d-%02d", sign, width, year, d.Month, d.Day)
}

// dateTimeBuf adapts Serializer's buffered writer to io.Writer so the
// fmt.Fprintf calls above can feed it directly; each Write copies its bytes
// into a string before buffering them.
type dateTimeBuf struct{ s *Serializer }

func (b *dateTimeBuf) Write(p []byte) (int, error) {
	b.s.writeRaw(string(p))
	return len(p), nil
}
