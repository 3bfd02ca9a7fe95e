package decode

import (
	"strconv"
	"strings"

	"github.com/gojxc/jxc/diag"
	"github.com/gojxc/jxc/token"
)

// TimezoneKind distinguishes how a DateTime's timezone was spelled.
type TimezoneKind uint8

const (
	// TZLocal means the body had a time part but no timezone designator.
	TZLocal TimezoneKind = iota
	// TZUTC means either an explicit 'Z' or a date-only value, which is
	// defined to carry a zero UTC offset.
	TZUTC
	// TZOffset means an explicit +HH:MM / -HH:MM designator.
	TZOffset
)

// Date is a calendar date with no time-of-day component.
type Date struct {
	Year  int32
	Month int8
	Day   int8
}

// DateTime is a calendar date plus a time of day and a timezone
// designator, mirroring the wire precision of a dt"..." literal (up to
// nanosecond resolution).
type DateTime struct {
	Date       Date
	Hour       int8
	Minute     int8
	Second     int8
	Nanosecond int32
	TZ         TimezoneKind
	TZHour     int8
	TZMinute   int8
}

func datetimeBody(tok token.Token) string {
	return tok.Value[3 : len(tok.Value)-1] // strip dt" and trailing quote
}

// IsDateOnly reports whether tok's body has no time-of-day component.
func IsDateOnly(tok token.Token) bool {
	return !strings.ContainsRune(datetimeBody(tok), 'T')
}

// ParseDate decodes a date-only (or date-and-time, discarding the time)
// body. Most callers should check IsDateOnly first and call ParseDateTime
// otherwise.
func ParseDate(tok token.Token) (Date, *diag.Diagnostic) {
	dt, d := ParseDateTime(tok)
	if d != nil {
		return Date{}, d
	}
	return dt.Date, nil
}

// ParseDateTime is a strict recursive-descent decode of a dt"..." body,
// following the grammar: optional sign, 4-6 digit year, '-', 2 digit month,
// '-', 2 digit day, then optionally 'T' and a time-of-day with optional
// seconds, optional fractional seconds, and a timezone designator.
func ParseDateTime(tok token.Token) (DateTime, *diag.Diagnostic) {
	body := datetimeBody(tok)
	base := tok.Start + 3
	n := len(body)
	i := 0

	errAt := func(off int, format string, args ...any) *diag.Diagnostic {
		return diag.New(diag.EncodingError, base+off, base+off+1, format, args...)
	}
	readDigits := func(min, max int) (string, bool) {
		j := i
		for j < n && j-i < max && isDecDigit(body[j]) {
			j++
		}
		if j-i < min {
			return "", false
		}
		return body[i:j], true
	}

	sign := int32(1)
	if i < n && (body[i] == '+' || body[i] == '-') {
		if body[i] == '-' {
			sign = -1
		}
		i++
	}
	yearStr, ok := readDigits(4, 6)
	if !ok {
		return DateTime{}, errAt(i, "expected a 4-6 digit year")
	}
	i += len(yearStr)
	yearVal, _ := strconv.Atoi(yearStr)
	year := int32(yearVal) * sign

	if i >= n || body[i] != '-' {
		return DateTime{}, errAt(i, "expected '-' after year")
	}
	i++
	monthStr, ok := readDigits(2, 2)
	if !ok {
		return DateTime{}, errAt(i, "expected a 2 digit month")
	}
	i += 2
	month, _ := strconv.Atoi(monthStr)

	if i >= n || body[i] != '-' {
		return DateTime{}, errAt(i, "expected '-' after month")
	}
	i++
	dayStr, ok := readDigits(2, 2)
	if !ok {
		return DateTime{}, errAt(i, "expected a 2 digit day")
	}
	i += 2
	day, _ := strconv.Atoi(dayStr)

	date := Date{Year: year, Month: int8(month), Day: int8(day)}

	if i >= n {
		return DateTime{Date: date, TZ: TZUTC}, nil
	}

	if body[i] != 'T' {
		return DateTime{}, errAt(i, "expected 'T' to start a time of day")
	}
	i++

	hourStr, ok := readDigits(2, 2)
	if !ok {
		return DateTime{}, errAt(i, "expected a 2 digit hour")
	}
	i += 2
	hour, _ := strconv.Atoi(hourStr)

	if i >= n || body[i] != ':' {
		return DateTime{}, errAt(i, "expected ':' after hour")
	}
	i++
	minStr, ok := readDigits(2, 2)
	if !ok {
		return DateTime{}, errAt(i, "expected a 2 digit minute")
	}
	i += 2
	minute, _ := strconv.Atoi(minStr)

	second := 0
	if i < n && body[i] == ':' {
		i++
		secStr, ok := readDigits(2, 2)
		if !ok {
			return DateTime{}, errAt(i, "expected a 2 digit second")
		}
		i += 2
		second, _ = strconv.Atoi(secStr)
	}

	var nanos int32
	if i < n && body[i] == '.' {
		i++
		fracStr, ok := readDigits(1, 12)
		if !ok {
			return DateTime{}, errAt(i, "expected 1-12 digit fractional seconds")
		}
		i += len(fracStr)
		nanos = fracToNanos(fracStr)
	}

	dt := DateTime{Date: date, Hour: int8(hour), Minute: int8(minute), Second: int8(second), Nanosecond: nanos}

	if i >= n {
		dt.TZ = TZLocal
		return dt, nil
	}

	switch body[i] {
	case 'Z':
		i++
		if i != n {
			return DateTime{}, errAt(i, "unexpected trailing bytes after 'Z'")
		}
		dt.TZ = TZUTC
		return dt, nil
	case '+', '-':
		tzSign := int8(1)
		if body[i] == '-' {
			tzSign = -1
		}
		i++
		tzhStr, ok := readDigits(2, 2)
		if !ok {
			return DateTime{}, errAt(i, "expected a 2 digit timezone hour")
		}
		i += 2
		tzh, _ := strconv.Atoi(tzhStr)
		if i >= n || body[i] != ':' {
			return DateTime{}, errAt(i, "expected ':' in timezone offset")
		}
		i++
		tzmStr, ok := readDigits(2, 2)
		if !ok {
			return DateTime{}, errAt(i, "expected a 2 digit timezone minute")
		}
		i += 2
		tzm, _ := strconv.Atoi(tzmStr)
		if i != n {
			return DateTime{}, errAt(i, "unexpected trailing bytes after timezone offset")
		}
		dt.TZ = TZOffset
		dt.TZHour = tzSign * int8(tzh)
		dt.TZMinute = tzSign * int8(tzm)
		return dt, nil
	default:
		return DateTime{}, errAt(i, "invalid timezone designator")
	}
}

// fracToNanos converts a 1-12 digit fractional-second string into
// nanoseconds by padding short input with trailing zeros and truncating
// long input to 9 digits.
func fracToNanos(frac string) int32 {
	if len(frac) >= 9 {
		frac = frac[:9]
	} else {
		frac = frac + strings.Repeat("0", 9-len(frac))
	}
	v, _ := strconv.Atoi(frac)
	return int32(v)
}
