package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/gojxc/jxc/token"
)

func dtTok(value string) token.Token {
	return token.Token{Kind: token.DateTime, Start: 0, End: len(value), Value: value}
}

func TestParseDateTime_DateOnly(t *testing.T) {
	assert.True(t, IsDateOnly(dtTok(`dt"2024-01-02"`)))
	dt, d := ParseDateTime(dtTok(`dt"2024-01-02"`))
	assert.Nil(t, d)
	assert.Equal(t, Date{Year: 2024, Month: 1, Day: 2}, dt.Date)
	assert.Equal(t, TZUTC, dt.TZ)
	assert.Equal(t, int8(0), dt.Hour)
}

func TestParseDateTime_FullUTC(t *testing.T) {
	assert.False(t, IsDateOnly(dtTok(`dt"2024-01-02T03:04:05Z"`)))
	dt, d := ParseDateTime(dtTok(`dt"2024-01-02T03:04:05Z"`))
	assert.Nil(t, d)
	assert.Equal(t, int8(3), dt.Hour)
	assert.Equal(t, int8(4), dt.Minute)
	assert.Equal(t, int8(5), dt.Second)
	assert.Equal(t, TZUTC, dt.TZ)
}

func TestParseDateTime_FractionalSecondsAndOffset(t *testing.T) {
	dt, d := ParseDateTime(dtTok(`dt"2024-01-02T03:04:05.5+02:30"`))
	assert.Nil(t, d)
	assert.Equal(t, int32(500000000), dt.Nanosecond)
	assert.Equal(t, TZOffset, dt.TZ)
	assert.Equal(t, int8(2), dt.TZHour)
	assert.Equal(t, int8(30), dt.TZMinute)
}

func TestParseDateTime_LongFractionTruncates(t *testing.T) {
	dt, d := ParseDateTime(dtTok(`dt"2024-01-02T03:04:05.123456789123"`))
	assert.Nil(t, d)
	assert.Equal(t, int32(123456789), dt.Nanosecond)
	assert.Equal(t, TZLocal, dt.TZ)
}

func TestParseDateTime_NegativeOffset(t *testing.T) {
	dt, d := ParseDateTime(dtTok(`dt"2024-01-02T03:04:05-05:00"`))
	assert.Nil(t, d)
	assert.Equal(t, TZOffset, dt.TZ)
	assert.Equal(t, int8(-5), dt.TZHour)
	assert.Equal(t, int8(0), dt.TZMinute)
}

func TestParseDateTime_InvalidTimezone(t *testing.T) {
	_, d := ParseDateTime(dtTok(`dt"2024-01-02T03:04:05X"`))
	assert.NotNil(t, d)
}

func TestParseDateTime_MissingDashIsError(t *testing.T) {
	_, d := ParseDateTime(dtTok(`dt"20240102"`))
	assert.NotNil(t, d)
}

func TestParseDate_TruncatesTime(t *testing.T) {
	date, d := ParseDate(dtTok(`dt"2024-01-02T03:04:05Z"`))
	assert.Nil(t, d)
	assert.Equal(t, Date{Year: 2024, Month: 1, Day: 2}, date)
}
