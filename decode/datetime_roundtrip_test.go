package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gojxc/jxc/decode"
	"github.com/gojxc/jxc/lexer"
	"github.com/gojxc/jxc/serializer"
)

// parseDT is a small test helper mirroring how the parser hands a DateTime
// token to the decoder: lex one token, then decode it.
func parseDT(t *testing.T, src string) (decode.DateTime, string) {
	t.Helper()
	l := lexer.New(src)
	tok, d := l.Next()
	assert.Nil(t, d)
	dt, d := decode.ParseDateTime(tok)
	assert.Nil(t, d)
	return dt, src
}

func formatDT(t *testing.T, dt decode.DateTime) string {
	t.Helper()
	var buf stringsWriter
	s := serializer.New(&buf, serializer.CompactSettings())
	s.DateTime(dt)
	assert.Nil(t, s.Err())
	assert.Nil(t, s.Flush())
	return buf.String()
}

type stringsWriter struct{ b []byte }

func (w *stringsWriter) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}
func (w *stringsWriter) String() string { return string(w.b) }

func TestDateTime_RoundTrip_DateOnly(t *testing.T) {
	dt, _ := parseDT(t, `dt"1996-06-07"`)
	out := formatDT(t, dt)
	assert.Equal(t, `dt"1996-06-07"`, out)
}

func TestDateTime_RoundTrip_UTC(t *testing.T) {
	dt, _ := parseDT(t, `dt"2021-01-02T03:04:05Z"`)
	out := formatDT(t, dt)
	assert.Equal(t, `dt"2021-01-02T03:04:05Z"`, out)
}

func TestDateTime_RoundTrip_Offset(t *testing.T) {
	dt, _ := parseDT(t, `dt"2021-01-02T03:04:05+05:30"`)
	out := formatDT(t, dt)
	assert.Equal(t, `dt"2021-01-02T03:04:05+05:30"`, out)
}

func TestDateTime_RoundTrip_NegativeOffset(t *testing.T) {
	dt, _ := parseDT(t, `dt"2021-01-02T03:04:05-08:00"`)
	out := formatDT(t, dt)
	assert.Equal(t, `dt"2021-01-02T03:04:05-08:00"`, out)
}

func TestDateTime_RoundTrip_Local(t *testing.T) {
	dt, _ := parseDT(t, `dt"2021-01-02T03:04:05"`)
	out := formatDT(t, dt)
	assert.Equal(t, `dt"2021-01-02T03:04:05"`, out)
}

func TestDateTime_RoundTrip_FractionalSeconds(t *testing.T) {
	dt, _ := parseDT(t, `dt"2021-01-02T03:04:05.5Z"`)
	out := formatDT(t, dt)
	assert.Equal(t, `dt"2021-01-02T03:04:05.5Z"`, out)
}
