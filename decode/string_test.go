package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/gojxc/jxc/token"
)

func strTok(value, tag string) token.Token {
	return token.Token{Kind: token.String, Start: 0, End: len(value), Value: value, Tag: tag}
}

func decodeString(t *testing.T, value, tag string) string {
	t.Helper()
	tok := strTok(value, tag)
	size := StringBufferSize(tok)
	buf := make([]byte, size)
	n, d := DecodeStringInto(tok, buf)
	assert.Nil(t, d)
	return string(buf[:n])
}

func TestStringDecode_SimpleEscapes(t *testing.T) {
	assert.Equal(t, "hello", decodeString(t, `"hello"`, ""))
	assert.Equal(t, "a\nb\tc\"d", decodeString(t, `"a\nb\tc\"d"`, ""))
}

func TestStringDecode_HexEscape(t *testing.T) {
	assert.Equal(t, "A", decodeString(t, `"\x41"`, ""))
}

func TestStringDecode_UnicodeEscape(t *testing.T) {
	assert.Equal(t, "é", decodeString(t, `"\u00e9"`, ""))
	assert.Equal(t, "😀", decodeString(t, `"\U0001F600"`, ""))
}

func TestStringDecode_LoneSurrogateBecomesReplacementChar(t *testing.T) {
	assert.Equal(t, "�", decodeString(t, `"\uD800"`, ""))
}

func TestStringDecode_RawString(t *testing.T) {
	value := "r\"TAG(line one\nline two)TAG\""
	got := decodeString(t, value, "TAG")
	assert.Equal(t, "line one\nline two", got)
}

func TestStringBufferSize_ExactForNoEscapes(t *testing.T) {
	assert.Equal(t, 5, StringBufferSize(strTok(`"hello"`, "")))
}
