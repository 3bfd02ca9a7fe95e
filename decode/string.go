package decode

import (
	"strconv"
	"unicode/utf8"

	"github.com/gojxc/jxc/diag"
	"github.com/gojxc/jxc/token"
)

// IsRawString reports whether tok (a String token) is a raw string, i.e.
// its source form is r"tag(...)tag" rather than a quoted, escaped string.
// A String token's Value always opens with either a quote byte or 'r'; no
// other lexer output takes this shape.
func IsRawString(tok token.Token) bool {
	return len(tok.Value) > 0 && tok.Value[0] == 'r'
}

// rawBody returns the bytes between the parentheses of a raw string, with
// no further decoding: this is exactly what the lexer saw.
func rawBody(tok token.Token) string {
	tag := tok.Tag
	prefixLen := 2 + len(tag) + 1 // 'r' + quote + tag + '('
	suffixLen := 1 + len(tag) + 1 // ')' + tag + quote
	return tok.Value[prefixLen : len(tok.Value)-suffixLen]
}

// quotedBody returns the bytes between the quotes of a non-raw string.
func quotedBody(tok token.Token) string {
	return tok.Value[1 : len(tok.Value)-1]
}

// StringBufferSize computes an upper bound on the decoded byte length of a
// String token, without decoding it. The bound is exact for raw strings and
// for strings containing no backslash; otherwise it may overestimate (a
// \U escape is counted as 4 bytes even when its UTF-8 encoding is shorter).
func StringBufferSize(tok token.Token) int {
	if IsRawString(tok) {
		return len(rawBody(tok))
	}
	body := quotedBody(tok)
	n := 0
	i := 0
	for i < len(body) {
		if body[i] != '\\' || i+1 >= len(body) {
			n++
			i++
			continue
		}
		switch body[i+1] {
		case 'x':
			n++
			i += 4 // \xHH
		case 'u':
			n += 3
			i += 6 // \uHHHH
		case 'U':
			n += 4
			i += 10 // \UHHHHHHHH
		default:
			n++
			i += 2
		}
	}
	return n
}

// DecodeStringInto decodes tok's content into buf (which must be at least
// StringBufferSize(tok) bytes) and returns the number of bytes written.
func DecodeStringInto(tok token.Token, buf []byte) (int, *diag.Diagnostic) {
	if IsRawString(tok) {
		body := rawBody(tok)
		return copy(buf, body), nil
	}

	body := quotedBody(tok)
	n := 0
	i := 0
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			buf[n] = c
			n++
			i++
			continue
		}
		if i+1 >= len(body) {
			return n, diag.New(diag.LexicalMalformed, tok.Start, tok.End, "trailing backslash in string")
		}
		e := body[i+1]
		switch e {
		case '"':
			buf[n] = '"'
			n++
			i += 2
		case '\'':
			buf[n] = '\''
			n++
			i += 2
		case '\\':
			buf[n] = '\\'
			n++
			i += 2
		case '/':
			buf[n] = '/'
			n++
			i += 2
		case 'b':
			buf[n] = '\b'
			n++
			i += 2
		case 'f':
			buf[n] = '\f'
			n++
			i += 2
		case 'n':
			buf[n] = '\n'
			n++
			i += 2
		case 'r':
			buf[n] = '\r'
			n++
			i += 2
		case 't':
			buf[n] = '\t'
			n++
			i += 2
		case 'x':
			if i+4 > len(body) {
				return n, diag.New(diag.LexicalMalformed, tok.Start, tok.End, "truncated \\x escape")
			}
			v, err := strconv.ParseUint(body[i+2:i+4], 16, 8)
			if err != nil {
				return n, diag.New(diag.LexicalMalformed, tok.Start, tok.End, "invalid \\x escape")
			}
			buf[n] = byte(v)
			n++
			i += 4
		case 'u':
			if i+6 > len(body) {
				return n, diag.New(diag.LexicalMalformed, tok.Start, tok.End, "truncated \\u escape")
			}
			v, err := strconv.ParseUint(body[i+2:i+6], 16, 32)
			if err != nil {
				return n, diag.New(diag.LexicalMalformed, tok.Start, tok.End, "invalid \\u escape")
			}
			// utf8.EncodeRune writes the replacement character for runes
			// that aren't valid scalar values, which covers lone surrogate
			// halves here without any special-casing.
			n += utf8.EncodeRune(buf[n:], rune(v))
			i += 6
		case 'U':
			if i+10 > len(body) {
				return n, diag.New(diag.LexicalMalformed, tok.Start, tok.End, "truncated \\U escape")
			}
			v, err := strconv.ParseUint(body[i+2:i+10], 16, 32)
			if err != nil {
				return n, diag.New(diag.LexicalMalformed, tok.Start, tok.End, "invalid \\U escape")
			}
			n += utf8.EncodeRune(buf[n:], rune(v))
			i += 10
		default:
			return n, diag.New(diag.LexicalMalformed, tok.Start, tok.End, "invalid escape sequence \\%c", e)
		}
	}
	return n, nil
}
