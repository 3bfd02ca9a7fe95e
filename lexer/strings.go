package lexer

import (
	"github.com/gojxc/jxc/diag"
	"github.com/gojxc/jxc/token"
)

// scanString scans a quoted, non-raw string. It validates escapes just
// enough to find the closing quote; decode.DecodeStringInto does the actual
// escape decoding later.
func (l *Lexer) scanString(start int, quote byte) (token.Token, *diag.Diagnostic) {
	l.Pos++ // opening quote
	for {
		c, ok := l.cur()
		if !ok {
			return token.Token{}, diag.New(diag.LexicalMalformed, start, l.Pos, "unterminated string")
		}
		switch {
		case c == quote:
			l.Pos++
			return token.Token{Kind: token.String, Start: start, End: l.Pos, Value: l.Src[start:l.Pos]}, nil
		case c == '\n':
			return token.Token{}, diag.New(diag.LexicalMalformed, l.Pos, l.Pos+1, "line break inside string")
		case c == '\\':
			if d := l.scanEscape(); d != nil {
				return token.Token{}, d
			}
		default:
			l.Pos++
		}
	}
}

// scanEscape validates a single backslash escape starting at the backslash
// (l.Pos) and advances past it. It does not decode the escape.
func (l *Lexer) scanEscape() *diag.Diagnostic {
	escStart := l.Pos
	l.Pos++ // backslash
	e, ok := l.cur()
	if !ok {
		return diag.New(diag.LexicalMalformed, escStart, l.Pos, "unterminated escape sequence")
	}
	switch e {
	case '"', '\'', '\\', '/', 'b', 'f', 'n', 'r', 't':
		l.Pos++
		return nil
	case 'x':
		l.Pos++
		if !l.consumeHexDigits(2) {
			return diag.New(diag.LexicalMalformed, escStart, l.Pos, "invalid \\x escape")
		}
		return nil
	case 'u':
		l.Pos++
		if !l.consumeHexDigits(4) {
			return diag.New(diag.LexicalMalformed, escStart, l.Pos, "invalid \\u escape")
		}
		return nil
	case 'U':
		l.Pos++
		if !l.consumeHexDigits(8) {
			return diag.New(diag.LexicalMalformed, escStart, l.Pos, "invalid \\U escape")
		}
		return nil
	default:
		return diag.New(diag.LexicalMalformed, escStart, l.Pos+1, "invalid escape sequence \\%c", e)
	}
}

// consumeHexDigits consumes up to n hex digit bytes, returning false if it
// encounters a present byte that is not a hex digit before reaching n.
// Running out of input before n is not itself an error here; the caller's
// unterminated-token check reports that case.
func (l *Lexer) consumeHexDigits(n int) bool {
	for i := 0; i < n; i++ {
		c, ok := l.cur()
		if !ok {
			return true
		}
		if !isHexDigit(c) {
			return false
		}
		l.Pos++
	}
	return true
}

// scanRawString scans r"tag(...)tag" starting with l.Pos at the opening
// quote. The heredoc tag, if any, is returned as the token's Tag so the
// decoder can strip exactly the right delimiter without rescanning it.
func (l *Lexer) scanRawString(start int, quote byte) (token.Token, *diag.Diagnostic) {
	l.Pos++ // opening quote
	tagStart := l.Pos
	for {
		c, ok := l.cur()
		if !ok || !isIdentCont(c) {
			break
		}
		l.Pos++
	}
	tag := l.Src[tagStart:l.Pos]
	if len(tag) > 15 {
		return token.Token{}, diag.New(diag.LimitExceeded, tagStart, l.Pos,
			"raw string heredoc tag exceeds 15 characters")
	}

	if c, ok := l.cur(); !ok || c != '(' {
		return token.Token{}, diag.New(diag.LexicalMalformed, start, l.Pos,
			"raw string missing opening parenthesis")
	}
	l.Pos++

	closer := ")" + tag + string(quote)
	for {
		if l.Pos+len(closer) <= len(l.Src) && l.Src[l.Pos:l.Pos+len(closer)] == closer {
			l.Pos += len(closer)
			return token.Token{Kind: token.String, Start: start, End: l.Pos, Value: l.Src[start:l.Pos], Tag: tag}, nil
		}
		if l.Pos >= len(l.Src) {
			return token.Token{}, diag.New(diag.LexicalMalformed, start, l.Pos, "unterminated raw string")
		}
		l.Pos++
	}
}

func isBase64Char(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '+' || c == '/' || c == '='
}

// scanByteString scans b64"..." (no embedded whitespace) or b64"( ... )"
// (arbitrary ASCII whitespace allowed between the parens).
func (l *Lexer) scanByteString(start int, quote byte) (token.Token, *diag.Diagnostic) {
	l.Pos++ // opening quote
	multiline := false
	if c, ok := l.cur(); ok && c == '(' {
		multiline = true
		l.Pos++
	}

	count := 0
	for {
		c, ok := l.cur()
		if !ok {
			return token.Token{}, diag.New(diag.LexicalMalformed, start, l.Pos, "unterminated byte string")
		}
		if multiline {
			if c == ')' {
				l.Pos++
				break
			}
			if isSpace(c) || c == '\n' {
				l.Pos++
				continue
			}
		} else if c == quote {
			break
		}
		if !isBase64Char(c) {
			return token.Token{}, diag.New(diag.LexicalMalformed, l.Pos, l.Pos+1, "invalid base64 character %q", c)
		}
		count++
		l.Pos++
	}
	if count%4 != 0 {
		return token.Token{}, diag.New(diag.EncodingError, start, l.Pos,
			"base64 payload length %d is not a multiple of four", count)
	}
	if c, ok := l.cur(); !ok || c != quote {
		return token.Token{}, diag.New(diag.LexicalMalformed, start, l.Pos, "unterminated byte string")
	}
	l.Pos++
	return token.Token{Kind: token.ByteString, Start: start, End: l.Pos, Value: l.Src[start:l.Pos]}, nil
}

// scanDateTime scans dt"..." validating only that the body is terminated;
// decode.ParseDate/ParseDateTime perform the ISO-8601 structural validation.
func (l *Lexer) scanDateTime(start int, quote byte) (token.Token, *diag.Diagnostic) {
	l.Pos++ // opening quote
	for {
		c, ok := l.cur()
		if !ok {
			return token.Token{}, diag.New(diag.LexicalMalformed, start, l.Pos, "unterminated datetime string")
		}
		if c == '\n' {
			return token.Token{}, diag.New(diag.LexicalMalformed, l.Pos, l.Pos+1, "line break inside datetime string")
		}
		if c == quote {
			l.Pos++
			return token.Token{Kind: token.DateTime, Start: start, End: l.Pos, Value: l.Src[start:l.Pos]}, nil
		}
		l.Pos++
	}
}
