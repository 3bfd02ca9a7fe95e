package lexer

import (
	"github.com/gojxc/jxc/diag"
	"github.com/gojxc/jxc/token"
)

// scanNumber scans a full Number token starting at an optional sign. The
// lexer only recognizes the token's shape; decode.SplitNumber performs the
// detailed structural validation (suffix separation, exponent parsing).
func (l *Lexer) scanNumber(start int) (token.Token, *diag.Diagnostic) {
	if c, ok := l.cur(); ok && (c == '+' || c == '-') {
		l.Pos++
	}

	if rest := l.Src[l.Pos:]; hasIdentWord(rest, "nan") || hasIdentWord(rest, "inf") {
		l.Pos += 3
		return token.Token{Kind: token.Number, Start: start, End: l.Pos, Value: l.Src[start:l.Pos]}, nil
	}

	if c, ok := l.cur(); ok && c == '0' {
		if n, ok2 := l.peek(1); ok2 {
			var radixDigit func(byte) bool
			switch n {
			case 'x', 'X':
				radixDigit = isHexDigit
			case 'o', 'O':
				radixDigit = isOctDigit
			case 'b', 'B':
				radixDigit = isBinDigit
			}
			if radixDigit != nil {
				l.Pos += 2
				count := 0
				for {
					c2, ok3 := l.cur()
					if !ok3 || !(radixDigit(c2) || c2 == '_') {
						break
					}
					if c2 != '_' {
						count++
					}
					l.Pos++
				}
				if count == 0 {
					return token.Token{}, diag.New(diag.LexicalMalformed, start, l.Pos,
						"base-prefixed number has no digits")
				}
				return l.scanSuffix(start)
			}
		}
	}

	digits := 0
	for {
		c, ok := l.cur()
		if !ok || !(isDigit(c) || c == '_') {
			break
		}
		if c != '_' {
			digits++
		}
		l.Pos++
	}
	if digits == 0 {
		return token.Token{}, diag.New(diag.LexicalMalformed, start, l.Pos, "number has no digits")
	}

	if c, ok := l.cur(); ok && c == '.' {
		if n, ok2 := l.peek(1); ok2 && isDigit(n) {
			l.Pos++
			for {
				c2, ok3 := l.cur()
				if !ok3 || !(isDigit(c2) || c2 == '_') {
					break
				}
				l.Pos++
			}
		}
	}

	if c, ok := l.cur(); ok && (c == 'e' || c == 'E') {
		save := l.Pos
		l.Pos++
		if c2, ok2 := l.cur(); ok2 && (c2 == '+' || c2 == '-') {
			l.Pos++
		}
		expDigits := 0
		for {
			c2, ok2 := l.cur()
			if !ok2 || !isDigit(c2) {
				break
			}
			expDigits++
			l.Pos++
		}
		if expDigits == 0 {
			l.Pos = save
		}
	}

	return l.scanSuffix(start)
}

// scanSuffix greedily consumes a trailing suffix tag onto an already-scanned
// numeric body: either an identifier-shaped run or a single '%'. The suffix
// is recorded as the token's Tag in addition to being part of its Value.
func (l *Lexer) scanSuffix(start int) (token.Token, *diag.Diagnostic) {
	tagStart := l.Pos
	if c, ok := l.cur(); ok && c == '%' {
		l.Pos++
	} else {
		for {
			c, ok := l.cur()
			if !ok || !isIdentCont(c) {
				break
			}
			l.Pos++
		}
	}
	return token.Token{
		Kind:  token.Number,
		Start: start,
		End:   l.Pos,
		Value: l.Src[start:l.Pos],
		Tag:   l.Src[tagStart:l.Pos],
	}, nil
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctDigit(c byte) bool { return c >= '0' && c <= '7' }

func isBinDigit(c byte) bool { return c == '0' || c == '1' }
