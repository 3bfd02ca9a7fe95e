// Package lexer scans a JXC source buffer into tokens. It is byte-oriented
// (no rune decoding on the hot path), allocation-free on success, and never
// advances the cursor past a byte it could not account for.
package lexer

import (
	"github.com/gojxc/jxc/diag"
	"github.com/gojxc/jxc/token"
)

// Lexer scans Src starting at Pos. The depth counters track how many of
// each bracket kind are currently open (an unmatched closer drives one
// negative); the scan loop only updates them and never consults them, and
// the parser keeps its own counters instead of reading these.
type Lexer struct {
	Src string
	Pos int

	ParenDepth   int
	BracketDepth int
	BraceDepth   int
	AngleDepth   int
}

// New returns a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{Src: src}
}

func (l *Lexer) byteAt(off int) (byte, bool) {
	if off < 0 || off >= len(l.Src) {
		return 0, false
	}
	return l.Src[off], true
}

func (l *Lexer) cur() (byte, bool) { return l.byteAt(l.Pos) }

func (l *Lexer) peek(ahead int) (byte, bool) { return l.byteAt(l.Pos + ahead) }

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\f' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool { return isIdentStart(c) || isDigit(c) }

// symbolKinds maps a single source byte to its Kind for every punctuation
// token the grammar defines.
var symbolKinds = map[byte]token.Kind{
	':': token.Colon, '=': token.Equals, ',': token.Comma, '.': token.Period,
	'{': token.BraceOpen, '}': token.BraceClose,
	'[': token.SquareBracketOpen, ']': token.SquareBracketClose,
	'<': token.AngleBracketOpen, '>': token.AngleBracketClose,
	'(': token.ParenOpen, ')': token.ParenClose,
	'!': token.ExclamationPoint, '*': token.Asterisk, '?': token.QuestionMark,
	'@': token.AtSymbol, '|': token.Pipe, '&': token.Ampersand, '%': token.Percent,
	';': token.Semicolon, '+': token.Plus, '-': token.Minus, '/': token.Slash,
	'\\': token.Backslash, '^': token.Caret, '~': token.Tilde, '`': token.Backtick,
}

func (l *Lexer) trackDepth(k token.Kind) {
	switch k {
	case token.ParenOpen:
		l.ParenDepth++
	case token.ParenClose:
		l.ParenDepth--
	case token.SquareBracketOpen:
		l.BracketDepth++
	case token.SquareBracketClose:
		l.BracketDepth--
	case token.BraceOpen:
		l.BraceDepth++
	case token.BraceClose:
		l.BraceDepth--
	case token.AngleBracketOpen:
		l.AngleDepth++
	case token.AngleBracketClose:
		l.AngleDepth--
	}
}

// Next scans the next whole-stream token: signs merge onto an immediately
// following digit or nan/inf identifier to form a Number token.
func (l *Lexer) Next() (token.Token, *diag.Diagnostic) {
	return l.next(false)
}

// NextExpr scans the next token in expression mode: +/- never merge with
// what follows, so they always come back as standalone symbol tokens.
func (l *Lexer) NextExpr() (token.Token, *diag.Diagnostic) {
	return l.next(true)
}

func (l *Lexer) next(exprMode bool) (token.Token, *diag.Diagnostic) {
	l.skipSpace()

	start := l.Pos
	c, ok := l.cur()
	if !ok {
		return token.Token{Kind: token.EndOfStream, Start: start, End: start}, nil
	}

	switch {
	case c == '\n':
		l.Pos++
		return token.Token{Kind: token.LineBreak, Start: start, End: l.Pos, Value: l.Src[start:l.Pos]}, nil
	case c == '#':
		return l.scanComment(start)
	case c == '"' || c == '\'':
		return l.scanString(start, c)
	case isDigit(c):
		return l.scanNumber(start)
	case (c == '+' || c == '-') && !exprMode && l.signStartsNumber():
		return l.scanNumber(start)
	case isIdentStart(c):
		return l.scanIdentOrPrefixed(start)
	default:
		if k, isSym := symbolKinds[c]; isSym {
			l.Pos++
			l.trackDepth(k)
			return token.Token{Kind: k, Start: start, End: l.Pos, Value: l.Src[start:l.Pos]}, nil
		}
		return token.Token{}, diag.New(diag.LexicalMalformed, start, start+1, "unexpected byte %q", c)
	}
}

func (l *Lexer) skipSpace() {
	for {
		c, ok := l.cur()
		if !ok || !isSpace(c) {
			return
		}
		l.Pos++
	}
}

// signStartsNumber reports whether the sign byte at l.Pos begins a number:
// either a digit follows directly, or the bare identifiers nan/inf follow.
func (l *Lexer) signStartsNumber() bool {
	next, ok := l.peek(1)
	if !ok {
		return false
	}
	if isDigit(next) {
		return true
	}
	rest := l.Src[l.Pos+1:]
	return hasIdentWord(rest, "nan") || hasIdentWord(rest, "inf")
}

// hasIdentWord reports whether s begins with word followed by a non-ident
// byte (or end of input), i.e. word appears whole, not as a prefix of a
// longer identifier.
func hasIdentWord(s, word string) bool {
	if len(s) < len(word) || s[:len(word)] != word {
		return false
	}
	if len(s) == len(word) {
		return true
	}
	return !isIdentCont(s[len(word)])
}

func (l *Lexer) scanComment(start int) (token.Token, *diag.Diagnostic) {
	for {
		c, ok := l.cur()
		if !ok || c == '\n' {
			break
		}
		l.Pos++
	}
	return token.Token{Kind: token.Comment, Start: start, End: l.Pos, Value: l.Src[start:l.Pos]}, nil
}

// scanIdentOrPrefixed scans an identifier-shaped run, then reclassifies it
// as a reserved word, a float literal (nan/inf), or a string/bytes/datetime
// prefix when immediately followed by a quote.
func (l *Lexer) scanIdentOrPrefixed(start int) (token.Token, *diag.Diagnostic) {
	for {
		c, ok := l.cur()
		if !ok || !isIdentCont(c) {
			break
		}
		l.Pos++
	}
	word := l.Src[start:l.Pos]

	if q, ok := l.cur(); ok && (q == '"' || q == '\'') {
		switch word {
		case "r":
			return l.scanRawString(start, q)
		case "b64":
			return l.scanByteString(start, q)
		case "dt":
			return l.scanDateTime(start, q)
		}
	}

	switch word {
	case "true":
		return token.Token{Kind: token.True, Start: start, End: l.Pos, Value: word}, nil
	case "false":
		return token.Token{Kind: token.False, Start: start, End: l.Pos, Value: word}, nil
	case "null":
		return token.Token{Kind: token.Null, Start: start, End: l.Pos, Value: word}, nil
	case "nan", "inf":
		return token.Token{Kind: token.Number, Start: start, End: l.Pos, Value: word}, nil
	default:
		return token.Token{Kind: token.Identifier, Start: start, End: l.Pos, Value: word}, nil
	}
}
