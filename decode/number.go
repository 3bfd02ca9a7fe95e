// Package decode turns lexer tokens into typed values: numbers, strings,
// byte strings, and datetimes. Every function here is a pure function of a
// token (plus, where noted, the token's own Value slice) to either a value
// or a *diag.Diagnostic -- none of them re-scans the source buffer.
package decode

import (
	"math"
	"strconv"
	"strings"

	"github.com/gojxc/jxc/diag"
	"github.com/gojxc/jxc/token"
)

// NumberKind distinguishes the three non-finite literal spellings from an
// ordinary finite numeral.
type NumberKind uint8

const (
	Finite NumberKind = iota
	NaN
	PosInf
	NegInf
)

// NumberParts is the decomposition of a Number token's value, mirroring the
// split a jxc number literal goes through before it is turned into a typed
// value. Digits and Fraction have their underscore separators stripped;
// Suffix has only a single leading underscore (if any) stripped.
type NumberParts struct {
	Sign        byte // '+' or '-'; '+' when the literal carries no sign
	Prefix      string
	Digits      string
	HasFraction bool
	Fraction    string
	HasExponent bool
	Exponent    int32
	Suffix      string
	Kind        NumberKind
}

// SplitNumber decomposes a Number token's value. It assumes the token was
// produced by a conforming lexer and mainly exists to separate the digit
// body from the trailing suffix tag; it still defends against a
// hand-constructed token with no digits.
func SplitNumber(tok token.Token) (NumberParts, *diag.Diagnostic) {
	s := tok.Value
	p := NumberParts{Sign: '+'}
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		p.Sign = s[i]
		i++
	}
	rest := s[i:]

	if strings.HasPrefix(rest, "nan") {
		p.Kind = NaN
		p.Suffix = rest[3:]
		return p, nil
	}
	if strings.HasPrefix(rest, "inf") {
		if p.Sign == '-' {
			p.Kind = NegInf
		} else {
			p.Kind = PosInf
		}
		p.Suffix = rest[3:]
		return p, nil
	}

	if len(rest) >= 2 && rest[0] == '0' && isRadixLetter(rest[1]) {
		p.Prefix = rest[:2]
		body := rest[2:]
		digits, consumed := scanDigitRun(body, radixMatcher(p.Prefix))
		if digits == "" {
			return NumberParts{}, diag.New(diag.LexicalMalformed, tok.Start, tok.End,
				"base-prefixed number has no digits")
		}
		p.Digits = digits
		suffix, derr := stripSuffixUnderscore(body[consumed:], tok)
		if derr != nil {
			return NumberParts{}, derr
		}
		p.Suffix = suffix
		p.Kind = Finite
		return p, nil
	}

	digits, consumed := scanDigitRun(rest, isDecDigit)
	if digits == "" {
		return NumberParts{}, diag.New(diag.LexicalMalformed, tok.Start, tok.End, "number has no digits")
	}
	p.Digits = digits
	p.Kind = Finite
	pos := consumed

	if pos < len(rest) && rest[pos] == '.' {
		fracDigits, fracConsumed := scanDigitRun(rest[pos+1:], isDecDigit)
		if fracDigits != "" {
			p.HasFraction = true
			p.Fraction = fracDigits
			pos = pos + 1 + fracConsumed
		}
	}

	if pos < len(rest) && (rest[pos] == 'e' || rest[pos] == 'E') {
		savePos := pos
		j := pos + 1
		expSign := int32(1)
		if j < len(rest) && (rest[j] == '+' || rest[j] == '-') {
			if rest[j] == '-' {
				expSign = -1
			}
			j++
		}
		expDigits, expConsumed := scanDigitRun(rest[j:], isDecDigit)
		if expDigits != "" {
			v, err := strconv.ParseInt(expDigits, 10, 32)
			if err != nil {
				return NumberParts{}, diag.New(diag.NumericOutOfRange, tok.Start, tok.End,
					"exponent out of range")
			}
			p.HasExponent = true
			p.Exponent = expSign * int32(v)
			pos = j + expConsumed
		} else {
			pos = savePos
		}
	}

	suffix, derr := stripSuffixUnderscore(rest[pos:], tok)
	if derr != nil {
		return NumberParts{}, derr
	}
	p.Suffix = suffix
	return p, nil
}

// stripSuffixUnderscore drops the single underscore allowed between the
// numeric body and its suffix. A bare "_" with no suffix characters after
// it is not a valid suffix.
func stripSuffixUnderscore(s string, tok token.Token) (string, *diag.Diagnostic) {
	if s == "_" {
		return "", diag.New(diag.LexicalMalformed, tok.Start, tok.End, "number has a trailing underscore")
	}
	return strings.TrimPrefix(s, "_"), nil
}

func isRadixLetter(c byte) bool {
	switch c {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	default:
		return false
	}
}

func radixMatcher(prefix string) func(byte) bool {
	switch prefix {
	case "0x", "0X":
		return isHexDigit
	case "0o", "0O":
		return isOctDigit
	default:
		return isBinDigit
	}
}

func isDecDigit(c byte) bool { return c >= '0' && c <= '9' }
func isHexDigit(c byte) bool {
	return isDecDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isOctDigit(c byte) bool { return c >= '0' && c <= '7' }
func isBinDigit(c byte) bool { return c == '0' || c == '1' }

// scanDigitRun consumes digits (per match) and underscore separators from
// the front of s, dropping the underscores, and returns the clean digits
// plus the number of source bytes consumed. An underscore not followed by
// another digit is left unconsumed: it belongs to the suffix, where the
// caller decides whether it is a legal separator or a trailing error.
func scanDigitRun(s string, match func(byte) bool) (digits string, consumed int) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		if match(c) {
			b.WriteByte(c)
			i++
			continue
		}
		if c == '_' && i+1 < len(s) && match(s[i+1]) {
			i++
			continue
		}
		break
	}
	return b.String(), i
}

func baseOf(prefix string) int {
	switch prefix {
	case "0x", "0X":
		return 16
	case "0o", "0O":
		return 8
	case "0b", "0B":
		return 2
	default:
		return 10
	}
}

func isZeroLiteral(p NumberParts) bool {
	return allZeroDigits(p.Digits) && (!p.HasFraction || allZeroDigits(p.Fraction))
}

func allZeroDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// Uint64 converts p to an unsigned integer. A negative sign is rejected
// unless the literal is exactly zero; a non-negative exponent scales the
// digit string; nan/inf and a nonzero fraction are domain errors.
func (p NumberParts) Uint64() (uint64, *diag.Diagnostic) {
	if p.Kind != Finite {
		return 0, diag.New(diag.NumericDomain, 0, 0, "a non-finite literal cannot convert to an integer")
	}
	if p.Sign == '-' && !isZeroLiteral(p) {
		return 0, diag.New(diag.NumericDomain, 0, 0, "a negative literal cannot convert to an unsigned integer")
	}
	if p.HasExponent && p.Exponent < 0 {
		return 0, diag.New(diag.NumericDomain, 0, 0, "a negative exponent is not allowed on an integer target")
	}
	if p.HasFraction && !allZeroDigits(p.Fraction) {
		return 0, diag.New(diag.NumericDomain, 0, 0, "a fractional literal is not allowed on an integer target")
	}

	digits := p.Digits
	if p.HasExponent && p.Exponent > 0 {
		digits = digits + strings.Repeat("0", int(p.Exponent))
	}
	val, err := strconv.ParseUint(digits, baseOf(p.Prefix), 64)
	if err != nil {
		return 0, diag.New(diag.NumericOutOfRange, 0, 0, "integer literal out of range")
	}
	return val, nil
}

// Int64 is Uint64 with the sign applied, erroring if the magnitude overflows
// a signed 64-bit integer.
func (p NumberParts) Int64() (int64, *diag.Diagnostic) {
	mag := p
	mag.Sign = '+'
	u, d := mag.Uint64()
	if d != nil {
		return 0, d
	}
	if p.Sign == '-' {
		if u > uint64(math.MaxInt64)+1 {
			return 0, diag.New(diag.NumericOutOfRange, 0, 0, "integer literal out of range")
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, diag.New(diag.NumericOutOfRange, 0, 0, "integer literal out of range")
	}
	return int64(u), nil
}

// Float64 converts p to a float, short-circuiting nan/inf literal kinds to
// the corresponding IEEE-754 value.
func (p NumberParts) Float64() (float64, *diag.Diagnostic) {
	switch p.Kind {
	case NaN:
		return math.NaN(), nil
	case PosInf:
		return math.Inf(1), nil
	case NegInf:
		return math.Inf(-1), nil
	}

	if p.Prefix != "" {
		mag := p
		mag.Sign = '+'
		u, d := mag.Uint64()
		if d != nil {
			return 0, d
		}
		f := float64(u)
		if p.Sign == '-' {
			f = -f
		}
		return f, nil
	}

	var b strings.Builder
	b.WriteString(p.Digits)
	if p.HasFraction {
		b.WriteByte('.')
		b.WriteString(p.Fraction)
	}
	if p.HasExponent {
		b.WriteByte('e')
		b.WriteString(strconv.FormatInt(int64(p.Exponent), 10))
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, diag.New(diag.NumericOutOfRange, 0, 0, "float literal out of range")
	}
	if p.Sign == '-' {
		f = -f
	}
	return f, nil
}
