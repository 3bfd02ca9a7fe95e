package serializer

import (
	"math"
	"strconv"
)

// NumberBase selects the radix an integer emitter writes in. Only the
// digits are affected by the base; a prefix ("0x", "0o", "0b") is written
// for any non-decimal base.
type NumberBase uint8

const (
	Decimal NumberBase = iota
	Hex
	Octal
	Binary
)

func (b NumberBase) prefix() string {
	switch b {
	case Hex:
		return "0x"
	case Octal:
		return "0o"
	case Binary:
		return "0b"
	default:
		return ""
	}
}

func (b NumberBase) radix() int {
	switch b {
	case Hex:
		return 16
	case Octal:
		return 8
	case Binary:
		return 2
	default:
		return 10
	}
}

// Int emits a signed integer in the given base, followed by suffix
// verbatim (suffix may be empty). Decimal writes the signed value straight
// through strconv.FormatInt, which knows how to print math.MinInt64 without
// overflowing; hex/octal/binary need the unsigned magnitude instead; a
// manual sign byte plus negation would overflow two's complement for
// math.MinInt64, so the magnitude is computed in uint64 arithmetic, where
// negation does not overflow.
func (s *Serializer) Int(v int64, base NumberBase, suffix string) *Serializer {
	s.preValue(false)
	if base == Decimal {
		s.writeRaw(strconv.FormatInt(v, 10))
	} else {
		mag := uint64(v)
		if v < 0 {
			s.writeByte('-')
			mag = -mag
		}
		s.writeRaw(base.prefix())
		s.writeRaw(strconv.FormatUint(mag, base.radix()))
	}
	s.writeRaw(suffix)
	s.afterValue()
	return s
}

// Uint emits an unsigned integer in the given base, followed by suffix
// verbatim.
func (s *Serializer) Uint(v uint64, base NumberBase, suffix string) *Serializer {
	s.preValue(false)
	s.writeRaw(base.prefix())
	s.writeRaw(strconv.FormatUint(v, base.radix()))
	s.writeRaw(suffix)
	s.afterValue()
	return s
}

// Float emits a floating-point value. NaN and +/-Inf are written as the
// bare identifiers nan/inf/-inf. Finite values are formatted with the
// precision counting decimal places: a precision of 0 rounds to the
// nearest integer and writes no decimal point; otherwise the value is
// written with exactly that many fractional digits, then trailing zeros
// are trimmed down to one fractional digit unless FloatFixedPrecision is
// set. precision of -1 uses the Settings default.
func (s *Serializer) Float(v float64, precision int32, suffix string) *Serializer {
	s.preValue(false)
	switch {
	case math.IsNaN(v):
		s.writeRaw("nan")
	case math.IsInf(v, 1):
		s.writeRaw("inf")
	case math.IsInf(v, -1):
		s.writeRaw("-inf")
	default:
		p := precision
		if p < 0 {
			p = s.settings.DefaultFloatPrecision
		}
		if p < 0 {
			p = 0
		}
		if p == 0 {
			s.writeRaw(strconv.FormatInt(int64(math.Round(v)), 10))
		} else {
			out := strconv.FormatFloat(v, 'f', int(p), 64)
			if !s.settings.FloatFixedPrecision {
				for len(out) >= 2 && out[len(out)-2] != '.' && out[len(out)-1] == '0' {
					out = out[:len(out)-1]
				}
			}
			s.writeRaw(out)
		}
	}
	s.writeRaw(suffix)
	s.afterValue()
	return s
}
