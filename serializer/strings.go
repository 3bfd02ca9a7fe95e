package serializer

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// shortEscapes maps bytes that have a single-character escape form to that
// form's letter.
var shortEscapes = map[byte]byte{
	'\b': 'b', '\f': 'f', '\n': 'n', '\r': 'r', '\t': 't', '\\': '\\',
}

func isPrintableASCII(c byte) bool {
	return c >= 0x20 && c < 0x7f
}

// String emits a quoted string literal. quote selects the quote
// character; Auto picks whichever of the two quote characters does not
// appear in s, preferring Double on a tie or when both appear.
// decodeUnicode controls whether non-ASCII scalars are escaped as
// \uHHHH/\UHHHHHHHH (true) or passed through as raw UTF-8 bytes (false).
func (s *Serializer) String(str string, quote Quote, decodeUnicode bool) *Serializer {
	s.preValue(false)
	q := s.resolveQuote(str, quote)
	s.writeByte(q)
	s.writeStringBody(str, q, decodeUnicode)
	s.writeByte(q)
	s.afterValue()
	return s
}

func (s *Serializer) resolveQuote(str string, quote Quote) byte {
	if quote == Auto {
		hasDouble := strings.IndexByte(str, '"') >= 0
		hasSingle := strings.IndexByte(str, '\'') >= 0
		switch {
		case !hasDouble:
			return '"'
		case !hasSingle:
			return '\''
		default:
			return '"'
		}
	}
	return quote.rune()
}

func (s *Serializer) writeStringBody(str string, quote byte, decodeUnicode bool) {
	i := 0
	for i < len(str) {
		c := str[i]
		if c == quote || c == '\\' {
			s.writeByte('\\')
			s.writeByte(c)
			i++
			continue
		}
		if esc, ok := shortEscapes[c]; ok {
			s.writeByte('\\')
			s.writeByte(esc)
			i++
			continue
		}
		if isPrintableASCII(c) {
			s.writeByte(c)
			i++
			continue
		}
		if c < 0x80 {
			s.writeRaw(fmt.Sprintf(`\x%02x`, c))
			i++
			continue
		}
		if !decodeUnicode {
			s.writeByte(c)
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(str[i:])
		if r <= 0xffff {
			s.writeRaw(fmt.Sprintf(`\u%04x`, r))
		} else {
			s.writeRaw(fmt.Sprintf(`\U%08x`, r))
		}
		i += size
	}
}

// RawString emits str between a caller-chosen heredoc tag: r"tag(...)tag".
// The caller is responsible for picking a tag that does not occur as a
// substring of str followed by the closing quote; this is not validated
// here.
func (s *Serializer) RawString(str string, tag string) *Serializer {
	s.preValue(false)
	s.writeByte('r')
	s.writeByte('"')
	s.writeRaw(tag)
	s.writeByte('(')
	s.writeRaw(str)
	s.writeByte(')')
	s.writeRaw(tag)
	s.writeByte('"')
	s.afterValue()
	return s
}

// Bytes emits a base64 byte-string literal. When the encoded payload plus 8
// bytes exceeds TargetLineLength (and TargetLineLength is not 0), it is
// broken across indented lines inside the multi-line b64"( ... )" form
// instead of the bare b64"..." form. The column at which the literal starts
// is not taken into account.
func (s *Serializer) Bytes(data []byte) *Serializer {
	s.preValue(false)
	encoded := base64.StdEncoding.EncodeToString(data)
	s.writeRaw(`b64"`)
	if s.settings.TargetLineLength > 0 && len(encoded)+8 > int(s.settings.TargetLineLength) {
		s.writeMultilineBase64(encoded)
	} else {
		s.writeRaw(encoded)
	}
	s.writeByte('"')
	s.afterValue()
	return s
}

const base64LineChunk = 76

func (s *Serializer) writeMultilineBase64(encoded string) {
	s.writeByte('(')
	for i := 0; i < len(encoded); i += base64LineChunk {
		end := i + base64LineChunk
		if end > len(encoded) {
			end = len(encoded)
		}
		if s.settings.Linebreak != "" {
			s.writeRaw(s.settings.Linebreak)
			for d := 0; d < s.indentDepth()+1; d++ {
				s.writeRaw(s.settings.Indent)
			}
		}
		s.writeRaw(encoded[i:end])
	}
	if s.settings.Linebreak != "" {
		s.writeRaw(s.settings.Linebreak)
		for d := 0; d < s.indentDepth(); d++ {
			s.writeRaw(s.settings.Indent)
		}
	}
	s.writeByte(')')
}

func isIdentifierStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierCont(c byte) bool {
	return isIdentifierStart(c) || (c >= '0' && c <= '9')
}

func isPlainIdentifier(str string) bool {
	if str == "" || !isIdentifierStart(str[0]) {
		return false
	}
	for i := 1; i < len(str); i++ {
		if !isIdentifierCont(str[i]) {
			return false
		}
	}
	return true
}

// isObjectKeyShape additionally allows '.' and '-' between identifier
// segments, matching what an unquoted object key may look like.
func isObjectKeyShape(str string) bool {
	if str == "" {
		return false
	}
	segStart := true
	for i := 0; i < len(str); i++ {
		c := str[i]
		if c == '.' || c == '-' {
			if segStart {
				return false
			}
			segStart = true
			continue
		}
		if segStart {
			if !isIdentifierStart(c) {
				return false
			}
			segStart = false
			continue
		}
		if !isIdentifierCont(c) {
			return false
		}
	}
	return !segStart
}

// IdentifierOrString emits str bare if it is a valid identifier, otherwise
// falls back to a quoted string using the configured default quote.
func (s *Serializer) IdentifierOrString(str string) *Serializer {
	s.preValue(false)
	s.writeIdentifierOrString(str, false)
	s.afterValue()
	return s
}

func (s *Serializer) writeIdentifierOrString(str string, keySlot bool) {
	valid := isPlainIdentifier(str)
	if keySlot && !s.settings.PrettyPrint {
		// A key using '.'/'-' separators round-trips unambiguously only when
		// no pretty-printed whitespace can be mistaken for part of the key;
		// quote it whenever pretty-printing, per the open question in §9.
		valid = valid || isObjectKeyShape(str)
	}
	if valid {
		s.writeRaw(str)
		return
	}
	q := s.resolveQuote(str, s.settings.DefaultQuote)
	s.writeByte(q)
	s.writeStringBody(str, q, false)
	s.writeByte(q)
}
