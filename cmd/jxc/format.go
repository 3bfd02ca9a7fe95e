/*
File   : jxc/cmd/jxc/format.go

Package main's formatting path: parse a JXC document with parser.Parser,
decode each scalar token with the decode package, and feed the decoded
values back through a serializer.Serializer. This is the thin "driving the
serializer directly" front door the core packages are built to support --
everything here is glue, not grammar.
*/
package main

import (
	"strings"

	"github.com/gojxc/jxc/decode"
	"github.com/gojxc/jxc/diag"
	"github.com/gojxc/jxc/parser"
	"github.com/gojxc/jxc/serializer"
	"github.com/gojxc/jxc/token"
)

// Format parses src and re-emits it under settings. It exercises the full
// pipeline: Lexer (via Parser), Jump parser, the decode package's scalar
// decoders, and the Serializer.
func Format(src string, settings serializer.Settings) (string, *diag.Diagnostic) {
	p := parser.New(src)
	var buf strings.Builder
	s := serializer.New(&buf, settings)

	for p.Next() {
		el := p.Value()
		writeAnnotation(s, el.Annotation)
		if err := writeElement(s, el); err != nil {
			err.Resolve(src)
			return "", err
		}
	}
	if err := p.Err(); err != nil {
		err.Resolve(src)
		return "", err
	}
	if s.Err() != nil {
		return "", diag.New(diag.Internal, 0, 0, "serializer: %s", s.Err())
	}
	if err := s.Flush(); err != nil {
		return "", diag.New(diag.Internal, 0, 0, "flush: %s", err)
	}
	return buf.String(), nil
}

func writeAnnotation(s *serializer.Serializer, toks []token.Token) {
	if len(toks) == 0 {
		return
	}
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Value)
	}
	s.Annotate(b.String())
}

func writeElement(s *serializer.Serializer, el parser.Element) *diag.Diagnostic {
	tok := el.Token
	switch el.Kind {
	case parser.BeginArray:
		s.BeginArray()
	case parser.EndArray:
		s.EndArray()
	case parser.BeginObject:
		s.BeginObject()
	case parser.EndObject:
		s.EndObject()
	case parser.BeginExpression:
		s.BeginExpression()
	case parser.EndExpression:
		s.EndExpression()
	case parser.ExpressionToken:
		s.ExpressionToken(tok.Value)
	case parser.Comment:
		s.Comment(strings.TrimPrefix(tok.Value, "#"))
	case parser.ObjectKey:
		key, err := decodeKeyText(tok)
		if err != nil {
			return err
		}
		s.Key(key).Sep()
	case parser.Null:
		s.Null()
	case parser.Bool:
		s.Bool(tok.Kind == token.True)
	case parser.Number:
		if err := writeNumber(s, tok); err != nil {
			return err
		}
	case parser.String:
		if err := writeString(s, tok); err != nil {
			return err
		}
	case parser.Bytes:
		data, err := decode.DecodeBytes(tok)
		if err != nil {
			return err
		}
		s.Bytes(data)
	case parser.DateTime:
		if decode.IsDateOnly(tok) {
			d, err := decode.ParseDate(tok)
			if err != nil {
				return err
			}
			s.DateTime(decode.DateTime{Date: d, TZ: decode.TZUTC})
		} else {
			dt, err := decode.ParseDateTime(tok)
			if err != nil {
				return err
			}
			s.DateTime(dt)
		}
	}
	return nil
}

// decodeKeyText turns an ObjectKey token into the plain string IdentifierOrString
// needs, decoding string-shaped keys and passing every other key kind
// through verbatim (true/false/null/number keys have no escapes to decode).
func decodeKeyText(tok token.Token) (string, *diag.Diagnostic) {
	if tok.Kind != token.String {
		return tok.Value, nil
	}
	buf := make([]byte, decode.StringBufferSize(tok))
	n, err := decode.DecodeStringInto(tok, buf)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

func writeString(s *serializer.Serializer, tok token.Token) *diag.Diagnostic {
	buf := make([]byte, decode.StringBufferSize(tok))
	n, err := decode.DecodeStringInto(tok, buf)
	if err != nil {
		return err
	}
	str := string(buf[:n])
	if decode.IsRawString(tok) {
		s.RawString(str, tok.Tag)
		return nil
	}
	s.String(str, serializer.Auto, false)
	return nil
}

func writeNumber(s *serializer.Serializer, tok token.Token) *diag.Diagnostic {
	parts, err := decode.SplitNumber(tok)
	if err != nil {
		return err
	}

	if parts.Kind != decode.Finite || parts.HasFraction || (parts.HasExponent && parts.Prefix == "") {
		f, err := parts.Float64()
		if err != nil {
			return err
		}
		s.Float(f, -1, parts.Suffix)
		return nil
	}

	base := numberBase(parts.Prefix)
	if parts.Sign == '-' {
		v, err := parts.Int64()
		if err != nil {
			return err
		}
		s.Int(v, base, parts.Suffix)
		return nil
	}
	v, err := parts.Uint64()
	if err != nil {
		return err
	}
	s.Uint(v, base, parts.Suffix)
	return nil
}

func numberBase(prefix string) serializer.NumberBase {
	switch prefix {
	case "0x", "0X":
		return serializer.Hex
	case "0o", "0O":
		return serializer.Octal
	case "0b", "0B":
		return serializer.Binary
	default:
		return serializer.Decimal
	}
}
