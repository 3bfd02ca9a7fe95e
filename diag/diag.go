// Package diag implements the error-reporting record shared by the lexer,
// decoders, parser, and serializer: a byte-span diagnostic that can render
// itself against a source buffer on demand.
package diag

import (
	"fmt"
	"strings"
)

// Kind categorizes a Diagnostic for callers that want to switch on error
// class instead of matching Message text.
type Kind uint8

const (
	// Internal marks a programming-error assertion failure rather than a
	// problem with caller-supplied input.
	Internal Kind = iota
	// LexicalMalformed covers unterminated strings, bad escapes, invalid
	// base64 characters, disallowed newlines, and malformed number shapes.
	LexicalMalformed
	// GrammarViolation covers unexpected tokens, missing separators, and
	// misplaced annotations.
	GrammarViolation
	// LimitExceeded covers nesting-depth and heredoc-length overruns.
	LimitExceeded
	// NumericOutOfRange covers a decoded number that does not fit its
	// target type.
	NumericOutOfRange
	// NumericDomain covers a float literal kind (nan/inf) decoded into an
	// integer target, or a negative exponent on an integer target.
	NumericDomain
	// EncodingError covers base64 length errors, string-buffer undersizing,
	// and invalid datetime shapes.
	EncodingError
)

// Diagnostic is a single parse or decode failure: a message plus the byte
// span it refers to. Line and Col are zero until Resolve is called against
// the originating source buffer.
type Diagnostic struct {
	Kind    Kind
	Message string
	Start   int
	End     int
	Line    int // 1-indexed once resolved, 0 otherwise
	Col     int // 1-indexed once resolved, 0 otherwise
}

// New builds a Diagnostic with an unresolved line/col.
func New(kind Kind, start, end int, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Start:   start,
		End:     end,
	}
}

// Error implements the standard error interface using the unresolved
// (index-based) rendering, so a *Diagnostic can be returned and handled
// anywhere a plain error is expected.
func (d *Diagnostic) Error() string {
	return d.Render("")
}

// Resolve computes Line and Col by counting line terminators in the prefix
// of src up to Start. It is a no-op if Start is negative or past the end
// of src. Resolve is idempotent and safe to call multiple times.
func (d *Diagnostic) Resolve(src string) {
	if d.Start < 0 || d.Start > len(src) {
		return
	}
	line := 1
	col := 1
	for i := 0; i < d.Start && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	d.Line = line
	d.Col = col
}

// Render produces the textual form described by the format:
//
//	<message> (line <L>, col <C>, `<excerpt>`)
//
// when Line/Col have been resolved (via Resolve), or
//
//	<message> (index <S>..<E>, `<excerpt>`)
//
// otherwise. When src is non-empty, excerpt quotes the referenced slice with
// non-printable bytes escaped; when src is empty (or the span doesn't fit)
// the excerpt is omitted.
func (d *Diagnostic) Render(src string) string {
	var loc string
	if d.Line > 0 {
		loc = fmt.Sprintf("line %d, col %d", d.Line, d.Col)
	} else {
		loc = fmt.Sprintf("index %d..%d", d.Start, d.End)
	}

	excerpt, ok := excerptOf(src, d.Start, d.End)
	if !ok {
		return fmt.Sprintf("%s (%s)", d.Message, loc)
	}
	return fmt.Sprintf("%s (%s, `%s`)", d.Message, loc, excerpt)
}

func excerptOf(src string, start, end int) (string, bool) {
	if src == "" {
		return "", false
	}
	if start < 0 {
		start = 0
	}
	if end > len(src) {
		end = len(src)
	}
	if end < start {
		end = start
	}
	if start > len(src) {
		return "", false
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		escapeByte(&b, src[i])
	}
	return b.String(), true
}

func escapeByte(b *strings.Builder, c byte) {
	switch c {
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\t':
		b.WriteString(`\t`)
	case '`':
		b.WriteString("'")
	default:
		if c < 0x20 || c == 0x7f {
			fmt.Fprintf(b, `\x%02x`, c)
		} else {
			b.WriteByte(c)
		}
	}
}
