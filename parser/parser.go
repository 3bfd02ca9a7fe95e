package parser

import (
	"math"

	"github.com/gojxc/jxc/diag"
	"github.com/gojxc/jxc/lexer"
	"github.com/gojxc/jxc/token"
)

// maxBracketDepth bounds every nesting counter the parser tracks (array,
// object, expression paren/bracket/brace, and annotation angle-bracket
// depth).
const maxBracketDepth = math.MaxInt32 - 2

type frameKind uint8

const (
	frameArray frameKind = iota
	frameObject
	frameExpression
)

type objectState uint8

const (
	objectKey objectState = iota
	objectValue
)

// frame is one level of container nesting. containerSize counts entries
// already started (array values, or object pairs whose value has begun,
// including a nested container that is still open); the paren/bracket/brace depths
// are only meaningful for an expression frame, which tracks balance but
// does not push further frames for its own bracket tokens.
type frame struct {
	kind          frameKind
	containerSize int64
	objState      objectState
	parenDepth    int32
	bracketDepth  int32
	braceDepth    int32
}

// Parser turns a source buffer into a stream of Elements. Construct it with
// New, then call Next repeatedly; each true result makes one Element
// available via Value. A false result means either the document is
// complete (Err returns nil) or parsing failed (Err returns the
// diagnostic); once Err is non-nil every subsequent Next call returns
// false immediately.
type Parser struct {
	lex    *lexer.Lexer
	frames []frame

	tok        token.Token
	annotation []token.Token

	cur      Element
	err      *diag.Diagnostic
	rootDone bool
}

// New constructs a Parser over src.
func New(src string) *Parser {
	return &Parser{lex: lexer.New(src)}
}

// Value returns the element produced by the most recent successful Next
// call.
func (p *Parser) Value() Element { return p.cur }

// Err returns the diagnostic that stopped parsing, or nil if parsing has
// not failed (including the case where the document is simply complete).
func (p *Parser) Err() *diag.Diagnostic { return p.err }

// Next advances the parser by one element.
func (p *Parser) Next() bool {
	if p.err != nil {
		return false
	}
	p.annotation = p.annotation[:0]
	p.cur = Element{}

	if len(p.frames) == 0 {
		if p.rootDone {
			return p.finishRoot()
		}
		if !p.advanceSkipComments() {
			return false
		}
		if !p.skipLineBreaksValue() {
			return false
		}
		ok := p.parseAnnotatedValue()
		if ok && len(p.frames) == 0 {
			p.rootDone = true
		}
		return ok
	}

	top := &p.frames[len(p.frames)-1]
	switch top.kind {
	case frameArray:
		if !p.advanceSkipComments() {
			return false
		}
		return p.continueArray(top)
	case frameObject:
		if !p.advanceSkipComments() {
			return false
		}
		if top.objState == objectKey {
			return p.continueObjectKey(top)
		}
		return p.continueObjectValue(top)
	case frameExpression:
		if !p.advanceExpr() {
			return false
		}
		return p.continueExpr(top)
	default:
		p.fail(diag.Internal, p.tok.Start, p.tok.End, "unknown parser frame kind")
		return false
	}
}

// finishRoot runs once the single top-level value has been fully parsed:
// any trailing line breaks/comments are transparent, but anything else is a
// grammar violation since the document grammar admits exactly one value.
func (p *Parser) finishRoot() bool {
	if !p.advanceSkipComments() {
		return false
	}
	if !p.skipLineBreaksValue() {
		return false
	}
	if p.tok.Kind == token.EndOfStream {
		return false
	}
	p.fail(diag.GrammarViolation, p.tok.Start, p.tok.End, "unexpected content after the document's value")
	return false
}

func (p *Parser) endContainer(kind ElementKind) bool {
	p.frames = p.frames[:len(p.frames)-1]
	if len(p.frames) == 0 {
		p.rootDone = true
	}
	p.yield(kind)
	return true
}

func (p *Parser) yield(kind ElementKind) {
	p.cur = Element{Kind: kind, Token: p.tok, Annotation: p.annotation}
}

func (p *Parser) fail(kind diag.Kind, start, end int, format string, args ...any) {
	p.err = diag.New(kind, start, end, format, args...)
}

func (p *Parser) advance() bool {
	tok, d := p.lex.Next()
	if d != nil {
		p.err = d
		return false
	}
	p.tok = tok
	return true
}

func (p *Parser) advanceExpr() bool {
	tok, d := p.lex.NextExpr()
	if d != nil {
		p.err = d
		return false
	}
	p.tok = tok
	return true
}

func (p *Parser) advanceSkipComments() bool {
	if !p.advance() {
		return false
	}
	for p.tok.Kind == token.Comment {
		if !p.advance() {
			return false
		}
	}
	return true
}

func (p *Parser) skipLineBreaksValue() bool {
	for p.tok.Kind == token.LineBreak || p.tok.Kind == token.Comment {
		if !p.advance() {
			return false
		}
	}
	return true
}

// advanceSeparator scans past the separator between container entries:
// either a run of line breaks, a single comma, or both, stopping as soon as
// closeKind is seen. Comments are transparent throughout.
func (p *Parser) advanceSeparator(closeKind token.Kind) bool {
	foundComma := false
	foundLineBreak := false
	for {
		if p.tok.Kind == closeKind {
			return true
		}
		switch p.tok.Kind {
		case token.Comma:
			if foundComma {
				p.fail(diag.GrammarViolation, p.tok.Start, p.tok.End, "found multiple commas while scanning for a separator")
				return false
			}
			foundComma = true
			if !p.advanceSkipComments() {
				return false
			}
		case token.LineBreak:
			foundLineBreak = true
			if !p.advanceSkipComments() {
				return false
			}
		case token.Comment:
			if !p.advanceSkipComments() {
				return false
			}
		default:
			if foundComma || foundLineBreak {
				return true
			}
			p.fail(diag.GrammarViolation, p.tok.Start, p.tok.End, "missing separator")
			return false
		}
	}
}
