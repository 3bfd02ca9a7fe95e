package parser

import (
	"github.com/gojxc/jxc/diag"
	"github.com/gojxc/jxc/token"
)

// continueArray resumes an array frame. The caller has already advanced
// past comments; top.containerSize counts elements already yielded.
func (p *Parser) continueArray(top *frame) bool {
	if top.containerSize <= 0 {
		if !p.skipLineBreaksValue() {
			return false
		}
		if p.tok.Kind == token.SquareBracketClose {
			return p.endContainer(EndArray)
		}
		top.containerSize++
		return p.parseAnnotatedValue()
	}

	if !p.advanceSeparator(token.SquareBracketClose) {
		return false
	}
	if p.tok.Kind == token.SquareBracketClose {
		return p.endContainer(EndArray)
	}
	top.containerSize++
	return p.parseAnnotatedValue()
}

// continueObjectKey resumes an object frame that is expecting a key (or the
// closing brace). Comments and line breaks are transparent here; a Comment
// element only ever surfaces inside an expression.
func (p *Parser) continueObjectKey(top *frame) bool {
	if top.containerSize > 0 {
		if !p.advanceSeparator(token.BraceClose) {
			return false
		}
		if p.tok.Kind == token.BraceClose {
			return p.endContainer(EndObject)
		}
	}

	if !p.skipLineBreaksValue() {
		return false
	}

	switch p.tok.Kind {
	case token.BraceClose:
		return p.endContainer(EndObject)
	case token.String, token.Null, token.Number, token.True, token.False, token.Identifier:
		top.objState = objectValue
		p.yield(ObjectKey)
		return true
	default:
		p.fail(diag.GrammarViolation, p.tok.Start, p.tok.End, "expected an object key, got %s", p.tok.Kind)
		return false
	}
}

// continueObjectValue resumes an object frame immediately after a key has
// been yielded: it expects ':' then an annotated value.
func (p *Parser) continueObjectValue(top *frame) bool {
	if !p.skipLineBreaksValue() {
		return false
	}
	if p.tok.Kind != token.Colon {
		p.fail(diag.GrammarViolation, p.tok.Start, p.tok.End, "expected ':' after object key, got %s", p.tok.Kind)
		return false
	}
	if !p.advanceSkipComments() {
		return false
	}
	if !p.skipLineBreaksValue() {
		return false
	}
	top.objState = objectKey
	top.containerSize++
	return p.parseAnnotatedValue()
}

// continueExpr resumes an expression frame. Every token inside an
// expression is surfaced as an ExpressionToken (scalars and comments keep
// their own kind); brackets never push new frames here, they only adjust
// the frame's own balance counters. The expression ends when its own
// opening paren's matching close is reached.
func (p *Parser) continueExpr(top *frame) bool {
	switch p.tok.Kind {
	case token.True, token.False:
		p.yield(Bool)
		return true
	case token.Null:
		p.yield(Null)
		return true
	case token.Number:
		p.yield(Number)
		return true
	case token.String:
		p.yield(String)
		return true
	case token.DateTime:
		p.yield(DateTime)
		return true
	case token.ByteString:
		p.yield(Bytes)
		return true
	case token.Comment:
		p.yield(Comment)
		return true

	case token.SquareBracketOpen:
		top.bracketDepth++
		if top.bracketDepth > maxBracketDepth {
			p.fail(diag.LimitExceeded, p.tok.Start, p.tok.End, "square bracket depth limit exceeded in expression")
			return false
		}
		p.yield(ExpressionToken)
		return true
	case token.SquareBracketClose:
		top.bracketDepth--
		if top.bracketDepth < 0 {
			p.fail(diag.GrammarViolation, p.tok.Start, p.tok.End, "unmatched square bracket in expression")
			return false
		}
		p.yield(ExpressionToken)
		return true

	case token.BraceOpen:
		top.braceDepth++
		if top.braceDepth > maxBracketDepth {
			p.fail(diag.LimitExceeded, p.tok.Start, p.tok.End, "curly brace depth limit exceeded in expression")
			return false
		}
		p.yield(ExpressionToken)
		return true
	case token.BraceClose:
		top.braceDepth--
		if top.braceDepth < 0 {
			p.fail(diag.GrammarViolation, p.tok.Start, p.tok.End, "unmatched curly brace in expression")
			return false
		}
		p.yield(ExpressionToken)
		return true

	case token.ParenOpen:
		top.parenDepth++
		if top.parenDepth > maxBracketDepth {
			p.fail(diag.LimitExceeded, p.tok.Start, p.tok.End, "parenthesis depth limit exceeded in expression")
			return false
		}
		p.yield(ExpressionToken)
		return true
	case token.ParenClose:
		top.parenDepth--
		if top.parenDepth < 0 {
			p.fail(diag.GrammarViolation, p.tok.Start, p.tok.End, "unmatched parenthesis in expression")
			return false
		}
		if top.parenDepth == 0 {
			return p.endContainer(EndExpression)
		}
		p.yield(ExpressionToken)
		return true

	case token.Identifier, token.Comma, token.Colon, token.AtSymbol, token.LineBreak,
		token.Pipe, token.Ampersand, token.ExclamationPoint, token.Equals,
		token.Plus, token.Minus, token.Asterisk, token.Slash, token.Backslash,
		token.Percent, token.Caret, token.Period, token.QuestionMark, token.Tilde,
		token.Backtick, token.Semicolon, token.AngleBracketOpen, token.AngleBracketClose:
		p.yield(ExpressionToken)
		return true

	default:
		p.fail(diag.GrammarViolation, p.tok.Start, p.tok.End, "unexpected %s token while parsing an expression", p.tok.Kind)
		return false
	}
}
