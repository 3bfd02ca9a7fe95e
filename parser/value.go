package parser

import (
	"github.com/gojxc/jxc/diag"
	"github.com/gojxc/jxc/token"
)

// parseAnnotatedValue consumes an optional annotation, then a value, from
// the current lookahead token. It is the single entry point used anywhere
// the grammar allows `annotation? value` -- the document root, an array
// element, and an object's value slot.
func (p *Parser) parseAnnotatedValue() bool {
	if p.tok.Kind == token.ExclamationPoint || p.tok.Kind == token.Identifier {
		if d := p.parseAnnotation(); d != nil {
			p.err = d
			return false
		}
		if p.err != nil {
			return false
		}
	}
	return p.parseValueToken()
}

// parseValueToken interprets the current lookahead token as a value: a
// scalar yields its element directly; an opening bracket pushes a frame and
// yields the matching Begin* element. Nested contents are left for later
// Next calls to resume via the pushed frame -- this function never
// recurses into child values itself.
func (p *Parser) parseValueToken() bool {
	if !p.skipLineBreaksValue() {
		return false
	}

	switch p.tok.Kind {
	case token.SquareBracketOpen, token.ParenOpen, token.BraceOpen:
		if len(p.frames) >= maxBracketDepth {
			p.fail(diag.LimitExceeded, p.tok.Start, p.tok.End, "container nesting depth limit exceeded")
			return false
		}
	}

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
	case token.ByteString:
		p.yield(Bytes)
		return true
	case token.String:
		p.yield(String)
		return true
	case token.DateTime:
		p.yield(DateTime)
		return true
	case token.SquareBracketOpen:
		p.frames = append(p.frames, frame{kind: frameArray})
		p.yield(BeginArray)
		return true
	case token.ParenOpen:
		p.frames = append(p.frames, frame{kind: frameExpression, parenDepth: 1})
		p.yield(BeginExpression)
		return true
	case token.BraceOpen:
		p.frames = append(p.frames, frame{kind: frameObject, objState: objectKey})
		p.yield(BeginObject)
		return true
	default:
		p.fail(diag.GrammarViolation, p.tok.Start, p.tok.End, "expected a value, got %s", p.tok.Kind)
		return false
	}
}

// parseAnnotation consumes `('!')? dotted_ident ('<' generic_inner '>')?`
// starting from the current lookahead token (already known to be '!' or an
// Identifier), appending every consumed token to p.annotation. On return,
// p.tok holds the first token after the annotation.
func (p *Parser) parseAnnotation() *diag.Diagnostic {
	if p.tok.Kind == token.ExclamationPoint {
		p.annotation = append(p.annotation, p.tok)
		if !p.advanceSkipComments() {
			return p.err
		}
		if p.tok.Kind != token.Identifier {
			// a bare '!' with nothing after it is itself the whole annotation
			return nil
		}
	}

	if d := p.parseDottedIdent(); d != nil {
		return d
	}
	if p.tok.Kind != token.AngleBracketOpen {
		return nil
	}

	angleDepth := int32(1)
	parenDepth := int32(0)
	p.annotation = append(p.annotation, p.tok)

	for angleDepth > 0 {
		if !p.advanceSkipComments() {
			return p.err
		}

	handleToken:
		switch p.tok.Kind {
		case token.Identifier:
			if d := p.parseDottedIdent(); d != nil {
				return d
			}
			goto handleToken

		case token.ExclamationPoint, token.Asterisk, token.QuestionMark, token.Pipe, token.Ampersand,
			token.Equals, token.Comma,
			token.True, token.False, token.Null, token.Number, token.String, token.ByteString, token.DateTime:
			p.annotation = append(p.annotation, p.tok)

		case token.LineBreak:
			// tolerated inside an angle-bracket group, never recorded

		case token.AngleBracketOpen:
			angleDepth++
			if angleDepth > maxBracketDepth {
				return diag.New(diag.LimitExceeded, p.tok.Start, p.tok.End, "angle bracket depth limit exceeded in annotation")
			}
			p.annotation = append(p.annotation, p.tok)

		case token.AngleBracketClose:
			angleDepth--
			if angleDepth < 0 {
				return diag.New(diag.GrammarViolation, p.tok.Start, p.tok.End, "unmatched angle bracket in annotation")
			}
			p.annotation = append(p.annotation, p.tok)

		case token.ParenOpen:
			parenDepth++
			if parenDepth > maxBracketDepth {
				return diag.New(diag.LimitExceeded, p.tok.Start, p.tok.End, "parenthesis depth limit exceeded in annotation")
			}
			p.annotation = append(p.annotation, p.tok)

		case token.ParenClose:
			parenDepth--
			if parenDepth < 0 {
				return diag.New(diag.GrammarViolation, p.tok.Start, p.tok.End, "unmatched parenthesis in annotation")
			}
			p.annotation = append(p.annotation, p.tok)

		default:
			return diag.New(diag.GrammarViolation, p.tok.Start, p.tok.End, "unexpected %s token in annotation", p.tok.Kind)
		}
	}

	if parenDepth != 0 {
		return diag.New(diag.GrammarViolation, p.tok.Start, p.tok.End, "unmatched parenthesis in annotation")
	}

	if !p.advanceSkipComments() {
		return p.err
	}
	return nil
}

// parseDottedIdent consumes Identifier ('.' Identifier)* starting from the
// current lookahead token (already known to be an Identifier), leaving
// p.tok positioned at the token after the chain.
func (p *Parser) parseDottedIdent() *diag.Diagnostic {
	for p.tok.Kind == token.Identifier {
		p.annotation = append(p.annotation, p.tok)
		if !p.advanceSkipComments() {
			return p.err
		}
		if p.tok.Kind != token.Period {
			return nil
		}
		p.annotation = append(p.annotation, p.tok)
		if !p.advanceSkipComments() {
			return p.err
		}
	}
	return diag.New(diag.GrammarViolation, p.tok.Start, p.tok.End, "an annotation may not end with a period")
}
