// Package parser implements the jump parser: a single-pass, non-recursive
// scan over a lexer's token stream that yields one Element per call to
// Next, resuming on each call by switching over the state of its top stack
// frame rather than by recursing into per-container parse functions.
package parser

import "github.com/gojxc/jxc/token"

// ElementKind identifies what an Element represents in the document
// stream.
type ElementKind string

const (
	Invalid         ElementKind = "Invalid"
	Number          ElementKind = "Number"
	Bool            ElementKind = "Bool"
	Null            ElementKind = "Null"
	Bytes           ElementKind = "Bytes"
	String          ElementKind = "String"
	DateTime        ElementKind = "DateTime"
	ExpressionToken ElementKind = "ExpressionToken"
	Comment         ElementKind = "Comment"
	BeginArray      ElementKind = "BeginArray"
	EndArray        ElementKind = "EndArray"
	BeginExpression ElementKind = "BeginExpression"
	EndExpression   ElementKind = "EndExpression"
	BeginObject     ElementKind = "BeginObject"
	ObjectKey       ElementKind = "ObjectKey"
	EndObject       ElementKind = "EndObject"
)

// Element is the parser's unit of output: a kind, the token that anchors it
// (the value token for scalars and keys, the bracket token for container
// boundaries), and any annotation that preceded it.
//
// Annotation is a view into the Parser's own buffer and is only valid until
// the next call to Next; callers that need to retain it must copy.
type Element struct {
	Kind       ElementKind
	Token      token.Token
	Annotation []token.Token
}
