package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gojxc/jxc/diag"
	"github.com/gojxc/jxc/parser"
)

const dumpIndentSize = 2

// ElementPrinter walks a parser's Element stream and prints one indented
// line per element, tracking container depth itself since the stream is
// flat by construction.
type ElementPrinter struct {
	Indent int
	Buf    bytes.Buffer
}

func (p *ElementPrinter) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

func (p *ElementPrinter) line(format string, args ...any) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, args...))
	p.Buf.WriteString("\n")
}

// Visit prints el and adjusts indentation for the next call: a Begin*
// element increases indentation for what follows it, an End* element
// decreases it before printing its own line.
func (p *ElementPrinter) Visit(el parser.Element) {
	switch el.Kind {
	case parser.EndArray, parser.EndObject, parser.EndExpression:
		p.Indent -= dumpIndentSize
	}

	if len(el.Annotation) > 0 {
		var ann strings.Builder
		for _, t := range el.Annotation {
			ann.WriteString(t.Value)
		}
		p.line("%s [%s] %q", el.Kind, ann.String(), el.Token.Value)
	} else {
		p.line("%s %q", el.Kind, el.Token.Value)
	}

	switch el.Kind {
	case parser.BeginArray, parser.BeginObject, parser.BeginExpression:
		p.Indent += dumpIndentSize
	}
}

// Dump renders the full element stream of src as an indented tree, in the
// shape a developer would read to debug a parse rather than to reformat
// the document.
func Dump(src string) (string, *diag.Diagnostic) {
	p := parser.New(src)
	printer := &ElementPrinter{}
	for p.Next() {
		printer.Visit(p.Value())
	}
	if err := p.Err(); err != nil {
		err.Resolve(src)
		return "", err
	}
	return printer.Buf.String(), nil
}
