package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/gojxc/jxc/token"
)

// drain runs the parser to completion and returns the elements plus any
// error. Annotation slices are copied since they are invalidated on the
// next Next call.
func drain(src string) ([]Element, error) {
	p := New(src)
	var out []Element
	for p.Next() {
		el := p.Value()
		if len(el.Annotation) > 0 {
			cp := make([]token.Token, len(el.Annotation))
			copy(cp, el.Annotation)
			el.Annotation = cp
		}
		out = append(out, el)
	}
	if err := p.Err(); err != nil {
		return out, err
	}
	return out, nil
}

func kinds(els []Element) []ElementKind {
	out := make([]ElementKind, len(els))
	for i, e := range els {
		out[i] = e.Kind
	}
	return out
}

func TestParser_ScalarRoot(t *testing.T) {
	els, err := drain(`42`)
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{Number}, kinds(els))
}

func TestParser_TrailingContentAfterRootIsError(t *testing.T) {
	_, err := drain(`1 2`)
	assert.Error(t, err)
}

func TestParser_TrailingLineBreaksAndCommentsAreTolerated(t *testing.T) {
	els, err := drain("42\n# trailing note\n")
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{Number}, kinds(els))
}

func TestParser_Array(t *testing.T) {
	els, err := drain(`[1, 2, 3]`)
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{BeginArray, Number, Number, Number, EndArray}, kinds(els))
}

func TestParser_ArrayTrailingComma(t *testing.T) {
	els, err := drain("[1, 2,]")
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{BeginArray, Number, Number, EndArray}, kinds(els))
}

func TestParser_ArrayLineBreakSeparators(t *testing.T) {
	els, err := drain("[\n  1\n  2\n]")
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{BeginArray, Number, Number, EndArray}, kinds(els))
}

func TestParser_ArrayDoubleCommaIsError(t *testing.T) {
	_, err := drain(`[1,,2]`)
	assert.Error(t, err)
}

func TestParser_NestedArray(t *testing.T) {
	els, err := drain(`[1, [2, 3], 4]`)
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{
		BeginArray, Number, BeginArray, Number, Number, EndArray, Number, EndArray,
	}, kinds(els))
}

func TestParser_Object(t *testing.T) {
	els, err := drain(`{a: 1, b: 2}`)
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{BeginObject, ObjectKey, Number, ObjectKey, Number, EndObject}, kinds(els))
}

func TestParser_ObjectCommentBeforeKeyIsTransparent(t *testing.T) {
	els, err := drain("{\n  # a note\n  a: 1\n}")
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{BeginObject, ObjectKey, Number, EndObject}, kinds(els))
}

func TestParser_ObjectMissingColonIsError(t *testing.T) {
	_, err := drain(`{a 1}`)
	assert.Error(t, err)
}

func TestParser_ObjectStringKey(t *testing.T) {
	els, err := drain(`{"a b": 1}`)
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{BeginObject, ObjectKey, Number, EndObject}, kinds(els))
}

func TestParser_Annotation(t *testing.T) {
	p := New(`vec3[1, 2, 3]`)
	assert.True(t, p.Next())
	el := p.Value()
	assert.Equal(t, BeginArray, el.Kind)
	assert.Len(t, el.Annotation, 1)
	assert.Equal(t, "vec3", el.Annotation[0].Value)
}

func TestParser_AnnotationDotted(t *testing.T) {
	p := New(`a.b.c null`)
	assert.True(t, p.Next())
	el := p.Value()
	assert.Equal(t, Null, el.Kind)
	assert.Equal(t, []string{"a", ".", "b", ".", "c"}, annotationValues(el.Annotation))
}

func TestParser_AnnotationWithGeneric(t *testing.T) {
	p := New(`map<string, i32>{a: 1}`)
	assert.True(t, p.Next())
	el := p.Value()
	assert.Equal(t, BeginObject, el.Kind)
	assert.True(t, len(el.Annotation) > 1)
}

func TestParser_AnnotationTrailingPeriodIsError(t *testing.T) {
	_, err := drain(`a. 1`)
	assert.Error(t, err)
}

func TestParser_AnnotationUnmatchedAngleIsError(t *testing.T) {
	_, err := drain(`a<string 1`)
	assert.Error(t, err)
}

func TestParser_Expression(t *testing.T) {
	els, err := drain(`(1 + 2)`)
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{BeginExpression, Number, ExpressionToken, Number, EndExpression}, kinds(els))
}

func TestParser_ExpressionNestedBracketsAreFlatTokens(t *testing.T) {
	els, err := drain(`(a[0] + {b})`)
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{
		BeginExpression, ExpressionToken, ExpressionToken, Number, ExpressionToken,
		ExpressionToken, ExpressionToken, ExpressionToken, ExpressionToken, EndExpression,
	}, kinds(els))
}

func TestParser_ExpressionUnmatchedBracketIsError(t *testing.T) {
	_, err := drain(`(a])`)
	assert.Error(t, err)
}

func TestParser_ExpressionCommentIsStandaloneElement(t *testing.T) {
	els, err := drain("(a # note\n b)")
	assert.NoError(t, err)
	// the line break after the comment is itself a token of the inner
	// stream, so it surfaces like any other expression token
	assert.Equal(t, []ElementKind{
		BeginExpression, ExpressionToken, Comment, ExpressionToken, ExpressionToken, EndExpression,
	}, kinds(els))
	assert.Equal(t, "# note", els[2].Token.Value)
	assert.Equal(t, "\n", els[3].Token.Value)
}

func TestParser_ExpressionSignsAreStandalonePunctuation(t *testing.T) {
	els, err := drain(`(-1)`)
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{BeginExpression, ExpressionToken, Number, EndExpression}, kinds(els))
}

func TestParser_BytesAndStringAndDateTime(t *testing.T) {
	els, err := drain(`["hi", b64"aGk=", dt"2024-01-02"]`)
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{BeginArray, String, Bytes, DateTime, EndArray}, kinds(els))
}

func TestParser_MixedScalarArray(t *testing.T) {
	els, err := drain(`[1, 2, true, null, 'string', dt'1996-06-07']`)
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{
		BeginArray, Number, Number, Bool, Null, String, DateTime, EndArray,
	}, kinds(els))
}

func TestParser_NumberSuffixesInsideObject(t *testing.T) {
	els, err := drain(`{ x: 50px, y: 25%, url: r"heredoc(raw "string" body)heredoc" }`)
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{
		BeginObject, ObjectKey, Number, ObjectKey, Number, ObjectKey, String, EndObject,
	}, kinds(els))
	assert.Equal(t, "px", els[2].Token.Tag)
	assert.Equal(t, "%", els[4].Token.Tag)
	assert.Equal(t, "heredoc", els[6].Token.Tag)
}

func TestParser_AnnotatedExpression(t *testing.T) {
	els, err := drain(`!Foo<int, float>( a + b * 2 )`)
	assert.NoError(t, err)
	assert.Equal(t, []ElementKind{
		BeginExpression, ExpressionToken, ExpressionToken, ExpressionToken,
		ExpressionToken, Number, EndExpression,
	}, kinds(els))
	assert.Equal(t, []string{"!", "Foo", "<", "int", ",", "float", ">"}, annotationValues(els[0].Annotation))
	assert.Empty(t, els[1].Annotation)
}

func TestParser_SpansAreMonotonic(t *testing.T) {
	els, err := drain("{\n  a: [1, vec2[2, 3]]\n  b: (x + 1)\n}")
	assert.NoError(t, err)
	prev := -1
	for _, el := range els {
		assert.GreaterOrEqual(t, el.Token.Start, prev)
		prev = el.Token.Start
	}
}

func TestParser_BracketBalanceOnSuccess(t *testing.T) {
	els, err := drain(`[{a: (1 + [2])}, [], {}]`)
	assert.NoError(t, err)
	depth := 0
	for _, el := range els {
		switch el.Kind {
		case BeginArray, BeginObject, BeginExpression:
			depth++
		case EndArray, EndObject, EndExpression:
			depth--
		}
		assert.GreaterOrEqual(t, depth, 0)
	}
	assert.Equal(t, 0, depth)
}

func TestParser_AnnotationNeverOnEndOrKeyElements(t *testing.T) {
	els, err := drain(`{a: vec3[1, 2, 3], b: t<u>(x)}`)
	assert.NoError(t, err)
	for _, el := range els {
		switch el.Kind {
		case EndArray, EndObject, EndExpression, ObjectKey, ExpressionToken, Comment:
			assert.Empty(t, el.Annotation, "kind=%s", el.Kind)
		}
	}
}

func annotationValues(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Value
	}
	return out
}
