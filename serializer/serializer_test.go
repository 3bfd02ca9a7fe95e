package serializer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func render(settings Settings, build func(s *Serializer)) string {
	var buf bytes.Buffer
	s := New(&buf, settings)
	build(s)
	s.Flush()
	return buf.String()
}

func TestSerializer_CompactArray(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.BeginArray().Int(1, Decimal, "").Int(2, Decimal, "").Int(3, Decimal, "").EndArray()
	})
	assert.Equal(t, "[1,2,3]", out)
}

func TestSerializer_PrettyArray(t *testing.T) {
	out := render(DefaultSettings(), func(s *Serializer) {
		s.BeginArray().Int(1, Decimal, "").Int(2, Decimal, "").EndArray()
	})
	assert.Equal(t, "[1,\n    2\n]", out)
}

func TestSerializer_Object(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.BeginObject()
		s.Key("name").Sep().String("nova", Double, true)
		s.Key("count").Sep().Int(3, Decimal, "")
		s.EndObject()
	})
	assert.Equal(t, `{name:"nova",count:3}`, out)
}

func TestSerializer_NestedPretty(t *testing.T) {
	out := render(DefaultSettings(), func(s *Serializer) {
		s.BeginObject()
		s.Key("items").Sep().BeginArray().Int(1, Decimal, "").Int(2, Decimal, "").EndArray()
		s.EndObject()
	})
	assert.Equal(t, "{items: [1,\n        2\n    ]\n}", out)
}

func TestSerializer_Annotation(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.Annotate("vec3").BeginArray().Int(1, Decimal, "").Int(2, Decimal, "").Int(3, Decimal, "").EndArray()
	})
	assert.Equal(t, "vec3[1,2,3]", out)
}

func TestSerializer_AnnotationOnScalar(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.Annotate("px").Int(25, Decimal, "")
	})
	assert.Equal(t, "px 25", out)
}

func TestSerializer_FloatSpecial(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.BeginArray()
		s.Float(posInf(), -1, "")
		s.Float(negInf(), -1, "")
		s.Float(nan(), -1, "")
		s.EndArray()
	})
	assert.Equal(t, "[inf,-inf,nan]", out)
}

func TestSerializer_FloatPrecisionCountsDecimalPlaces(t *testing.T) {
	// the default precision budgets fractional digits, not significant
	// digits, so a wide integer part never eats into the fraction
	out := render(CompactSettings(), func(s *Serializer) {
		s.Float(123456789.078125, -1, "")
	})
	assert.Equal(t, "123456789.078125", out)
}

func TestSerializer_FloatTrimsTrailingZerosToOneDigit(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.BeginArray()
		s.Float(2.5, -1, "")
		s.Float(3.0, -1, "")
		s.EndArray()
	})
	assert.Equal(t, "[2.5,3.0]", out)
}

func TestSerializer_FloatFixedPrecisionKeepsZeros(t *testing.T) {
	settings := CompactSettings()
	settings.FloatFixedPrecision = true
	settings.DefaultFloatPrecision = 3
	out := render(settings, func(s *Serializer) {
		s.Float(1.5, -1, "")
	})
	assert.Equal(t, "1.500", out)
}

func TestSerializer_FloatZeroPrecisionRoundsToInt(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.BeginArray()
		s.Float(2.6, 0, "")
		s.Float(123.0, 0, "")
		s.Float(-2.6, 0, "")
		s.EndArray()
	})
	assert.Equal(t, "[3,123,-3]", out)
}

func TestSerializer_FloatPerCallPrecisionOverride(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.Float(1.23456, 2, "")
	})
	assert.Equal(t, "1.23", out)
}

func TestSerializer_HexInt(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.Uint(255, Hex, "")
	})
	assert.Equal(t, "0xff", out)
}

func TestSerializer_IdentifierOrStringFallsBack(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.BeginArray()
		s.IdentifierOrString("plain_ident")
		s.IdentifierOrString("has space")
		s.EndArray()
	})
	assert.Equal(t, `[plain_ident,"has space"]`, out)
}

func TestSerializer_ObjectKeyShapeAllowsDotsAndDashes(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.BeginObject()
		s.Key("a.b-c").Sep().Null()
		s.EndObject()
	})
	assert.Equal(t, "{a.b-c:null}", out)
}

func TestSerializer_StringEscaping(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.String("a\nb\tc", Double, true)
	})
	assert.Equal(t, `"a\nb\tc"`, out)
}

func TestSerializer_StringAutoQuotePrefersSingleWhenDoublePresent(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.String(`has "quote"`, Auto, true)
	})
	assert.Equal(t, `'has "quote"'`, out)
}

func TestSerializer_BytesBareForm(t *testing.T) {
	out := render(CompactSettings(), func(s *Serializer) {
		s.Bytes([]byte("hello"))
	})
	assert.Equal(t, `b64"aGVsbG8="`, out)
}

func TestSerializer_BytesMultilineFormWhenOverLineLength(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 120)
	out := render(DefaultSettings(), func(s *Serializer) {
		s.Bytes(data)
	})
	assert.True(t, strings.HasPrefix(out, "b64\"("))
	assert.True(t, strings.HasSuffix(out, ")\""))
	assert.Contains(t, out, "\n")
}

func TestSerializer_ContractErrorOnUnbalancedClose(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, CompactSettings())
	s.EndArray()
	assert.NotNil(t, s.Err())
}

func TestSerializer_ContractErrorLatches(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, CompactSettings())
	s.EndObject()
	assert.NotNil(t, s.Err())
	s.Int(1, Decimal, "")
	assert.NotNil(t, s.Err())
}

func TestSerializer_KeyValueAlternationEnforced(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, CompactSettings())
	s.BeginObject()
	s.Key("a")
	s.Key("b")
	assert.NotNil(t, s.Err())
}

func nan() float64 { var z float64; return z / z }
func posInf() float64 { var z float64; return 1 / z }
func negInf() float64 { var z float64; return -1 / z }
