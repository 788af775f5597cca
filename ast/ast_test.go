package ast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPunctuationAlphabet(t *testing.T) {
	assert.Equal(t, []string{"(", ")", "*", "+", "-", "/", ";"}, Punctuation())

	kind, ok := LookupPunctuation(";")
	assert.True(t, ok)
	assert.Equal(t, Semicolon, kind)

	_, ok = LookupPunctuation("@")
	assert.False(t, ok)
	_, ok = LookupPunctuation("+-")
	assert.False(t, ok)
}

func TestIsPunctuationPrefix(t *testing.T) {
	tree := newPunctuationTree(map[string]TokenKind{
		"=":  Undefined,
		"==": Undefined,
		"/":  PunOperatorDivide,
	})
	prev := punctuation
	punctuation = tree
	t.Cleanup(func() { punctuation = prev })

	assert.True(t, IsPunctuationPrefix("="))
	assert.True(t, IsPunctuationPrefix("=="))
	assert.False(t, IsPunctuationPrefix("==="))
	assert.False(t, IsPunctuationPrefix("/="))
	assert.False(t, IsPunctuationPrefix("<"))
}

func TestTokenKind(t *testing.T) {
	assert.Equal(t, "PunOperatorPlus", PunOperatorPlus.String())
	assert.Equal(t, "TokenKind(99)", TokenKind(99).String())
	assert.True(t, Undefined.IsUndefined())
	assert.True(t, UndefinedPunctuation.IsUndefined())
	assert.False(t, EOF.IsUndefined())
	assert.True(t, LiteralFloat.IsLiteral())
	assert.False(t, Semicolon.IsLiteral())
}

func TestLocationBefore(t *testing.T) {
	a := Location{Line: 1, Ch: 9}
	b := Location{Line: 2, Ch: 1}
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
	assert.Equal(t, "(at line: 1, ch: 9)", a.String())
}

func TestValueString(t *testing.T) {
	cases := []struct {
		value Value
		kind  ValueKind
		want  string
	}{
		{Integer(42), IntegerKind, "42"},
		{Integer(-7), IntegerKind, "-7"},
		{SingleFloat(3.14), SingleFloatKind, "3.14"},
		{SingleFloat(3), SingleFloatKind, "3.0"},
		{SingleFloat(0.5), SingleFloatKind, "0.5"},
		{SingleFloat(float32(math.Inf(1))), SingleFloatKind, "+Inf"},
		{DoubleFloat(2.5), DoubleFloatKind, "2.5"},
		{Long(math.MinInt64), LongKind, "-9223372036854775808"},
		{UnsignedLong(math.MaxUint64), UnsignedLongKind, "18446744073709551615"},
		{UnsignedInteger(7), UnsignedIntegerKind, "7"},
		{Short(-3), ShortKind, "-3"},
		{UnsignedShort(65535), UnsignedShortKind, "65535"},
		{Byte(255), ByteKind, "255"},
		{SignedByte(-128), SignedByteKind, "-128"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.value.String())
		assert.Equal(t, c.kind, c.value.Kind())
	}
	assert.Equal(t, "UnsignedShort", UnsignedShortKind.String())
}

func TestNodeString(t *testing.T) {
	// -(1 + 2) * 3.5
	node := &BinaryExpression{
		Left: &UnaryExpression{
			Op: ArithmeticNegation,
			Value: &BinaryExpression{
				Left:  &Literal{Value: Integer(1)},
				Op:    Addition,
				Right: &Literal{Value: Integer(2)},
			},
		},
		Op:    Multiplication,
		Right: &Literal{Value: SingleFloat(3.5)},
	}
	assert.Equal(t, "((-(1 + 2)) * 3.5)", node.String())
}

func TestBinaryOperationFor(t *testing.T) {
	cases := map[TokenKind]BinaryOperation{
		PunOperatorPlus:     Addition,
		PunOperatorMinus:    Subtraction,
		PunOperatorMultiply: Multiplication,
		PunOperatorDivide:   Division,
	}
	for kind, want := range cases {
		got, ok := BinaryOperationFor(kind)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := BinaryOperationFor(PunParenOpen)
	assert.False(t, ok)
	assert.Equal(t, "/", Division.String())
}
