package interpreter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thiremani/numel/token"
)

func opToken(sym string) token.Token {
	return token.Token{Type: token.Symbols[[]rune(sym)[0]], Literal: sym, FileName: "ops", Line: 1, Column: 1}
}

func TestApplyScalars(t *testing.T) {
	tests := []struct {
		op          string
		left, right float64
		expected    float64
	}{
		{token.SYM_ADD, 1.5, 2.5, 4},
		{token.SYM_SUB, 1.5, 2.5, -1},
		{token.SYM_MUL, 1.5, 2, 3},
		{token.SYM_QUO, 1, 4, 0.25},
		{token.SYM_POW, 2, 10, 1024},
		{token.SYM_POW, 9, 0.5, 3},
		{token.SYM_POW, 2, -2, 0.25},
	}

	for _, tt := range tests {
		v, err := Apply(opToken(tt.op), Scalar(tt.left), Scalar(tt.right))
		require.NoError(t, err)
		assert.Equal(t, Scalar(tt.expected), v, "%v %s %v", tt.left, tt.op, tt.right)
	}

	v, err := Apply(opToken(token.SYM_QUO), Scalar(1), Scalar(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(v.(Scalar)), 1))
}

func TestApplyBroadcast(t *testing.T) {
	nested := List{Scalar(1), List{Scalar(2), Scalar(3)}}

	v, err := Apply(opToken(token.SYM_MUL), nested, Scalar(2))
	require.NoError(t, err)
	assert.Equal(t, List{Scalar(2), List{Scalar(4), Scalar(6)}}, v)

	v, err = Apply(opToken(token.SYM_SUB), Scalar(10), nested)
	require.NoError(t, err)
	assert.Equal(t, List{Scalar(9), List{Scalar(8), Scalar(7)}}, v)

	v, err = Apply(opToken(token.SYM_ADD), nested, nested)
	require.NoError(t, err)
	assert.Equal(t, List{Scalar(2), List{Scalar(4), Scalar(6)}}, v)

	v, err = Apply(opToken(token.SYM_ADD), List{}, List{})
	require.NoError(t, err)
	assert.Equal(t, List{}, v)
}

func TestApplyLengthMismatch(t *testing.T) {
	_, err := Apply(opToken(token.SYM_ADD), List{Scalar(1)}, List{Scalar(1), Scalar(2)})
	require.Error(t, err)
	re, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Equal(t, InvalidListLength, re.Kind)
	assert.Equal(t, "ops:1:1: lists must be the same length: 1 != 2", re.Error())

	// inner lengths are checked level by level
	_, err = Apply(opToken(token.SYM_ADD), List{List{Scalar(1)}}, List{List{}})
	assert.Error(t, err)
}

func TestApplyUnknownOperator(t *testing.T) {
	assert.Panics(t, func() {
		Apply(token.Token{Literal: "%"}, Scalar(1), Scalar(2))
	})
}
