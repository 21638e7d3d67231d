package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/texprlang/texpr/lexer"
)

func TestParser_ParseExpression_IntegerLiteral(t *testing.T) {

	src := `12`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)
	assert.NotNil(t, root)

	exp, can := root.Child.(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, int64(12), exp.Value)
	assert.Equal(t, "12", root.Literal())
}

func TestParser_ParseExpression_HexIntegerLiteral(t *testing.T) {

	src := `0x1A2B`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	exp, can := root.Child.(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, int64(6699), exp.Value)
}

func TestParser_ParseExpression_FloatLiteral(t *testing.T) {

	src := `1.5e3`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	exp, can := root.Child.(*FloatLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, 1500.0, exp.Value)
}

func TestParser_ParseExpression_StringLiteral(t *testing.T) {

	src := `'aAb'`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	exp, can := root.Child.(*StringLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "aAb", exp.Value)
}

func TestParser_ParseExpression_StringUnicodeEscape(t *testing.T) {

	src := `'\u0041\u00e9'`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	exp, can := root.Child.(*StringLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "Aé", exp.Value)
}

func TestParser_ParseExpression_NullLiteral(t *testing.T) {

	src := `null`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	_, can := root.Child.(*NullLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "null", root.Literal())
}

func TestParser_ParseExpression_BooleanLiterals(t *testing.T) {

	par := NewParser(`true`)
	root, err := par.ParseExpression()
	assert.Nil(t, err)
	exp, can := root.Child.(*BooleanLiteralExpressionNode)
	assert.True(t, can)
	assert.True(t, exp.Value)

	par = NewParser(`false`)
	root, err = par.ParseExpression()
	assert.Nil(t, err)
	exp, can = root.Child.(*BooleanLiteralExpressionNode)
	assert.True(t, can)
	assert.False(t, exp.Value)
}

func TestParser_ParseExpression_MulBindsTighterThanAdd(t *testing.T) {

	src := `1 + 2 * 3`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	add, can := root.Child.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.PLUS_OP, add.Operation.Type)

	left, can := add.Left.(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, int64(1), left.Value)

	mul, can := add.Right.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.MUL_OP, mul.Operation.Type)

	mulLeft, can := mul.Left.(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, int64(2), mulLeft.Value)
	mulRight, can := mul.Right.(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, int64(3), mulRight.Value)
}

func TestParser_ParseExpression_SamePrecedenceIsLeftAssociative(t *testing.T) {

	src := `1 - 2 + 3`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	add, can := root.Child.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.PLUS_OP, add.Operation.Type)

	sub, can := add.Left.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.MINUS_OP, sub.Operation.Type)
}

func TestParser_ParseExpression_RelationalBindsTighterThanEquality(t *testing.T) {

	src := `2 < 3 == true`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	eq, can := root.Child.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.EQ_OP, eq.Operation.Type)

	lt, can := eq.Left.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.LT_OP, lt.Operation.Type)
}

func TestParser_ParseExpression_AndBindsTighterThanOr(t *testing.T) {

	src := `$a and $b or $c`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	or, can := root.Child.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.OR_OP, or.Operation.Type)

	and, can := or.Left.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.AND_OP, and.Operation.Type)
}

func TestParser_ParseExpression_UnaryBindsTighterThanBinary(t *testing.T) {

	src := `-2 * 3`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	mul, can := root.Child.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.MUL_OP, mul.Operation.Type)

	neg, can := mul.Left.(*UnaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.MINUS_OP, neg.Operation.Type)
}

func TestParser_ParseExpression_NotWithAnd(t *testing.T) {

	src := `not $a and $b`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	and, can := root.Child.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.AND_OP, and.Operation.Type)

	not, can := and.Left.(*UnaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.NOT_OP, not.Operation.Type)
}

func TestParser_ParseExpression_ChainedUnary(t *testing.T) {

	src := `- -2`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	outer, can := root.Child.(*UnaryExpressionNode)
	assert.True(t, can)
	inner, can := outer.Right.(*UnaryExpressionNode)
	assert.True(t, can)
	_, can = inner.Right.(*IntegerLiteralExpressionNode)
	assert.True(t, can)
}

func TestParser_ParseExpression_BinaryMinusAfterOperand(t *testing.T) {

	src := `$a - 1`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	sub, can := root.Child.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.MINUS_OP, sub.Operation.Type)
	_, can = sub.Left.(*DataRefExpressionNode)
	assert.True(t, can)
}

func TestParser_ParseExpression_TernaryRightAssociative(t *testing.T) {

	src := `a ? b : c ? d : e`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	outer, can := root.Child.(*ConditionalExpressionNode)
	assert.True(t, can)

	cond, can := outer.Condition.(*GlobalExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "a", cond.Name)

	trueExpr, can := outer.TrueExpr.(*GlobalExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "b", trueExpr.Name)

	inner, can := outer.FalseExpr.(*ConditionalExpressionNode)
	assert.True(t, can)
	innerCond, can := inner.Condition.(*GlobalExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "c", innerCond.Name)
}

func TestParser_ParseExpression_TernaryNestedInTrueBranch(t *testing.T) {

	src := `a ? b ? c : d : e`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	outer, can := root.Child.(*ConditionalExpressionNode)
	assert.True(t, can)

	inner, can := outer.TrueExpr.(*ConditionalExpressionNode)
	assert.True(t, can)
	innerCond, can := inner.Condition.(*GlobalExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "b", innerCond.Name)

	falseExpr, can := outer.FalseExpr.(*GlobalExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "e", falseExpr.Name)
}

func TestParser_ParseExpression_TernaryBelowOr(t *testing.T) {

	src := `$a or $b ? 1 : 2`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	cond, can := root.Child.(*ConditionalExpressionNode)
	assert.True(t, can)
	_, can = cond.Condition.(*BinaryExpressionNode)
	assert.True(t, can)
}

func TestParser_ParseExpression_ParenthesesOverridePrecedence(t *testing.T) {

	src := `(1 + 2) * 3`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	mul, can := root.Child.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.MUL_OP, mul.Operation.Type)

	// parentheses are erased, the left child is the addition itself
	add, can := mul.Left.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.PLUS_OP, add.Operation.Type)
}

func TestParser_ParseExpression_FunctionCall(t *testing.T) {

	src := `min($a, 3)`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	call, can := root.Child.(*FunctionCallExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "min", call.Name)
	assert.Equal(t, 2, len(call.Arguments))

	_, can = call.Arguments[0].(*DataRefExpressionNode)
	assert.True(t, can)
	arg, can := call.Arguments[1].(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, int64(3), arg.Value)
}

func TestParser_ParseExpression_FunctionCallNoArguments(t *testing.T) {

	src := `randomInt()`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	call, can := root.Child.(*FunctionCallExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "randomInt", call.Name)
	assert.Equal(t, 0, len(call.Arguments))
}

func TestParser_ParseExpression_NestedFunctionCall(t *testing.T) {

	src := `max(min(1, 2), 3)`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	outer, can := root.Child.(*FunctionCallExpressionNode)
	assert.True(t, can)
	inner, can := outer.Arguments[0].(*FunctionCallExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "min", inner.Name)
}

func TestParser_ParseExpression_IdentWithoutParenIsGlobal(t *testing.T) {

	src := `app.config.DEBUG`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	global, can := root.Child.(*GlobalExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "app.config.DEBUG", global.Name)
}

func TestParser_ParseExpression_Literal_Renderings(t *testing.T) {

	cases := []struct {
		src      string
		rendered string
	}{
		{`1 + 2 * 3`, `1+2*3`},
		{`not $a`, `not $a`},
		{`$a and $b`, `$a and $b`},
		{`['aaa': 1]`, `['aaa':1]`},
		{`[1, 2,]`, `[1,2]`},
		{`$aaa.bbb.0[12]`, `$aaa.bbb.0[12]`},
		{`$ij.flags`, `$ij.flags`},
		{`a ? b : c`, `a?b:c`},
		{`min(1, 2)`, `min(1,2)`},
	}
	for _, c := range cases {
		par := NewParser(c.src)
		root, err := par.ParseExpression()
		assert.Nil(t, err, c.src)
		assert.Equal(t, c.rendered, root.Literal(), c.src)
	}
}

func TestParser_ExprRoot_ReplaceChild(t *testing.T) {

	par := NewParser(`1`)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	replacement := &BooleanLiteralExpressionNode{Value: true}
	root.ReplaceChild(replacement)

	exp, can := root.Child.(*BooleanLiteralExpressionNode)
	assert.True(t, can)
	assert.True(t, exp.Value)
}

func TestParser_ParseExpressionList_Multiple(t *testing.T) {

	src := `$a, 1 + 2, 'x'`
	par := NewParser(src)
	roots, err := par.ParseExpressionList()
	assert.Nil(t, err)
	assert.Equal(t, 3, len(roots))

	_, can := roots[0].Child.(*DataRefExpressionNode)
	assert.True(t, can)
	_, can = roots[1].Child.(*BinaryExpressionNode)
	assert.True(t, can)
	str, can := roots[2].Child.(*StringLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "x", str.Value)
}

func TestParser_ParseExpressionList_Single(t *testing.T) {

	src := `42`
	par := NewParser(src)
	roots, err := par.ParseExpressionList()
	assert.Nil(t, err)
	assert.Equal(t, 1, len(roots))
}
