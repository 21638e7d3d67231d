package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_ParseExpression_SimpleDataRef(t *testing.T) {

	src := `$aaa`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	ref, can := root.Child.(*DataRefExpressionNode)
	assert.True(t, can)
	assert.False(t, ref.IsInjected)
	assert.Equal(t, 1, len(ref.Accesses))

	key, can := ref.Accesses[0].(*DataRefKeyExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "aaa", key.Name)
}

func TestParser_ParseExpression_InjectedDataRef(t *testing.T) {

	src := `$ij.aaa`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	ref, can := root.Child.(*DataRefExpressionNode)
	assert.True(t, can)
	assert.True(t, ref.IsInjected)
	assert.Equal(t, 1, len(ref.Accesses))

	key, can := ref.Accesses[0].(*DataRefKeyExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "aaa", key.Name)
}

func TestParser_ParseExpression_DataRefAccessChain(t *testing.T) {

	src := `$aaa.bbb.0.ccc[12]`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	ref, can := root.Child.(*DataRefExpressionNode)
	assert.True(t, can)
	assert.False(t, ref.IsInjected)
	assert.Equal(t, 5, len(ref.Accesses))

	base, can := ref.Accesses[0].(*DataRefKeyExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "aaa", base.Name)

	key, can := ref.Accesses[1].(*DataRefKeyExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "bbb", key.Name)

	index, can := ref.Accesses[2].(*DataRefIndexExpressionNode)
	assert.True(t, can)
	assert.Equal(t, uint32(0), index.Index)

	key, can = ref.Accesses[3].(*DataRefKeyExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "ccc", key.Name)

	bracket, can := ref.Accesses[4].(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, int64(12), bracket.Value)
}

func TestParser_ParseExpression_DataRefBracketExpression(t *testing.T) {

	src := `$a[$b + 1]`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	ref, can := root.Child.(*DataRefExpressionNode)
	assert.True(t, can)
	assert.Equal(t, 2, len(ref.Accesses))

	_, can = ref.Accesses[1].(*BinaryExpressionNode)
	assert.True(t, can)
}

func TestParser_ParseExpression_DataRefDotAccessWithWhitespace(t *testing.T) {

	src := "$aaa .\n bbb . 0"
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, err)

	ref, can := root.Child.(*DataRefExpressionNode)
	assert.True(t, can)
	assert.Equal(t, 3, len(ref.Accesses))
	assert.Equal(t, "$aaa.bbb.0", ref.Literal())
}

func TestParser_ParseExpression_ReservedIjAsBase(t *testing.T) {

	src := `$ij + 1`
	par := NewParser(src)
	root, err := par.ParseExpression()
	assert.Nil(t, root)
	assert.NotNil(t, err)

	parseErr, can := err.(*ParseError)
	assert.True(t, can)
	assert.Equal(t, RESERVED_IJ, parseErr.Kind)
	assert.Equal(t, 0, parseErr.Offset)
}

func TestParser_ParseVariable_Simple(t *testing.T) {

	src := `$foo`
	par := NewParser(src)
	root, err := par.ParseVariable()
	assert.Nil(t, err)

	varNode, can := root.Child.(*VarExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "foo", varNode.Name)
	assert.Equal(t, "$foo", root.Literal())
}

func TestParser_ParseVariable_ReservedIj(t *testing.T) {

	src := `$ij`
	par := NewParser(src)
	root, err := par.ParseVariable()
	assert.Nil(t, root)
	assert.NotNil(t, err)

	parseErr, can := err.(*ParseError)
	assert.True(t, can)
	assert.Equal(t, RESERVED_IJ, parseErr.Kind)
}

func TestParser_ParseVariable_RejectsDataRef(t *testing.T) {

	src := `$ij.foo`
	par := NewParser(src)
	root, err := par.ParseVariable()
	assert.Nil(t, root)
	assert.NotNil(t, err)

	parseErr, can := err.(*ParseError)
	assert.True(t, can)
	assert.Equal(t, UNEXPECTED_TOKEN, parseErr.Kind)
}

func TestParser_ParseVariable_RejectsTrailingAccess(t *testing.T) {

	src := `$foo.bar`
	par := NewParser(src)
	root, err := par.ParseVariable()
	assert.Nil(t, root)
	assert.NotNil(t, err)

	parseErr, can := err.(*ParseError)
	assert.True(t, can)
	assert.Equal(t, TRAILING_INPUT, parseErr.Kind)
}

func TestParser_ParseDataReference_Simple(t *testing.T) {

	src := `$aaa.bbb`
	par := NewParser(src)
	root, err := par.ParseDataReference()
	assert.Nil(t, err)

	ref, can := root.Child.(*DataRefExpressionNode)
	assert.True(t, can)
	assert.Equal(t, 2, len(ref.Accesses))
}

func TestParser_ParseDataReference_Injected(t *testing.T) {

	src := `$ij.flags`
	par := NewParser(src)
	root, err := par.ParseDataReference()
	assert.Nil(t, err)

	ref, can := root.Child.(*DataRefExpressionNode)
	assert.True(t, can)
	assert.True(t, ref.IsInjected)
}

func TestParser_ParseDataReference_ReservedIj(t *testing.T) {

	src := `$ij`
	par := NewParser(src)
	root, err := par.ParseDataReference()
	assert.Nil(t, root)
	assert.NotNil(t, err)

	parseErr, can := err.(*ParseError)
	assert.True(t, can)
	assert.Equal(t, RESERVED_IJ, parseErr.Kind)
}

func TestParser_ParseDataReference_RejectsGlobal(t *testing.T) {

	src := `aaa`
	par := NewParser(src)
	root, err := par.ParseDataReference()
	assert.Nil(t, root)
	assert.NotNil(t, err)

	parseErr, can := err.(*ParseError)
	assert.True(t, can)
	assert.Equal(t, UNEXPECTED_TOKEN, parseErr.Kind)
}

func TestParser_ParseGlobal_Dotted(t *testing.T) {

	src := `app.config.DEBUG`
	par := NewParser(src)
	root, err := par.ParseGlobal()
	assert.Nil(t, err)

	global, can := root.Child.(*GlobalExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "app.config.DEBUG", global.Name)
}

func TestParser_ParseGlobal_SingleSegment(t *testing.T) {

	src := `DEBUG`
	par := NewParser(src)
	root, err := par.ParseGlobal()
	assert.Nil(t, err)

	global, can := root.Child.(*GlobalExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "DEBUG", global.Name)
}

func TestParser_ParseGlobal_JoinsAcrossWhitespace(t *testing.T) {

	src := "app .\n config"
	par := NewParser(src)
	root, err := par.ParseGlobal()
	assert.Nil(t, err)

	global, can := root.Child.(*GlobalExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "app.config", global.Name)
}

func TestParser_ParseGlobal_RejectsCall(t *testing.T) {

	src := `foo()`
	par := NewParser(src)
	root, err := par.ParseGlobal()
	assert.Nil(t, root)
	assert.NotNil(t, err)

	parseErr, can := err.(*ParseError)
	assert.True(t, can)
	assert.Equal(t, TRAILING_INPUT, parseErr.Kind)
}

func TestParser_ParseGlobal_RejectsVariable(t *testing.T) {

	src := `$foo`
	par := NewParser(src)
	root, err := par.ParseGlobal()
	assert.Nil(t, root)
	assert.NotNil(t, err)

	parseErr, can := err.(*ParseError)
	assert.True(t, can)
	assert.Equal(t, UNEXPECTED_TOKEN, parseErr.Kind)
}
