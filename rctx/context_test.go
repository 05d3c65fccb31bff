package rctx

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/schema"
)

func newTestContext(variables map[string]ast.Value, varDefs []*ast.VariableDefinition) *Context {
	return Root(schema.NewRegistry(), NewData(), nil, variables, varDefs, uuid.Nil)
}

func TestVarValueResolutionOrder(t *testing.T) {
	def := &ast.VariableDefinition{
		Variable:     &ast.Name{Value: "x"},
		Type:         &ast.TypeRef{NamedType: "String"},
		DefaultValue: &ast.StringValue{Value: "default"},
	}
	c := newTestContext(map[string]ast.Value{"x": &ast.StringValue{Value: "bound"}}, []*ast.VariableDefinition{def})

	v, err := c.VarValue("x", ast.Pos{})
	require.NoError(t, err)
	assert.Equal(t, "bound", v.(*ast.StringValue).Value)

	c2 := newTestContext(map[string]ast.Value{}, []*ast.VariableDefinition{def})
	v2, err := c2.VarValue("x", ast.Pos{})
	require.NoError(t, err)
	assert.Equal(t, "default", v2.(*ast.StringValue).Value)

	_, err = c.VarValue("missing", ast.Pos{})
	assert.Error(t, err)
}

func TestResolveInputValueSubstitutesNested(t *testing.T) {
	def := &ast.VariableDefinition{Variable: &ast.Name{Value: "v"}}
	c := newTestContext(map[string]ast.Value{"v": &ast.IntValue{Value: "7"}}, []*ast.VariableDefinition{def})

	list := &ast.ListValue{Values: []ast.Value{
		&ast.IntValue{Value: "1"},
		&ast.VariableValue{Name: &ast.Name{Value: "v"}},
	}}
	resolved, err := c.ResolveInputValue(list)
	require.NoError(t, err)
	out := resolved.(*ast.ListValue)
	assert.Equal(t, "7", out.Values[1].(*ast.IntValue).Value)
}

func TestIsSkipDirectives(t *testing.T) {
	c := newTestContext(nil, nil)

	skip := []*ast.Directive{{
		Name:      &ast.Name{Value: "skip"},
		Arguments: []*ast.Argument{{Name: &ast.Name{Value: "if"}, Value: &ast.BooleanValue{Value: true}}},
	}}
	got, err := c.IsSkip(skip)
	require.NoError(t, err)
	assert.True(t, got)

	include := []*ast.Directive{{
		Name:      &ast.Name{Value: "include"},
		Arguments: []*ast.Argument{{Name: &ast.Name{Value: "if"}, Value: &ast.BooleanValue{Value: false}}},
	}}
	got, err = c.IsSkip(include)
	require.NoError(t, err)
	assert.True(t, got)

	_, err = c.IsSkip([]*ast.Directive{{Name: &ast.Name{Value: "bogus"}}})
	assert.Error(t, err)

	_, err = c.IsSkip([]*ast.Directive{{Name: &ast.Name{Value: "skip"}}})
	assert.Error(t, err)
}

func TestDataOfPanicsWhenMissing(t *testing.T) {
	c := newTestContext(nil, nil)
	assert.Panics(t, func() {
		DataOf[string](c)
	})

	c.data.Set("hello")
	assert.Equal(t, "hello", DataOf[string](c))
}
