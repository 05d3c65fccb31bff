package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/builtin"
)

func TestListTypeName(t *testing.T) {
	assert.Equal(t, "[String!]", builtin.List[builtin.String]{}.TypeName())
	assert.Equal(t, "[String!]!", builtin.List[builtin.String]{}.QualifiedTypeName())
}

func TestListParseValue(t *testing.T) {
	lv := &ast.ListValue{Values: []ast.Value{
		&ast.StringValue{Value: "a"},
		&ast.StringValue{Value: "b"},
	}}
	got, ok := builtin.List[builtin.String]{}.ParseValue(lv)
	require.True(t, ok)
	assert.Equal(t, []builtin.String{"a", "b"}, got.Values)
}

func TestListParseValueRejectsMixedElementTypes(t *testing.T) {
	lv := &ast.ListValue{Values: []ast.Value{
		&ast.StringValue{Value: "a"},
		&ast.IntValue{Value: "1"},
	}}
	_, ok := builtin.List[builtin.String]{}.ParseValue(lv)
	assert.False(t, ok)
}

func TestListResolve(t *testing.T) {
	l := builtin.List[builtin.Int]{Values: []builtin.Int{1, 2, 3}}
	got, err := l.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int32(1), int32(2), int32(3)}, got)
}

func TestOptionTypeNameOmitsNonNullBang(t *testing.T) {
	assert.Equal(t, "String", builtin.Option[builtin.String]{}.TypeName())
	assert.Equal(t, "String", builtin.Option[builtin.String]{}.QualifiedTypeName())
}

func TestOptionParseValueNull(t *testing.T) {
	got, ok := builtin.Option[builtin.String]{}.ParseValue(&ast.NullValue{})
	require.True(t, ok)
	assert.False(t, got.Valid)
}

func TestOptionSomeAndNoneResolve(t *testing.T) {
	some := builtin.Some(builtin.String("hi"))
	got, err := some.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "hi", got)

	none := builtin.None[builtin.String]()
	got, err = none.Resolve(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
