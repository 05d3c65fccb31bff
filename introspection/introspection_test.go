package introspection_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/builtin"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/execution"
	"github.com/shyptr/gqlcore/schema"
)

// pingQuery is a minimal query root used only to give introspection
// something real to describe; its own field isn't exercised here.
type pingQuery struct{}

func (pingQuery) TypeName() string          { return "Query" }
func (pingQuery) QualifiedTypeName() string { return "Query!" }

func (pingQuery) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Query", func() *schema.TypeDescriptor {
		fields := schema.NewOrderedMap[*schema.FieldDescriptor]()
		fields.Set("ping", &schema.FieldDescriptor{Name: "ping", Type: "String!", Args: schema.NewOrderedMap[*schema.InputValueDescriptor]()})
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "Query", Fields: fields,
		}}
	})
	return "Query!"
}

func (pingQuery) IsEmpty() bool { return false }

func (pingQuery) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	if field.Name.Value == "ping" {
		return builtin.String("pong"), nil
	}
	return nil, errors.New(errors.KindField, "unknown field %q on Query", field.Name.Value)
}

func (pingQuery) ResolveInlineFragment(string, interface{}, map[string]interface{}) error { return nil }

func getMap(t *testing.T, data interface{}, key string) interface{} {
	t.Helper()
	m, ok := data.(*schema.OrderedMap[interface{}])
	require.True(t, ok, "expected *schema.OrderedMap[interface{}], got %T", data)
	v, ok := m.Get(key)
	require.True(t, ok, "missing key %q", key)
	return v
}

// TestIntrospectionQueriesNamedType exercises `{ __type(name:"Query") {
// name } }`, the literal named-type introspection scenario.
func TestIntrospectionQueriesNamedType(t *testing.T) {
	s := execution.New[pingQuery](pingQuery{}, builtin.EmptyMutation{})
	result := s.Query(`{ __type(name: "Query") { name } }`).Execute(context.Background(), nil, "")
	require.Empty(t, result.Errors)

	typ := getMap(t, result.Data, "__type")
	assert.Equal(t, "Query", getMap(t, typ, "name"))
}

// TestIntrospectionQueriesUnknownTypeReturnsNull exercises the
// null-for-unknown-name branch of __type instead of an error.
func TestIntrospectionQueriesUnknownTypeReturnsNull(t *testing.T) {
	s := execution.New[pingQuery](pingQuery{}, builtin.EmptyMutation{})
	result := s.Query(`{ __type(name: "NoSuchType") { name } }`).Execute(context.Background(), nil, "")
	require.Empty(t, result.Errors)

	m, ok := result.Data.(*schema.OrderedMap[interface{}])
	require.True(t, ok)
	v, ok := m.Get("__type")
	require.True(t, ok)
	assert.Nil(t, v)
}

// TestIntrospectionListsSchemaTypes exercises `{ __schema { types {
// name } } }`, confirming every built-in scalar, the query root, and
// the introspection meta-types themselves are enumerated.
func TestIntrospectionListsSchemaTypes(t *testing.T) {
	s := execution.New[pingQuery](pingQuery{}, builtin.EmptyMutation{})
	result := s.Query(`{ __schema { types { name } } }`).Execute(context.Background(), nil, "")
	require.Empty(t, result.Errors)

	sch := getMap(t, result.Data, "__schema")
	types, ok := getMap(t, sch, "types").([]interface{})
	require.True(t, ok)

	names := make(map[string]bool, len(types))
	for _, typ := range types {
		names[getMap(t, typ, "name").(string)] = true
	}
	for _, want := range []string{"Query", "String", "Int", "Float", "Boolean", "ID", "__Schema", "__Type"} {
		assert.True(t, names[want], "expected %q among __schema.types", want)
	}
}

// TestIntrospectionSchemaReportsQueryType exercises `{ __schema {
// queryType { name } } }`.
func TestIntrospectionSchemaReportsQueryType(t *testing.T) {
	s := execution.New[pingQuery](pingQuery{}, builtin.EmptyMutation{})
	result := s.Query(`{ __schema { queryType { name } } }`).Execute(context.Background(), nil, "")
	require.Empty(t, result.Errors)

	sch := getMap(t, result.Data, "__schema")
	queryType := getMap(t, sch, "queryType")
	assert.Equal(t, "Query", getMap(t, queryType, "name"))
}
