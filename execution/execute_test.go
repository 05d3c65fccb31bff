package execution_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/builtin"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/execution"
	"github.com/shyptr/gqlcore/rctx"
	"github.com/shyptr/gqlcore/schema"
)

// Hero is a tiny composite type used to exercise nested selection
// resolution, grounded the same way builtin.QueryRoot's own meta-types
// are: a hand-written Typed+Objectlike implementation with no
// reflection layer underneath it.
type Hero struct {
	Name string
}

func (Hero) TypeName() string          { return "Hero" }
func (Hero) QualifiedTypeName() string { return "Hero!" }

func (Hero) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Hero", func() *schema.TypeDescriptor {
		fields := schema.NewOrderedMap[*schema.FieldDescriptor]()
		fields.Set("name", &schema.FieldDescriptor{Name: "name", Type: "String!", Args: schema.NewOrderedMap[*schema.InputValueDescriptor]()})
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "Hero", Fields: fields,
		}}
	})
	return "Hero!"
}

func (Hero) IsEmpty() bool { return false }

func (h Hero) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "__typename":
		return "Hero", nil
	case "name":
		return builtin.String(h.Name), nil
	}
	return nil, errors.New(errors.KindField, "unknown field %q on Hero", field.Name.Value)
}

func (Hero) ResolveInlineFragment(string, interface{}, map[string]interface{}) error { return nil }

func (h Hero) Resolve(ctx interface{}) (interface{}, error) {
	return rctx.ResolveComposite(ctx, h)
}

// Query is the test schema's query root.
type Query struct{}

func (Query) TypeName() string          { return "Query" }
func (Query) QualifiedTypeName() string { return "Query!" }

func (Query) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Query", func() *schema.TypeDescriptor {
		fields := schema.NewOrderedMap[*schema.FieldDescriptor]()
		fields.Set("hero", &schema.FieldDescriptor{Name: "hero", Type: "Hero!", Args: schema.NewOrderedMap[*schema.InputValueDescriptor]()})
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "Query", Fields: fields,
		}}
	})
	Hero{}.CreateTypeInfo(r)
	return "Query!"
}

func (Query) IsEmpty() bool { return false }

func (Query) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "__typename":
		return "Query", nil
	case "hero":
		return Hero{Name: "Luke"}, nil
	}
	return nil, errors.New(errors.KindField, "unknown field %q on Query", field.Name.Value)
}

func (Query) ResolveInlineFragment(string, interface{}, map[string]interface{}) error { return nil }

// Mutation is the test schema's mutation root: a single field that
// records call order, used to assert mutations run serially.
type Mutation struct {
	order *[]string
}

func (Mutation) TypeName() string          { return "Mutation" }
func (Mutation) QualifiedTypeName() string { return "Mutation!" }

func (Mutation) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Mutation", func() *schema.TypeDescriptor {
		fields := schema.NewOrderedMap[*schema.FieldDescriptor]()
		fields.Set("first", &schema.FieldDescriptor{Name: "first", Type: "String!", Args: schema.NewOrderedMap[*schema.InputValueDescriptor]()})
		fields.Set("second", &schema.FieldDescriptor{Name: "second", Type: "String!", Args: schema.NewOrderedMap[*schema.InputValueDescriptor]()})
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "Mutation", Fields: fields,
		}}
	})
	return "Mutation!"
}

func (Mutation) IsEmpty() bool { return false }

func (m Mutation) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	*m.order = append(*m.order, field.Name.Value)
	return builtin.String(field.Name.Value), nil
}

func (Mutation) ResolveInlineFragment(string, interface{}, map[string]interface{}) error { return nil }

func getMap(t *testing.T, data interface{}, key string) interface{} {
	t.Helper()
	m, ok := data.(*schema.OrderedMap[interface{}])
	require.True(t, ok, "expected *schema.OrderedMap[interface{}], got %T", data)
	v, ok := m.Get(key)
	require.True(t, ok, "missing key %q", key)
	return v
}

func TestExecuteSimpleQuery(t *testing.T) {
	s := execution.New[Query](Query{}, builtin.EmptyMutation{})
	result := s.Query(`{ hero { name } }`).Execute(context.Background(), nil, "")
	require.Empty(t, result.Errors)
	hero := getMap(t, result.Data, "hero")
	assert.Equal(t, "Luke", getMap(t, hero, "name"))
}

func TestExecuteAlias(t *testing.T) {
	s := execution.New[Query](Query{}, builtin.EmptyMutation{})
	result := s.Query(`{ theHero: hero { heroName: name } }`).Execute(context.Background(), nil, "")
	require.Empty(t, result.Errors)
	hero := getMap(t, result.Data, "theHero")
	assert.Equal(t, "Luke", getMap(t, hero, "heroName"))
}

func TestExecuteSkipDirective(t *testing.T) {
	s := execution.New[Query](Query{}, builtin.EmptyMutation{})
	result := s.Query(`{ hero { name @skip(if: true) } }`).Execute(context.Background(), nil, "")
	require.Empty(t, result.Errors)
	hero := getMap(t, result.Data, "hero").(*schema.OrderedMap[interface{}])
	assert.False(t, hero.Has("name"))
}

func TestExecuteReportsValidationErrors(t *testing.T) {
	s := execution.New[Query](Query{}, builtin.EmptyMutation{})
	result := s.Query(`{ hero { nickname } }`).Execute(context.Background(), nil, "")
	require.Nil(t, result.Data)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "FieldsOnCorrectType", result.Errors[0].Extensions["rule"])
}

func TestExecuteRequiresOperationNameWhenAmbiguous(t *testing.T) {
	s := execution.New[Query](Query{}, builtin.EmptyMutation{})
	result := s.Query(`
		query One { hero { name } }
		query Two { hero { name } }
	`).Execute(context.Background(), nil, "")
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "must provide operation name")
}

func TestExecuteSelectsNamedOperation(t *testing.T) {
	s := execution.New[Query](Query{}, builtin.EmptyMutation{})
	result := s.Query(`
		query One { hero { name } }
		query Two { hero { name: __typename } }
	`).Execute(context.Background(), nil, "Two")
	require.Empty(t, result.Errors)
	hero := getMap(t, result.Data, "hero")
	assert.Equal(t, "Hero", getMap(t, hero, "name"))
}

func TestExecuteMutationFieldsRunSerially(t *testing.T) {
	var order []string
	s := execution.New[Query](Query{}, Mutation{order: &order})
	result := s.Query(`mutation { first second }`).Execute(context.Background(), nil, "")
	require.Empty(t, result.Errors)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestExecuteVariables(t *testing.T) {
	s := execution.New[Query](Query{}, builtin.EmptyMutation{})
	// hero takes no arguments in this test schema, so this only
	// exercises that a variable declaration flowing through unused is
	// reported by validation rather than silently ignored.
	result := s.Query(`query($unused: String) { hero { name } }`).Execute(context.Background(), map[string]interface{}{"unused": "x"}, "")
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "NoUnusedVariables", result.Errors[0].Extensions["rule"])
}

// TestExecuteNestedResponseShape diffs the full marshaled response
// against the expected shape with pretty.Compare instead of a plain
// equality assertion, so a future regression here reports exactly
// which key in the nested object diverged.
func TestExecuteNestedResponseShape(t *testing.T) {
	s := execution.New[Query](Query{}, builtin.EmptyMutation{})
	result := s.Query(`{ theHero: hero { heroName: name } }`).Execute(context.Background(), nil, "")
	require.Empty(t, result.Errors)

	raw, err := json.Marshal(result.Data)
	require.NoError(t, err)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))

	want := map[string]interface{}{
		"theHero": map[string]interface{}{"heroName": "Luke"},
	}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Fatalf("response shape mismatch (-want +got):\n%s", diff)
	}
}

func TestExecuteIntrospectionTypename(t *testing.T) {
	s := execution.New[Query](Query{}, builtin.EmptyMutation{})
	result := s.Query(`{ __typename }`).Execute(context.Background(), nil, "")
	require.Empty(t, result.Errors)
	assert.Equal(t, "Query", getMap(t, result.Data, "__typename"))
}
