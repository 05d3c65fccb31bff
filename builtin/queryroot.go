package builtin

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/introspection"
	"github.com/shyptr/gqlcore/rctx"
	"github.com/shyptr/gqlcore/schema"
)

// QueryRootElem is the constraint a schema's user-supplied query root
// must satisfy: a named, self-describing object that can resolve its
// own fields.
type QueryRootElem interface {
	schema.Typed
	schema.Objectlike
}

// QueryRoot wraps a user query root, injecting the __schema and __type
// meta-fields onto it at registration and dispatch time so that every
// schema is introspectable without the query root author having to
// know anything about introspection.
type QueryRoot[Q QueryRootElem] struct {
	Inner    Q
	Registry *schema.Registry
}

func (q QueryRoot[Q]) TypeName() string          { return q.Inner.TypeName() }
func (q QueryRoot[Q]) QualifiedTypeName() string { return q.Inner.TypeName() + "!" }

// CreateTypeInfo registers the inner root type, then adds the
// __schema/__type fields to its descriptor and registers the
// introspection meta-types themselves.
func (q QueryRoot[Q]) CreateTypeInfo(r *schema.Registry) string {
	q.Inner.CreateTypeInfo(r)
	name := q.Inner.TypeName()

	if descriptor, ok := r.Lookup(name); ok && descriptor.Kind == schema.KindObject {
		fields := descriptor.Object.Fields
		if !fields.Has("__schema") {
			fields.Set("__schema", &schema.FieldDescriptor{
				Name: "__schema",
				Type: "__Schema!",
				Args: schema.NewOrderedMap[*schema.InputValueDescriptor](),
			})
		}
		if !fields.Has("__type") {
			args := schema.NewOrderedMap[*schema.InputValueDescriptor]()
			args.Set("name", &schema.InputValueDescriptor{Name: "name", Type: "String!"})
			fields.Set("__type", &schema.FieldDescriptor{
				Name: "__type",
				Type: "__Type",
				Args: args,
			})
		}
	}

	registerIntrospectionTypes(r)
	r.QueryType = name
	return name + "!"
}

func (q QueryRoot[Q]) IsEmpty() bool { return false }

func (q QueryRoot[Q]) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "__typename":
		return q.Inner.TypeName(), nil
	case "__schema":
		return introspection.Schema{Registry: q.Registry}, nil
	case "__type":
		rc := ctx.(*rctx.Context)
		name, err := rctx.ParamValue[String](rc, "name", nil)
		if err != nil {
			return nil, err
		}
		if !q.Registry.Types.Has(string(name)) {
			return nil, nil
		}
		return introspection.Type{Registry: q.Registry, Ref: &schema.TypeRef{Named: string(name)}}, nil
	default:
		return q.Inner.ResolveField(ctx, field)
	}
}

func (q QueryRoot[Q]) ResolveInlineFragment(typeCondition string, ctx interface{}, acc map[string]interface{}) error {
	return q.Inner.ResolveInlineFragment(typeCondition, ctx, acc)
}

func (q QueryRoot[Q]) Resolve(ctx interface{}) (interface{}, error) {
	return rctx.ResolveComposite(ctx, q)
}

// registerIntrospectionTypes adds the six meta-types (__Schema,
// __Type, __Field, __InputValue, __EnumValue, __Directive) to the
// registry so that `{ __schema { types { name } } }` enumerates them
// alongside user-defined types, matching what a real GraphQL service
// reports.
func registerIntrospectionTypes(r *schema.Registry) {
	introspection.Schema{}.CreateTypeInfo(r)

	r.AddType("__Type", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "__Type", Fields: schema.NewOrderedMap[*schema.FieldDescriptor](),
		}}
	})
	r.AddType("__Field", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "__Field", Fields: schema.NewOrderedMap[*schema.FieldDescriptor](),
		}}
	})
	r.AddType("__InputValue", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "__InputValue", Fields: schema.NewOrderedMap[*schema.FieldDescriptor](),
		}}
	})
	r.AddType("__EnumValue", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "__EnumValue", Fields: schema.NewOrderedMap[*schema.FieldDescriptor](),
		}}
	})
	r.AddType("__Directive", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "__Directive", Fields: schema.NewOrderedMap[*schema.FieldDescriptor](),
		}}
	})
}
