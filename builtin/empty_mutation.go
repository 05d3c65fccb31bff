package builtin

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/schema"
)

// EmptyMutation is the sentinel mutation root used when a schema is
// built without one. Validation rejects any mutation operation against
// it (NoMutationType), and its ResolveField and ResolveInlineFragment
// return KindNoMutations if called; Objectlike.IsEmpty is how
// execution's schema builder decides whether to advertise a mutation
// root type at all.
type EmptyMutation struct{}

func (EmptyMutation) TypeName() string          { return "EmptyMutation" }
func (EmptyMutation) QualifiedTypeName() string { return "EmptyMutation!" }

func (EmptyMutation) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("EmptyMutation", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name:   "EmptyMutation",
			Fields: schema.NewOrderedMap[*schema.FieldDescriptor](),
		}}
	})
	return "EmptyMutation!"
}

func (EmptyMutation) IsEmpty() bool { return true }

func (EmptyMutation) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	return nil, errors.New(errors.KindNoMutations, "schema has no mutation type configured")
}

func (EmptyMutation) ResolveInlineFragment(typeCondition string, ctx interface{}, acc map[string]interface{}) error {
	return errors.New(errors.KindNoMutations, "schema has no mutation type configured")
}

func (EmptyMutation) Resolve(ctx interface{}) (interface{}, error) {
	return schema.NewOrderedMap[interface{}](), nil
}
