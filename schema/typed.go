package schema

import "github.com/shyptr/gqlcore/ast"

// Typed is implemented by every concrete type the registry can hold:
// built-in scalars, generated object/input types, and the generic
// List/Option wrappers. Registration is expected to be idempotent —
// CreateTypeInfo must insert a placeholder into the registry before
// recursing into any field/argument type, so that types which refer to
// themselves (directly or through a cycle) terminate.
type Typed interface {
	// TypeName is the base (non-null) name of the type.
	TypeName() string
	// QualifiedTypeName adds the nullability modifier: base types are
	// non-null by default ("Name!"); wrapping in Option drops the bang.
	QualifiedTypeName() string
	// CreateTypeInfo registers the type into r if not already present
	// and returns its qualified type-reference string.
	CreateTypeInfo(r *Registry) string
}

// InputCoercible is implemented by any type parseable from a literal
// Value or a substituted variable value. The self-referential type
// parameter lets List[T]/Option[T] call T's own ParseValue without
// reflection: T satisfies InputCoercible[T], so a zero value of T has a
// method returning another T.
type InputCoercible[Self any] interface {
	ParseValue(v ast.Value) (Self, bool)
}

// OutputResolvable is implemented by any type that can serialize
// itself (scalars) or dispatch to Objectlike (composite types) for a
// given selection. The ctx parameter is deliberately left as `interface{}`
// at this layer to avoid an import cycle with rctx; callers type-assert
// to *rctx.Context.
type OutputResolvable interface {
	Resolve(ctx interface{}) (interface{}, error)
}

// Objectlike is the composite-type extension of OutputResolvable:
// object, interface, and union values dispatch field resolution and
// inline-fragment type-narrowing through it.
type Objectlike interface {
	// ResolveField resolves one selected field of this value. ctx is a
	// *rctx.Context whose Item is the field.
	ResolveField(ctx interface{}, field *ast.Field) (interface{}, error)
	// ResolveInlineFragment narrows to typeCondition, merging the
	// fragment's resolved fields into acc. Returns
	// errors.KindUnrecognizedInline if typeCondition is not among this
	// value's possible runtime types.
	ResolveInlineFragment(typeCondition string, ctx interface{}, acc map[string]interface{}) error
	// IsEmpty is true only for the EmptyMutation sentinel.
	IsEmpty() bool
}

// Elem is the constraint satisfied by any type usable as the element
// type of List[T] or Option[T]: it must be Typed, self-parseable, and
// resolvable.
type Elem[T any] interface {
	Typed
	InputCoercible[T]
	OutputResolvable
}

// Composite is the interface the selection-set resolution driver needs
// from a runtime value in order to both dispatch fields and check
// fragment type conditions against it (TypeName, from Typed).
type Composite interface {
	Typed
	Objectlike
}
