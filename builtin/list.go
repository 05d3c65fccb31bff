package builtin

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/schema"
)

// List is the generic wrapper for GraphQL list types: `[T]!`. Its type
// name and parsing/resolution all delegate to T's own Elem methods, so
// adding a new element type never requires a new list implementation.
type List[T schema.Elem[T]] struct {
	Values []T
}

func (List[T]) TypeName() string {
	var zero T
	return "[" + zero.QualifiedTypeName() + "]"
}

func (l List[T]) QualifiedTypeName() string { return l.TypeName() + "!" }

func (List[T]) CreateTypeInfo(r *schema.Registry) string {
	var zero T
	zero.CreateTypeInfo(r)
	return List[T]{}.QualifiedTypeName()
}

func (List[T]) ParseValue(v ast.Value) (List[T], bool) {
	lv, ok := v.(*ast.ListValue)
	if !ok {
		return List[T]{}, false
	}
	values := make([]T, 0, len(lv.Values))
	var zero T
	for _, elem := range lv.Values {
		parsed, ok := zero.ParseValue(elem)
		if !ok {
			return List[T]{}, false
		}
		values = append(values, parsed)
	}
	return List[T]{Values: values}, true
}

// Resolve resolves each element under the selection carried by ctx —
// the field's own sub-selection set applies identically to every item.
func (l List[T]) Resolve(ctx interface{}) (interface{}, error) {
	out := make([]interface{}, len(l.Values))
	for i, v := range l.Values {
		resolved, err := v.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = resolved
	}
	return out, nil
}

// Option is the generic wrapper for a nullable GraphQL type: Valid
// false renders as the type's plain (non-bang) name and resolves to
// JSON null.
type Option[T schema.Elem[T]] struct {
	Value T
	Valid bool
}

// Some wraps a present value.
func Some[T schema.Elem[T]](v T) Option[T] { return Option[T]{Value: v, Valid: true} }

// None returns the absent value of Option[T].
func None[T schema.Elem[T]]() Option[T] { return Option[T]{} }

func (Option[T]) TypeName() string {
	var zero T
	return zero.TypeName()
}

// QualifiedTypeName intentionally omits the non-null bang: wrapping a
// type in Option is exactly what makes it nullable in the schema.
func (o Option[T]) QualifiedTypeName() string { return o.TypeName() }

func (Option[T]) CreateTypeInfo(r *schema.Registry) string {
	var zero T
	zero.CreateTypeInfo(r)
	return Option[T]{}.TypeName()
}

func (Option[T]) ParseValue(v ast.Value) (Option[T], bool) {
	if _, ok := v.(*ast.NullValue); ok {
		return Option[T]{}, true
	}
	var zero T
	parsed, ok := zero.ParseValue(v)
	if !ok {
		return Option[T]{}, false
	}
	return Option[T]{Value: parsed, Valid: true}, true
}

func (o Option[T]) Resolve(ctx interface{}) (interface{}, error) {
	if !o.Valid {
		return nil, nil
	}
	return o.Value.Resolve(ctx)
}
