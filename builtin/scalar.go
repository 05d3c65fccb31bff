// Package builtin provides the five built-in scalar types, the
// List/Option generic wrappers, the empty-mutation sentinel, and the
// QueryRoot wrapper that injects the __schema/__type introspection
// fields onto a user-supplied query root — the concrete Elem
// implementations every generated schema is built out of.
package builtin

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/schema"
)

// Int is the GraphQL Int scalar, a signed 32-bit integer.
type Int int32

func (Int) TypeName() string          { return "Int" }
func (Int) QualifiedTypeName() string { return "Int!" }

func (Int) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Int", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindScalar, Scalar: &schema.ScalarDescriptor{
			Name:        "Int",
			Description: "The Int scalar type represents a signed 32-bit numeric value.",
		}}
	})
	return "Int!"
}

func (Int) ParseValue(v ast.Value) (Int, bool) {
	val, ok := v.(*ast.IntValue)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(val.Value, 10, 32)
	if err != nil {
		return 0, false
	}
	return Int(n), true
}

func (i Int) Resolve(ctx interface{}) (interface{}, error) { return int32(i), nil }

// Float is the GraphQL Float scalar, accepting both float and int
// literals per the GraphQL coercion rules.
type Float float64

func (Float) TypeName() string          { return "Float" }
func (Float) QualifiedTypeName() string { return "Float!" }

func (Float) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Float", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindScalar, Scalar: &schema.ScalarDescriptor{
			Name:        "Float",
			Description: "The Float scalar type represents signed double-precision fractional values.",
		}}
	})
	return "Float!"
}

func (Float) ParseValue(v ast.Value) (Float, bool) {
	switch val := v.(type) {
	case *ast.FloatValue:
		f, err := strconv.ParseFloat(val.Value, 64)
		if err != nil {
			return 0, false
		}
		return Float(f), true
	case *ast.IntValue:
		n, err := strconv.ParseInt(val.Value, 10, 64)
		if err != nil {
			return 0, false
		}
		return Float(n), true
	}
	return 0, false
}

func (f Float) Resolve(ctx interface{}) (interface{}, error) { return float64(f), nil }

// String is the GraphQL String scalar.
type String string

func (String) TypeName() string          { return "String" }
func (String) QualifiedTypeName() string { return "String!" }

func (String) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("String", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindScalar, Scalar: &schema.ScalarDescriptor{
			Name:        "String",
			Description: "The String scalar type represents textual data as UTF-8 character sequences.",
		}}
	})
	return "String!"
}

func (String) ParseValue(v ast.Value) (String, bool) {
	val, ok := v.(*ast.StringValue)
	if !ok {
		return "", false
	}
	return String(val.Value), true
}

func (s String) Resolve(ctx interface{}) (interface{}, error) { return string(s), nil }

// Boolean is the GraphQL Boolean scalar.
type Boolean bool

func (Boolean) TypeName() string          { return "Boolean" }
func (Boolean) QualifiedTypeName() string { return "Boolean!" }

func (Boolean) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Boolean", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindScalar, Scalar: &schema.ScalarDescriptor{
			Name:        "Boolean",
			Description: "The Boolean scalar type represents true or false.",
		}}
	})
	return "Boolean!"
}

func (Boolean) ParseValue(v ast.Value) (Boolean, bool) {
	val, ok := v.(*ast.BooleanValue)
	if !ok {
		return false, false
	}
	return Boolean(val.Value), true
}

func (b Boolean) Resolve(ctx interface{}) (interface{}, error) { return bool(b), nil }

// ID is the GraphQL ID scalar: serialized as a string, but any literal
// that parses as a UUID is normalized to its canonical (lowercase,
// hyphenated) form so two differently-cased representations of the
// same identifier compare equal once coerced.
type ID string

func (ID) TypeName() string          { return "ID" }
func (ID) QualifiedTypeName() string { return "ID!" }

func (ID) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("ID", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindScalar, Scalar: &schema.ScalarDescriptor{
			Name:        "ID",
			Description: "The ID scalar type represents a unique identifier, serialized as a String.",
		}}
	})
	return "ID!"
}

func (ID) ParseValue(v ast.Value) (ID, bool) {
	val, ok := v.(*ast.StringValue)
	if !ok {
		return "", false
	}
	if u, err := uuid.Parse(val.Value); err == nil {
		return ID(u.String()), true
	}
	return ID(val.Value), true
}

func (id ID) Resolve(ctx interface{}) (interface{}, error) { return string(id), nil }
