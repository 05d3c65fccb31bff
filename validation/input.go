package validation

import (
	"fmt"
	"strings"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/schema"
)

// isValidInputValue reports whether literal v could legally be
// coerced into typeRef (a type-reference string such as "[Int!]!"),
// walking into lists and input-object fields recursively. A bare
// variable reference always passes here — its own declared type was
// already checked at the variable-definition site; matching it against
// this particular usage site is VariablesInAllowedPosition, which this
// validator approximates rather than implements exactly.
func isValidInputValue(r *schema.Registry, v ast.Value, typeRef string) (bool, string) {
	return checkValue(r, v, schema.ParseTypeRef(typeRef))
}

func checkValue(r *schema.Registry, v ast.Value, ref *schema.TypeRef) (bool, string) {
	if _, ok := v.(*ast.VariableValue); ok {
		return true, ""
	}
	if _, isNull := v.(*ast.NullValue); isNull {
		if ref.NonNull {
			return false, fmt.Sprintf("expected %q, found null", ref.String())
		}
		return true, ""
	}
	if ref.ListOf != nil {
		list, ok := v.(*ast.ListValue)
		if !ok {
			// a single value coerces into a single-element list.
			return checkValue(r, v, ref.ListOf)
		}
		for _, elem := range list.Values {
			if ok, reason := checkValue(r, elem, ref.ListOf); !ok {
				return false, reason
			}
		}
		return true, ""
	}

	descriptor, ok := r.Lookup(ref.Named)
	if !ok {
		return false, fmt.Sprintf("unknown type %q", ref.Named)
	}
	switch descriptor.Kind {
	case schema.KindScalar:
		return checkScalarLiteral(descriptor.Scalar.Name, v)
	case schema.KindEnum:
		ev, ok := v.(*ast.EnumValue)
		if !ok {
			return false, fmt.Sprintf("expected enum value of type %q", ref.Named)
		}
		for _, val := range descriptor.Enum.Values {
			if val.Name == ev.Value {
				return true, ""
			}
		}
		return false, fmt.Sprintf("value %q is not a valid value for enum %q", ev.Value, ref.Named)
	case schema.KindInputObject:
		return checkInputObjectLiteral(r, v, ref.Named, descriptor.InputObject)
	}
	return false, fmt.Sprintf("%q is not an input type", ref.Named)
}

func checkInputObjectLiteral(r *schema.Registry, v ast.Value, typeName string, descriptor *schema.InputObjectDescriptor) (bool, string) {
	obj, ok := v.(*ast.ObjectValue)
	if !ok {
		return false, fmt.Sprintf("expected input object of type %q", typeName)
	}
	seen := make(map[string]bool, len(obj.Fields))
	for _, f := range obj.Fields {
		seen[f.Name.Value] = true
		fieldDesc, ok := descriptor.InputFields.Get(f.Name.Value)
		if !ok {
			return false, fmt.Sprintf("field %q is not defined by type %q", f.Name.Value, typeName)
		}
		if ok, reason := checkValue(r, f.Value, schema.ParseTypeRef(fieldDesc.Type)); !ok {
			return false, reason
		}
	}
	for _, name := range descriptor.InputFields.Keys() {
		fieldDesc, _ := descriptor.InputFields.Get(name)
		if strings.HasSuffix(fieldDesc.Type, "!") && !fieldDesc.HasDefault && !seen[name] {
			return false, fmt.Sprintf("field %q of required type %q was not provided", name, fieldDesc.Type)
		}
	}
	return true, ""
}

func checkScalarLiteral(scalarName string, v ast.Value) (bool, string) {
	switch scalarName {
	case "Int":
		if _, ok := v.(*ast.IntValue); ok {
			return true, ""
		}
	case "Float":
		switch v.(type) {
		case *ast.FloatValue, *ast.IntValue:
			return true, ""
		}
	case "String":
		if _, ok := v.(*ast.StringValue); ok {
			return true, ""
		}
	case "ID":
		// matches builtin.ID.ParseValue: only a string literal coerces,
		// same as spec's scalar coercion table.
		if _, ok := v.(*ast.StringValue); ok {
			return true, ""
		}
	case "Boolean":
		if _, ok := v.(*ast.BooleanValue); ok {
			return true, ""
		}
	default:
		// a user-defined scalar with no declared coercion rule accepts
		// any literal shape.
		return true, ""
	}
	return false, fmt.Sprintf("expected type %q", scalarName)
}
