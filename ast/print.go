package ast

import (
	"strconv"
	"strings"
)

// Print renders a Value back into GraphQL literal syntax, used by
// introspection to surface default-value strings.
func Print(v Value) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case *NullValue:
		return "null"
	case *BooleanValue:
		return strconv.FormatBool(val.Value)
	case *IntValue:
		return val.Value
	case *FloatValue:
		return val.Value
	case *StringValue:
		return strconv.Quote(val.Value)
	case *EnumValue:
		return val.Value
	case *VariableValue:
		return "$" + val.Name.Value
	case *ListValue:
		parts := make([]string, len(val.Values))
		for i, elem := range val.Values {
			parts[i] = Print(elem)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ObjectValue:
		parts := make([]string, len(val.Fields))
		for i, f := range val.Fields {
			parts[i] = f.Name.Value + ": " + Print(f.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return ""
}
