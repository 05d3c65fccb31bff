package execution

import (
	"fmt"
	"sort"

	"github.com/shyptr/gqlcore/ast"
)

// coerceVariables turns the raw, JSON-decoded variables map a
// transport layer hands in (string/float64/bool/nil/[]interface{}/
// map[string]interface{}, per encoding/json's default unmarshal
// targets) into ast.Value literals, so the rest of the pipeline
// (ResolveInputValue, isValidInputValue, every scalar's ParseValue)
// only ever has to deal with one representation of a value.
func coerceVariables(raw map[string]interface{}) map[string]ast.Value {
	out := make(map[string]ast.Value, len(raw))
	for k, v := range raw {
		out[k] = coerceJSON(v)
	}
	return out
}

func coerceJSON(v interface{}) ast.Value {
	switch val := v.(type) {
	case nil:
		return &ast.NullValue{}
	case bool:
		return &ast.BooleanValue{Value: val}
	case string:
		return &ast.StringValue{Value: val}
	case float64:
		if val == float64(int64(val)) {
			return &ast.IntValue{Value: fmt.Sprintf("%d", int64(val))}
		}
		return &ast.FloatValue{Value: fmt.Sprintf("%v", val)}
	case int:
		return &ast.IntValue{Value: fmt.Sprintf("%d", val)}
	case int64:
		return &ast.IntValue{Value: fmt.Sprintf("%d", val)}
	case []interface{}:
		values := make([]ast.Value, len(val))
		for i, elem := range val {
			values[i] = coerceJSON(elem)
		}
		return &ast.ListValue{Values: values}
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]*ast.ObjectField, len(keys))
		for i, k := range keys {
			fields[i] = &ast.ObjectField{Name: &ast.Name{Value: k}, Value: coerceJSON(val[k])}
		}
		return &ast.ObjectValue{Fields: fields}
	default:
		return &ast.StringValue{Value: fmt.Sprintf("%v", val)}
	}
}
