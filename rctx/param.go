package rctx

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/schema"
)

// ParamValue finds the argument named name on the context's current
// field, resolves any variable references within it, and parses it as
// T. If the argument is absent, defaultValue() supplies a literal to
// parse instead; pass a nil defaultValue to make the argument
// required. Every failure is annotated with the field's source
// position.
func ParamValue[T schema.Elem[T]](c *Context, name string, defaultValue func() ast.Value) (T, error) {
	field := c.Field()
	var zero T

	for _, arg := range field.Arguments {
		if arg.Name.Value != name {
			continue
		}
		resolved, err := c.ResolveInputValue(arg.Value)
		if err != nil {
			return zero, err
		}
		v, ok := zero.ParseValue(resolved)
		if !ok {
			return zero, errors.At(errors.KindExpectedType, field.Location(),
				"argument %q: expected %s", name, zero.TypeName())
		}
		return v, nil
	}

	if defaultValue == nil {
		return zero, errors.At(errors.KindExpectedType, field.Location(),
			"missing required argument %q", name)
	}
	v, ok := zero.ParseValue(defaultValue())
	if !ok {
		return zero, errors.At(errors.KindExpectedType, field.Location(),
			"argument %q: invalid default value", name)
	}
	return v, nil
}
