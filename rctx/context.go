// Package rctx is the per-request, per-selection context threaded
// through execution: variable bindings, the read-only
// user-data store, fragment lookup, and directive evaluation.
//
// Named rctx (not "context") to avoid colliding with the standard
// library's context.Context — this type is a different, GraphQL-
// specific notion of "current position in the resolution".
package rctx

import (
	"github.com/google/uuid"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/schema"
)

// Context is a per-selection, immutable-during-resolution record. New
// contexts are derived from a parent by WithItem, which copies every
// other field verbatim — this is the "record-update" style the spec
// calls for instead of in-place mutation, since a context may be
// handed to several concurrently resolving query fields at once.
type Context struct {
	// Item is either *ast.SelectionSet or *ast.Field, depending on
	// where in the resolution walk this context was created.
	Item ast.Node

	Variables           map[string]ast.Value
	VariableDefinitions []*ast.VariableDefinition
	Registry            *schema.Registry
	Fragments           map[string]*ast.FragmentDefinition
	RequestID           uuid.UUID

	data *Data
}

// Root builds the context for the top of one operation's resolution.
func Root(registry *schema.Registry, data *Data, fragments map[string]*ast.FragmentDefinition, variables map[string]ast.Value, varDefs []*ast.VariableDefinition, requestID uuid.UUID) *Context {
	return &Context{
		Variables:           variables,
		VariableDefinitions: varDefs,
		Registry:            registry,
		Fragments:           fragments,
		RequestID:           requestID,
		data:                data,
	}
}

// WithItem derives a new context pointed at a different AST item,
// copying every other field.
func (c *Context) WithItem(item ast.Node) *Context {
	cp := *c
	cp.Item = item
	return &cp
}

// Field type-asserts Item as the current field. It panics if Item is
// not a *ast.Field, which would be a programmer error in the caller —
// only field-resolution code paths call this.
func (c *Context) Field() *ast.Field {
	return c.Item.(*ast.Field)
}

// SelectionSet type-asserts Item as the current selection set.
func (c *Context) SelectionSet() *ast.SelectionSet {
	return c.Item.(*ast.SelectionSet)
}

// VarValue resolves a $name reference: enclosing operation's variable
// definition, then request variables, then the definition's default,
// else VarNotDefined at loc.
func (c *Context) VarValue(name string, loc ast.Pos) (ast.Value, error) {
	var def *ast.VariableDefinition
	for _, d := range c.VariableDefinitions {
		if d.Variable.Value == name {
			def = d
			break
		}
	}
	if def == nil {
		return nil, errors.At(errors.KindVarNotDefined, loc, "variable $%s is not defined by the operation", name)
	}
	if v, ok := c.Variables[name]; ok {
		return v, nil
	}
	if def.DefaultValue != nil {
		return def.DefaultValue, nil
	}
	return nil, errors.At(errors.KindVarNotDefined, loc, "variable $%s has no value and no default", name)
}

// ResolveInputValue substitutes variable references found anywhere
// inside v — at the top level, and recursively through list/object
// structure — with their bound values. Scalar/enum/null leaves are
// returned unchanged.
func (c *Context) ResolveInputValue(v ast.Value) (ast.Value, error) {
	switch val := v.(type) {
	case *ast.VariableValue:
		return c.VarValue(val.Name.Value, val.Loc)
	case *ast.ListValue:
		out := make([]ast.Value, len(val.Values))
		for i, elem := range val.Values {
			resolved, err := c.ResolveInputValue(elem)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return &ast.ListValue{Values: out, Loc: val.Loc}, nil
	case *ast.ObjectValue:
		fields := make([]*ast.ObjectField, len(val.Fields))
		for i, f := range val.Fields {
			resolved, err := c.ResolveInputValue(f.Value)
			if err != nil {
				return nil, err
			}
			fields[i] = &ast.ObjectField{Name: f.Name, Value: resolved, Loc: f.Loc}
		}
		return &ast.ObjectValue{Fields: fields, Loc: val.Loc}, nil
	default:
		return v, nil
	}
}

// IsSkip evaluates @skip/@include against directives and reports
// whether the selection carrying them must be omitted entirely.
func (c *Context) IsSkip(directives []*ast.Directive) (bool, error) {
	for _, d := range directives {
		switch d.Name.Value {
		case "skip":
			v, err := c.directiveIfArg(d)
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		case "include":
			v, err := c.directiveIfArg(d)
			if err != nil {
				return false, err
			}
			if !v {
				return true, nil
			}
		default:
			return false, errors.At(errors.KindUnknownDirective, d.Location(), "unknown directive %q", d.Name.Value)
		}
	}
	return false, nil
}

func (c *Context) directiveIfArg(d *ast.Directive) (bool, error) {
	for _, arg := range d.Arguments {
		if arg.Name.Value == "if" {
			resolved, err := c.ResolveInputValue(arg.Value)
			if err != nil {
				return false, err
			}
			b, ok := resolved.(*ast.BooleanValue)
			if !ok {
				return false, errors.At(errors.KindExpectedType, arg.Location(), "@%s(if:) expects Boolean", d.Name.Value)
			}
			return b.Value, nil
		}
	}
	return false, errors.At(errors.KindRequiredDirective, d.Location(), `directive @%s requires argument "if"`, d.Name.Value)
}
