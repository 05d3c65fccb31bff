// Package validation checks a parsed request document against a
// schema registry before execution ever runs a resolver, following the
// GraphQL validation rules: known types/fields/arguments/directives/
// fragments, no fragment cycles, correctly typed values, scalar
// leaves, required arguments, variable use
// restricted to what's declared (and vice versa), and a configurable
// maximum selection depth.
package validation

import (
	"fmt"
	"strings"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/schema"
)

type nameSet map[string]ast.Pos

type context struct {
	registry  *schema.Registry
	fragments map[string]*ast.FragmentDefinition
	errs      []*errors.GraphQLError
	maxDepth  int
}

func (c *context) addErr(loc ast.Pos, rule string, format string, args ...interface{}) {
	c.errs = append(c.errs, &errors.GraphQLError{
		Kind:      errors.KindValidation,
		Message:   fmt.Sprintf(format, args...),
		Locations: []ast.Pos{loc},
		Extensions: map[string]interface{}{
			"rule": rule,
		},
	})
}

// CheckRules runs every validation rule over doc and returns every
// violation found. A nil/empty result means doc is safe to execute.
func CheckRules(registry *schema.Registry, doc *ast.Document, maxDepth int) []*errors.GraphQLError {
	c := &context{registry: registry, fragments: map[string]*ast.FragmentDefinition{}, maxDepth: maxDepth}

	fragNames := make(nameSet)
	for _, frag := range doc.Fragments {
		if _, dup := c.fragments[frag.Name.Value]; dup {
			c.addErr(frag.Loc, "UniqueFragmentNames", "there can be only one fragment named %q", frag.Name.Value)
		}
		c.fragments[frag.Name.Value] = frag
		validateName(c, fragNames, frag.Name, "UniqueFragmentNames", "fragment")

		if _, ok := c.registry.Lookup(frag.TypeCondition.Value); !ok {
			c.addErr(frag.TypeCondition.Loc, "KnownTypeNames", "unknown type %q", frag.TypeCondition.Value)
		} else if !isCompositeTypeName(registry, frag.TypeCondition.Value) {
			c.addErr(frag.TypeCondition.Loc, "FragmentsOnCompositeTypes",
				"fragment %q cannot condition on non composite type %q", frag.Name.Value, frag.TypeCondition.Value)
		}
	}

	c.validateNoFragmentCycles()

	opNames := make(nameSet)
	usedFragments := make(map[string]bool)

	for _, op := range doc.Operations {
		if op.Name != nil && op.Name.Value != "" {
			validateName(c, opNames, op.Name, "UniqueOperationNames", "operation")
		}
		if (op.Name == nil || op.Name.Value == "") && len(doc.Operations) > 1 {
			c.addErr(op.Loc, "LoneAnonymousOperation", "this anonymous operation must be the only defined operation")
		}

		c.validateDirectives(op.Directives, directiveLocationFor(op.Operation))

		varNames := make(nameSet)
		usedVars := make(nameSet)
		for _, v := range op.VariableDefinitions {
			validateName(c, varNames, v.Variable, "UniqueVariableNames", "variable")
			if !isInputTypeRef(c.registry, v.Type) {
				c.addErr(v.Loc, "VariablesAreInputTypes", "variable %q cannot be of non-input type %q", "$"+v.Variable.Value, v.Type.String())
			} else if v.DefaultValue != nil {
				if ok, reason := isValidInputValue(c.registry, v.DefaultValue, v.Type.String()); !ok {
					c.addErr(v.DefaultValue.Location(), "DefaultValuesOfCorrectType",
						"variable %q has invalid default value: %s", "$"+v.Variable.Value, reason)
				}
			}
		}

		var rootType string
		switch op.Operation {
		case ast.Query:
			rootType = c.registry.QueryType
		case ast.Mutation:
			rootType = c.registry.MutationType
			if rootType == "" {
				c.addErr(op.Loc, "NoMutationType", "schema is not configured for mutations")
				continue
			}
		default:
			c.addErr(op.Loc, "NoSubscriptionSupport", "subscriptions are not supported")
			continue
		}

		if c.validateMaxDepth(op.SelectionSet.Selections, 1) {
			continue
		}

		visiting := make(map[string]bool)
		c.validateSelectionSet(op.SelectionSet.Selections, rootType, usedVars, usedFragments, visiting)

		for _, v := range op.VariableDefinitions {
			if _, used := usedVars[v.Variable.Value]; !used {
				c.addErr(v.Loc, "NoUnusedVariables", "variable %q is never used", "$"+v.Variable.Value)
			}
		}
		for name, loc := range usedVars {
			if _, declared := varNames[name]; !declared {
				c.addErr(loc, "NoUndefinedVariables", "variable %q is not defined", "$"+name)
			}
		}
	}

	for name, frag := range c.fragments {
		if !usedFragments[name] {
			c.addErr(frag.Loc, "NoUnusedFragments", "fragment %q is never used", name)
		}
	}

	return c.errs
}

func directiveLocationFor(op ast.OperationType) schema.DirectiveLocation {
	switch op {
	case ast.Mutation:
		return schema.LocMutation
	case ast.Subscription:
		return schema.LocSubscription
	default:
		return schema.LocQuery
	}
}

func validateName(c *context, set nameSet, name *ast.Name, rule, kind string) {
	if loc, ok := set[name.Value]; ok {
		c.addErr(loc, rule, "there can be only one %s named %q", kind, name.Value)
		c.addErr(name.Loc, rule, "there can be only one %s named %q", kind, name.Value)
		return
	}
	set[name.Value] = name.Loc
}

func isCompositeTypeName(r *schema.Registry, name string) bool {
	descriptor, ok := r.Lookup(name)
	if !ok {
		return false
	}
	switch descriptor.Kind {
	case schema.KindObject, schema.KindInterface, schema.KindUnion:
		return true
	}
	return false
}

func isInputTypeRef(r *schema.Registry, t *ast.TypeRef) bool {
	if t.ListOf != nil {
		return isInputTypeRef(r, t.ListOf)
	}
	descriptor, ok := r.Lookup(t.NamedType)
	if !ok {
		return false
	}
	switch descriptor.Kind {
	case schema.KindScalar, schema.KindEnum, schema.KindInputObject:
		return true
	}
	return false
}

// validateSelectionSet is the workhorse: it walks fields, inline
// fragments, and fragment spreads against parentType, checking
// FieldsOnCorrectType, KnownArgumentNames, UniqueArgumentNames,
// ArgumentsOfCorrectType, ProvidedNonNullArguments, ScalarLeafs, and
// KnownDirectives, recording every variable reference and fragment
// spread it encounters along the way.
func (c *context) validateSelectionSet(selections []ast.Selection, parentType string, usedVars nameSet, usedFragments map[string]bool, visiting map[string]bool) {
	for _, sel := range selections {
		switch s := sel.(type) {
		case *ast.Field:
			c.validateField(s, parentType, usedVars, usedFragments, visiting)
		case *ast.InlineFragment:
			c.validateDirectives(s.Directives, schema.LocInlineFragment)
			condition := parentType
			if s.TypeCondition != nil {
				condition = s.TypeCondition.Value
				if _, ok := c.registry.Lookup(condition); !ok {
					c.addErr(s.TypeCondition.Loc, "KnownTypeNames", "unknown type %q", condition)
					continue
				}
				if !isCompositeTypeName(c.registry, condition) {
					c.addErr(s.TypeCondition.Loc, "FragmentsOnCompositeTypes",
						"fragment cannot condition on non composite type %q", condition)
					continue
				}
			}
			c.validateSelectionSet(s.SelectionSet.Selections, condition, usedVars, usedFragments, visiting)
		case *ast.FragmentSpread:
			c.validateDirectives(s.Directives, schema.LocFragmentSpread)
			usedFragments[s.Name.Value] = true
			frag, ok := c.fragments[s.Name.Value]
			if !ok {
				c.addErr(s.Loc, "KnownFragmentNames", "unknown fragment %q", s.Name.Value)
				continue
			}
			if visiting[s.Name.Value] {
				continue
			}
			visiting[s.Name.Value] = true
			c.validateSelectionSet(frag.SelectionSet.Selections, frag.TypeCondition.Value, usedVars, usedFragments, visiting)
			visiting[s.Name.Value] = false
		}
	}
}

func (c *context) validateField(f *ast.Field, parentType string, usedVars nameSet, usedFragments map[string]bool, visiting map[string]bool) {
	c.validateDirectives(f.Directives, schema.LocField)

	if f.Name.Value == "__typename" {
		if f.SelectionSet != nil {
			c.addErr(f.Loc, "ScalarLeafs", "field %q must not have a selection since type %q has no subfields", f.ResultName(), "String")
		}
		return
	}

	descriptor, ok := c.registry.Lookup(parentType)
	fields := (*schema.OrderedMap[*schema.FieldDescriptor])(nil)
	if ok {
		fields = descriptor.Fields()
	}
	if fields == nil {
		c.addErr(f.Loc, "FieldsOnCorrectType", "cannot query field %q on type %q", f.Name.Value, parentType)
		return
	}
	fd, ok := fields.Get(f.Name.Value)
	if !ok {
		suggestion := makeSuggestion("Did you mean", fields.Keys(), f.Name.Value)
		c.addErr(f.Loc, "FieldsOnCorrectType", "cannot query field %q on type %q.%s", f.Name.Value, parentType, suggestion)
		return
	}

	c.validateArguments(f.Loc, f.Arguments, fd.Args, usedVars)

	returnRef := schema.ParseTypeRef(fd.Type)
	returnKind := c.kindOf(returnRef.Head())

	switch returnKind {
	case schema.KindObject, schema.KindInterface, schema.KindUnion:
		if f.SelectionSet == nil {
			c.addErr(f.Loc, "ScalarLeafs", "field %q of type %q must have a selection of subfields", f.Name.Value, fd.Type)
			return
		}
		c.validateSelectionSet(f.SelectionSet.Selections, returnRef.Head(), usedVars, usedFragments, visiting)
	default:
		if f.SelectionSet != nil {
			c.addErr(f.Loc, "ScalarLeafs", "field %q must not have a selection since type %q has no subfields", f.Name.Value, fd.Type)
		}
	}
}

func (c *context) kindOf(typeName string) schema.TypeKind {
	descriptor, ok := c.registry.Lookup(typeName)
	if !ok {
		return ""
	}
	return descriptor.Kind
}

func (c *context) validateArguments(loc ast.Pos, args []*ast.Argument, argDescs *schema.OrderedMap[*schema.InputValueDescriptor], usedVars nameSet) {
	seen := make(nameSet)
	for _, arg := range args {
		if prev, dup := seen[arg.Name.Value]; dup {
			c.addErr(prev, "UniqueArgumentNames", "there can be only one argument named %q", arg.Name.Value)
			c.addErr(arg.Loc, "UniqueArgumentNames", "there can be only one argument named %q", arg.Name.Value)
		}
		seen[arg.Name.Value] = arg.Loc

		recordVariables(arg.Value, usedVars)

		argDesc, ok := argDescs.Get(arg.Name.Value)
		if !ok {
			suggestion := makeSuggestion("Did you mean", argDescs.Keys(), arg.Name.Value)
			c.addErr(arg.Loc, "KnownArgumentNames", "unknown argument %q.%s", arg.Name.Value, suggestion)
			continue
		}
		if ok, reason := isValidInputValue(c.registry, arg.Value, argDesc.Type); !ok {
			c.addErr(arg.Value.Location(), "ArgumentsOfCorrectType", "argument %q has invalid value: %s", arg.Name.Value, reason)
		}
	}

	if argDescs != nil {
		for _, name := range argDescs.Keys() {
			argDesc, _ := argDescs.Get(name)
			if !strings.HasSuffix(argDesc.Type, "!") || argDesc.HasDefault {
				continue
			}
			if _, provided := seen[name]; !provided {
				c.addErr(loc, "ProvidedNonNullArguments", "missing required argument %q of type %q", name, argDesc.Type)
			}
		}
	}
}

// recordVariables marks every $name reference found anywhere inside v
// as used, recording its location so NoUndefinedVariables can point at
// the offending use, walking list/object literal structure.
func recordVariables(v ast.Value, usedVars nameSet) {
	switch val := v.(type) {
	case *ast.VariableValue:
		usedVars[val.Name.Value] = val.Loc
	case *ast.ListValue:
		for _, elem := range val.Values {
			recordVariables(elem, usedVars)
		}
	case *ast.ObjectValue:
		for _, f := range val.Fields {
			recordVariables(f.Value, usedVars)
		}
	}
}

func (c *context) validateDirectives(directives []*ast.Directive, loc schema.DirectiveLocation) {
	seen := make(map[string]bool)
	for _, d := range directives {
		if seen[d.Name.Value] {
			c.addErr(d.Loc, "UniqueDirectivesPerLocation", "the directive %q can only be used once per location", d.Name.Value)
		}
		seen[d.Name.Value] = true

		if d.Name.Value == "skip" || d.Name.Value == "include" {
			continue
		}
		dd, ok := c.registry.LookupDirective(d.Name.Value)
		if !ok {
			c.addErr(d.Loc, "KnownDirectives", "unknown directive %q", d.Name.Value)
			continue
		}
		found := false
		for _, l := range dd.Locations {
			if l == loc {
				found = true
				break
			}
		}
		if !found {
			c.addErr(d.Loc, "KnownDirectives", "directive %q may not be used on %s", d.Name.Value, loc)
		}
	}
}

// validateMaxDepth reports whether depth exceeds c.maxDepth, recording
// a single error and halting further descent if so (matching the
// teacher's "stop validating this operation" early-exit rather than
// flooding the result with one error per over-deep field).
func (c *context) validateMaxDepth(selections []ast.Selection, depth int) bool {
	if c.maxDepth <= 0 {
		return false
	}
	if depth > c.maxDepth {
		c.addErr(selections[0].Location(), "MaxDepthExceeded", "query exceeds maximum depth of %d", c.maxDepth)
		return true
	}
	for _, sel := range selections {
		var nested *ast.SelectionSet
		switch s := sel.(type) {
		case *ast.Field:
			nested = s.SelectionSet
		case *ast.InlineFragment:
			nested = s.SelectionSet
		}
		if nested != nil && c.validateMaxDepth(nested.Selections, depth+1) {
			return true
		}
	}
	return false
}

func (c *context) validateNoFragmentCycles() {
	state := make(map[string]int) // 0 unvisited, 1 visiting, 2 done
	var visit func(name string)
	visit = func(name string) {
		if state[name] == 2 {
			return
		}
		if state[name] == 1 {
			c.addErr(c.fragments[name].Loc, "NoFragmentCycles", "cannot spread fragment %q within itself", name)
			return
		}
		state[name] = 1
		if frag, ok := c.fragments[name]; ok {
			for _, spread := range spreadNames(frag.SelectionSet) {
				visit(spread)
			}
		}
		state[name] = 2
	}
	for name := range c.fragments {
		visit(name)
	}
}

func spreadNames(set *ast.SelectionSet) []string {
	var out []string
	for _, sel := range set.Selections {
		switch s := sel.(type) {
		case *ast.FragmentSpread:
			out = append(out, s.Name.Value)
		case *ast.InlineFragment:
			out = append(out, spreadNames(s.SelectionSet)...)
		}
	}
	return out
}
