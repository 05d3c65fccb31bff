// Package introspection implements the GraphQL June-2018 introspection
// shapes (__Schema, __Type, __Field, __InputValue, __EnumValue,
// __Directive) directly against a *schema.Registry.
//
// Unlike the teacher, which derives these objects by reflecting over Go
// structs tagged `graphql:"..."`, this package has no reflection layer
// to derive from — schema.Registry descriptors already carry the
// introspectable shape, so these types read the registry directly
// instead of reflecting over a mirrored Go struct.
package introspection

import (
	"sort"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/rctx"
	"github.com/shyptr/gqlcore/schema"
)

// Schema resolves the __schema meta-field.
type Schema struct {
	Registry *schema.Registry
}

func (Schema) TypeName() string          { return "__Schema" }
func (Schema) QualifiedTypeName() string { return "__Schema!" }
func (Schema) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("__Schema", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "__Schema", Fields: schema.NewOrderedMap[*schema.FieldDescriptor](),
		}}
	})
	return "__Schema!"
}

func (s Schema) Resolve(ctx interface{}) (interface{}, error) {
	rc := ctx.(*rctx.Context)
	return resolveObjectlike(rc, s, rc.SelectionSet())
}

func (s Schema) IsEmpty() bool { return false }

func (s Schema) ResolveInlineFragment(typeCondition string, ctx interface{}, acc map[string]interface{}) error {
	if typeCondition != "" && typeCondition != "__Schema" {
		return errors.New(errors.KindUnrecognizedInline, "type condition %q does not apply to __Schema", typeCondition)
	}
	rc := ctx.(*rctx.Context)
	resolved, err := resolveObjectlike(rc, s, rc.SelectionSet())
	if err != nil {
		return err
	}
	for k, v := range resolved {
		acc[k] = v
	}
	return nil
}

func (s Schema) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "__typename":
		return "__Schema", nil
	case "description":
		return nil, nil
	case "types":
		names := s.Registry.Types.Keys()
		sort.Strings(names)
		out := make([]interface{}, 0, len(names))
		for _, name := range names {
			out = append(out, Type{Registry: s.Registry, Ref: &schema.TypeRef{Named: name}})
		}
		return out, nil
	case "queryType":
		return Type{Registry: s.Registry, Ref: &schema.TypeRef{Named: s.Registry.QueryType}}, nil
	case "mutationType":
		if s.Registry.MutationType == "" {
			return nil, nil
		}
		return Type{Registry: s.Registry, Ref: &schema.TypeRef{Named: s.Registry.MutationType}}, nil
	case "subscriptionType":
		return nil, nil
	case "directives":
		names := s.Registry.Directives.Keys()
		out := make([]interface{}, 0, len(names))
		for _, name := range names {
			d, _ := s.Registry.LookupDirective(name)
			out = append(out, Directive{Registry: s.Registry, Descriptor: d})
		}
		return out, nil
	}
	return nil, errors.New(errors.KindField, "__Schema has no field %q", field.Name.Value)
}

// Type resolves one __Type node. Ref carries the list/non-null
// wrapping; Ref.Named is set for leaf named types.
type Type struct {
	Registry *schema.Registry
	Ref      *schema.TypeRef
}

func (t Type) kind() schema.TypeKind {
	switch {
	case t.Ref.NonNull:
		return schema.KindNonNull
	case t.Ref.ListOf != nil:
		return schema.KindList
	}
	descriptor, ok := t.Registry.Lookup(t.Ref.Named)
	if !ok {
		return ""
	}
	return descriptor.Kind
}

func (t Type) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "__typename":
		return "__Type", nil
	case "kind":
		return string(t.kind()), nil
	case "name":
		if t.Ref.NonNull || t.Ref.ListOf != nil {
			return nil, nil
		}
		return t.Ref.Named, nil
	case "description":
		if t.Ref.NonNull || t.Ref.ListOf != nil {
			return nil, nil
		}
		descriptor, ok := t.Registry.Lookup(t.Ref.Named)
		if !ok {
			return nil, nil
		}
		return descriptor.Description(), nil
	case "fields":
		return t.resolveFields(ctx, field)
	case "interfaces":
		return t.resolveInterfaces()
	case "possibleTypes":
		return t.resolvePossibleTypes()
	case "enumValues":
		return t.resolveEnumValues(ctx, field)
	case "inputFields":
		return t.resolveInputFields()
	case "ofType":
		if t.Ref.NonNull {
			return Type{Registry: t.Registry, Ref: &schema.TypeRef{Named: t.Ref.Named, ListOf: t.Ref.ListOf}}, nil
		}
		if t.Ref.ListOf != nil {
			return Type{Registry: t.Registry, Ref: t.Ref.ListOf}, nil
		}
		return nil, nil
	}
	return nil, errors.New(errors.KindField, "__Type has no field %q", field.Name.Value)
}

func (t Type) resolveFields(ctx interface{}, field *ast.Field) (interface{}, error) {
	if t.Ref.NonNull || t.Ref.ListOf != nil {
		return nil, nil
	}
	descriptor, ok := t.Registry.Lookup(t.Ref.Named)
	if !ok {
		return nil, nil
	}
	fields := descriptor.Fields()
	if fields == nil {
		return nil, nil
	}
	includeDeprecated := boolArg(ctx, field, "includeDeprecated")
	var out []interface{}
	for _, name := range fields.Keys() {
		fd, _ := fields.Get(name)
		if fd.IsDeprecated && !includeDeprecated {
			continue
		}
		out = append(out, Field{Registry: t.Registry, Descriptor: fd})
	}
	return out, nil
}

func (t Type) resolveInterfaces() (interface{}, error) {
	if t.Ref.NonNull || t.Ref.ListOf != nil || t.kind() != schema.KindObject {
		return nil, nil
	}
	descriptor, _ := t.Registry.Lookup(t.Ref.Named)
	var out []interface{}
	for _, iface := range descriptor.Object.Interfaces {
		out = append(out, Type{Registry: t.Registry, Ref: &schema.TypeRef{Named: iface}})
	}
	return out, nil
}

func (t Type) resolvePossibleTypes() (interface{}, error) {
	if t.Ref.NonNull || t.Ref.ListOf != nil {
		return nil, nil
	}
	k := t.kind()
	if k != schema.KindInterface && k != schema.KindUnion {
		return nil, nil
	}
	names := make([]string, 0)
	for name := range t.Registry.PossibleTypes(t.Ref.Named) {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]interface{}, 0, len(names))
	for _, name := range names {
		out = append(out, Type{Registry: t.Registry, Ref: &schema.TypeRef{Named: name}})
	}
	return out, nil
}

func (t Type) resolveEnumValues(ctx interface{}, field *ast.Field) (interface{}, error) {
	if t.kind() != schema.KindEnum {
		return nil, nil
	}
	descriptor, _ := t.Registry.Lookup(t.Ref.Named)
	includeDeprecated := boolArg(ctx, field, "includeDeprecated")
	var out []interface{}
	for _, v := range descriptor.Enum.Values {
		if v.IsDeprecated && !includeDeprecated {
			continue
		}
		out = append(out, EnumValue{Descriptor: v})
	}
	return out, nil
}

// boolArg resolves a boolean-typed field argument (substituting
// variables), defaulting to false if absent or malformed.
func boolArg(ctx interface{}, field *ast.Field, name string) bool {
	rc, ok := ctx.(*rctx.Context)
	if !ok {
		return false
	}
	for _, arg := range field.Arguments {
		if arg.Name.Value != name {
			continue
		}
		resolved, err := rc.ResolveInputValue(arg.Value)
		if err != nil {
			return false
		}
		if b, ok := resolved.(*ast.BooleanValue); ok {
			return b.Value
		}
	}
	return false
}

func (t Type) resolveInputFields() (interface{}, error) {
	if t.kind() != schema.KindInputObject {
		return nil, nil
	}
	descriptor, _ := t.Registry.Lookup(t.Ref.Named)
	var out []interface{}
	for _, name := range descriptor.InputObject.InputFields.Keys() {
		iv, _ := descriptor.InputObject.InputFields.Get(name)
		out = append(out, InputValue{Registry: t.Registry, Descriptor: iv})
	}
	return out, nil
}

func (t Type) ResolveInlineFragment(typeCondition string, ctx interface{}, acc map[string]interface{}) error {
	if typeCondition != "" && typeCondition != "__Type" {
		return errors.New(errors.KindUnrecognizedInline, "type condition %q does not apply to __Type", typeCondition)
	}
	rc := ctx.(*rctx.Context)
	resolved, err := resolveObjectlike(rc, t, rc.SelectionSet())
	if err != nil {
		return err
	}
	for k, v := range resolved {
		acc[k] = v
	}
	return nil
}

func (t Type) IsEmpty() bool { return false }

func (t Type) Resolve(ctx interface{}) (interface{}, error) {
	rc := ctx.(*rctx.Context)
	return resolveObjectlike(rc, t, rc.SelectionSet())
}

// Field resolves one __Field node.
type Field struct {
	Registry   *schema.Registry
	Descriptor *schema.FieldDescriptor
}

func (f Field) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "name":
		return f.Descriptor.Name, nil
	case "description":
		return f.Descriptor.Description, nil
	case "args":
		var out []interface{}
		for _, name := range f.Descriptor.Args.Keys() {
			arg, _ := f.Descriptor.Args.Get(name)
			out = append(out, InputValue{Registry: f.Registry, Descriptor: arg})
		}
		return out, nil
	case "type":
		return Type{Registry: f.Registry, Ref: schema.ParseTypeRef(f.Descriptor.Type)}, nil
	case "isDeprecated":
		return f.Descriptor.IsDeprecated, nil
	case "deprecationReason":
		if !f.Descriptor.IsDeprecated {
			return nil, nil
		}
		return f.Descriptor.DeprecationReason, nil
	}
	return nil, errors.New(errors.KindField, "__Field has no field %q", field.Name.Value)
}

func (f Field) ResolveInlineFragment(string, interface{}, map[string]interface{}) error { return nil }
func (f Field) IsEmpty() bool                                                          { return false }
func (f Field) Resolve(ctx interface{}) (interface{}, error) {
	rc := ctx.(*rctx.Context)
	return resolveObjectlike(rc, f, rc.SelectionSet())
}

// InputValue resolves one __InputValue node.
type InputValue struct {
	Registry   *schema.Registry
	Descriptor *schema.InputValueDescriptor
}

func (v InputValue) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "name":
		return v.Descriptor.Name, nil
	case "description":
		return v.Descriptor.Description, nil
	case "type":
		return Type{Registry: v.Registry, Ref: schema.ParseTypeRef(v.Descriptor.Type)}, nil
	case "defaultValue":
		if !v.Descriptor.HasDefault {
			return nil, nil
		}
		if lit, ok := v.Descriptor.DefaultValue.(ast.Value); ok {
			return ast.Print(lit), nil
		}
		return nil, nil
	}
	return nil, errors.New(errors.KindField, "__InputValue has no field %q", field.Name.Value)
}

func (v InputValue) ResolveInlineFragment(string, interface{}, map[string]interface{}) error {
	return nil
}
func (v InputValue) IsEmpty() bool { return false }
func (v InputValue) Resolve(ctx interface{}) (interface{}, error) {
	rc := ctx.(*rctx.Context)
	return resolveObjectlike(rc, v, rc.SelectionSet())
}

// EnumValue resolves one __EnumValue node.
type EnumValue struct {
	Descriptor schema.EnumValueDescriptor
}

func (v EnumValue) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "name":
		return v.Descriptor.Name, nil
	case "description":
		return v.Descriptor.Description, nil
	case "isDeprecated":
		return v.Descriptor.IsDeprecated, nil
	case "deprecationReason":
		if !v.Descriptor.IsDeprecated {
			return nil, nil
		}
		return v.Descriptor.DeprecationReason, nil
	}
	return nil, errors.New(errors.KindField, "__EnumValue has no field %q", field.Name.Value)
}

func (v EnumValue) ResolveInlineFragment(string, interface{}, map[string]interface{}) error {
	return nil
}
func (v EnumValue) IsEmpty() bool { return false }
func (v EnumValue) Resolve(ctx interface{}) (interface{}, error) {
	rc := ctx.(*rctx.Context)
	return resolveObjectlike(rc, v, rc.SelectionSet())
}

// Directive resolves one __Directive node.
type Directive struct {
	Registry   *schema.Registry
	Descriptor *schema.DirectiveDescriptor
}

func (d Directive) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "name":
		return d.Descriptor.Name, nil
	case "description":
		return d.Descriptor.Description, nil
	case "locations":
		out := make([]interface{}, len(d.Descriptor.Locations))
		for i, loc := range d.Descriptor.Locations {
			out[i] = string(loc)
		}
		return out, nil
	case "args":
		var out []interface{}
		for _, name := range d.Descriptor.Args.Keys() {
			arg, _ := d.Descriptor.Args.Get(name)
			out = append(out, InputValue{Registry: d.Registry, Descriptor: arg})
		}
		return out, nil
	case "isDeprecated":
		return false, nil
	}
	return nil, errors.New(errors.KindField, "__Directive has no field %q", field.Name.Value)
}

func (d Directive) ResolveInlineFragment(string, interface{}, map[string]interface{}) error {
	return nil
}
func (d Directive) IsEmpty() bool { return false }
func (d Directive) Resolve(ctx interface{}) (interface{}, error) {
	rc := ctx.(*rctx.Context)
	return resolveObjectlike(rc, d, rc.SelectionSet())
}

// resolveObjectlike is the minimal selection-set walk introspection
// objects need: no fragments, sequential (introspection results are
// tiny and read-only, so there is no reason to bother with concurrent
// resolution here).
func resolveObjectlike(rc *rctx.Context, obj schema.Objectlike, set *ast.SelectionSet) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(set.Selections))
	for _, sel := range set.Selections {
		field, ok := sel.(*ast.Field)
		if !ok {
			continue
		}
		skip, err := rc.IsSkip(field.Directives)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		fieldCtx := rc.WithItem(field)
		value, err := obj.ResolveField(fieldCtx, field)
		if err != nil {
			return nil, errors.WithPath(toGraphQLError(err), []interface{}{field.ResultName()})
		}
		if field.SelectionSet != nil {
			value, err = resolveNested(fieldCtx, value, field.SelectionSet)
			if err != nil {
				return nil, err
			}
		}
		out[field.ResultName()] = value
	}
	return out, nil
}

func resolveNested(rc *rctx.Context, value interface{}, set *ast.SelectionSet) (interface{}, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case schema.Objectlike:
		return resolveObjectlike(rc.WithItem(set), v, set)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, elem := range v {
			resolved, err := resolveNested(rc, elem, set)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	default:
		return value, nil
	}
}

func toGraphQLError(err error) *errors.GraphQLError {
	if gqlErr, ok := err.(*errors.GraphQLError); ok {
		return gqlErr
	}
	return errors.New(errors.KindField, "%s", err.Error())
}
