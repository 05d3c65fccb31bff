// Package execution ties the schema registry, validator, and rctx
// resolution driver together behind the small public surface an
// application actually uses: build a Schema once, register
// process-lifetime dependencies, then run queries and mutations
// against it.
package execution

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/shyptr/gqlcore/builtin"
	"github.com/shyptr/gqlcore/rctx"
	"github.com/shyptr/gqlcore/schema"
)

// Schema is a built, ready-to-query GraphQL schema: a registry plus
// the two resolved root values execution dispatches into.
type Schema struct {
	Registry     *schema.Registry
	data         *rctx.Data
	queryRoot    schema.Composite
	mutationRoot schema.Composite
	maxDepth     int
	logger       zerolog.Logger
}

// New builds a Schema from a user-supplied query root and mutation
// root, registering the five builtin scalars, the @skip/@include
// directives, and the introspection meta-types. Pass builtin.EmptyMutation{}
// as mutationRoot for a schema with no mutations.
func New[Q builtin.QueryRootElem](queryRoot Q, mutationRoot schema.Composite, opts ...schema.Option) *Schema {
	cfg := schema.NewConfig(opts...)
	r := schema.NewRegistry()

	ifArg := schema.NewOrderedMap[*schema.InputValueDescriptor]()
	ifArg.Set("if", &schema.InputValueDescriptor{Name: "if", Type: "Boolean!"})
	r.AddDirective(&schema.DirectiveDescriptor{
		Name:      "skip",
		Description: "Skips this field or fragment when the `if` argument is true.",
		Locations: []schema.DirectiveLocation{schema.LocField, schema.LocFragmentSpread, schema.LocInlineFragment},
		Args:      ifArg,
	})
	includeArg := schema.NewOrderedMap[*schema.InputValueDescriptor]()
	includeArg.Set("if", &schema.InputValueDescriptor{Name: "if", Type: "Boolean!"})
	r.AddDirective(&schema.DirectiveDescriptor{
		Name:      "include",
		Description: "Includes this field or fragment only when the `if` argument is true.",
		Locations: []schema.DirectiveLocation{schema.LocField, schema.LocFragmentSpread, schema.LocInlineFragment},
		Args:      includeArg,
	})

	builtin.Int(0).CreateTypeInfo(r)
	builtin.Float(0).CreateTypeInfo(r)
	builtin.String("").CreateTypeInfo(r)
	builtin.Boolean(false).CreateTypeInfo(r)
	builtin.ID("").CreateTypeInfo(r)

	root := builtin.QueryRoot[Q]{Inner: queryRoot, Registry: r}
	root.CreateTypeInfo(r)

	mutationRoot.CreateTypeInfo(r)
	if !mutationRoot.IsEmpty() {
		r.MutationType = mutationRoot.TypeName()
	}

	return &Schema{
		Registry:     r,
		data:         rctx.NewData(),
		queryRoot:    root,
		mutationRoot: mutationRoot,
		maxDepth:     cfg.MaxDepth,
		logger:       zerolog.New(os.Stderr).With().Timestamp().Str("component", "gqlcore").Logger(),
	}
}

// Data registers a process-lifetime dependency (a database handle, a
// loader, configuration) that resolvers retrieve with rctx.DataOf[T].
// Only safe to call before the schema serves its first query.
func (s *Schema) Data(obj interface{}) {
	s.data.Set(obj)
}

// Logger returns the schema's structured logger, already scoped with
// component="gqlcore" — callers may further scope it per request.
func (s *Schema) Logger() zerolog.Logger {
	return s.logger
}

// Query begins building one request execution against source, the raw
// GraphQL request document text.
func (s *Schema) Query(source string) *QueryBuilder {
	return &QueryBuilder{schema: s, source: source}
}
