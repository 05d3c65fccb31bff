package execution

import (
	"context"

	"github.com/google/uuid"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/rctx"
	"github.com/shyptr/gqlcore/validation"
)

// QueryBuilder holds one request's source document until Execute
// parses, validates, and resolves it; request variables and the
// operation to run are passed to Execute itself.
type QueryBuilder struct {
	schema *Schema
	source string
}

// Result is the top-level response shape: Data is nil when parsing,
// validation, or operation selection failed, or when an error on a
// non-null top-level field discarded the whole selection;
// Errors is empty exactly when the request succeeded cleanly.
type Result struct {
	Data   interface{}             `json:"data,omitempty"`
	Errors []*errors.GraphQLError  `json:"errors,omitempty"`
}

// Execute runs the request document against ctx. variables carries the
// request's JSON-decoded `$name` bindings; operationName disambiguates
// a document declaring more than one operation (required in that case;
// when non-empty it must name one of the document's operations).
func (q *QueryBuilder) Execute(ctx context.Context, variables map[string]interface{}, operationName string) *Result {
	requestID := uuid.New()
	logger := q.schema.logger.With().Str("request_id", requestID.String()).Logger()

	doc, perr := ast.Parse(q.source)
	if perr != nil {
		logger.Error().Err(perr).Msg("parse error")
		return &Result{Errors: []*errors.GraphQLError{perr}}
	}

	fragments := make(map[string]*ast.FragmentDefinition, len(doc.Fragments))
	for _, frag := range doc.Fragments {
		fragments[frag.Name.Value] = frag
	}

	if errs := validation.CheckRules(q.schema.Registry, doc, q.schema.maxDepth); len(errs) > 0 {
		logger.Warn().Int("count", len(errs)).Msg("validation failed")
		return &Result{Errors: errs}
	}

	op, operr := selectOperation(doc, operationName)
	if operr != nil {
		return &Result{Errors: []*errors.GraphQLError{operr}}
	}

	var mode rctx.ResolveMode
	rootComposite := q.schema.queryRoot
	switch op.Operation {
	case ast.Mutation:
		rootComposite = q.schema.mutationRoot
		mode = rctx.ResolveSerial
	default:
		mode = rctx.ResolveParallel
	}

	rootCtx := rctx.Root(q.schema.Registry, q.schema.data, fragments, coerceVariables(variables), op.VariableDefinitions, requestID)
	rootCtx = rootCtx.WithItem(op.SelectionSet)

	data, err := rctx.ResolveSelectionSet(rootCtx, rootComposite, mode)

	var fieldErrs []*errors.GraphQLError
	if err != nil {
		if me, ok := err.(errors.MultiError); ok {
			fieldErrs = me
		} else {
			fieldErrs = []*errors.GraphQLError{errors.New(errors.KindField, "%s", err.Error())}
		}
	}
	logger.Info().
		Str("operation", string(op.Operation)).
		Int("errors", len(fieldErrs)).
		Msg("request complete")

	if data == nil {
		return &Result{Errors: fieldErrs}
	}
	return &Result{Data: data, Errors: fieldErrs}
}

// selectOperation picks the operation to run, per the resolution
// spec.md requires: an explicit operationName is mandatory whenever a
// document declares more than one operation, and must name one of them.
func selectOperation(doc *ast.Document, operationName string) (*ast.OperationDefinition, *errors.GraphQLError) {
	if len(doc.Operations) == 0 {
		return nil, errors.New(errors.KindUnknownOperation, "document contains no operations")
	}
	if operationName == "" {
		if len(doc.Operations) > 1 {
			return nil, errors.New(errors.KindUnknownOperation,
				"must provide operation name if query contains multiple operations")
		}
		return doc.Operations[0], nil
	}
	for _, op := range doc.Operations {
		if op.Name != nil && op.Name.Value == operationName {
			return op, nil
		}
	}
	return nil, errors.New(errors.KindUnknownOperation, "no operation with name %q", operationName)
}
