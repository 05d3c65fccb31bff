// Package errors defines the error taxonomy produced by parsing,
// validation, and execution.
package errors

import (
	"encoding/json"
	"fmt"
)

// Kind distinguishes the broad category of failure so callers can
// branch on it without string matching.
type Kind string

const (
	KindParse              Kind = "QueryParseError"
	KindValidation         Kind = "ValidationError"
	KindVarNotDefined      Kind = "VarNotDefined"
	KindUnknownDirective   Kind = "UnknownDirective"
	KindRequiredDirective  Kind = "RequiredDirectiveArgs"
	KindExpectedType       Kind = "ExpectedType"
	KindUnknownOperation   Kind = "UnknownOperationNamed"
	KindNoMutations        Kind = "NotConfiguredMutations"
	KindUnrecognizedInline Kind = "UnrecognizedInlineFragment"
	KindField              Kind = "FieldError"
)

// Location is a 1-based line/column position in the source document.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Before reports whether a sorts strictly before b in source order.
func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// GraphQLError is the single error shape surfaced to transport layers.
type GraphQLError struct {
	Kind       Kind
	Message    string
	Locations  []Location
	Path       []interface{}
	Cause      error
	Extensions map[string]interface{}
}

func (e *GraphQLError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("graphql: %s", e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	for _, loc := range e.Locations {
		msg += fmt.Sprintf(" (%d:%d)", loc.Line, loc.Column)
	}
	if len(e.Path) > 0 {
		msg += fmt.Sprintf(" path=%v", e.Path)
	}
	return msg
}

func (e *GraphQLError) Unwrap() error { return e.Cause }

// MarshalJSON renders the error in the response shape the GraphQL
// spec expects: message/locations/path/extensions, never exposing
// Kind or Cause directly (Cause is for internal errors.Is/As use).
func (e *GraphQLError) MarshalJSON() ([]byte, error) {
	type wire struct {
		Message    string                 `json:"message"`
		Locations  []Location             `json:"locations,omitempty"`
		Path       []interface{}          `json:"path,omitempty"`
		Extensions map[string]interface{} `json:"extensions,omitempty"`
	}
	return json.Marshal(wire{
		Message:    e.Message,
		Locations:  e.Locations,
		Path:       e.Path,
		Extensions: e.Extensions,
	})
}

// Is reports whether target is a *GraphQLError with the same non-empty
// Kind, so errors.Is(err, &GraphQLError{Kind: k}) matches any error of
// kind k.
func (e *GraphQLError) Is(target error) bool {
	other, ok := target.(*GraphQLError)
	if !ok {
		return false
	}
	return other.Kind != "" && other.Kind == e.Kind
}

// New builds a GraphQLError with no location information.
func New(kind Kind, format string, args ...interface{}) *GraphQLError {
	return &GraphQLError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At attaches a single source location to the error.
func At(kind Kind, loc Location, format string, args ...interface{}) *GraphQLError {
	return &GraphQLError{Kind: kind, Message: fmt.Sprintf(format, args...), Locations: []Location{loc}}
}

// WithPath returns a copy of err with path prepended to whatever
// response path it already carries — each level of selection-set
// resolution calls this once with its own single-element segment, so
// the path accumulates outside-in as the error bubbles up.
func WithPath(err *GraphQLError, path []interface{}) *GraphQLError {
	cp := *err
	cp.Path = append(append([]interface{}{}, path...), err.Path...)
	return &cp
}

// MultiError aggregates the field errors collected while resolving one
// selection set.
type MultiError []*GraphQLError

func (m MultiError) Error() string {
	if len(m) == 0 {
		return "no errors"
	}
	s := m[0].Error()
	for _, e := range m[1:] {
		s += "; " + e.Error()
	}
	return s
}
