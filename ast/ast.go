// Package ast defines the parsed representation of a GraphQL request
// document and the lexer/parser that produce it.
//
// This is the "Value & AST surface" component of the engine: the rest
// of the module (schema, validation, execution) treats parsing as an
// external concern reached only through Parse.
package ast

import "github.com/shyptr/gqlcore/errors"

// Pos is the source position of an AST node.
type Pos = errors.Location

// Node is implemented by every AST element that can carry a position.
type Node interface {
	Location() Pos
}

// Document is the root of a parsed request: a sequence of operation
// and fragment definitions.
type Document struct {
	Operations []*OperationDefinition
	Fragments  []*FragmentDefinition
}

// OperationType distinguishes query/mutation at the AST level
// (subscriptions are out of scope; the parser accepts the keyword for
// forward compatibility but the executor never dispatches on it).
type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

// OperationDefinition is one query/mutation in a document.
type OperationDefinition struct {
	Operation           OperationType
	Name                *Name
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
	Loc                 Pos
}

func (o *OperationDefinition) Location() Pos { return o.Loc }

// FragmentDefinition is a reusable, named selection set bound to a
// type condition.
type FragmentDefinition struct {
	Name          *Name
	TypeCondition *Name
	Directives    []*Directive
	SelectionSet  *SelectionSet
	Loc           Pos
}

func (f *FragmentDefinition) Location() Pos { return f.Loc }

// Name is an identifier token: a field, type, argument, variable, or
// directive name.
type Name struct {
	Value string
	Loc   Pos
}

func (n *Name) Location() Pos { return n.Loc }

// SelectionSet is an ordered list of selections.
type SelectionSet struct {
	Selections []Selection
	Loc        Pos
}

func (s *SelectionSet) Location() Pos { return s.Loc }

// Selection is implemented by Field, InlineFragment, and FragmentSpread.
type Selection interface {
	Node
	isSelection()
}

// Field is a single field selection, optionally aliased and
// sub-selected.
type Field struct {
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
	Loc          Pos
}

func (f *Field) Location() Pos { return f.Loc }
func (f *Field) isSelection()  {}

// ResultName returns the alias if present, else the field name — the
// key under which the field's value appears in the response.
func (f *Field) ResultName() string {
	if f.Alias != nil {
		return f.Alias.Value
	}
	return f.Name.Value
}

// InlineFragment is `... [on TypeCondition] { ... }`.
type InlineFragment struct {
	TypeCondition *Name
	Directives    []*Directive
	SelectionSet  *SelectionSet
	Loc           Pos
}

func (i *InlineFragment) Location() Pos { return i.Loc }
func (i *InlineFragment) isSelection()  {}

// FragmentSpread is `...FragmentName`.
type FragmentSpread struct {
	Name       *Name
	Directives []*Directive
	Loc        Pos
}

func (f *FragmentSpread) Location() Pos { return f.Loc }
func (f *FragmentSpread) isSelection()  {}

// Argument is a single `name: value` pair on a field or directive.
type Argument struct {
	Name  *Name
	Value Value
	Loc   Pos
}

func (a *Argument) Location() Pos { return a.Loc }

// Directive is `@name(args...)`.
type Directive struct {
	Name      *Name
	Arguments []*Argument
	Loc       Pos
}

func (d *Directive) Location() Pos { return d.Loc }

// VariableDefinition declares one operation variable: `$name: Type = default`.
type VariableDefinition struct {
	Variable     *Name
	Type         *TypeRef
	DefaultValue Value
	Loc          Pos
}

func (v *VariableDefinition) Location() Pos { return v.Loc }

// TypeRef is the textual type-reference grammar (`Name`, `Name!`,
// `[Inner]`, `[Inner]!`), used in variable declarations.
type TypeRef struct {
	NamedType string   // set when this is a leaf named type
	ListOf    *TypeRef // set when this is a list type
	NonNull   bool
	Loc       Pos
}

func (t *TypeRef) Location() Pos { return t.Loc }

// String renders the type reference in GraphQL syntax, e.g. "[Int!]!".
func (t *TypeRef) String() string {
	var s string
	if t.ListOf != nil {
		s = "[" + t.ListOf.String() + "]"
	} else {
		s = t.NamedType
	}
	if t.NonNull {
		s += "!"
	}
	return s
}
