package ast

import (
	"text/scanner"

	"github.com/shyptr/gqlcore/errors"
)

// Parse lexes and parses a GraphQL request document. It is the only
// entry point the rest of the module uses to turn source text into an
// AST; everything else in this package is an implementation detail of
// that translation.
func Parse(source string) (*Document, *errors.GraphQLError) {
	l := newLexer(source)
	var doc *Document
	if err := l.catchSyntaxError(func() {
		l.skipWhitespace()
		doc = parseDocument(l)
	}); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseDocument(l *lexer) *Document {
	doc := &Document{}
	for l.peek() != tokEOF {
		if l.peek() == tokBraceL {
			op := &OperationDefinition{Operation: Query, Loc: l.location()}
			op.SelectionSet = parseSelectionSet(l)
			doc.Operations = append(doc.Operations, op)
			continue
		}

		loc := l.location()
		name := parseName(l)
		switch name.Value {
		case "query":
			def := parseOperationDefinition(l, Query)
			def.Loc = loc
			doc.Operations = append(doc.Operations, def)
		case "mutation":
			def := parseOperationDefinition(l, Mutation)
			def.Loc = loc
			doc.Operations = append(doc.Operations, def)
		case "subscription":
			def := parseOperationDefinition(l, Subscription)
			def.Loc = loc
			doc.Operations = append(doc.Operations, def)
		case "fragment":
			frag := parseFragmentDefinition(l)
			frag.Loc = loc
			doc.Fragments = append(doc.Fragments, frag)
		default:
			l.syntaxErrorf("unexpected %q, expecting query, mutation, or fragment", name.Value)
		}
	}
	return doc
}

func parseOperationDefinition(l *lexer, opType OperationType) *OperationDefinition {
	def := &OperationDefinition{Operation: opType}
	if l.peek() == tokName {
		def.Name = parseName(l)
	}
	def.VariableDefinitions = parseVariableDefinitions(l)
	def.Directives = parseDirectives(l)
	def.SelectionSet = parseSelectionSet(l)
	return def
}

func parseFragmentDefinition(l *lexer) *FragmentDefinition {
	name := parseName(l)
	l.advanceKeyword("on")
	typeCondition := parseName(l)
	directives := parseDirectives(l)
	selectionSet := parseSelectionSet(l)
	return &FragmentDefinition{
		Name:          name,
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
	}
}

func parseVariableDefinitions(l *lexer) []*VariableDefinition {
	if l.peek() != tokParenL {
		return nil
	}
	var vars []*VariableDefinition
	l.advance(tokParenL)
	for l.peek() != tokParenR {
		vars = append(vars, parseVariableDefinition(l))
	}
	l.advance(tokParenR)
	return vars
}

func parseVariableDefinition(l *lexer) *VariableDefinition {
	loc := l.location()
	l.advance(tokDollar)
	name := parseName(l)
	l.advance(tokColon)
	t := parseTypeRef(l)
	var defaultValue Value
	if l.peek() == tokEquals {
		l.advance(tokEquals)
		defaultValue = parseValueLiteral(l, true)
	}
	return &VariableDefinition{
		Variable:     name,
		Type:         t,
		DefaultValue: defaultValue,
		Loc:          loc,
	}
}

func parseTypeRef(l *lexer) *TypeRef {
	loc := l.location()
	var t *TypeRef
	switch l.peek() {
	case tokBracketL:
		l.advance(tokBracketL)
		inner := parseTypeRef(l)
		l.advance(tokBracketR)
		t = &TypeRef{ListOf: inner, Loc: loc}
	case tokName:
		t = &TypeRef{NamedType: l.scan.TokenText(), Loc: loc}
		l.advance(tokName)
	default:
		l.syntaxErrorf("expected type, found %q", l.tokenText())
	}
	if l.peek() == tokBang {
		l.advance(tokBang)
		t.NonNull = true
	}
	return t
}

func parseName(l *lexer) *Name {
	loc := l.location()
	if l.peek() != tokName {
		l.syntaxErrorf("expected Name, found %q", l.tokenText())
	}
	name := l.scan.TokenText()
	l.advance(tokName)
	return &Name{Value: name, Loc: loc}
}

func parseSelectionSet(l *lexer) *SelectionSet {
	loc := l.location()
	var selections []Selection
	l.advance(tokBraceL)
	for l.peek() != tokBraceR {
		selections = append(selections, parseSelection(l))
	}
	l.advance(tokBraceR)
	return &SelectionSet{Selections: selections, Loc: loc}
}

func parseSelection(l *lexer) Selection {
	if l.peek() == tokSpread {
		return parseFragment(l)
	}
	return parseField(l)
}

func parseField(l *lexer) *Field {
	field := &Field{Loc: l.location()}
	field.Alias = parseName(l)
	field.Name = field.Alias
	if l.peek() == tokColon {
		l.advance(tokColon)
		field.Name = parseName(l)
	} else {
		field.Alias = nil
	}
	if l.peek() == tokParenL {
		field.Arguments = parseArguments(l)
	}
	field.Directives = parseDirectives(l)
	if l.peek() == tokBraceL {
		field.SelectionSet = parseSelectionSet(l)
	}
	return field
}

// parseFragment parses both the FragmentSpread and InlineFragment
// forms, which share the leading `...` token.
func parseFragment(l *lexer) Selection {
	loc := l.location()
	l.advance(tokSpread)
	l.advance(tokSpread)
	l.advance(tokSpread)

	if l.peek() == tokName && l.scan.TokenText() != "on" {
		name := parseName(l)
		directives := parseDirectives(l)
		return &FragmentSpread{Name: name, Directives: directives, Loc: loc}
	}

	inline := &InlineFragment{Loc: loc}
	if l.peek() == tokName { // "on"
		l.advanceKeyword("on")
		inline.TypeCondition = parseName(l)
	}
	inline.Directives = parseDirectives(l)
	inline.SelectionSet = parseSelectionSet(l)
	return inline
}

func parseArguments(l *lexer) []*Argument {
	var args []*Argument
	l.advance(tokParenL)
	for l.peek() != tokParenR {
		loc := l.location()
		name := parseName(l)
		l.advance(tokColon)
		value := parseValueLiteral(l, false)
		args = append(args, &Argument{Name: name, Value: value, Loc: loc})
	}
	l.advance(tokParenR)
	return args
}

func parseDirectives(l *lexer) []*Directive {
	var directives []*Directive
	for l.peek() == tokAt {
		directives = append(directives, parseDirective(l))
	}
	return directives
}

func parseDirective(l *lexer) *Directive {
	loc := l.location()
	l.advance(tokAt)
	directive := &Directive{Name: parseName(l), Loc: loc}
	if l.peek() == tokParenL {
		directive.Arguments = parseArguments(l)
	}
	return directive
}

// parseValueLiteral parses a Value; when constOnly is true, variable
// references are rejected (used for default values, which must be
// constant per the grammar).
func parseValueLiteral(l *lexer, constOnly bool) Value {
	loc := l.location()
	switch l.peek() {
	case tokBracketL:
		return parseListValue(l, constOnly)
	case tokBraceL:
		return parseObjectValue(l, constOnly)
	case tokDollar:
		if constOnly {
			l.syntaxErrorf("unexpected variable reference in constant value")
		}
		l.advance(tokDollar)
		return &VariableValue{Name: parseName(l), Loc: loc}
	case tokInt:
		text := l.scan.TokenText()
		l.advance(tokInt)
		return &IntValue{Value: text, Loc: loc}
	case tokFloat:
		text := l.scan.TokenText()
		l.advance(tokFloat)
		return &FloatValue{Value: text, Loc: loc}
	case tokString:
		text := l.tokenText()
		l.advance(tokString)
		return &StringValue{Value: text, Loc: loc}
	case tokName:
		text := l.scan.TokenText()
		l.advance(tokName)
		switch text {
		case "true":
			return &BooleanValue{Value: true, Loc: loc}
		case "false":
			return &BooleanValue{Value: false, Loc: loc}
		case "null":
			return &NullValue{Loc: loc}
		default:
			return &EnumValue{Value: text, Loc: loc}
		}
	}
	l.syntaxErrorf("unexpected %s", scanner.TokenString(l.peek()))
	return nil
}

func parseListValue(l *lexer, constOnly bool) *ListValue {
	loc := l.location()
	l.advance(tokBracketL)
	var values []Value
	for l.peek() != tokBracketR {
		values = append(values, parseValueLiteral(l, constOnly))
	}
	l.advance(tokBracketR)
	return &ListValue{Values: values, Loc: loc}
}

func parseObjectValue(l *lexer, constOnly bool) *ObjectValue {
	loc := l.location()
	l.advance(tokBraceL)
	var fields []*ObjectField
	for l.peek() != tokBraceR {
		fields = append(fields, parseObjectField(l, constOnly))
	}
	l.advance(tokBraceR)
	return &ObjectValue{Fields: fields, Loc: loc}
}

func parseObjectField(l *lexer, constOnly bool) *ObjectField {
	loc := l.location()
	name := parseName(l)
	l.advance(tokColon)
	value := parseValueLiteral(l, constOnly)
	return &ObjectField{Name: name, Value: value, Loc: loc}
}
