package ast

// Value is the sum type produced by the literal-value grammar: every
// concrete value node implements it. Variable references are also a
// Value — they are resolved against the request's variable map during
// execution, not during parsing.
type Value interface {
	Node
	isValue()
}

// NullValue is the literal `null`.
type NullValue struct{ Loc Pos }

func (n *NullValue) Location() Pos { return n.Loc }
func (n *NullValue) isValue()      {}

// BooleanValue is `true` or `false`.
type BooleanValue struct {
	Value bool
	Loc   Pos
}

func (b *BooleanValue) Location() Pos { return b.Loc }
func (b *BooleanValue) isValue()      {}

// IntValue holds the raw digit text; the consumer's scalar decides how
// to interpret it.
type IntValue struct {
	Value string
	Loc   Pos
}

func (i *IntValue) Location() Pos { return i.Loc }
func (i *IntValue) isValue()      {}

// FloatValue holds the raw numeric text.
type FloatValue struct {
	Value string
	Loc   Pos
}

func (f *FloatValue) Location() Pos { return f.Loc }
func (f *FloatValue) isValue()      {}

// StringValue is a string literal with its surrounding quotes removed;
// escape sequences are kept as written, not decoded.
type StringValue struct {
	Value string
	Loc   Pos
}

func (s *StringValue) Location() Pos { return s.Loc }
func (s *StringValue) isValue()      {}

// EnumValue is a bare name that is not true/false/null.
type EnumValue struct {
	Value string
	Loc   Pos
}

func (e *EnumValue) Location() Pos { return e.Loc }
func (e *EnumValue) isValue()      {}

// ListValue is `[ Value* ]`.
type ListValue struct {
	Values []Value
	Loc    Pos
}

func (l *ListValue) Location() Pos { return l.Loc }
func (l *ListValue) isValue()      {}

// ObjectField is one `name: value` entry of an ObjectValue.
type ObjectField struct {
	Name  *Name
	Value Value
	Loc   Pos
}

func (o *ObjectField) Location() Pos { return o.Loc }

// ObjectValue is `{ ObjectField* }`.
type ObjectValue struct {
	Fields []*ObjectField
	Loc    Pos
}

func (o *ObjectValue) Location() Pos { return o.Loc }
func (o *ObjectValue) isValue()      {}

// Lookup returns the field named name and true, or nil/false.
func (o *ObjectValue) Lookup(name string) (Value, bool) {
	for _, f := range o.Fields {
		if f.Name.Value == name {
			return f.Value, true
		}
	}
	return nil, false
}

// VariableValue is `$name` used where a literal value is expected; it
// is only resolvable once paired with a request's variable bindings.
type VariableValue struct {
	Name *Name
	Loc  Pos
}

func (v *VariableValue) Location() Pos { return v.Loc }
func (v *VariableValue) isValue()      {}
