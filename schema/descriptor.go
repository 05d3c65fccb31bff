package schema

// TypeDescriptor is the tagged union held by the registry for every
// registered type. Exactly one field is non-nil; Kind names which.
type TypeDescriptor struct {
	Kind TypeKind

	Scalar      *ScalarDescriptor
	Object      *ObjectDescriptor
	Interface   *InterfaceDescriptor
	Union       *UnionDescriptor
	Enum        *EnumDescriptor
	InputObject *InputObjectDescriptor
}

// Name returns the descriptor's type name regardless of variant.
func (d *TypeDescriptor) Name() string {
	switch d.Kind {
	case KindScalar:
		return d.Scalar.Name
	case KindObject:
		return d.Object.Name
	case KindInterface:
		return d.Interface.Name
	case KindUnion:
		return d.Union.Name
	case KindEnum:
		return d.Enum.Name
	case KindInputObject:
		return d.InputObject.Name
	}
	return ""
}

// Description returns the descriptor's doc string regardless of variant.
func (d *TypeDescriptor) Description() string {
	switch d.Kind {
	case KindScalar:
		return d.Scalar.Description
	case KindObject:
		return d.Object.Description
	case KindInterface:
		return d.Interface.Description
	case KindUnion:
		return d.Union.Description
	case KindEnum:
		return d.Enum.Description
	case KindInputObject:
		return d.InputObject.Description
	}
	return ""
}

// Fields returns the field descriptor map for Object/Interface
// descriptors, or nil for every other variant.
func (d *TypeDescriptor) Fields() *OrderedMap[*FieldDescriptor] {
	switch d.Kind {
	case KindObject:
		return d.Object.Fields
	case KindInterface:
		return d.Interface.Fields
	}
	return nil
}

type ScalarDescriptor struct {
	Name        string
	Description string
}

type ObjectDescriptor struct {
	Name        string
	Description string
	Fields      *OrderedMap[*FieldDescriptor]
	Interfaces  []string
}

type InterfaceDescriptor struct {
	Name          string
	Description   string
	Fields        *OrderedMap[*FieldDescriptor]
	PossibleTypes map[string]struct{}
}

type UnionDescriptor struct {
	Name          string
	Description   string
	PossibleTypes map[string]struct{}
}

type EnumValueDescriptor struct {
	Name              string
	Description       string
	IsDeprecated      bool
	DeprecationReason string
}

type EnumDescriptor struct {
	Name        string
	Description string
	Values      []EnumValueDescriptor
}

type InputObjectDescriptor struct {
	Name        string
	Description string
	InputFields *OrderedMap[*InputValueDescriptor]
}

// FieldDescriptor describes one field of an Object/Interface type.
type FieldDescriptor struct {
	Name              string
	Description       string
	Args              *OrderedMap[*InputValueDescriptor]
	Type              string // type reference in GraphQL syntax, e.g. "[Int!]!"
	IsDeprecated      bool
	DeprecationReason string
}

// InputValueDescriptor describes one argument or input-object field.
type InputValueDescriptor struct {
	Name         string
	Description  string
	Type         string
	DefaultValue interface{} // nil when absent; an ast.Value literal otherwise
	HasDefault   bool
}

// DirectiveDescriptor describes a registered directive.
type DirectiveDescriptor struct {
	Name        string
	Description string
	Locations   []DirectiveLocation
	Args        *OrderedMap[*InputValueDescriptor]
}
