package schema

// TypeKind mirrors the GraphQL introspection __TypeKind enum.
type TypeKind string

const (
	KindScalar      TypeKind = "SCALAR"
	KindObject      TypeKind = "OBJECT"
	KindInterface   TypeKind = "INTERFACE"
	KindUnion       TypeKind = "UNION"
	KindEnum        TypeKind = "ENUM"
	KindInputObject TypeKind = "INPUT_OBJECT"
	KindList        TypeKind = "LIST"
	KindNonNull     TypeKind = "NON_NULL"
)

// DirectiveLocation mirrors the GraphQL introspection __DirectiveLocation enum.
type DirectiveLocation string

const (
	LocQuery              DirectiveLocation = "QUERY"
	LocMutation           DirectiveLocation = "MUTATION"
	LocSubscription       DirectiveLocation = "SUBSCRIPTION"
	LocField              DirectiveLocation = "FIELD"
	LocFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	LocFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	LocInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"

	LocSchema               DirectiveLocation = "SCHEMA"
	LocScalar               DirectiveLocation = "SCALAR"
	LocObject               DirectiveLocation = "OBJECT"
	LocFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	LocArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	LocInterface            DirectiveLocation = "INTERFACE"
	LocUnion                DirectiveLocation = "UNION"
	LocEnum                 DirectiveLocation = "ENUM"
	LocEnumValue            DirectiveLocation = "ENUM_VALUE"
	LocInputObject          DirectiveLocation = "INPUT_OBJECT"
	LocInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)
