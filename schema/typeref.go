package schema

import "strings"

// TypeRef is a parsed view of a type-reference string such as
// "[Int!]!". Type references are stored as plain strings on
// FieldDescriptor/InputValueDescriptor; this is the shared utility that
// decomposes them into head name plus list/non-null modifiers.
type TypeRef struct {
	NonNull bool
	ListOf  *TypeRef // non-nil when this level is a list
	Named   string   // set when ListOf is nil
}

// ParseTypeRef decomposes a type-reference string into its structure.
// It panics on malformed input since type-reference strings only ever
// originate from CreateTypeInfo or the AST parser, both of which are
// already grammar-checked.
func ParseTypeRef(s string) *TypeRef {
	ref, rest := parseTypeRef(s)
	if rest != "" {
		panic("schema: malformed type reference " + s)
	}
	return ref
}

func parseTypeRef(s string) (*TypeRef, string) {
	if s == "" {
		panic("schema: empty type reference")
	}
	var ref TypeRef
	if s[0] == '[' {
		inner, rest := parseTypeRef(s[1:])
		if len(rest) == 0 || rest[0] != ']' {
			panic("schema: malformed list type reference " + s)
		}
		ref.ListOf = inner
		s = rest[1:]
	} else {
		i := 0
		for i < len(s) && s[i] != '!' && s[i] != ']' {
			i++
		}
		ref.Named = s[:i]
		s = s[i:]
	}
	if len(s) > 0 && s[0] == '!' {
		ref.NonNull = true
		s = s[1:]
	}
	return &ref, s
}

// String renders the reference back to GraphQL syntax.
func (t *TypeRef) String() string {
	var b strings.Builder
	if t.ListOf != nil {
		b.WriteByte('[')
		b.WriteString(t.ListOf.String())
		b.WriteByte(']')
	} else {
		b.WriteString(t.Named)
	}
	if t.NonNull {
		b.WriteByte('!')
	}
	return b.String()
}

// Head returns the innermost named type, stripping all list/non-null
// wrappers.
func (t *TypeRef) Head() string {
	if t.ListOf != nil {
		return t.ListOf.Head()
	}
	return t.Named
}

// NullableString returns the type reference with its outermost
// non-null modifier removed, e.g. "Int!" -> "Int", "[Int]!" -> "[Int]".
func NullableString(typeRef string) string {
	return strings.TrimSuffix(typeRef, "!")
}

// NonNullString returns the type reference with a non-null modifier
// appended if not already present.
func NonNullString(typeRef string) string {
	if strings.HasSuffix(typeRef, "!") {
		return typeRef
	}
	return typeRef + "!"
}
