package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10) // overwrite keeps position

	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestParseTypeRef(t *testing.T) {
	ref := ParseTypeRef("[Int!]!")
	assert.True(t, ref.NonNull)
	require.NotNil(t, ref.ListOf)
	assert.True(t, ref.ListOf.NonNull)
	assert.Equal(t, "Int", ref.ListOf.Named)
	assert.Equal(t, "Int", ref.Head())
	assert.Equal(t, "[Int!]!", ref.String())
}

func TestRegistryAddTypeIsIdempotentAndBreaksCycles(t *testing.T) {
	r := NewRegistry()
	calls := 0
	var build func() *TypeDescriptor
	build = func() *TypeDescriptor {
		calls++
		// Simulate a self-referential object: registering "Node" again
		// mid-build must not re-invoke build.
		r.AddType("Node", build)
		fields := NewOrderedMap[*FieldDescriptor]()
		fields.Set("self", &FieldDescriptor{Name: "self", Type: "Node"})
		return &TypeDescriptor{Kind: KindObject, Object: &ObjectDescriptor{Name: "Node", Fields: fields}}
	}
	r.AddType("Node", build)
	assert.Equal(t, 1, calls)

	descriptor, ok := r.Lookup("Node")
	require.True(t, ok)
	assert.Equal(t, "Node", descriptor.Name())
}

func TestRegistryImplementsTracking(t *testing.T) {
	r := NewRegistry()
	r.AddType("Named", func() *TypeDescriptor {
		return &TypeDescriptor{Kind: KindInterface, Interface: &InterfaceDescriptor{
			Name:   "Named",
			Fields: NewOrderedMap[*FieldDescriptor](),
		}}
	})
	r.AddType("Droid", func() *TypeDescriptor {
		return &TypeDescriptor{Kind: KindObject, Object: &ObjectDescriptor{
			Name:       "Droid",
			Fields:     NewOrderedMap[*FieldDescriptor](),
			Interfaces: []string{"Named"},
		}}
	})

	possible := r.PossibleTypes("Named")
	_, ok := possible["Droid"]
	assert.True(t, ok)
}

func TestAddDirectiveRequiresLocation(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() {
		r.AddDirective(&DirectiveDescriptor{Name: "skip"})
	})
}
