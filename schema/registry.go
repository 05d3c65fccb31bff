package schema

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var nameRE = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// descriptorValidator returns the process-wide validator instance,
// built once on first use.
func descriptorValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Registry is the process-wide-per-schema catalog of types and
// directives. It is built once during schema construction and never
// mutated during execution.
type Registry struct {
	Types        *OrderedMap[*TypeDescriptor]
	Directives   *OrderedMap[*DirectiveDescriptor]
	Implements   map[string]map[string]struct{} // object name -> interface names
	QueryType    string
	MutationType string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		Types:      NewOrderedMap[*TypeDescriptor](),
		Directives: NewOrderedMap[*DirectiveDescriptor](),
		Implements: make(map[string]map[string]struct{}),
	}
}

// AddType registers name with a placeholder before invoking build, so
// that build may itself recurse into CreateTypeInfo for types that
// refer back to name (directly or transitively) without looping
// forever. If name is already present, build is never invoked — this
// is what makes registration idempotent.
func (r *Registry) AddType(name string, build func() *TypeDescriptor) string {
	if r.Types.Has(name) {
		return name
	}
	r.Types.Set(name, &TypeDescriptor{})
	descriptor := build()
	if err := validateName(name); err != nil {
		panic(fmt.Sprintf("schema: invalid type name %q: %v", name, err))
	}
	r.Types.Set(name, descriptor)
	if descriptor.Kind == KindObject {
		for _, iface := range descriptor.Object.Interfaces {
			r.addImplements(name, iface)
		}
	}
	return name
}

func (r *Registry) addImplements(objectName, interfaceName string) {
	set, ok := r.Implements[objectName]
	if !ok {
		set = make(map[string]struct{})
		r.Implements[objectName] = set
	}
	set[interfaceName] = struct{}{}
	if iface, ok := r.Types.Get(interfaceName); ok && iface.Kind == KindInterface {
		if iface.Interface.PossibleTypes == nil {
			iface.Interface.PossibleTypes = make(map[string]struct{})
		}
		iface.Interface.PossibleTypes[objectName] = struct{}{}
	}
}

// AddDirective registers descriptor by name; a later call with the
// same name overwrites the earlier one.
func (r *Registry) AddDirective(descriptor *DirectiveDescriptor) {
	if err := validateDirective(descriptor); err != nil {
		panic(fmt.Sprintf("schema: invalid directive %q: %v", descriptor.Name, err))
	}
	r.Directives.Set(descriptor.Name, descriptor)
}

// Lookup returns the descriptor registered under name, if any.
func (r *Registry) Lookup(name string) (*TypeDescriptor, bool) {
	return r.Types.Get(name)
}

// LookupDirective returns the directive descriptor registered under
// name, if any.
func (r *Registry) LookupDirective(name string) (*DirectiveDescriptor, bool) {
	return r.Directives.Get(name)
}

// PossibleTypes returns the object type names that satisfy the named
// interface or union.
func (r *Registry) PossibleTypes(name string) map[string]struct{} {
	descriptor, ok := r.Types.Get(name)
	if !ok {
		return nil
	}
	switch descriptor.Kind {
	case KindInterface:
		return descriptor.Interface.PossibleTypes
	case KindUnion:
		return descriptor.Union.PossibleTypes
	case KindObject:
		return map[string]struct{}{descriptor.Object.Name: {}}
	}
	return nil
}

// Implementors returns the interface names objectName declares.
func (r *Registry) Implementors(objectName string) map[string]struct{} {
	return r.Implements[objectName]
}

func validateName(name string) error {
	if !nameRE.MatchString(name) {
		return fmt.Errorf("name %q does not match /%s/", name, nameRE.String())
	}
	return descriptorValidator().Var(name, "required")
}

func validateDirective(d *DirectiveDescriptor) error {
	if err := validateName(d.Name); err != nil {
		return err
	}
	if len(d.Locations) == 0 {
		return fmt.Errorf("directive %q must declare at least one location", d.Name)
	}
	return nil
}
