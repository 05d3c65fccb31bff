package rctx

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/schema"
)

// ResolveMode controls whether a selection set's direct fields run
// concurrently (queries) or one at a time in document order
// (mutations). Fields nested beneath any one field are always resolved
// with ResolveParallel, regardless of the mode their parent ran under —
// only a mutation operation's top-level fields are serial.
type ResolveMode int

const (
	ResolveParallel ResolveMode = iota
	ResolveSerial
)

// ResolveSelectionSet evaluates every selection in c.SelectionSet()
// against obj — flattening inline fragments and fragment spreads whose
// type condition matches obj's runtime type, skipping any selection
// carrying a false @include or true @skip — and returns the response
// object with keys in source-selection order.
//
// Every sibling field always runs, even if an earlier one errored: a
// resolver error on a nullable field sets just that field to null and
// the walk continues; an error on a non-null field discards this whole
// selection set's result (returning a nil map) so the null propagates
// to the nearest nullable ancestor, the caller being responsible for
// continuing to surface the error. A failure while expanding fragments
// or evaluating directives is returned as that single error, before any
// field runs; otherwise the returned error, whenever non-nil, is an
// errors.MultiError — collecting every error produced at or beneath
// this selection set.
func ResolveSelectionSet(c *Context, obj schema.Composite, mode ResolveMode) (*schema.OrderedMap[interface{}], error) {
	set := c.SelectionSet()

	var fields []*ast.Field
	var expand func(selections []ast.Selection) error
	expand = func(selections []ast.Selection) error {
		for _, sel := range selections {
			switch s := sel.(type) {
			case *ast.Field:
				skip, err := c.IsSkip(s.Directives)
				if err != nil {
					return err
				}
				if skip {
					continue
				}
				fields = append(fields, s)
			case *ast.InlineFragment:
				skip, err := c.IsSkip(s.Directives)
				if err != nil {
					return err
				}
				if skip {
					continue
				}
				condition := ""
				if s.TypeCondition != nil {
					condition = s.TypeCondition.Value
				}
				if !typeMatches(c.Registry, obj, condition) {
					continue
				}
				if err := expand(s.SelectionSet.Selections); err != nil {
					return err
				}
			case *ast.FragmentSpread:
				skip, err := c.IsSkip(s.Directives)
				if err != nil {
					return err
				}
				if skip {
					continue
				}
				frag, ok := c.Fragments[s.Name.Value]
				if !ok {
					return errors.At(errors.KindField, s.Loc, "unknown fragment %q", s.Name.Value)
				}
				if !typeMatches(c.Registry, obj, frag.TypeCondition.Value) {
					continue
				}
				if err := expand(frag.SelectionSet.Selections); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := expand(set.Selections); err != nil {
		return nil, err
	}

	results := make([]interface{}, len(fields))
	errLists := make([][]*errors.GraphQLError, len(fields))
	nulled := make([]bool, len(fields))

	resolveOne := func(i int) {
		field := fields[i]
		defer func() {
			if r := recover(); r != nil {
				const size = 64 << 10
				buf := make([]byte, size)
				buf = buf[:runtime.Stack(buf, false)]
				errLists[i] = collectFieldErrors(fmt.Errorf("panic: %v\n%s", r, buf), field.ResultName())
				nulled[i] = true
			}
		}()
		fieldCtx := c.WithItem(field)
		value, err := obj.ResolveField(fieldCtx, field)
		if err != nil {
			errLists[i] = collectFieldErrors(err, field.ResultName())
			nulled[i] = true
			return
		}
		resolved, rerr := resolveOutput(fieldCtx, value, field.SelectionSet)
		if rerr != nil {
			errLists[i] = collectFieldErrors(rerr, field.ResultName())
			if resolved == nil {
				nulled[i] = true
				return
			}
		}
		results[i] = resolved
	}

	if mode == ResolveSerial {
		for i := range fields {
			resolveOne(i)
		}
	} else {
		var wg sync.WaitGroup
		wg.Add(len(fields))
		for i := range fields {
			i := i
			go func() {
				defer wg.Done()
				resolveOne(i)
			}()
		}
		wg.Wait()
	}

	var collected []*errors.GraphQLError
	bubbleNull := false
	for i, field := range fields {
		collected = append(collected, errLists[i]...)
		if nulled[i] && fieldIsNonNull(c.Registry, obj, field.Name.Value) {
			bubbleNull = true
		}
	}
	if bubbleNull {
		if len(collected) == 0 {
			return nil, nil
		}
		return nil, errors.MultiError(collected)
	}

	out := schema.NewOrderedMap[interface{}]()
	for i, field := range fields {
		if nulled[i] {
			mergeInto(out, field.ResultName(), nil)
			continue
		}
		mergeInto(out, field.ResultName(), results[i])
	}
	if len(collected) == 0 {
		return out, nil
	}
	return out, errors.MultiError(collected)
}

// resolveOutput dispatches a resolver's return value: nil stays nil, a
// value implementing OutputResolvable is asked to produce JSON (and,
// for composite values, recurses into ResolveSelectionSet against set),
// and anything else — a plain Go primitive a hand-written resolver
// returned directly — passes through unchanged.
func resolveOutput(c *Context, value interface{}, set *ast.SelectionSet) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	resolvable, ok := value.(schema.OutputResolvable)
	if !ok {
		return value, nil
	}
	childCtx := c
	if set != nil {
		childCtx = c.WithItem(set)
	}
	return resolvable.Resolve(childCtx)
}

// ResolveComposite is the entry point a composite OutputResolvable.Resolve
// implementation calls once it has type-asserted ctx back to *Context.
// It returns a literal nil interface (never a typed-nil *OrderedMap)
// when the selection set's result must itself propagate to null.
func ResolveComposite(ctx interface{}, obj schema.Composite) (interface{}, error) {
	c := ctx.(*Context)
	out, err := ResolveSelectionSet(c, obj, ResolveParallel)
	if out == nil {
		return nil, err
	}
	return out, err
}

func typeMatches(r *schema.Registry, obj schema.Composite, typeCondition string) bool {
	if typeCondition == "" {
		return true
	}
	possible := r.PossibleTypes(typeCondition)
	if possible == nil {
		return typeCondition == obj.TypeName()
	}
	_, ok := possible[obj.TypeName()]
	return ok
}

// fieldIsNonNull reports whether fieldName, as declared on obj's
// registered type, has a non-null ("!"-suffixed) type reference — the
// condition under which a resolver error must null out this entire
// selection set rather than just that one field.
func fieldIsNonNull(r *schema.Registry, obj schema.Composite, fieldName string) bool {
	switch fieldName {
	case "__typename", "__schema":
		return true
	case "__type":
		return false
	}
	descriptor, ok := r.Lookup(obj.TypeName())
	if !ok {
		return false
	}
	fields := descriptor.Fields()
	if fields == nil {
		return false
	}
	fd, ok := fields.Get(fieldName)
	if !ok {
		return false
	}
	return strings.HasSuffix(fd.Type, "!")
}

// mergeInto sets key to value, merging two ordered-map values together
// recursively when a selection's result_name collides with an earlier
// one. No validation rule checks overlapping fields beforehand: nested
// ordered maps merge key by key, and any other value is overwritten by
// the later one.
func mergeInto(out *schema.OrderedMap[interface{}], key string, value interface{}) {
	if existing, ok := out.Get(key); ok {
		if existingMap, ok1 := existing.(*schema.OrderedMap[interface{}]); ok1 {
			if newMap, ok2 := value.(*schema.OrderedMap[interface{}]); ok2 {
				newMap.Range(func(k string, v interface{}) bool {
					mergeInto(existingMap, k, v)
					return true
				})
				return
			}
		}
	}
	out.Set(key, value)
}

// collectFieldErrors prepends segment to err's path and flattens it
// into a slice: a single error becomes a one-element slice, and an
// errors.MultiError (bubbled up from a nested selection set) has
// segment prepended to every error it carries.
func collectFieldErrors(err error, segment string) []*errors.GraphQLError {
	if err == nil {
		return nil
	}
	if me, ok := err.(errors.MultiError); ok {
		out := make([]*errors.GraphQLError, len(me))
		for i, e := range me {
			out[i] = errors.WithPath(e, []interface{}{segment})
		}
		return out
	}
	if ge, ok := err.(*errors.GraphQLError); ok {
		return []*errors.GraphQLError{errors.WithPath(ge, []interface{}{segment})}
	}
	return []*errors.GraphQLError{errors.WithPath(errors.New(errors.KindField, "%s", err.Error()), []interface{}{segment})}
}
