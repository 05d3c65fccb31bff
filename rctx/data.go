package rctx

import (
	"fmt"
	"reflect"
)

// Data is a type-keyed store of process-lifetime objects — database
// handles, loaders, configuration — written only while a schema is
// under construction (Schema.Data) and read-only for the lifetime of
// every subsequent request, so concurrent resolvers may read it
// without locking.
type Data struct {
	values map[reflect.Type]interface{}
}

// NewData returns an empty store.
func NewData() *Data {
	return &Data{values: make(map[reflect.Type]interface{})}
}

// Set stores obj keyed by its own concrete type. Only safe to call
// during schema construction, before the first query executes.
func (d *Data) Set(obj interface{}) {
	d.values[reflect.TypeOf(obj)] = obj
}

// DataOf retrieves the object of type T from the context's store. A
// missing key is a programmer error — the schema was built without
// registering a dependency a resolver now requires — so it panics
// rather than returning a typed error, matching the spec's stated
// implementation choice.
func DataOf[T any](c *Context) T {
	key := reflect.TypeOf((*T)(nil)).Elem()
	v, ok := c.data.values[key]
	if !ok {
		panic(fmt.Sprintf("rctx: no data of type %s registered on this schema", key))
	}
	return v.(T)
}
