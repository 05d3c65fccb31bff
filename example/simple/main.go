// Command simple is a minimal demonstration schema: a small in-memory
// directory of people, listable in full or queryable by name, with a mutation to
// add new ones.
package main

import (
	"log"
	"net/http"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/builtin"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/execution"
	"github.com/shyptr/gqlcore/rctx"
	"github.com/shyptr/gqlcore/schema"
	"github.com/shyptr/gqlcore/transport"
)

type Person struct {
	Name string
	Role string
}

var db = []*Person{
	{"john", "student"},
	{"mark", "student"},
	{"lisa", "teacher"},
}

func age(name string) builtin.Int {
	switch name {
	case "john":
		return 15
	case "mark":
		return 17
	case "lisa":
		return 30
	default:
		return 0
	}
}

func (p *Person) TypeName() string          { return "Person" }
func (p *Person) QualifiedTypeName() string { return "Person!" }

func (p *Person) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Person", func() *schema.TypeDescriptor {
		fields := schema.NewOrderedMap[*schema.FieldDescriptor]()
		noArgs := func() *schema.OrderedMap[*schema.InputValueDescriptor] {
			return schema.NewOrderedMap[*schema.InputValueDescriptor]()
		}
		fields.Set("name", &schema.FieldDescriptor{Name: "name", Type: "String!", Args: noArgs()})
		fields.Set("role", &schema.FieldDescriptor{Name: "role", Type: "String!", Args: noArgs()})
		fields.Set("age", &schema.FieldDescriptor{Name: "age", Type: "Int!", Args: noArgs()})
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "Person", Fields: fields,
		}}
	})
	return "Person!"
}

func (p *Person) IsEmpty() bool { return false }

func (p *Person) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "__typename":
		return "Person", nil
	case "name":
		return builtin.String(p.Name), nil
	case "role":
		return builtin.String(p.Role), nil
	case "age":
		return age(p.Name), nil
	}
	return nil, errors.New(errors.KindField, "unknown field %q on Person", field.Name.Value)
}

func (p *Person) ResolveInlineFragment(string, interface{}, map[string]interface{}) error { return nil }

func (p *Person) Resolve(ctx interface{}) (interface{}, error) {
	return rctx.ResolveComposite(ctx, p)
}

func resolvePersonList(ctx interface{}, people []*Person) (interface{}, error) {
	out := make([]interface{}, len(people))
	for i, p := range people {
		resolved, err := p.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = resolved
	}
	return out, nil
}

type Query struct{}

func (Query) TypeName() string          { return "Query" }
func (Query) QualifiedTypeName() string { return "Query!" }

func (Query) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Query", func() *schema.TypeDescriptor {
		fields := schema.NewOrderedMap[*schema.FieldDescriptor]()
		args := schema.NewOrderedMap[*schema.InputValueDescriptor]()
		args.Set("name", &schema.InputValueDescriptor{Name: "name", Type: "String!"})
		fields.Set("all", &schema.FieldDescriptor{Name: "all", Type: "[Person!]!", Args: schema.NewOrderedMap[*schema.InputValueDescriptor]()})
		fields.Set("queryByName", &schema.FieldDescriptor{Name: "queryByName", Type: "[Person!]!", Args: args})
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "Query", Fields: fields,
		}}
	})
	(&Person{}).CreateTypeInfo(r)
	return "Query!"
}

func (Query) IsEmpty() bool { return false }

func (Query) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "__typename":
		return "Query", nil
	case "all":
		return resolvePersonList(ctx, db)
	case "queryByName":
		rc := ctx.(*rctx.Context)
		name, err := rctx.ParamValue[builtin.String](rc, "name", nil)
		if err != nil {
			return nil, err
		}
		var matches []*Person
		for _, p := range db {
			if p.Name == string(name) {
				matches = append(matches, p)
			}
		}
		return resolvePersonList(ctx, matches)
	}
	return nil, errors.New(errors.KindField, "unknown field %q on Query", field.Name.Value)
}

func (Query) ResolveInlineFragment(string, interface{}, map[string]interface{}) error { return nil }

type Mutation struct{}

func (Mutation) TypeName() string          { return "Mutation" }
func (Mutation) QualifiedTypeName() string { return "Mutation!" }

func (Mutation) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Mutation", func() *schema.TypeDescriptor {
		fields := schema.NewOrderedMap[*schema.FieldDescriptor]()
		args := schema.NewOrderedMap[*schema.InputValueDescriptor]()
		args.Set("name", &schema.InputValueDescriptor{Name: "name", Type: "String!"})
		args.Set("role", &schema.InputValueDescriptor{Name: "role", Type: "String!"})
		fields.Set("add", &schema.FieldDescriptor{Name: "add", Type: "Person!", Args: args})
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "Mutation", Fields: fields,
		}}
	})
	return "Mutation!"
}

func (Mutation) IsEmpty() bool { return false }

func (Mutation) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "add":
		rc := ctx.(*rctx.Context)
		name, err := rctx.ParamValue[builtin.String](rc, "name", nil)
		if err != nil {
			return nil, err
		}
		role, err := rctx.ParamValue[builtin.String](rc, "role", nil)
		if err != nil {
			return nil, err
		}
		p := &Person{Name: string(name), Role: string(role)}
		db = append(db, p)
		return p.Resolve(rc)
	}
	return nil, errors.New(errors.KindField, "unknown field %q on Mutation", field.Name.Value)
}

func (Mutation) ResolveInlineFragment(string, interface{}, map[string]interface{}) error { return nil }

func main() {
	s := execution.New[Query](Query{}, Mutation{})

	mux := http.NewServeMux()
	mux.Handle("/", transport.GraphiQLHandler("/query"))
	mux.Handle("/query", transport.NewHandler(s))

	log.Fatal(http.ListenAndServe(":3000", mux))
}
