// Command starwars is a larger demonstration schema than example/simple:
// a Character interface implemented by two concrete object types
// (Human, Droid), an Episode enum, and friend-list fan-out across the
// interface — enough to exercise interface-type dispatch end to end.
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

// Episode is a hand-rolled enum scalar: CreateTypeInfo registers a
// KindEnum descriptor and ParseValue only accepts the three bare enum
// literals GraphQL allows for it.
type Episode string

const (
	NewHope Episode = "NEW_HOPE"
	Empire  Episode = "EMPIRE"
	Jedi    Episode = "JEDI"
)

func (Episode) TypeName() string          { return "Episode" }
func (Episode) QualifiedTypeName() string { return "Episode!" }

func (Episode) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Episode", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindEnum, Enum: &schema.EnumDescriptor{
			Name: "Episode",
			Values: []schema.EnumValueDescriptor{
				{Name: "NEW_HOPE", Description: "Released in 1977."},
				{Name: "EMPIRE", Description: "Released in 1980."},
				{Name: "JEDI", Description: "Released in 1983."},
			},
		}}
	})
	return "Episode!"
}

func (Episode) ParseValue(v ast.Value) (Episode, bool) {
	ev, ok := v.(*ast.EnumValue)
	if !ok {
		return "", false
	}
	switch Episode(ev.Value) {
	case NewHope, Empire, Jedi:
		return Episode(ev.Value), true
	}
	return "", false
}

func (e Episode) Resolve(ctx interface{}) (interface{}, error) { return string(e), nil }

type character interface {
	schema.Composite
	id() string
	friendIDs() []string
}

// Human and Droid both implement the Character interface by declaring
// "Character" in their Interfaces list; the registry links that back
// to Character's PossibleTypes, which is what lets rctx.typeMatches
// resolve `... on Human` / `... on Droid` inline fragments against a
// value whose static field type is just `character`.
type Human struct {
	ID         string
	Name       string
	Friends    []string
	AppearsIn  []Episode
	HomePlanet string
}

func (h *Human) id() string          { return h.ID }
func (h *Human) friendIDs() []string { return h.Friends }

func (h *Human) TypeName() string          { return "Human" }
func (h *Human) QualifiedTypeName() string { return "Human!" }

func (h *Human) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Human", func() *schema.TypeDescriptor {
		fields := commonCharacterFields()
		fields.Set("homePlanet", &schema.FieldDescriptor{Name: "homePlanet", Type: "String", Args: schema.NewOrderedMap[*schema.InputValueDescriptor]()})
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name:       "Human",
			Fields:     fields,
			Interfaces: []string{"Character"},
		}}
	})
	return "Human!"
}

func (h *Human) IsEmpty() bool { return false }

func (h *Human) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "__typename":
		return "Human", nil
	case "id":
		return builtin.String(h.ID), nil
	case "name":
		return builtin.String(h.Name), nil
	case "friends":
		return resolveFriends(ctx, h)
	case "appearsIn":
		return resolveAppearsIn(ctx, h.AppearsIn)
	case "homePlanet":
		if h.HomePlanet == "" {
			return nil, nil
		}
		return builtin.String(h.HomePlanet), nil
	}
	return nil, errors.New(errors.KindField, "unknown field %q on Human", field.Name.Value)
}

func (h *Human) ResolveInlineFragment(string, interface{}, map[string]interface{}) error { return nil }

func (h *Human) Resolve(ctx interface{}) (interface{}, error) { return rctx.ResolveComposite(ctx, h) }

type Droid struct {
	ID              string
	Name            string
	Friends         []string
	AppearsIn       []Episode
	PrimaryFunction string
}

func (d *Droid) id() string          { return d.ID }
func (d *Droid) friendIDs() []string { return d.Friends }

func (d *Droid) TypeName() string          { return "Droid" }
func (d *Droid) QualifiedTypeName() string { return "Droid!" }

func (d *Droid) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Droid", func() *schema.TypeDescriptor {
		fields := commonCharacterFields()
		fields.Set("primaryFunction", &schema.FieldDescriptor{Name: "primaryFunction", Type: "String", Args: schema.NewOrderedMap[*schema.InputValueDescriptor]()})
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name:       "Droid",
			Fields:     fields,
			Interfaces: []string{"Character"},
		}}
	})
	return "Droid!"
}

func (d *Droid) IsEmpty() bool { return false }

func (d *Droid) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "__typename":
		return "Droid", nil
	case "id":
		return builtin.String(d.ID), nil
	case "name":
		return builtin.String(d.Name), nil
	case "friends":
		return resolveFriends(ctx, d)
	case "appearsIn":
		return resolveAppearsIn(ctx, d.AppearsIn)
	case "primaryFunction":
		return builtin.String(d.PrimaryFunction), nil
	}
	return nil, errors.New(errors.KindField, "unknown field %q on Droid", field.Name.Value)
}

func (d *Droid) ResolveInlineFragment(string, interface{}, map[string]interface{}) error { return nil }

func (d *Droid) Resolve(ctx interface{}) (interface{}, error) { return rctx.ResolveComposite(ctx, d) }

// commonCharacterFields is every field the Character interface
// declares; Human and Droid each start from a fresh copy and add their
// own extra field on top of it.
func commonCharacterFields() *schema.OrderedMap[*schema.FieldDescriptor] {
	fields := schema.NewOrderedMap[*schema.FieldDescriptor]()
	noArgs := func() *schema.OrderedMap[*schema.InputValueDescriptor] {
		return schema.NewOrderedMap[*schema.InputValueDescriptor]()
	}
	fields.Set("id", &schema.FieldDescriptor{Name: "id", Type: "String!", Args: noArgs()})
	fields.Set("name", &schema.FieldDescriptor{Name: "name", Type: "String!", Args: noArgs()})
	fields.Set("friends", &schema.FieldDescriptor{Name: "friends", Type: "[Character!]!", Args: noArgs()})
	fields.Set("appearsIn", &schema.FieldDescriptor{Name: "appearsIn", Type: "[Episode!]!", Args: noArgs()})
	return fields
}

func registerCharacterInterface(r *schema.Registry) {
	r.AddType("Character", func() *schema.TypeDescriptor {
		return &schema.TypeDescriptor{Kind: schema.KindInterface, Interface: &schema.InterfaceDescriptor{
			Name:   "Character",
			Fields: commonCharacterFields(),
		}}
	})
}

var (
	luke = &Human{ID: "1000", Name: "Luke Skywalker", Friends: []string{"1002", "1003", "2000", "2001"}, AppearsIn: []Episode{NewHope, Empire, Jedi}, HomePlanet: "Tatooine"}
	han  = &Human{ID: "1002", Name: "Han Solo", Friends: []string{"1000", "1003", "2001"}, AppearsIn: []Episode{NewHope, Empire, Jedi}}
	leia = &Human{ID: "1003", Name: "Leia Organa", Friends: []string{"1000", "1002", "2000", "2001"}, AppearsIn: []Episode{NewHope, Empire, Jedi}, HomePlanet: "Alderaan"}

	threepio = &Droid{ID: "2000", Name: "C-3PO", Friends: []string{"1000", "1002", "1003", "2001"}, AppearsIn: []Episode{NewHope, Empire, Jedi}, PrimaryFunction: "Protocol"}
	artoo    = &Droid{ID: "2001", Name: "R2-D2", Friends: []string{"1000", "1002", "1003"}, AppearsIn: []Episode{NewHope, Empire, Jedi}, PrimaryFunction: "Astromech"}

	humanByID = map[string]*Human{"1000": luke, "1002": han, "1003": leia}
	droidByID = map[string]*Droid{"2000": threepio, "2001": artoo}
)

func characterByID(id string) character {
	if h, ok := humanByID[id]; ok {
		return h
	}
	if d, ok := droidByID[id]; ok {
		return d
	}
	return nil
}

func resolveFriends(ctx interface{}, c character) (interface{}, error) {
	ids := c.friendIDs()
	out := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		friend := characterByID(id)
		if friend == nil {
			continue
		}
		resolved, err := friend.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

func resolveAppearsIn(ctx interface{}, episodes []Episode) (interface{}, error) {
	out := make([]interface{}, len(episodes))
	for i, e := range episodes {
		resolved, err := e.Resolve(ctx)
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
		heroArgs := schema.NewOrderedMap[*schema.InputValueDescriptor]()
		heroArgs.Set("episode", &schema.InputValueDescriptor{Name: "episode", Type: "Episode"})
		idArgs := schema.NewOrderedMap[*schema.InputValueDescriptor]()
		idArgs.Set("id", &schema.InputValueDescriptor{Name: "id", Type: "String!"})
		fields.Set("hero", &schema.FieldDescriptor{Name: "hero", Type: "Character!", Args: heroArgs})
		fields.Set("human", &schema.FieldDescriptor{Name: "human", Type: "Human", Args: idArgs})
		fields.Set("droid", &schema.FieldDescriptor{Name: "droid", Type: "Droid", Args: idArgs})
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "Query", Fields: fields,
		}}
	})
	registerCharacterInterface(r)
	(&Human{}).CreateTypeInfo(r)
	(&Droid{}).CreateTypeInfo(r)
	Episode("").CreateTypeInfo(r)
	return "Query!"
}

func (Query) IsEmpty() bool { return false }

func (Query) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	switch field.Name.Value {
	case "__typename":
		return "Query", nil
	case "hero":
		rc := ctx.(*rctx.Context)
		episode, err := rctx.ParamValue[builtin.Option[Episode]](rc, "episode", func() ast.Value { return &ast.NullValue{} })
		if err != nil {
			return nil, err
		}
		if episode.Valid && episode.Value == Empire {
			return luke.Resolve(ctx)
		}
		return artoo.Resolve(ctx)
	case "human":
		rc := ctx.(*rctx.Context)
		id, err := rctx.ParamValue[builtin.String](rc, "id", nil)
		if err != nil {
			return nil, err
		}
		h, ok := humanByID[string(id)]
		if !ok {
			return nil, nil
		}
		return h.Resolve(ctx)
	case "droid":
		rc := ctx.(*rctx.Context)
		id, err := rctx.ParamValue[builtin.String](rc, "id", nil)
		if err != nil {
			return nil, err
		}
		d, ok := droidByID[string(id)]
		if !ok {
			return nil, nil
		}
		return d.Resolve(ctx)
	}
	return nil, errors.New(errors.KindField, "unknown field %q on Query", field.Name.Value)
}

func (Query) ResolveInlineFragment(string, interface{}, map[string]interface{}) error { return nil }

func main() {
	s := execution.New[Query](Query{}, builtin.EmptyMutation{})

	mux := http.NewServeMux()
	mux.Handle("/", transport.GraphiQLHandler("/query"))
	mux.Handle("/query", transport.NewHandler(s))

	log.Fatal(http.ListenAndServe(":3000", mux))
}
