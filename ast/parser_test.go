package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleQuery(t *testing.T) {
	doc, err := Parse(`{ hero { name } }`)
	require.Nil(t, err)
	require.Len(t, doc.Operations, 1)

	op := doc.Operations[0]
	assert.Equal(t, Query, op.Operation)
	require.Len(t, op.SelectionSet.Selections, 1)

	hero := op.SelectionSet.Selections[0].(*Field)
	assert.Equal(t, "hero", hero.Name.Value)
	assert.Equal(t, "hero", hero.ResultName())
	require.Len(t, hero.SelectionSet.Selections, 1)

	name := hero.SelectionSet.Selections[0].(*Field)
	assert.Equal(t, "name", name.Name.Value)
}

func TestParseAliasAndArguments(t *testing.T) {
	doc, err := Parse(`{ luke: hero(id: 1000, unit: FEET) }`)
	require.Nil(t, err)

	field := doc.Operations[0].SelectionSet.Selections[0].(*Field)
	assert.Equal(t, "luke", field.ResultName())
	assert.Equal(t, "hero", field.Name.Value)
	require.Len(t, field.Arguments, 2)
	assert.Equal(t, "id", field.Arguments[0].Name.Value)
	assert.IsType(t, &IntValue{}, field.Arguments[0].Value)
	assert.Equal(t, "unit", field.Arguments[1].Name.Value)
	assert.IsType(t, &EnumValue{}, field.Arguments[1].Value)
}

func TestParseOperationWithVariables(t *testing.T) {
	doc, err := Parse(`query HeroForEpisode($ep: Episode!, $withFriends: Boolean = false) {
		hero(episode: $ep) {
			name
			friends @include(if: $withFriends) { name }
		}
	}`)
	require.Nil(t, err)
	require.Len(t, doc.Operations, 1)

	op := doc.Operations[0]
	assert.Equal(t, "HeroForEpisode", op.Name.Value)
	require.Len(t, op.VariableDefinitions, 2)

	ep := op.VariableDefinitions[0]
	assert.Equal(t, "ep", ep.Variable.Value)
	assert.Equal(t, "Episode!", ep.Type.String())
	assert.Nil(t, ep.DefaultValue)

	withFriends := op.VariableDefinitions[1]
	assert.Equal(t, "Boolean", withFriends.Type.String())
	assert.IsType(t, &BooleanValue{}, withFriends.DefaultValue)

	hero := op.SelectionSet.Selections[0].(*Field)
	friends := hero.SelectionSet.Selections[1].(*Field)
	require.Len(t, friends.Directives, 1)
	assert.Equal(t, "include", friends.Directives[0].Name.Value)
}

func TestParseFragments(t *testing.T) {
	doc, err := Parse(`{
		hero {
			...heroFields
			... on Droid { primaryFunction }
		}
	}
	fragment heroFields on Character { name }`)
	require.Nil(t, err)
	require.Len(t, doc.Fragments, 1)
	assert.Equal(t, "heroFields", doc.Fragments[0].Name.Value)
	assert.Equal(t, "Character", doc.Fragments[0].TypeCondition.Value)

	hero := doc.Operations[0].SelectionSet.Selections[0].(*Field)
	require.Len(t, hero.SelectionSet.Selections, 2)
	assert.IsType(t, &FragmentSpread{}, hero.SelectionSet.Selections[0])
	assert.IsType(t, &InlineFragment{}, hero.SelectionSet.Selections[1])
}

func TestParseListAndObjectValues(t *testing.T) {
	doc, err := Parse(`{ field(complex: { a: { b: [1, 2, $var] } }) }`)
	require.Nil(t, err)
	field := doc.Operations[0].SelectionSet.Selections[0].(*Field)
	obj := field.Arguments[0].Value.(*ObjectValue)
	inner, ok := obj.Lookup("a")
	require.True(t, ok)
	list := inner.(*ObjectValue)
	bVal, ok := list.Lookup("b")
	require.True(t, ok)
	values := bVal.(*ListValue).Values
	require.Len(t, values, 3)
	assert.IsType(t, &IntValue{}, values[0])
	assert.IsType(t, &VariableValue{}, values[2])
}

func TestParseSyntaxErrors(t *testing.T) {
	_, err := Parse("{")
	require.NotNil(t, err)
	assert.Equal(t, Pos{Line: 1, Column: 2}, err.Locations[0])

	_, err = Parse(`
      { ...MissingOn }
      fragment MissingOn Type
    `)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, `expected "on"`)

	_, err = Parse("notAnOperation Foo { field }")
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "unexpected")
}

func TestParseMutationOperation(t *testing.T) {
	doc, err := Parse(`mutation { createReview(episode: JEDI, review: { stars: 5 }) { stars } }`)
	require.Nil(t, err)
	assert.Equal(t, Mutation, doc.Operations[0].Operation)
}
