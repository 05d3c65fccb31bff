package builtin_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/builtin"
)

func TestIntParseValue(t *testing.T) {
	tests := []struct {
		name  string
		value ast.Value
		want  builtin.Int
		ok    bool
	}{
		{"valid int", &ast.IntValue{Value: "42"}, 42, true},
		{"negative int", &ast.IntValue{Value: "-7"}, -7, true},
		{"not an int", &ast.StringValue{Value: "42"}, 0, false},
		{"overflows int32", &ast.IntValue{Value: "99999999999"}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := builtin.Int(0).ParseValue(tt.value)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFloatParseValueAcceptsIntLiterals(t *testing.T) {
	got, ok := builtin.Float(0).ParseValue(&ast.IntValue{Value: "3"})
	assert.True(t, ok)
	assert.Equal(t, builtin.Float(3), got)

	got, ok = builtin.Float(0).ParseValue(&ast.FloatValue{Value: "3.5"})
	assert.True(t, ok)
	assert.Equal(t, builtin.Float(3.5), got)

	_, ok = builtin.Float(0).ParseValue(&ast.BooleanValue{Value: true})
	assert.False(t, ok)
}

func TestStringParseValue(t *testing.T) {
	got, ok := builtin.String("").ParseValue(&ast.StringValue{Value: "hi"})
	assert.True(t, ok)
	assert.Equal(t, builtin.String("hi"), got)

	_, ok = builtin.String("").ParseValue(&ast.IntValue{Value: "1"})
	assert.False(t, ok)
}

func TestBooleanParseValue(t *testing.T) {
	got, ok := builtin.Boolean(false).ParseValue(&ast.BooleanValue{Value: true})
	assert.True(t, ok)
	assert.Equal(t, builtin.Boolean(true), got)
}

func TestIDParseValueNormalizesUUIDs(t *testing.T) {
	id := uuid.New()
	upper := &ast.StringValue{Value: strings.ToUpper(id.String())}
	got, ok := builtin.ID("").ParseValue(upper)
	assert.True(t, ok)
	assert.Equal(t, builtin.ID(id.String()), got)

	got, ok = builtin.ID("").ParseValue(&ast.StringValue{Value: "not-a-uuid"})
	assert.True(t, ok)
	assert.Equal(t, builtin.ID("not-a-uuid"), got)
}

func TestScalarResolveReturnsUnderlyingValue(t *testing.T) {
	i, err := builtin.Int(5).Resolve(nil)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), i)

	s, err := builtin.String("x").Resolve(nil)
	assert.NoError(t, err)
	assert.Equal(t, "x", s)

	b, err := builtin.Boolean(true).Resolve(nil)
	assert.NoError(t, err)
	assert.Equal(t, true, b)
}
