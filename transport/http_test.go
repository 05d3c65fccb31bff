package transport_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/builtin"
	"github.com/shyptr/gqlcore/execution"
	"github.com/shyptr/gqlcore/schema"
	"github.com/shyptr/gqlcore/transport"
)

type greetingQuery struct{}

func (greetingQuery) TypeName() string          { return "Query" }
func (greetingQuery) QualifiedTypeName() string { return "Query!" }

func (greetingQuery) CreateTypeInfo(r *schema.Registry) string {
	r.AddType("Query", func() *schema.TypeDescriptor {
		fields := schema.NewOrderedMap[*schema.FieldDescriptor]()
		fields.Set("greeting", &schema.FieldDescriptor{Name: "greeting", Type: "String!", Args: schema.NewOrderedMap[*schema.InputValueDescriptor]()})
		return &schema.TypeDescriptor{Kind: schema.KindObject, Object: &schema.ObjectDescriptor{
			Name: "Query", Fields: fields,
		}}
	})
	return "Query!"
}

func (greetingQuery) IsEmpty() bool { return false }

func (greetingQuery) ResolveField(ctx interface{}, field *ast.Field) (interface{}, error) {
	return builtin.String("hello"), nil
}

func (greetingQuery) ResolveInlineFragment(string, interface{}, map[string]interface{}) error {
	return nil
}

func TestHandlerServesQuery(t *testing.T) {
	s := execution.New[greetingQuery](greetingQuery{}, builtin.EmptyMutation{})
	h := transport.NewHandler(s)

	body, err := json.Marshal(map[string]interface{}{"query": "{ greeting }"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/query", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var decoded struct {
		Data struct {
			Greeting string `json:"greeting"`
		} `json:"data"`
		Errors []interface{} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Empty(t, decoded.Errors)
	assert.Equal(t, "hello", decoded.Data.Greeting)
}

func TestHandlerRejectsNonPost(t *testing.T) {
	s := execution.New[greetingQuery](greetingQuery{}, builtin.EmptyMutation{})
	h := transport.NewHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/query", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
