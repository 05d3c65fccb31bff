// Package transport exposes an execution.Schema over HTTP: a single
// POST endpoint accepting the standard {query, variables,
// operationName} request body and returning the standard
// {data, errors} response body.
package transport

import (
	"encoding/json"
	"net/http"

	"github.com/shyptr/gqlcore/execution"
)

// params is the request body shape every GraphQL-over-HTTP client sends.
type params struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves one schema over HTTP. Only POST with a JSON body is
// accepted; an OPTIONS request gets an empty 200 response, and anything
// else is rejected with 400/405 before the schema ever sees it.
type Handler struct {
	schema *execution.Schema
}

// NewHandler wraps schema for HTTP serving.
func NewHandler(schema *execution.Schema) *Handler {
	return &Handler{schema: schema}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "must POST a GraphQL request", http.StatusMethodNotAllowed)
		return
	}

	var p params
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.schema.Query(p.Query).Execute(r.Context(), p.Variables, p.OperationName)

	body, err := json.Marshal(result)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
