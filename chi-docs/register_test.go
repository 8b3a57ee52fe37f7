package chidocs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webasoo/routedoc/core"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/users/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	reg := core.NewRegistry()
	reg.Describe(core.RouteRef("GET", "/users/{id}"), core.DocRecord{
		Summary:   "Fetch user",
		Responses: map[string]core.ResponseSpec{"200": {Description: "ok"}},
	})
	Register(r, reg, core.Config{})
	return r
}

func TestRegisterServesDocument(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/openapi.json", nil))

	require.Equal(t, 200, w.Code)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	paths := doc["paths"].(map[string]interface{})
	require.Contains(t, paths, "/users/{id}")
	op := paths["/users/{id}"].(map[string]interface{})["get"].(map[string]interface{})
	assert.Equal(t, "Fetch user", op["summary"])
}

func TestRegisterServesUI(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/docs", nil))
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")
}

func TestRoutesWalk(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/a", func(w http.ResponseWriter, _ *http.Request) {})
	r.Post("/b/{id}", func(w http.ResponseWriter, _ *http.Request) {})

	records := Routes(r)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, core.KindHTTPIn, rec.Kind)
		assert.Equal(t, core.RouteRef(rec.Method, rec.URLTemplate), rec.DocRef)
	}
}
