package core_test

import (
	"testing"

	"github.com/pb33f/libopenapi"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webasoo/routedoc/core"
)

// The generated document must parse back into a full OpenAPI 3.0 model.
func TestGeneratedDocumentRoundTrips(t *testing.T) {
	reg := core.NewRegistry()
	reg.Describe("get-user", core.DocRecord{
		Summary: "Fetch user",
		Tags:    "Users",
		Parameters: []core.ParameterSpec{
			{Name: "id", In: core.InPath, Required: true, Type: "string"},
			{Name: "fields", In: core.InQuery, Type: "array",
				Items: map[string]interface{}{"type": "string"}, CollectionFormat: "multi"},
		},
		Responses: map[string]core.ResponseSpec{
			"200": {Description: "ok", Schema: map[string]interface{}{"type": "object"}},
		},
	})
	reg.Handle("GET", "/users/:id", "get-user")

	reg.Describe("create-user", core.DocRecord{
		RequestBody: &core.RequestBodySpec{
			Required: true,
			Content: map[string]interface{}{
				"application/json": map[string]interface{}{
					"schema": map[string]interface{}{"type": "object"},
				},
			},
		},
	})
	reg.Handle("POST", "/users", "create-user")

	spec, err := core.NewGenerator(core.Config{BasePathPrefix: "/api"}).GenerateJSON(reg.Snapshot())
	require.NoError(t, err)

	doc, err := libopenapi.NewDocument(spec)
	require.NoError(t, err)
	model, err := doc.BuildV3Model()
	require.NoError(t, err)

	assert.Equal(t, "3.0.0", model.Model.Version)

	items := make(map[string]*v3.PathItem)
	for path, item := range model.Model.Paths.PathItems.FromOldest() {
		items[path] = item
	}
	require.Contains(t, items, "/users/{id}")
	require.Contains(t, items, "/users")

	getUser := items["/users/{id}"].Get
	require.NotNil(t, getUser)
	assert.Equal(t, "Fetch user", getUser.Summary)
	assert.Equal(t, []string{"Users"}, getUser.Tags)
	require.Len(t, getUser.Parameters, 2)

	createUser := items["/users"].Post
	require.NotNil(t, createUser)
	require.NotNil(t, createUser.RequestBody)
	// The empty-responses fallback must have synthesized a 200.
	require.NotNil(t, createUser.Responses)
	codes := make(map[string]*v3.Response)
	for code, resp := range createUser.Responses.Codes.FromOldest() {
		codes[code] = resp
	}
	require.Contains(t, codes, "200")
	assert.Equal(t, "Successful response", codes["200"].Description)

	require.Len(t, model.Model.Servers, 1)
	assert.Equal(t, "http://localhost:1880/api", model.Model.Servers[0].URL)
}
