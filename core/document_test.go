package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEmptyRegistry(t *testing.T) {
	doc := NewGenerator(Config{}).Generate(NewRegistry().Snapshot())

	assert.Equal(t, "3.0.0", doc["openapi"])
	assert.Equal(t, map[string]PathItem{}, doc["paths"])

	// Empty components and tags are pruned, leaving the minimal document.
	assert.NotContains(t, doc, "components")
	assert.NotContains(t, doc, "tags")
	assert.Len(t, doc, 4) // openapi, info, servers, paths
}

func TestGenerateBasicRoute(t *testing.T) {
	reg := NewRegistry()
	reg.Describe("get-user", DocRecord{
		Responses: map[string]ResponseSpec{"200": {Description: "ok"}},
	})
	reg.Handle("get", "/users/:id", "get-user")

	doc := NewGenerator(Config{}).Generate(reg.Snapshot())

	paths := doc["paths"].(map[string]PathItem)
	require.Contains(t, paths, "/users/{id}")
	op, ok := paths["/users/{id}"]["get"]
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{
		"200": map[string]interface{}{"description": "ok"},
	}, op["responses"])
}

func TestGenerateSkipsUndocumentedRoutes(t *testing.T) {
	reg := NewRegistry()
	reg.Handle("GET", "/no-ref", "")
	reg.Handle("GET", "/dangling", "missing-record")
	reg.Add(RouteRecord{Kind: "mqtt-in", Method: "GET", URLTemplate: "/not-http", DocRef: "doc"})
	reg.Describe("doc", DocRecord{Summary: "attached to a non-HTTP route"})

	doc := NewGenerator(Config{}).Generate(reg.Snapshot())
	assert.Empty(t, doc["paths"])
}

func TestGenerateTemplateShallowMerge(t *testing.T) {
	info := map[string]interface{}{"title": "Payments API"}
	cfg := Config{Template: map[string]interface{}{
		"info":  info,
		"paths": map[string]interface{}{"/stale": map[string]interface{}{}},
	}}

	doc := NewGenerator(cfg).Generate(NewRegistry().Snapshot())

	// Top-level keys replace wholesale: the default version/description are gone.
	assert.Equal(t, info, doc["info"])
	// Template-supplied paths are discarded.
	assert.Equal(t, map[string]PathItem{}, doc["paths"])
}

func TestGenerateServerPrefix(t *testing.T) {
	doc := NewGenerator(Config{BasePathPrefix: "/api"}).Generate(NewRegistry().Snapshot())

	servers := doc["servers"].([]interface{})
	require.Len(t, servers, 1)
	server := servers[0].(map[string]interface{})
	assert.Equal(t, "http://localhost:1880/api", server["url"])
}

func TestGenerateServerPrefixTrivial(t *testing.T) {
	for _, prefix := range []string{"", "/"} {
		doc := NewGenerator(Config{BasePathPrefix: prefix}).Generate(NewRegistry().Snapshot())
		servers := doc["servers"].([]interface{})
		server := servers[0].(map[string]interface{})
		assert.Equal(t, "http://localhost:1880/", server["url"], "prefix %q", prefix)
	}
}

func TestGenerateServerPrefixAppliesToOverriddenServers(t *testing.T) {
	cfg := Config{
		BasePathPrefix: "/v2",
		Template: map[string]interface{}{
			"servers": []interface{}{
				map[string]interface{}{"url": "https://prod.example.com/"},
				map[string]interface{}{"url": "https://staging.example.com"},
			},
		},
	}

	doc := NewGenerator(cfg).Generate(NewRegistry().Snapshot())

	servers := doc["servers"].([]interface{})
	require.Len(t, servers, 2)
	assert.Equal(t, "https://prod.example.com/v2", servers[0].(map[string]interface{})["url"])
	assert.Equal(t, "https://staging.example.com/v2", servers[1].(map[string]interface{})["url"])
}

func TestGenerateRepeatableWithTemplateOverride(t *testing.T) {
	cfg := Config{
		BasePathPrefix: "/api",
		Template: map[string]interface{}{
			"servers": []interface{}{
				map[string]interface{}{"url": "https://prod.example.com/"},
			},
			"components": map[string]interface{}{
				"schemas": map[string]interface{}{},
			},
		},
	}
	gen := NewGenerator(cfg)
	snap := NewRegistry().Snapshot()

	first := gen.Generate(snap)
	second := gen.Generate(snap)

	// The prefix must not accumulate across calls.
	url := second["servers"].([]interface{})[0].(map[string]interface{})["url"]
	assert.Equal(t, "https://prod.example.com/api", url)
	assert.Equal(t, first, second)

	// The caller's template stays untouched by prefixing and pruning.
	templateURL := cfg.Template["servers"].([]interface{})[0].(map[string]interface{})["url"]
	assert.Equal(t, "https://prod.example.com/", templateURL)
	assert.Contains(t, cfg.Template["components"].(map[string]interface{}), "schemas")
}

func TestGenerateLastRouteWinsOnCollision(t *testing.T) {
	reg := NewRegistry()
	reg.Describe("first", DocRecord{Summary: "first"})
	reg.Describe("second", DocRecord{Summary: "second"})
	reg.Handle("GET", "/users/:id", "first")
	reg.Handle("get", "/users/:id", "second")

	doc := NewGenerator(Config{}).Generate(reg.Snapshot())

	paths := doc["paths"].(map[string]PathItem)
	require.Len(t, paths, 1)
	item := paths["/users/{id}"]
	require.Len(t, item, 1)
	assert.Equal(t, "second", item["get"]["summary"])
}

func TestGenerateGlobalParametersAppended(t *testing.T) {
	reg := NewRegistry()
	reg.Describe("get-user", DocRecord{
		Parameters: []ParameterSpec{{Name: "id", In: InPath, Required: true, Type: "string"}},
	})
	reg.Handle("GET", "/users/:id", "get-user")

	cfg := Config{Parameters: []ParameterSpec{{Name: "X-Request-ID", In: InHeader, Type: "string"}}}
	doc := NewGenerator(cfg).Generate(reg.Snapshot())

	op := doc["paths"].(map[string]PathItem)["/users/{id}"]["get"]
	params := op["parameters"].([]map[string]interface{})
	require.Len(t, params, 2)
	assert.Equal(t, "id", params[0]["name"])
	assert.Equal(t, "X-Request-ID", params[1]["name"])
}

func TestGenerateKeepsNonEmptyComponents(t *testing.T) {
	cfg := Config{Template: map[string]interface{}{
		"components": map[string]interface{}{
			"schemas":         map[string]interface{}{"User": map[string]interface{}{"type": "object"}},
			"responses":       map[string]interface{}{},
			"parameters":      map[string]interface{}{},
			"securitySchemes": map[string]interface{}{},
		},
		"tags": []interface{}{map[string]interface{}{"name": "Users"}},
	}}

	doc := NewGenerator(cfg).Generate(NewRegistry().Snapshot())

	comps := doc["components"].(map[string]interface{})
	assert.Contains(t, comps, "schemas")
	assert.NotContains(t, comps, "responses")
	assert.NotContains(t, comps, "parameters")
	assert.NotContains(t, comps, "securitySchemes")
	assert.Contains(t, doc, "tags")
}

func TestGenerateJSONMarshalFailure(t *testing.T) {
	cfg := Config{Template: map[string]interface{}{"x-broken": make(chan int)}}
	_, err := NewGenerator(cfg).GenerateJSON(NewRegistry().Snapshot())
	require.Error(t, err)
}
