package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// componentCategories are the reusable-object sections pruned when empty.
var componentCategories = []string{"schemas", "responses", "parameters", "securitySchemes"}

// Generator turns registry snapshots into OpenAPI 3.0 documents. A Generator
// is immutable after construction and safe for concurrent use.
type Generator struct {
	cfg Config
}

// NewGenerator builds a generator for the given configuration.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate assembles the document for one snapshot. It never partially
// succeeds: per-field problems in documentation records are absorbed via
// defaulting before this point.
func (g *Generator) Generate(snap Snapshot) Document {
	doc := baseDocument(g.cfg.Template)
	applyServerPrefix(doc, g.cfg.BasePathPrefix)

	// Template-supplied paths are always discarded.
	paths := map[string]PathItem{}
	doc["paths"] = paths

	for _, rt := range collectDocumented(snap) {
		specPath := NormalizePath(rt.Path)
		item := paths[specPath]
		if item == nil {
			item = make(PathItem)
			paths[specPath] = item
		}
		// Last processed route wins on a path+method collision.
		item[strings.ToLower(rt.Method)] = buildOperation(rt.Method, specPath, rt.Doc, g.cfg.Parameters)
	}

	pruneEmptySections(doc)
	return doc
}

// GenerateJSON renders the document for one snapshot as indented JSON.
func (g *Generator) GenerateJSON(snap Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(g.Generate(snap), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("core: marshal document: %w", err)
	}
	return data, nil
}

// baseDocument builds the default template and shallow-merges the override
// on top: each top-level key the override supplies replaces the default
// wholesale, nested objects included. This is a contract, not a limitation;
// callers wanting a partial info block must supply the whole block.
func baseDocument(override map[string]interface{}) Document {
	doc := Document{
		"openapi": "3.0.0",
		"info": map[string]interface{}{
			"title":       "API Documentation",
			"version":     "1.0.0",
			"description": "Automatically generated API documentation",
		},
		"servers": []interface{}{
			map[string]interface{}{
				"url":         "http://localhost:1880/",
				"description": "Local server",
			},
		},
		"components": map[string]interface{}{
			"schemas":         map[string]interface{}{},
			"responses":       map[string]interface{}{},
			"parameters":      map[string]interface{}{},
			"securitySchemes": map[string]interface{}{},
		},
		"tags": []interface{}{},
	}
	for key, value := range override {
		doc[key] = copyValue(value)
	}
	return doc
}

// copyValue deep-copies the generic map and slice structure a template
// override carries. Prefixing and pruning adjust the document in place, so
// the override's own maps must never be shared with it.
func copyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for key, val := range t {
			m[key] = copyValue(val)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(t))
		for i, val := range t {
			s[i] = copyValue(val)
		}
		return s
	default:
		return v
	}
}

// applyServerPrefix appends a non-trivial base path prefix to every server
// URL, stripping a single trailing slash first. Servers supplied by a
// template override are adjusted in place as well.
func applyServerPrefix(doc Document, prefix string) {
	if prefix == "" || prefix == "/" {
		return
	}
	servers, ok := doc["servers"].([]interface{})
	if !ok {
		return
	}
	for _, entry := range servers {
		server, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		url, _ := server["url"].(string)
		server["url"] = strings.TrimSuffix(url, "/") + prefix
	}
}

// pruneEmptySections drops empty component categories, then the components
// key itself once nothing remains, then an empty tags list. Paths are never
// pruned. This runs even when zero routes were documented, leaving the
// minimal valid document {openapi, info, servers, paths}.
func pruneEmptySections(doc Document) {
	if comps, ok := doc["components"].(map[string]interface{}); ok {
		for _, category := range componentCategories {
			if m, ok := comps[category].(map[string]interface{}); ok && len(m) == 0 {
				delete(comps, category)
			}
		}
		if len(comps) == 0 {
			delete(doc, "components")
		}
	}
	if tags, ok := doc["tags"].([]interface{}); ok && len(tags) == 0 {
		delete(doc, "tags")
	}
}
