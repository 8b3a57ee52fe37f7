package core

import "strings"

// RouteKind identifies what a registry entry handles. Only inbound HTTP
// routes participate in document generation.
type RouteKind string

// KindHTTPIn marks a route that accepts inbound HTTP requests.
const KindHTTPIn RouteKind = "http-in"

// Parameter locations as defined by OpenAPI 3.0.
const (
	InQuery  = "query"
	InPath   = "path"
	InHeader = "header"
	InCookie = "cookie"
)

// RouteRecord describes one registered route. URL templates may contain
// framework-style ":name" segments. Records are read-only once handed to the
// generator; they are never mutated.
type RouteRecord struct {
	Kind        RouteKind `yaml:"kind" json:"kind"`
	Method      string    `yaml:"method" json:"method"`
	URLTemplate string    `yaml:"url" json:"url"`
	DocRef      string    `yaml:"doc" json:"doc,omitempty"`
}

// DocRecord carries the documentation metadata attached to a route. Every
// field is optional; the operation builder substitutes defaults for anything
// missing.
type DocRecord struct {
	Name        string                  `yaml:"name" json:"name,omitempty"`
	Summary     string                  `yaml:"summary" json:"summary,omitempty"`
	Description string                  `yaml:"description" json:"description,omitempty"`
	Tags        string                  `yaml:"tags" json:"tags,omitempty"` // comma-separated
	Deprecated  bool                    `yaml:"deprecated" json:"deprecated,omitempty"`
	Parameters  []ParameterSpec         `yaml:"parameters" json:"parameters,omitempty"`
	RequestBody *RequestBodySpec        `yaml:"requestBody" json:"requestBody,omitempty"`
	Responses   map[string]ResponseSpec `yaml:"responses" json:"responses,omitempty"`
}

// ParameterSpec describes one operation parameter. Either Schema or the
// legacy Type/Format/Items/CollectionFormat fields are meaningful; Schema
// wins when both appear.
type ParameterSpec struct {
	Name             string                 `yaml:"name" json:"name"`
	In               string                 `yaml:"in" json:"in"`
	Required         bool                   `yaml:"required" json:"required"`
	Description      string                 `yaml:"description" json:"description,omitempty"`
	Schema           map[string]interface{} `yaml:"schema" json:"schema,omitempty"`
	Type             string                 `yaml:"type" json:"type,omitempty"`
	Format           string                 `yaml:"format" json:"format,omitempty"`
	Items            map[string]interface{} `yaml:"items" json:"items,omitempty"`
	CollectionFormat string                 `yaml:"collectionFormat" json:"collectionFormat,omitempty"`
}

// RequestBodySpec mirrors the OpenAPI requestBody object. A body without
// content is treated as absent.
type RequestBodySpec struct {
	Description string                 `yaml:"description" json:"description,omitempty"`
	Required    bool                   `yaml:"required" json:"required,omitempty"`
	Content     map[string]interface{} `yaml:"content" json:"content"`
}

// ResponseSpec describes one response by status code.
type ResponseSpec struct {
	Description string                 `yaml:"description" json:"description,omitempty"`
	Schema      map[string]interface{} `yaml:"schema" json:"schema,omitempty"`
}

// Document is the generated OpenAPI document keyed by its top-level fields.
type Document map[string]interface{}

// PathItem maps lowercase HTTP methods to operations on a single path.
type PathItem map[string]Operation

// Operation represents an HTTP operation in OpenAPI.
type Operation map[string]interface{}

// paramSchemaSource says which inputs drive a parameter's schema. Resolved
// once per parameter instead of scattering field-presence checks through the
// builder.
type paramSchemaSource int

const (
	schemaNone paramSchemaSource = iota
	schemaExplicit
	schemaInferred
)

func classifyParamSchema(p ParameterSpec) paramSchemaSource {
	switch {
	case p.Schema != nil:
		return schemaExplicit
	case strings.TrimSpace(p.Type) != "":
		return schemaInferred
	default:
		return schemaNone
	}
}
