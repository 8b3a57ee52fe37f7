package core

import "strings"

// styleForCollectionFormat maps legacy OpenAPI 2.0 collection formats to 3.0
// serialization styles. Unknown formats fall back to "simple".
var styleForCollectionFormat = map[string]string{
	"csv":   "simple",
	"ssv":   "spaceDelimited",
	"tsv":   "pipeDelimited",
	"pipes": "pipeDelimited",
	"multi": "form",
}

// buildOperation assembles the OpenAPI operation for one documented route.
// specPath must already be in brace-parameter form.
func buildOperation(method, specPath string, doc DocRecord, globals []ParameterSpec) Operation {
	op := Operation{
		"summary":     inferSummary(method, specPath, doc),
		"description": doc.Description,
		"deprecated":  doc.Deprecated,
	}

	if tags := splitTags(doc.Tags); len(tags) > 0 {
		op["tags"] = tags
	}

	if params := buildParameters(doc.Parameters, globals); len(params) > 0 {
		op["parameters"] = params
	}

	if doc.RequestBody != nil && len(doc.RequestBody.Content) > 0 {
		op["requestBody"] = doc.RequestBody
	}

	op["responses"] = buildResponses(doc.Responses)
	return op
}

func inferSummary(method, specPath string, doc DocRecord) string {
	if doc.Summary != "" {
		return doc.Summary
	}
	if doc.Name != "" {
		return doc.Name
	}
	return strings.ToUpper(method) + " " + specPath
}

// splitTags splits a comma-separated tag string, trimming each element.
// Only the empty string yields no tags; any other input, whitespace-only
// included, splits and trims like the rest, so empty elements survive.
func splitTags(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	tags := make([]string, len(parts))
	for i, p := range parts {
		tags[i] = strings.TrimSpace(p)
	}
	return tags
}

// buildParameters emits route-level parameters first, then the globally
// configured extras. Duplicates are legal and preserved in order; nothing is
// de-duplicated by name.
func buildParameters(route, globals []ParameterSpec) []map[string]interface{} {
	specs := make([]ParameterSpec, 0, len(route)+len(globals))
	specs = append(specs, route...)
	specs = append(specs, globals...)
	if len(specs) == 0 {
		return nil
	}

	params := make([]map[string]interface{}, 0, len(specs))
	for _, p := range specs {
		param := map[string]interface{}{
			"name":        p.Name,
			"in":          p.In,
			"required":    p.Required,
			"description": p.Description,
		}

		switch classifyParamSchema(p) {
		case schemaExplicit:
			// Copied verbatim; sibling type/format/items are ignored.
			param["schema"] = p.Schema
		case schemaInferred:
			schema := map[string]interface{}{"type": p.Type}
			if p.Format != "" {
				schema["format"] = p.Format
			}
			if p.Type == "array" && p.Items != nil {
				schema["items"] = p.Items
			}
			param["schema"] = schema
		case schemaNone:
			// A parameter without schema inputs carries no schema at all.
		}

		if p.Type == "array" && p.CollectionFormat != "" {
			style, ok := styleForCollectionFormat[p.CollectionFormat]
			if !ok {
				style = "simple"
			}
			param["style"] = style
			param["explode"] = p.CollectionFormat == "multi"
		}

		params = append(params, param)
	}
	return params
}

// buildResponses converts the record's responses, defaulting descriptions.
// A record with no responses synthesizes a single 200.
func buildResponses(specs map[string]ResponseSpec) map[string]interface{} {
	responses := make(map[string]interface{}, len(specs))
	for status, r := range specs {
		desc := r.Description
		if desc == "" {
			desc = "No description"
		}
		resp := map[string]interface{}{"description": desc}
		if r.Schema != nil {
			resp["content"] = map[string]interface{}{
				"application/json": map[string]interface{}{"schema": r.Schema},
			}
		}
		responses[status] = resp
	}
	if len(responses) == 0 {
		responses["200"] = map[string]interface{}{"description": "Successful response"}
	}
	return responses
}
