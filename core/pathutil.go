package core

import (
	"regexp"
	"strings"
)

var pathParamPattern = regexp.MustCompile(`/:(\w*)`)

// ConvertPathParams rewrites framework-style ":name" segments to OpenAPI
// "{name}" templates. A bare "/:" becomes "/{}" verbatim; degenerate names
// are not special-cased.
func ConvertPathParams(template string) string {
	return pathParamPattern.ReplaceAllString(template, "/{$1}")
}

// NormalizePath converts path parameters and normalizes slashes. The result
// always starts with "/" and, beyond the root path, never ends with one.
// Applying it twice yields the same result as once.
func NormalizePath(template string) string {
	return stripTerminalSlash(ensureLeadingSlash(ConvertPathParams(template)))
}

func ensureLeadingSlash(p string) string {
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}

func stripTerminalSlash(p string) string {
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		return p[:len(p)-1]
	}
	return p
}
