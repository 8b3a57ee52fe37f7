// Package redoc serves a Redoc viewer next to a generated OpenAPI document.
package redoc

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

const specFile = "openapi.json"

// SpecSource produces the OpenAPI document served alongside the viewer.
type SpecSource func() ([]byte, error)

// Static wraps a fixed document in a SpecSource.
func Static(spec []byte) SpecSource {
	specCopy := append([]byte(nil), spec...)
	return func() ([]byte, error) { return specCopy, nil }
}

// Handler returns an http.Handler serving the Redoc page and the document.
func Handler(source SpecSource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch target := resolveTarget(r.URL.Path); target {
		case specFile:
			serveSpec(w, source)
		case "":
			serveIndex(w)
		default:
			http.NotFound(w, r)
		}
	})
}

// HandlerFromFile loads the OpenAPI document from disk and returns a Redoc
// handler for it.
func HandlerFromFile(path string) (http.Handler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("redoc: read spec %q: %w", path, err)
	}
	return Handler(Static(data)), nil
}

// Register mounts the viewer under /redoc and /redoc/ on the default mux.
func Register(source SpecSource) {
	handler := Handler(source)
	http.Handle("/redoc", handler)
	http.Handle("/redoc/", handler)
}

// RegisterFile loads openapi.json from disk and wires the standard routes.
func RegisterFile(path string) error {
	handler, err := HandlerFromFile(path)
	if err != nil {
		return err
	}
	http.Handle("/redoc", handler)
	http.Handle("/redoc/", handler)
	return nil
}

func resolveTarget(raw string) string {
	cleaned := raw
	if idx := strings.Index(cleaned, "?"); idx >= 0 {
		cleaned = cleaned[:idx]
	}
	base := path.Base(path.Clean("/" + cleaned))
	switch {
	case base == specFile:
		return specFile
	case base == "index.html" || !strings.Contains(base, "."):
		return ""
	default:
		return base
	}
}

func serveIndex(w http.ResponseWriter) {
	data, err := fs.ReadFile(assets, "assets/index.html")
	if err != nil {
		http.Error(w, "redoc: index not available", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

func serveSpec(w http.ResponseWriter, source SpecSource) {
	data, err := source()
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
