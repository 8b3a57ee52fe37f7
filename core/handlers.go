package core

import (
	"fmt"
	"log/slog"
	"net/http"

	sigyaml "sigs.k8s.io/yaml"
)

// SpecProvider produces the serialized OpenAPI document for one request.
type SpecProvider func() ([]byte, error)

// LiveSpec builds a provider that regenerates the document from a fresh
// registry snapshot on every call.
func LiveSpec(gen *Generator, reg *Registry) SpecProvider {
	return func() ([]byte, error) {
		return gen.GenerateJSON(reg.Snapshot())
	}
}

// JSONHandler serves the generated document as application/json. Any error
// or panic during generation is logged through logger (slog.Default when
// nil) and answered with a generic 500; internals are never exposed.
func JSONHandler(provider SpecProvider, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := provide(provider)
		if err != nil {
			internalError(w, logger, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	})
}

// YAMLHandler serves the generated document converted to YAML.
func YAMLHandler(provider SpecProvider, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := provide(provider)
		if err != nil {
			internalError(w, logger, err)
			return
		}
		converted, err := sigyaml.JSONToYAML(data)
		if err != nil {
			internalError(w, logger, fmt.Errorf("core: convert document to yaml: %w", err))
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(converted)
	})
}

// provide invokes the provider, converting a panic anywhere in the pipeline
// into an error so the request fails whole rather than emitting a partial
// document.
func provide(provider SpecProvider) (data []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("core: document generation panic: %v", rec)
		}
	}()
	return provider()
}

func internalError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("openapi document generation failed", "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"error": "Internal server error"}`))
}
