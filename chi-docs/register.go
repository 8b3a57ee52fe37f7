// Package chidocs documents a chi router's routes and serves the generated
// OpenAPI document plus a Swagger UI.
package chidocs

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/webasoo/routedoc/core"
	"github.com/webasoo/routedoc/swagger"
)

// Routes walks the router's route tree into core route records. chi patterns
// already use brace parameters, which the path converter passes through.
func Routes(r chi.Routes) []core.RouteRecord {
	var records []core.RouteRecord
	_ = chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		records = append(records, core.RouteRecord{
			Kind:        core.KindHTTPIn,
			Method:      method,
			URLTemplate: route,
			DocRef:      core.RouteRef(method, route),
		})
		return nil
	})
	return records
}

// Spec builds a provider that documents the router's current routes using
// the records described in reg.
func Spec(r chi.Routes, reg *core.Registry, cfg core.Config) core.SpecProvider {
	gen := core.NewGenerator(cfg)
	return func() ([]byte, error) {
		return gen.GenerateJSON(reg.SnapshotRoutes(Routes(r)))
	}
}

// Register mounts GET /openapi.json, GET /openapi.yaml and the Swagger UI
// under /docs on the provided router.
func Register(r chi.Router, reg *core.Registry, cfg core.Config) {
	RegisterWithLogger(r, reg, cfg, nil)
}

// RegisterWithLogger is Register with an explicit logger for generation
// failures.
func RegisterWithLogger(r chi.Router, reg *core.Registry, cfg core.Config, logger *slog.Logger) {
	provider := Spec(r, reg, cfg)
	r.Method(http.MethodGet, "/openapi.json", core.JSONHandler(provider, logger))
	r.Method(http.MethodGet, "/openapi.yaml", core.YAMLHandler(provider, logger))

	ui := swagger.Handler(swagger.SpecSource(provider))
	r.Handle("/docs", ui)
	r.Handle("/docs/*", ui)
}
