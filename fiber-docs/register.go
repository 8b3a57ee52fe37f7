// Package fiberdocs documents a Fiber application's routes and serves the
// generated OpenAPI document plus a Swagger UI.
package fiberdocs

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/webasoo/routedoc/core"
	"github.com/webasoo/routedoc/swagger"
)

// Routes snapshots the app's route table as core route records. Fiber path
// templates use ":name" segments, which the path converter rewrites.
func Routes(app *fiber.App) []core.RouteRecord {
	routes := app.GetRoutes(true)
	records := make([]core.RouteRecord, 0, len(routes))
	for _, rt := range routes {
		records = append(records, core.RouteRecord{
			Kind:        core.KindHTTPIn,
			Method:      rt.Method,
			URLTemplate: rt.Path,
			DocRef:      core.RouteRef(rt.Method, rt.Path),
		})
	}
	return records
}

// Spec builds a provider that documents the app's current routes using the
// records described in reg.
func Spec(app *fiber.App, reg *core.Registry, cfg core.Config) core.SpecProvider {
	gen := core.NewGenerator(cfg)
	return func() ([]byte, error) {
		return gen.GenerateJSON(reg.SnapshotRoutes(Routes(app)))
	}
}

// Register mounts GET /openapi.json, GET /openapi.yaml and the Swagger UI
// under /docs on the provided app.
func Register(app *fiber.App, reg *core.Registry, cfg core.Config) {
	RegisterWithLogger(app, reg, cfg, nil)
}

// RegisterWithLogger is Register with an explicit logger for generation
// failures.
func RegisterWithLogger(app *fiber.App, reg *core.Registry, cfg core.Config, logger *slog.Logger) {
	provider := Spec(app, reg, cfg)
	app.Get("/openapi.json", adaptor.HTTPHandler(core.JSONHandler(provider, logger)))
	app.Get("/openapi.yaml", adaptor.HTTPHandler(core.YAMLHandler(provider, logger)))

	ui := adaptor.HTTPHandler(swagger.Handler(swagger.SpecSource(provider)))
	app.Get("/docs", ui)
	app.Get("/docs/*", ui)
}
