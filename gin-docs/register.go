// Package gindocs documents a Gin application's routes and serves the
// generated OpenAPI document plus a Swagger UI.
package gindocs

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/webasoo/routedoc/core"
	"github.com/webasoo/routedoc/swagger"
)

// Routes snapshots the engine's route table as core route records. Each
// record points at the canonical method+path documentation reference, so
// routes are documented by calling Registry.Describe with core.RouteRef.
func Routes(engine *gin.Engine) []core.RouteRecord {
	infos := engine.Routes()
	records := make([]core.RouteRecord, 0, len(infos))
	for _, info := range infos {
		records = append(records, core.RouteRecord{
			Kind:        core.KindHTTPIn,
			Method:      info.Method,
			URLTemplate: info.Path,
			DocRef:      core.RouteRef(info.Method, info.Path),
		})
	}
	return records
}

// Spec builds a provider that documents the engine's current routes using
// the records described in reg.
func Spec(engine *gin.Engine, reg *core.Registry, cfg core.Config) core.SpecProvider {
	gen := core.NewGenerator(cfg)
	return func() ([]byte, error) {
		return gen.GenerateJSON(reg.SnapshotRoutes(Routes(engine)))
	}
}

// Register mounts GET /openapi.json, GET /openapi.yaml and the Swagger UI
// under /docs. Routes registered after this call still show up: the document
// is regenerated per request.
func Register(engine *gin.Engine, reg *core.Registry, cfg core.Config) {
	RegisterWithLogger(engine, reg, cfg, nil)
}

// RegisterWithLogger is Register with an explicit logger for generation
// failures.
func RegisterWithLogger(engine *gin.Engine, reg *core.Registry, cfg core.Config, logger *slog.Logger) {
	provider := Spec(engine, reg, cfg)
	engine.GET("/openapi.json", gin.WrapH(core.JSONHandler(provider, logger)))
	engine.GET("/openapi.yaml", gin.WrapH(core.YAMLHandler(provider, logger)))

	ui := gin.WrapH(swagger.Handler(swagger.SpecSource(provider)))
	engine.GET("/docs", ui)
	engine.GET("/docs/*any", ui)
}
