package redoc

import "embed"

// assets holds the Redoc loader page; the viewer bundle is fetched by the
// page itself.
//
//go:embed assets/index.html
var assets embed.FS
