package swagger

import "embed"

// assets holds the Swagger UI loader page. The page pulls the UI bundle
// itself, so the module ships no vendored distribution.
//
//go:embed assets/index.html
var assets embed.FS
