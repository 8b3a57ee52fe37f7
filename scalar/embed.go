package scalar

import "embed"

// assets holds the Scalar API Reference loader page.
//
//go:embed assets/index.html
var assets embed.FS
