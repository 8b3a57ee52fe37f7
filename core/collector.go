package core

import "strings"

// documentedRoute is a route that survived collection: inbound HTTP with a
// resolvable documentation reference.
type documentedRoute struct {
	Method string
	Path   string
	Doc    DocRecord
}

// collectDocumented filters a snapshot down to the routes worth documenting.
// Routes of other kinds, routes without a reference, and routes whose
// reference does not resolve are all skipped silently; an unresolvable
// reference just means the route is undocumented, not that generation fails.
func collectDocumented(snap Snapshot) []documentedRoute {
	var routes []documentedRoute
	for _, rec := range snap.Routes {
		if rec.Kind != KindHTTPIn {
			continue
		}
		ref := strings.TrimSpace(rec.DocRef)
		if ref == "" {
			continue
		}
		doc, ok := snap.Resolve(ref)
		if !ok {
			continue
		}
		routes = append(routes, documentedRoute{
			Method: rec.Method,
			Path:   rec.URLTemplate,
			Doc:    doc,
		})
	}
	return routes
}
