package core

import (
	"strings"
	"sync"
)

// Registry stores route records and the documentation records they point to.
// It plays the role of the host application's route table: registration may
// happen from multiple goroutines, and the generator only ever sees an
// immutable snapshot.
type Registry struct {
	mu     sync.RWMutex
	routes []RouteRecord
	docs   map[string]DocRecord
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{docs: make(map[string]DocRecord)}
}

// RouteRef builds the canonical documentation reference for a method and URL
// template, e.g. "GET /users/:id".
func RouteRef(method, urlTemplate string) string {
	return strings.ToUpper(strings.TrimSpace(method)) + " " + strings.TrimSpace(urlTemplate)
}

// Handle registers an inbound HTTP route pointing at the documentation
// record stored under docRef. An empty docRef leaves the route undocumented.
func (r *Registry) Handle(method, urlTemplate, docRef string) {
	r.Add(RouteRecord{
		Kind:        KindHTTPIn,
		Method:      method,
		URLTemplate: urlTemplate,
		DocRef:      docRef,
	})
}

// Add registers an arbitrary route record.
func (r *Registry) Add(rec RouteRecord) {
	r.mu.Lock()
	r.routes = append(r.routes, rec)
	r.mu.Unlock()
}

// Describe stores a documentation record under ref, replacing any previous
// record with the same reference.
func (r *Registry) Describe(ref string, doc DocRecord) {
	r.mu.Lock()
	r.docs[ref] = doc
	r.mu.Unlock()
}

// Snapshot copies the current routes and documentation records so generation
// can proceed without holding any lock.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		Routes: append([]RouteRecord(nil), r.routes...),
		docs:   copyDocs(r.docs),
	}
}

// SnapshotRoutes pairs an externally supplied route list (e.g. a web
// framework's own route table) with this registry's documentation records.
func (r *Registry) SnapshotRoutes(routes []RouteRecord) Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		Routes: append([]RouteRecord(nil), routes...),
		docs:   copyDocs(r.docs),
	}
}

func copyDocs(src map[string]DocRecord) map[string]DocRecord {
	docs := make(map[string]DocRecord, len(src))
	for ref, doc := range src {
		docs[ref] = doc
	}
	return docs
}

// Snapshot is a point-in-time view of the registry. It is safe to share with
// concurrent generations since nothing mutates it after construction.
type Snapshot struct {
	Routes []RouteRecord
	docs   map[string]DocRecord
}

// Resolve looks up the documentation record stored under ref.
func (s Snapshot) Resolve(ref string) (DocRecord, bool) {
	doc, ok := s.docs[ref]
	return doc, ok
}
