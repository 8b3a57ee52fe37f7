// Package core converts registered HTTP route definitions and their attached
// documentation records into an OpenAPI 3.0 document, without coupling to a
// particular web framework.
package core
