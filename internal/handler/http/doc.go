// Package http implements the HTTP transport layer of the site server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API and the preview page. Authentication of publishers, request tracing,
// access logging, metrics, rate limiting and response compression are
// handled in this package before requests are delegated to the service layer.
package http
