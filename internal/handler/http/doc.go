// Package http implements the REST transport of the auth service.
//
// It exposes route wiring, request handlers and middleware. Boundary
// validation, bearer authentication, request tracing and access logging are
// handled in this package before requests are delegated to the service layer.
package http
