// Package middleware contains the HTTP middleware of the bookstore API:
// the session guard, request tracing and logging, panic recovery and CORS.
package middleware
