// Package api handles incoming HTTP requests, request validation and
// response formatting for the bookstore. It acts as an adapter between
// external clients and the internal application services.
//
// Handlers return errors instead of writing error responses themselves.
// ErrorHandler maps each error to a status code and a safe message in one
// place (see MapErrorToStatusCode and GetSafeErrorMessage).
package api
