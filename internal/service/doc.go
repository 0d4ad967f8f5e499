// Package service contains the application use cases of the bookstore.
// It orchestrates domain objects, the stores defined in internal/store and
// the authentication primitives in internal/service/auth.
//
// Services return sentinel errors for expected conditions (validation
// failures, missing entities, duplicate usernames, bad credentials) so the
// API layer can map them with errors.Is. Unexpected failures are wrapped in a
// *ServiceError, which matches ErrServiceFailure.
//
// The service layer depends on domain entities and store interfaces, never on
// a specific infrastructure implementation.
package service
