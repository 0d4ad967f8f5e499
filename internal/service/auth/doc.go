// Package auth issues and verifies HS256 session tokens and hashes
// passwords with bcrypt.
//
// Tokens are stateless: ValidateToken checks only the signature and the
// expiry claim. A token stays valid until it expires even if its user is
// deleted, so token lifetimes should be kept short.
package auth
