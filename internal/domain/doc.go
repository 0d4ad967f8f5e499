// Package domain defines the core business entities of the bookstore, users
// and books, together with their validation rules and errors.
package domain
