// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// It handles connection pooling, schema migrations, query execution and the
// mapping between domain entities and database records.
package postgres
