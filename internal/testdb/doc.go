// Package testdb provides utilities for tests that run against a real
// PostgreSQL database.
//
// Each test runs in its own transaction, which is rolled back when the test
// completes, so tests can run in parallel without cleaning up after
// themselves. Schema is applied once per process from the embedded goose
// migrations.
//
//	func TestBookStoreRoundTrip(t *testing.T) {
//	    t.Parallel()
//
//	    pool := testdb.GetTestPoolWithT(t) // skips when no database is configured
//
//	    testdb.WithTx(t, pool, func(t *testing.T, tx pgx.Tx) {
//	        books := postgres.NewPostgresBookStore(tx, nil)
//	        ...
//	    })
//	}
//
// The database URL is read from BOOKSTORE_TEST_DB_URL, falling back to
// DATABASE_URL. Outside CI a missing URL skips the test; in CI it fails it.
package testdb
