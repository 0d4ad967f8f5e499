package testdb

import "os"

// Environment variables consulted for the test database URL, in order.
const (
	TestDatabaseURLEnv = "BOOKSTORE_TEST_DB_URL"
	DatabaseURLEnv     = "DATABASE_URL"
)

// GetTestDatabaseURL returns the configured test database URL, or "".
func GetTestDatabaseURL() string {
	for _, envVar := range []string{TestDatabaseURLEnv, DatabaseURLEnv} {
		if v := os.Getenv(envVar); v != "" {
			return v
		}
	}
	return ""
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// ShouldSkipDatabaseTest reports whether database tests should be skipped.
func ShouldSkipDatabaseTest() bool {
	return !IsIntegrationTestEnvironment()
}

// isCIEnvironment returns true if running in any common CI environment.
func isCIEnvironment() bool {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"CIRCLECI",
	}
	for _, envVar := range ciVars {
		if os.Getenv(envVar) != "" {
			return true
		}
	}
	return false
}
