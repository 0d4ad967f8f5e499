package testdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTestDatabaseURL(t *testing.T) {
	tests := []struct {
		name    string
		testURL string
		dbURL   string
		want    string
	}{
		{name: "none set", want: ""},
		{name: "fallback", dbURL: "postgres://fallback/db", want: "postgres://fallback/db"},
		{name: "test url wins", testURL: "postgres://test/db", dbURL: "postgres://fallback/db", want: "postgres://test/db"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(TestDatabaseURLEnv, tc.testURL)
			t.Setenv(DatabaseURLEnv, tc.dbURL)

			assert.Equal(t, tc.want, GetTestDatabaseURL())
			assert.Equal(t, tc.want == "", ShouldSkipDatabaseTest())
		})
	}
}

func TestIsCIEnvironment(t *testing.T) {
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		t.Setenv(v, "")
	}
	assert.False(t, isCIEnvironment())

	t.Setenv("GITHUB_ACTIONS", "true")
	assert.True(t, isCIEnvironment())
}
