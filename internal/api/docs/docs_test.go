package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDocumentDescribesRoutes(t *testing.T) {
	t.Parallel()

	doc, err := Parse(openAPIYAML)
	require.NoError(t, err)

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	for _, p := range []string{"/auth/register", "/auth/login", "/auth/logout", "/books", "/books/{id}"} {
		assert.Contains(t, paths, p)
	}
}

func TestParseNonStringKeys(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("responses:\n  200:\n    description: ok\n"))
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"responses":{"200":{"description":"ok"}}}`, string(out))
}

func TestParseRejectsNonMapping(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("- just\n- a list\n"))
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	h, err := NewHandler()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.JSON(rec, httptest.NewRequest(http.MethodGet, "/api-docs/openapi.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	rec = httptest.NewRecorder()
	h.YAML(rec, httptest.NewRequest(http.MethodGet, "/api-docs/openapi.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}
