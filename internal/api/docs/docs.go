// Package docs serves the embedded OpenAPI description of the API.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPIYAML []byte

// Handler serves the OpenAPI document as JSON and as the original YAML.
type Handler struct {
	json []byte
}

// NewHandler parses the embedded document once.
func NewHandler() (*Handler, error) {
	doc, err := Parse(openAPIYAML)
	if err != nil {
		return nil, err
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}
	return &Handler{json: out}, nil
}

// Parse decodes an OpenAPI YAML document into JSON-compatible values.
func Parse(data []byte) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}

	doc, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("OpenAPI document must be a mapping, got %T", raw)
	}
	return doc, nil
}

// JSON serves the document as application/json.
func (h *Handler) JSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.json)
}

// YAML serves the embedded document unchanged.
func (h *Handler) YAML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPIYAML)
}

// normalize converts mappings with non-string keys (e.g. unquoted status
// codes) into map[string]any so the result can be encoded as JSON.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}
