package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bookstore-api/internal/domain"
)

// getPathID extracts an integer ID from the URL path parameters.
// A missing or non-integer value yields a RequestError wrapping domain.ErrInvalidID.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, NewRequestError("Invalid book ID", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, NewRequestError("Invalid book ID", domain.ErrInvalidID)
	}

	return id, nil
}
