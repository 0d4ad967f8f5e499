package api

import (
	"net/http"

	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/service"
	"github.com/phrazzld/bookstore-api/internal/service/auth"
)

// BookHandler handles catalog API requests.
type BookHandler struct {
	books service.BookService
}

// NewBookHandler creates a new BookHandler with the given dependencies.
func NewBookHandler(books service.BookService) *BookHandler {
	return &BookHandler{books: books}
}

// ListBooks handles GET /books.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) error {
	books, err := h.books.ListBooks(r.Context())
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, booksToResponse(books))
	return nil
}

// GetBook handles GET /books/{id}.
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) error {
	id, err := getPathID(r, "id")
	if err != nil {
		return err
	}

	book, err := h.books.GetBook(r.Context(), id)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookToResponse(book))
	return nil
}

// CreateBook handles POST /books.
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request, identity auth.Identity) error {
	var req CreateBookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return decodeError(err)
	}
	if err := shared.ValidateRequest(&req); err != nil {
		return validationError(err)
	}

	book, err := h.books.CreateBook(r.Context(), service.CreateBookInput{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
		Price:  *req.Price,
	})
	if err != nil {
		return err
	}

	logger.FromContext(r.Context()).Debug("book created by user",
		"book_id", book.ID,
		"user_id", identity.UserID)

	shared.RespondWithJSON(w, r, http.StatusCreated, BookEnvelope{
		Message: "Book created successfully",
		Book:    bookToResponse(book),
	})
	return nil
}

// UpdateBook handles PUT /books/{id}.
// An unknown id is reported as 404 even when the body would also fail validation.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request, identity auth.Identity) error {
	id, err := getPathID(r, "id")
	if err != nil {
		return err
	}

	var req UpdateBookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return decodeError(err)
	}

	// Request-level checks (e.g. a negative price) wait until the book is
	// known to exist; the store validates the patched result in the same
	// transaction that locks the row.
	if err := shared.ValidateRequest(&req); err != nil {
		if _, getErr := h.books.GetBook(r.Context(), id); getErr != nil {
			return getErr
		}
		return validationError(err)
	}

	book, err := h.books.UpdateBook(r.Context(), id, req.toPatch())
	if err != nil {
		return err
	}

	logger.FromContext(r.Context()).Debug("book updated by user",
		"book_id", book.ID,
		"user_id", identity.UserID)

	shared.RespondWithJSON(w, r, http.StatusOK, BookEnvelope{
		Message: "Book updated successfully",
		Book:    bookToResponse(book),
	})
	return nil
}

// DeleteBook handles DELETE /books/{id}.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request, identity auth.Identity) error {
	id, err := getPathID(r, "id")
	if err != nil {
		return err
	}

	book, err := h.books.DeleteBook(r.Context(), id)
	if err != nil {
		return err
	}

	logger.FromContext(r.Context()).Debug("book deleted by user",
		"book_id", id,
		"user_id", identity.UserID)

	shared.RespondWithJSON(w, r, http.StatusOK, BookEnvelope{
		Message: "Book deleted successfully",
		Book:    bookToResponse(book),
	})
	return nil
}
