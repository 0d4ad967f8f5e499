package api

import (
	"time"

	"github.com/phrazzld/bookstore-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Key matching is case-insensitive, so "firstName" is accepted as well.
type RegisterRequest struct {
	Username  string `json:"username"  validate:"required"`
	Password  string `json:"password"  validate:"required"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user. It never includes the password hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstname,omitempty"`
	LastName  string    `json:"lastname,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterResponse defines the successful response for the registration endpoint.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}

// WelcomeResponse is the API root document.
type WelcomeResponse struct {
	Message       string `json:"message"`
	Documentation string `json:"documentation"`
}

// CreateBookRequest defines the payload for creating a book.
// Price is a pointer so that a missing price is distinguishable from zero.
type CreateBookRequest struct {
	Title  string   `json:"title"  validate:"required"`
	Author string   `json:"author" validate:"required"`
	Genre  *string  `json:"genre"`
	Price  *float64 `json:"price"  validate:"required,gte=0"`
}

// UpdateBookRequest defines the payload for a partial book update.
// Absent fields are left unchanged.
type UpdateBookRequest struct {
	Title  *string  `json:"title"`
	Author *string  `json:"author"`
	Genre  *string  `json:"genre"`
	Price  *float64 `json:"price" validate:"omitempty,gte=0"`
}

// BookResponse is the public view of a book.
type BookResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     *string   `json:"genre"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookEnvelope wraps a book with a status message.
type BookEnvelope struct {
	Message string       `json:"message"`
	Book    BookResponse `json:"book"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

func bookToResponse(b *domain.Book) BookResponse {
	return BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Genre:     b.Genre,
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func booksToResponse(books []domain.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, bookToResponse(&books[i]))
	}
	return out
}

// toPatch converts an update request into a domain patch.
func (req UpdateBookRequest) toPatch() domain.BookPatch {
	return domain.BookPatch{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
		Price:  req.Price,
	}
}
