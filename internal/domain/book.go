package domain

import (
	"errors"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// Book field limits. MaxPrice matches the NUMERIC(10,2) column.
const (
	MaxTitleLength  = 255
	MaxAuthorLength = 255
	MaxGenreLength  = 100
	MaxPrice        = 99999999.99
)

// Book validation errors
var (
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrEmptyAuthor  = errors.New("author cannot be empty")
	ErrFieldTooLong = errors.New("field too long")
	ErrInvalidPrice = errors.New("price must be a non-negative number")
)

// Book is an entry in the catalog.
type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     *string   `json:"genre"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBook creates a validated Book. The ID and timestamps are assigned by the store.
// An empty genre is stored as NULL.
func NewBook(title, author string, genre *string, price float64) (*Book, error) {
	book := &Book{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Genre:  normalizeGenre(genre),
		Price:  roundPrice(price),
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks if the Book has valid data.
func (b *Book) Validate() error {
	if b.Title == "" {
		return NewValidationError("title", "is required", ErrEmptyTitle)
	}
	if utf8.RuneCountInString(b.Title) > MaxTitleLength {
		return NewValidationError("title", "is too long", ErrFieldTooLong)
	}
	if b.Author == "" {
		return NewValidationError("author", "is required", ErrEmptyAuthor)
	}
	if utf8.RuneCountInString(b.Author) > MaxAuthorLength {
		return NewValidationError("author", "is too long", ErrFieldTooLong)
	}
	if b.Genre != nil && utf8.RuneCountInString(*b.Genre) > MaxGenreLength {
		return NewValidationError("genre", "is too long", ErrFieldTooLong)
	}
	if math.IsNaN(b.Price) || math.IsInf(b.Price, 0) || b.Price < 0 || b.Price > MaxPrice {
		return NewValidationError("price", "must be a positive number", ErrInvalidPrice)
	}
	return nil
}

// BookPatch holds the fields of a partial update. Nil fields are left unchanged.
type BookPatch struct {
	Title  *string
	Author *string
	Genre  *string
	Price  *float64
}

// IsEmpty reports whether the patch changes nothing. An empty patch still
// refreshes the book's updated_at.
func (p BookPatch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Genre == nil && p.Price == nil
}

// Apply copies the non-nil fields of p onto b and validates the result.
// b is modified only when the result is valid.
func (p BookPatch) Apply(b *Book) error {
	updated := *b
	if p.Title != nil {
		updated.Title = strings.TrimSpace(*p.Title)
	}
	if p.Author != nil {
		updated.Author = strings.TrimSpace(*p.Author)
	}
	if p.Genre != nil {
		updated.Genre = normalizeGenre(p.Genre)
	}
	if p.Price != nil {
		updated.Price = roundPrice(*p.Price)
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	*b = updated
	return nil
}

func normalizeGenre(genre *string) *string {
	if genre == nil {
		return nil
	}
	g := strings.TrimSpace(*genre)
	if g == "" {
		return nil
	}
	return &g
}

// roundPrice rounds to cents, the precision of the price column.
func roundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
