package domain

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestNewBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		author  string
		genre   *string
		price   float64
		wantErr error
	}{
		{name: "valid book", title: "X", author: "Y", price: 9.99},
		{name: "free book", title: "X", author: "Y", price: 0},
		{name: "with genre", title: "X", author: "Y", genre: strPtr("Fiction"), price: 1},
		{name: "missing title", title: " ", author: "Y", price: 1, wantErr: ErrEmptyTitle},
		{name: "missing author", title: "X", author: "", price: 1, wantErr: ErrEmptyAuthor},
		{name: "negative price", title: "X", author: "Y", price: -1, wantErr: ErrInvalidPrice},
		{name: "NaN price", title: "X", author: "Y", price: math.NaN(), wantErr: ErrInvalidPrice},
		{name: "price too large", title: "X", author: "Y", price: 1e9, wantErr: ErrInvalidPrice},
		{name: "title too long", title: strings.Repeat("t", 256), author: "Y", price: 1, wantErr: ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			book, err := NewBook(tt.title, tt.author, tt.genre, tt.price)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Nil(t, book)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.title, book.Title)
			assert.Equal(t, tt.price, book.Price)
		})
	}
}

func TestNewBookNormalizesFields(t *testing.T) {
	t.Parallel()

	book, err := NewBook("  Dune ", " Herbert ", strPtr("   "), 10.006)
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Herbert", book.Author)
	assert.Nil(t, book.Genre, "blank genre should become NULL")
	assert.InDelta(t, 10.01, book.Price, 0.0001)
}

func TestBookPatchApply(t *testing.T) {
	t.Parallel()

	base := Book{ID: 7, Title: "Old", Author: "Someone", Genre: strPtr("Drama"), Price: 5}

	t.Run("applies only set fields", func(t *testing.T) {
		t.Parallel()
		b := base
		patch := BookPatch{Title: strPtr("New"), Price: floatPtr(12.5)}

		require.NoError(t, patch.Apply(&b))
		assert.Equal(t, "New", b.Title)
		assert.Equal(t, "Someone", b.Author)
		assert.Equal(t, "Drama", *b.Genre)
		assert.Equal(t, 12.5, b.Price)
		assert.Equal(t, int64(7), b.ID)
	})

	t.Run("invalid result leaves book untouched", func(t *testing.T) {
		t.Parallel()
		b := base
		patch := BookPatch{Title: strPtr("New"), Price: floatPtr(-1)}

		err := patch.Apply(&b)
		assert.ErrorIs(t, err, ErrInvalidPrice)
		assert.Equal(t, base, b)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		t.Parallel()
		b := base
		assert.ErrorIs(t, BookPatch{Title: strPtr("")}.Apply(&b), ErrEmptyTitle)
	})

	t.Run("is empty", func(t *testing.T) {
		t.Parallel()
		assert.True(t, BookPatch{}.IsEmpty())
		assert.False(t, BookPatch{Genre: strPtr("x")}.IsEmpty())
	})
}
