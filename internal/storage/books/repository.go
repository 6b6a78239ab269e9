package books

import (
	"context"
	"errors"

	"audiobookify/internal/types"
)

var ErrNotFound = errors.New("book not found")

// Repository is what consumers of book data depend on, so the built-in catalog
// can be swapped for any other list of books.
type Repository interface {
	// GetAll returns books in display order. Callers own the returned slice.
	GetAll(ctx context.Context) ([]types.Book, error)
	// GetById fails with ErrNotFound when no book has the given id.
	GetById(ctx context.Context, id int) (*types.Book, error)
}
