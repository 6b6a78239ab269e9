package books

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"audiobookify/internal/catalog"
	"audiobookify/internal/types"
)

// NewMemoryRepository serves a private copy of list. If ids repeat, GetById returns the first one.
func NewMemoryRepository(list []types.Book, l *slog.Logger) Repository {
	bs := make([]types.Book, len(list))
	copy(bs, list)

	byId := make(map[int]int, len(bs))
	for ix, b := range bs {
		if _, ok := byId[b.Id]; ok {
			l.Warn("Found duplicate of book " + strconv.Itoa(b.Id))
			continue
		}

		byId[b.Id] = ix
	}

	return &memoryRepo{books: bs, byId: byId, l: l}
}

func NewCatalogRepository(l *slog.Logger) Repository {
	return NewMemoryRepository(catalog.All(), l)
}

type memoryRepo struct {
	books []types.Book
	byId  map[int]int
	l     *slog.Logger
}

func (m *memoryRepo) GetAll(ctx context.Context) ([]types.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ret := make([]types.Book, len(m.books))
	copy(ret, m.books)

	return ret, nil
}

func (m *memoryRepo) GetById(ctx context.Context, id int) (*types.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ix, ok := m.byId[id]
	if !ok {
		m.l.DebugContext(ctx, "Book "+strconv.Itoa(id)+" not found")
		return nil, fmt.Errorf("book %d: %w", id, ErrNotFound)
	}

	b := m.books[ix]
	return &b, nil
}
