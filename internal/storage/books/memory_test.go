package books_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audiobookify/internal/catalog"
	"audiobookify/internal/storage/books"
	"audiobookify/internal/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_CatalogRepository_GetAll(t *testing.T) {
	repo := books.NewCatalogRepository(discardLogger())

	bs, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, catalog.All(), bs)
}

func Test_CatalogRepository_GetById(t *testing.T) {
	repo := books.NewCatalogRepository(discardLogger())

	tests := []struct {
		name     string
		id       int
		validate func(t *testing.T, b *types.Book, err error)
	}{
		{
			name: "dune",
			id:   2,
			validate: func(t *testing.T, b *types.Book, err error) {
				require.NoError(t, err)
				assert.Equal(t, "DUNE", b.Title)
				assert.Equal(t, "Frank Herbert", b.Author)
				assert.Equal(t, 21.0, b.Duration)
			},
		},
		{
			name: "steve_jobs_with_text_color",
			id:   5,
			validate: func(t *testing.T, b *types.Book, err error) {
				require.NoError(t, err)
				assert.Equal(t, "STEVE JOBS", b.Title)
				assert.Equal(t, "#000000", b.TextColor)
			},
		},
		{
			name: "unknown_id",
			id:   42,
			validate: func(t *testing.T, b *types.Book, err error) {
				assert.ErrorIs(t, err, books.ErrNotFound)
				assert.Nil(t, b)
			},
		},
		{
			name: "zero_id",
			id:   0,
			validate: func(t *testing.T, b *types.Book, err error) {
				assert.ErrorIs(t, err, books.ErrNotFound)
				assert.Nil(t, b)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := repo.GetById(context.Background(), tt.id)
			tt.validate(t, b, err)
		})
	}
}

func Test_MemoryRepository_CopiesInput(t *testing.T) {
	list := []types.Book{{Id: 10, Title: "FIRST"}, {Id: 20, Title: "SECOND"}}
	repo := books.NewMemoryRepository(list, discardLogger())

	list[0].Title = "CHANGED"

	b, err := repo.GetById(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "FIRST", b.Title)
}

func Test_MemoryRepository_ResultsDoNotLeakState(t *testing.T) {
	repo := books.NewMemoryRepository([]types.Book{{Id: 1, Title: "ONLY"}}, discardLogger())

	bs, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	bs[0].Title = "CHANGED"

	b, err := repo.GetById(context.Background(), 1)
	require.NoError(t, err)
	b.Title = "CHANGED AGAIN"

	again, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ONLY", again[0].Title)
}

func Test_MemoryRepository_KeepsOrderAndFirstDuplicate(t *testing.T) {
	repo := books.NewMemoryRepository([]types.Book{
		{Id: 3, Title: "C"},
		{Id: 1, Title: "A"},
		{Id: 3, Title: "C AGAIN"},
	}, discardLogger())

	bs, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bs, 3)
	assert.Equal(t, []int{3, 1, 3}, []int{bs[0].Id, bs[1].Id, bs[2].Id})

	b, err := repo.GetById(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "C", b.Title)
}

func Test_MemoryRepository_Empty(t *testing.T) {
	repo := books.NewMemoryRepository(nil, discardLogger())

	bs, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bs)
}

func Test_MemoryRepository_CanceledContext(t *testing.T) {
	repo := books.NewCatalogRepository(discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.GetById(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
