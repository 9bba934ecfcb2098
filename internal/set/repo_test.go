package set

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

func TestGetByNameFirstMatchWins(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	first, err := repo.Create(ctx, model.Set{Name: "Alpha"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.Set{Name: "Alpha"})
	require.NoError(t, err)

	got, err := repo.GetByName(ctx, "Alpha")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = repo.GetByName(ctx, "Beta")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestReleaseFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, model.Set{Name: "Old", ReleaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.Set{Name: "New", ReleaseDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "New", items[0].Name)
}

func TestFileRepoRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewFileRepo(dir)
	require.NoError(t, err)
	created, err := repo.Create(ctx, model.Set{Name: "Alpha", Preview: true})
	require.NoError(t, err)
	assert.False(t, created.ReleaseDate.IsZero(), "zero release date defaults to now")

	reopened, err := NewFileRepo(dir)
	require.NoError(t, err)
	got, err := reopened.GetByName(ctx, "Alpha")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.Preview)
}
