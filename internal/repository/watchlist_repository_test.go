package repository_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"movie-browse-server/internal/models"
	"movie-browse-server/internal/repository"
	"movie-browse-server/internal/store"
)

func newWatchlistRepo(t *testing.T) *repository.WatchlistRepository {
	t.Helper()
	s, err := store.NewFileStore(afero.NewMemMapFs(), "data")
	require.NoError(t, err)
	return repository.NewWatchlistRepository(s)
}

func item(id int64, title string) models.WatchlistItem {
	return models.WatchlistItem{ID: id, Title: title}
}

func TestEmptyWatchlist(t *testing.T) {
	repo := newWatchlistRepo(t)

	items, err := repo.List()
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestAddIsIdempotentOnID(t *testing.T) {
	repo := newWatchlistRepo(t)

	items, err := repo.Add(item(5, "First"))
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Same id again, even with different fields, inserts nothing.
	items, err = repo.Add(item(5, "Different title"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "First", items[0].Title)
}

func TestRemoveMissingIDIsNoOp(t *testing.T) {
	repo := newWatchlistRepo(t)

	_, err := repo.Add(item(1, "Keep me"))
	require.NoError(t, err)

	items, err := repo.Remove(99)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestListReflectsNetEffectInInsertionOrder(t *testing.T) {
	repo := newWatchlistRepo(t)

	for id := int64(1); id <= 4; id++ {
		_, err := repo.Add(item(id, ""))
		require.NoError(t, err)
	}
	_, err := repo.Remove(2)
	require.NoError(t, err)
	_, err = repo.Add(item(5, ""))
	require.NoError(t, err)

	items, err := repo.List()
	require.NoError(t, err)

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	require.Equal(t, []int64{1, 3, 4, 5}, ids)
}
