package repository

import (
	"movie-browse-server/internal/models"
	"movie-browse-server/internal/store"
)

// WatchlistStore is the record store name backing the shared watchlist.
const WatchlistStore = "watchlist"

// WatchlistRepository persists the single shared watchlist collection.
type WatchlistRepository struct {
	store *store.FileStore
}

// NewWatchlistRepository creates a new WatchlistRepository.
func NewWatchlistRepository(s *store.FileStore) *WatchlistRepository {
	return &WatchlistRepository{store: s}
}

// List returns all items in insertion order.
func (r *WatchlistRepository) List() ([]models.WatchlistItem, error) {
	items := []models.WatchlistItem{}
	if err := r.store.Load(WatchlistStore, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.WatchlistItem{}
	}
	return items, nil
}

// Add inserts the item unless one with the same id is already present, and
// returns the resulting collection.
func (r *WatchlistRepository) Add(item models.WatchlistItem) ([]models.WatchlistItem, error) {
	items := []models.WatchlistItem{}
	err := r.store.Update(WatchlistStore, &items, func() (any, error) {
		for _, existing := range items {
			if existing.ID == item.ID {
				return items, nil
			}
		}
		items = append(items, item)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Remove drops the entry with the matching id if present and returns the
// resulting collection. Removing an absent id is a no-op.
func (r *WatchlistRepository) Remove(id int64) ([]models.WatchlistItem, error) {
	items := []models.WatchlistItem{}
	remaining := []models.WatchlistItem{}
	err := r.store.Update(WatchlistStore, &items, func() (any, error) {
		remaining = make([]models.WatchlistItem, 0, len(items))
		for _, existing := range items {
			if existing.ID != id {
				remaining = append(remaining, existing)
			}
		}
		return remaining, nil
	})
	if err != nil {
		return nil, err
	}
	return remaining, nil
}
