package service

import (
	"movie-browse-server/internal/models"
	"movie-browse-server/internal/repository"
)

// WatchlistService handles the shared watchlist collection. There is no
// per-user scoping: every session reads and writes the same set.
type WatchlistService struct {
	repo *repository.WatchlistRepository
}

// NewWatchlistService creates a new WatchlistService.
func NewWatchlistService(repo *repository.WatchlistRepository) *WatchlistService {
	return &WatchlistService{repo: repo}
}

// List returns the full collection in insertion order.
func (s *WatchlistService) List() ([]models.WatchlistItem, error) {
	return s.repo.List()
}

// Add inserts the item, idempotent on id, and returns the full collection.
func (s *WatchlistService) Add(item models.WatchlistItem) ([]models.WatchlistItem, error) {
	return s.repo.Add(item)
}

// Remove drops the item with the given id if present and returns the full
// collection.
func (s *WatchlistService) Remove(id int64) ([]models.WatchlistItem, error) {
	return s.repo.Remove(id)
}
