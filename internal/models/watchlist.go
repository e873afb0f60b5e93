package models

// WatchlistItem is a catalog entry saved to the shared watchlist. Field
// names mirror the upstream catalog shape so items taken from browse
// responses round-trip unchanged.
type WatchlistItem struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	Overview     string  `json:"overview"`
}
