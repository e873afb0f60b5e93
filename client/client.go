// Package client is a typed Go client for the movie-browse-server HTTP
// API. It mirrors the single-page app's service layer: auth calls surface
// server error messages, catalog calls degrade silently to empty results,
// and the session lives in memory until explicitly persisted.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"movie-browse-server/internal/models"
)

// Image base URLs for rendering catalog artwork.
const (
	ImageBaseURL  = "https://image.tmdb.org/t/p/original/"
	PosterBaseURL = "https://image.tmdb.org/t/p/w500/"
)

// Session is the logged-in state: the token and the user it identifies.
// Presence of a session is the only "logged in" signal; the server is not
// consulted when one is restored from disk.
type Session struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// CatalogItem is the subset of the upstream catalog shape the client reads.
// Movies carry Title, TV shows carry Name.
type CatalogItem struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	MediaType    string  `json:"media_type"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	Overview     string  `json:"overview"`
}

// DisplayTitle returns the movie title or, for TV shows, the name.
func (i CatalogItem) DisplayTitle() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Name
}

// Video is one entry of a title's inlined videos expansion.
type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Details is a title with its videos expansion decoded.
type Details struct {
	CatalogItem
	Videos struct {
		Results []Video `json:"results"`
	} `json:"videos"`
}

type listResponse struct {
	Results []CatalogItem `json:"results"`
}

// Client talks to a movie-browse-server instance.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// New creates a client for the server at baseURL (without the /api prefix).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Session returns the current session, or nil when logged out.
func (c *Client) Session() *Session {
	return c.session
}

// Signup registers a new account and starts a session for it.
func (c *Client) Signup(email, password string) (*models.AuthResponse, error) {
	return c.authenticate("/api/auth/signup", email, password)
}

// Login authenticates and starts a session.
func (c *Client) Login(email, password string) (*models.AuthResponse, error) {
	return c.authenticate("/api/auth/login", email, password)
}

func (c *Client) authenticate(path, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.do(http.MethodPost, path, models.Credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	c.session = &Session{Token: resp.Token, User: resp.User}
	return &resp, nil
}

// Logout clears the local session. The token itself stays valid until it
// expires; the server has no way to invalidate it.
func (c *Client) Logout() {
	c.session = nil
}

// Me fetches the account behind the current session token.
func (c *Client) Me() (*models.PublicUser, error) {
	if c.session == nil {
		return nil, errors.New("not logged in")
	}
	var user models.PublicUser
	if err := c.do(http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMovies returns one browse row for the named category. Failures
// degrade to an empty row.
func (c *Client) GetMovies(category string) []CatalogItem {
	var resp listResponse
	if err := c.do(http.MethodGet, "/api/movies/"+url.PathEscape(category), nil, &resp); err != nil {
		slog.Warn("failed to fetch category", "category", category, "error", err)
		return []CatalogItem{}
	}
	return resp.Results
}

// Search returns multi-type search results. Failures degrade to an empty
// result set.
func (c *Client) Search(query string) []CatalogItem {
	var resp listResponse
	path := "/api/search?q=" + url.QueryEscape(query)
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		slog.Warn("search failed", "query", query, "error", err)
		return []CatalogItem{}
	}
	return resp.Results
}

// GetDetails returns one title with its videos expansion, or nil on
// failure. An empty mediaType defaults to "movie".
func (c *Client) GetDetails(mediaType string, id int64) *Details {
	if mediaType == "" {
		mediaType = "movie"
	}
	var details Details
	path := fmt.Sprintf("/api/details/%s/%d", url.PathEscape(mediaType), id)
	if err := c.do(http.MethodGet, path, nil, &details); err != nil {
		slog.Warn("failed to fetch details", "id", id, "error", err)
		return nil
	}
	return &details
}

// Watchlist returns the shared watchlist.
func (c *Client) Watchlist() ([]models.WatchlistItem, error) {
	var items []models.WatchlistItem
	if err := c.do(http.MethodGet, "/api/watchlist", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToWatchlist adds the item and returns the updated collection.
func (c *Client) AddToWatchlist(item models.WatchlistItem) ([]models.WatchlistItem, error) {
	var items []models.WatchlistItem
	if err := c.do(http.MethodPost, "/api/watchlist", item, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveFromWatchlist removes the item with the given id and returns the
// updated collection.
func (c *Client) RemoveFromWatchlist(id int64) ([]models.WatchlistItem, error) {
	var items []models.WatchlistItem
	if err := c.do(http.MethodDelete, "/api/watchlist/"+strconv.FormatInt(id, 10), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// do issues one API request, attaching the session token when present, and
// decodes either the success body into out or the server's {error} body
// into a returned error.
func (c *Client) do(method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
