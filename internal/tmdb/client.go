package tmdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// PlaceholderAPIKey is the unset marker shipped in .env templates.
const PlaceholderAPIKey = "YOUR_TMDB_API_KEY_HERE"

// ErrMissingAPIKey is returned when no usable API key is configured. The
// message is part of the API contract.
var ErrMissingAPIKey = errors.New("TMDB API Key missing")

// UpstreamError reports a non-2xx TMDB response. Its status code is
// propagated to API callers.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("TMDB API returned status %d", e.StatusCode)
}

// category maps a browse category name to a TMDB resource and its filters.
type category struct {
	path   string
	params url.Values
}

var categories = map[string]category{
	"trending":      {path: "/trending/all/week"},
	"originals":     {path: "/discover/tv", params: url.Values{"with_networks": {"213"}}},
	"top_rated":     {path: "/movie/top_rated"},
	"action":        {path: "/discover/movie", params: url.Values{"with_genres": {"28"}}},
	"comedy":        {path: "/discover/movie", params: url.Values{"with_genres": {"35"}}},
	"horror":        {path: "/discover/movie", params: url.Values{"with_genres": {"27"}}},
	"romance":       {path: "/discover/movie", params: url.Values{"with_genres": {"10749"}}},
	"documentaries": {path: "/discover/movie", params: url.Values{"with_genres": {"99"}}},
}

// Client is the TMDB API client. Responses are passed through verbatim; the
// upstream owns the schema.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new TMDB API client.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// HasAPIKey reports whether a usable API key is configured.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != "" && c.apiKey != PlaceholderAPIKey
}

// ListCategory fetches one page of the named browse category. Unknown
// categories fall back to trending.
func (c *Client) ListCategory(name string, page int) (json.RawMessage, error) {
	cat, ok := categories[name]
	if !ok {
		cat = categories["trending"]
	}

	params := url.Values{
		"language": {"en-US"},
		"page":     {strconv.Itoa(page)},
	}
	for k, vs := range cat.params {
		params[k] = vs
	}
	return c.get(cat.path, params)
}

// Search runs a multi-type search across movies, TV and people, excluding
// adult titles. No pagination is exposed.
func (c *Client) Search(query string) (json.RawMessage, error) {
	return c.get("/search/multi", url.Values{
		"language":      {"en-US"},
		"query":         {query},
		"include_adult": {"false"},
	})
}

// GetDetails fetches one title with videos, credits and similar titles
// inlined. Any media type other than exactly "tv" is treated as "movie".
func (c *Client) GetDetails(mediaType, id string) (json.RawMessage, error) {
	if mediaType != "tv" {
		mediaType = "movie"
	}
	return c.get("/"+mediaType+"/"+url.PathEscape(id), url.Values{
		"append_to_response": {"videos,credits,similar"},
	})
}

func (c *Client) get(path string, params url.Values) (json.RawMessage, error) {
	if !c.HasAPIKey() {
		return nil, ErrMissingAPIKey
	}
	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	slog.Debug("fetching TMDB", "path", path)
	resp, err := c.http.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read TMDB response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return json.RawMessage(body), nil
}
