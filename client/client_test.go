package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"movie-browse-server/client"
	"movie-browse-server/internal/models"
)

// stubServer fakes the movie-browse-server API surface the client touches.
func stubServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Email == "taken@b.com" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"User already exists"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token":"tok-123","user":{"id":1,"email":"` + creds.Email + `"}}`))
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid or expired token"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"email":"a@b.com"}`))
	})
	mux.HandleFunc("GET /api/movies/trending", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"id":10,"title":"Movie"},{"id":11,"name":"Show","media_type":"tv"}]}`))
	})
	mux.HandleFunc("GET /api/movies/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"TMDB API Key missing"}`))
	})
	mux.HandleFunc("GET /api/search", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "blade runner", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"results":[{"id":20,"title":"Blade Runner"}]}`))
	})
	mux.HandleFunc("GET /api/details/movie/42", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":42,"title":"Answer","videos":{"results":[{"key":"t1","site":"YouTube","type":"Teaser"},{"key":"t2","site":"YouTube","type":"Trailer"}]}}`))
	})
	mux.HandleFunc("/api/watchlist", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":5,"title":"Saved"}]`))
	})
	mux.HandleFunc("DELETE /api/watchlist/5", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSignupStartsSession(t *testing.T) {
	srv := stubServer(t)
	c := client.New(srv.URL)

	resp, err := c.Signup("a@b.com", "x")
	require.NoError(t, err)
	require.Equal(t, "tok-123", resp.Token)

	session := c.Session()
	require.NotNil(t, session)
	require.Equal(t, "a@b.com", session.User.Email)

	user, err := c.Me()
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)

	c.Logout()
	require.Nil(t, c.Session())
	_, err = c.Me()
	require.Error(t, err)
}

func TestSignupSurfacesServerError(t *testing.T) {
	srv := stubServer(t)
	c := client.New(srv.URL)

	_, err := c.Signup("taken@b.com", "x")
	require.EqualError(t, err, "User already exists")
	require.Nil(t, c.Session())
}

func TestCatalogCallsDegradeSilently(t *testing.T) {
	srv := stubServer(t)
	c := client.New(srv.URL)

	row := c.GetMovies("trending")
	require.Len(t, row, 2)
	require.Equal(t, "Movie", row[0].DisplayTitle())
	require.Equal(t, "Show", row[1].DisplayTitle())

	// Failing category returns an empty row, not an error.
	require.Empty(t, c.GetMovies("broken"))

	// Unreachable server degrades the same way.
	down := client.New("http://127.0.0.1:1")
	require.Empty(t, down.GetMovies("trending"))
	require.Empty(t, down.Search("anything"))
	require.Nil(t, down.GetDetails("movie", 42))
}

func TestSearchAndDetails(t *testing.T) {
	srv := stubServer(t)
	c := client.New(srv.URL)

	results := c.Search("blade runner")
	require.Len(t, results, 1)

	details := c.GetDetails("", 42) // empty type defaults to movie
	require.NotNil(t, details)
	require.Equal(t, int64(42), details.ID)
	require.Len(t, details.Videos.Results, 2)
}

func TestWatchlistCalls(t *testing.T) {
	srv := stubServer(t)
	c := client.New(srv.URL)

	items, err := c.Watchlist()
	require.NoError(t, err)
	require.Len(t, items, 1)

	items, err = c.RemoveFromWatchlist(5)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestSessionPersistence(t *testing.T) {
	srv := stubServer(t)
	path := filepath.Join(t.TempDir(), "session.json")

	c := client.New(srv.URL)
	_, err := c.Signup("a@b.com", "x")
	require.NoError(t, err)
	require.NoError(t, c.SaveSession(path))

	// A fresh client restores the logged-in state without a round-trip.
	restored := client.New(srv.URL)
	require.NoError(t, restored.LoadSession(path))
	require.NotNil(t, restored.Session())
	require.Equal(t, "tok-123", restored.Session().Token)

	// Logout clears local state only; saving removes the file.
	restored.Logout()
	require.NoError(t, restored.SaveSession(path))

	again := client.New(srv.URL)
	require.NoError(t, again.LoadSession(path))
	require.Nil(t, again.Session())
}
