package giphy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	domainerrors "s2dio.backend/internal/domain/errors"
)

const sampleBody = `{
	"data": [
		{
			"id": "abc123",
			"title": "Vibing Cat",
			"images": {
				"original": {"url": "https://media.giphy.com/media/abc123/giphy.gif"},
				"fixed_height": {"url": "https://media.giphy.com/media/abc123/200.gif"}
			}
		},
		{
			"id": "def456",
			"title": "Dancing Dog",
			"images": {
				"original": {"url": "https://media.giphy.com/media/def456/giphy.gif"},
				"fixed_height": {"url": "https://media.giphy.com/media/def456/200.gif"}
			}
		}
	]
}`

func TestClient_Search(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	c := NewClient("test_key", srv.URL, 2*time.Second)
	gifs, err := c.Search(context.Background(), "vibing", 50)
	require.NoError(t, err)
	require.Len(t, gifs, 2)
	require.Equal(t, "abc123", gifs[0].ID)
	require.Equal(t, "Vibing Cat", gifs[0].Title)
	require.Equal(t, "https://media.giphy.com/media/abc123/giphy.gif", gifs[0].URL)
	require.Equal(t, "https://media.giphy.com/media/abc123/200.gif", gifs[0].Thumbnail)

	require.Equal(t, "/search", gotPath)
	require.Equal(t, "vibing", gotQuery["q"][0])
	require.Equal(t, "50", gotQuery["limit"][0])
	require.Equal(t, "g", gotQuery["rating"][0])
	require.Equal(t, "en", gotQuery["lang"][0])
	require.Equal(t, "test_key", gotQuery["api_key"][0])
}

func TestClient_Trending(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	c := NewClient("test_key", srv.URL, 2*time.Second)
	gifs, err := c.Trending(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, gifs, 2)

	require.Equal(t, "/trending", gotPath)
	require.Equal(t, "25", gotQuery["limit"][0])
	require.Equal(t, "g", gotQuery["rating"][0])
	require.NotContains(t, gotQuery, "q")
}

func TestClient_UpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	c := NewClient("test_key", srv.URL, 2*time.Second)

	_, err := c.Search(context.Background(), "vibing", 50)
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)

	// Unreachable host.
	srv.Close()
	_, err = c.Trending(context.Background(), 25)
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient("test_key", srv.URL, 2*time.Second)
	_, err := c.Search(context.Background(), "vibing", 50)
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}
