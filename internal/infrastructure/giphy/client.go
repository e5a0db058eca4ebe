package giphy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"s2dio.backend/internal/domain/entities"
	domainerrors "s2dio.backend/internal/domain/errors"
)

// Client talks to the Giphy REST API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Giphy client
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type gifPayload struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Images struct {
		Original struct {
			URL string `json:"url"`
		} `json:"original"`
		FixedHeight struct {
			URL string `json:"url"`
		} `json:"fixed_height"`
	} `json:"images"`
}

type listResponse struct {
	Data []gifPayload `json:"data"`
}

// Search returns G-rated gifs matching the query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]*entities.Gif, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("lang", "en")
	return c.fetch(ctx, "/search", limit, params)
}

// Trending returns the current G-rated trending gifs.
func (c *Client) Trending(ctx context.Context, limit int) ([]*entities.Gif, error) {
	return c.fetch(ctx, "/trending", limit, url.Values{})
}

func (c *Client) fetch(ctx context.Context, path string, limit int, params url.Values) ([]*entities.Gif, error) {
	params.Set("api_key", c.apiKey)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("rating", "g")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: giphy returned status %d", domainerrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domainerrors.ErrUpstreamUnavailable, err)
	}

	gifs := make([]*entities.Gif, 0, len(payload.Data))
	for _, g := range payload.Data {
		gifs = append(gifs, &entities.Gif{
			ID:        g.ID,
			Title:     g.Title,
			URL:       g.Images.Original.URL,
			Thumbnail: g.Images.FixedHeight.URL,
		})
	}
	return gifs, nil
}
