// Package rawg implements the client for the RAWG game catalog API.
// It provides the three read operations the bot needs: free-text search,
// top-rated games of a year, and top-rated games of a genre.
package rawg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/kittipat/linegamebot/internal/config"
)

// Game is a single catalog record as returned by the API. Website may be
// empty when the catalog has no link for the game.
type Game struct {
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Released string  `json:"released"`
	Website  string  `json:"website"`
}

// Client defines the catalog operations used throughout the application.
type Client interface {
	// Search queries the catalog with a free-text search term. Results
	// keep the catalog's own relevance ordering.
	Search(ctx context.Context, query string) ([]Game, error)

	// TopOfYear returns up to 10 games released in the given calendar
	// year, ordered by descending rating.
	TopOfYear(ctx context.Context, year int) ([]Game, error)

	// ByGenre returns up to 5 games of the given genre identifier,
	// ordered by descending rating.
	ByGenre(ctx context.Context, genreID string) ([]Game, error)
}

type httpClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *slog.Logger
}

// NewClient creates a new catalog client with the provided configuration.
func NewClient(cfg config.RAWGConfig, log *slog.Logger) Client {
	return &httpClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log.With("component", "rawg_client"),
	}
}

func (c *httpClient) Search(ctx context.Context, query string) ([]Game, error) {
	params := url.Values{}
	params.Set("search", query)
	return c.games(ctx, params)
}

func (c *httpClient) TopOfYear(ctx context.Context, year int) ([]Game, error) {
	params := url.Values{}
	params.Set("ordering", "-rating")
	params.Set("page_size", "10")
	params.Set("released", fmt.Sprintf("%d-01-01,%d-12-31", year, year))
	return c.games(ctx, params)
}

func (c *httpClient) ByGenre(ctx context.Context, genreID string) ([]Game, error) {
	params := url.Values{}
	params.Set("genres", genreID)
	params.Set("ordering", "-rating")
	params.Set("page_size", "5")
	return c.games(ctx, params)
}

// games performs a single GET against the /games endpoint and decodes the
// results envelope. The API credential is added here so individual
// operations only carry their own parameters.
func (c *httpClient) games(ctx context.Context, params url.Values) ([]Game, error) {
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + "/games?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.WarnContext(ctx, "Catalog returned non-OK status", "status", resp.StatusCode)
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Results []Game `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return envelope.Results, nil
}
