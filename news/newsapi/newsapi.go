package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"newspulse/config"
)

// Article is one search result item as NewsAPI returns it.
type Article struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

type response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// Client talks to the NewsAPI /v2/everything endpoint.
type Client struct {
	APIKey     string
	BaseURL    string
	Language   string
	SortBy     string
	PageSize   int
	HTTPClient *http.Client
}

// New builds a Client from config. The http.Client carries the request
// timeout so a hanging provider can never stall an interaction.
func New(cfg config.NewsAPIConfig, timeout time.Duration) *Client {
	return &Client{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Language:   cfg.Language,
		SortBy:     cfg.SortBy,
		PageSize:   cfg.PageSize,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// FetchEverything runs one search against the provider, most recent first.
func (c *Client) FetchEverything(ctx context.Context, query string) ([]Article, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("language", c.Language)
	params.Add("sortBy", c.SortBy)
	if c.PageSize > 0 {
		params.Add("pageSize", strconv.Itoa(c.PageSize))
	}
	params.Add("apiKey", c.APIKey)

	reqURL := fmt.Sprintf("%s?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi error: %s", resp.Status)
	}

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if result.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %q", result.Status)
	}

	return result.Articles, nil
}
