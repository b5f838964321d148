package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Post is one entry from the third-party posts API.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// PlaceholderClient talks to the JSONPlaceholder-style posts upstream.
// It holds no state besides the HTTP client; failures here never touch the
// record store.
type PlaceholderClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewPlaceholderClient(baseURL string, timeout time.Duration, logger *zap.Logger) *PlaceholderClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json")

	return &PlaceholderClient{
		httpClient: client,
		logger:     logger,
	}
}

// FetchPosts retrieves the full posts list from the upstream.
func (c *PlaceholderClient) FetchPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&posts).
		Get("/posts")

	if err != nil {
		c.logger.Warn("posts upstream call failed", zap.Error(err))
		return nil, fmt.Errorf("fetching posts: %w", err)
	}
	if resp.IsError() {
		c.logger.Warn("posts upstream returned error status",
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, fmt.Errorf("posts upstream returned status %d", resp.StatusCode())
	}

	return posts, nil
}
