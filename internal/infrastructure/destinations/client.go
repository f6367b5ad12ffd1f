// Package destinations talks to the external paginated products API the
// catalog importer feeds from.
package destinations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"simvia/internal/shared/config"
	"simvia/internal/shared/logger"
)

const (
	defaultTimeout = 30 * time.Second

	retryBaseDelay = 500 * time.Millisecond
	retryMaxDelay  = 10 * time.Second
)

type Client struct {
	baseURL    string
	token      string
	maxRetries int
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg config.CatalogAPIConfig, log logger.Interface) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// FetchAll pages through the destinations API and accumulates every record.
// This is a best-effort batch fetch: any terminal page error ends pagination
// and whatever has been accumulated so far is returned. Missing connection
// parameters short-circuit to an empty result before any network call.
func (c *Client) FetchAll(ctx context.Context) []Destination {
	if c.baseURL == "" || c.token == "" {
		c.logger.Errorw("missing catalog API configuration", "base_url_set", c.baseURL != "", "token_set", c.token != "")
		return nil
	}

	c.logger.Infow("fetching destinations from catalog API")

	var all []Destination
	page := 1
	for {
		resp, err := c.fetchPageWithRetry(ctx, page)
		if err != nil {
			c.logger.Errorw("stopping pagination", "page", page, "error", err)
			break
		}
		if !resp.Success || resp.Data == nil {
			c.logger.Errorw("API response unsuccessful or missing data, stopping pagination", "page", page)
			break
		}

		all = append(all, resp.Data...)
		c.logger.Infow("fetched destinations page", "page", page, "count", len(resp.Data))

		if resp.Meta.CurrentPage >= resp.Meta.LastPage {
			break
		}
		page++
	}

	c.logger.Infow("destination fetch complete", "total", len(all))
	return all
}

func (c *Client) fetchPageWithRetry(ctx context.Context, page int) (*apiResponse, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		resp, err := c.fetchPage(ctx, page)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt >= c.maxRetries || !isRetryable(err) {
			return nil, lastErr
		}

		delay := retryDelay(attempt)
		c.logger.Warnw("retrying page fetch", "page", page, "attempt", attempt+1, "delay", delay, "error", err)
		if err := sleepWithContext(ctx, delay); err != nil {
			return nil, err
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, page int) (*apiResponse, error) {
	url := fmt.Sprintf("%s?page=%d", c.baseURL, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Errorw("page fetch returned non-success status",
			"page", page, "status", resp.StatusCode, "body", string(body))
		return nil, newHTTPStatusError(resp.StatusCode, resp.Status, body)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &apiResp, nil
}

func retryDelay(attempt int) time.Duration {
	if attempt < 0 {
		return 0
	}
	delay := retryBaseDelay << attempt
	if delay > retryMaxDelay {
		delay = retryMaxDelay
	}
	return delay
}

func sleepWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
