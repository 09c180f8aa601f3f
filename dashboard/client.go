package dashboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/tradedash/pkg/id"
)

// Source produces the dashboard payload for a token.
type Source interface {
	Fetch(ctx context.Context, token string) (*Payload, error)
}

// Client fetches dashboards from the journal bot's web API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a dashboard API client. A nil logger disables logging.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Fetch issues a single GET /api/dashboard/{token}. It never retries.
// Failures are reported as ErrMissingToken, ErrUnauthorized, ErrNoData or
// ErrFetchFailed.
func (c *Client) Fetch(ctx context.Context, token string) (*Payload, error) {
	if token == "" || token == placeholderToken {
		return nil, ErrMissingToken
	}

	reqID := id.New()
	log := c.log.With(zap.String("request_id", reqID))

	apiURL := fmt.Sprintf("%s/api/dashboard/%s", c.baseURL, url.PathEscape(token))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrFetchFailed, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Warn("dashboard request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: execute request: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	log.Debug("dashboard response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode == http.StatusUnauthorized {
		log.Info("dashboard token rejected")
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Warn("dashboard API error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, fmt.Errorf("%w: API error (status %d)", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrFetchFailed, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrNoData
	}

	p, err := DecodePayload(body)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			return nil, err
		}
		log.Warn("dashboard decode failed", zap.Error(err))
		return nil, fmt.Errorf("%w: decode response: %v", ErrFetchFailed, err)
	}

	log.Info("dashboard loaded",
		zap.Int("trades", len(p.Trades)),
		zap.Int("accounts", len(p.Accounts)))
	return p, nil
}
