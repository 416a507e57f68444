package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DoyleJ11/color-grid-backend/internal/canvas"
	"go.uber.org/zap"
)

// Client performs single-cell color lookups against an upstream base
// address. One outbound call per Lookup, no retry: a failure is
// reported upward and the caller decides what to drop.
type Client struct {
	http *http.Client
	log  *zap.Logger
}

// NewClient builds a client with an optional per-request timeout.
// timeout == 0 keeps the reference behavior: a hung upstream hangs the
// whole grid fetch.
func NewClient(timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// Lookup fetches the color at (x, y) from the given base address. The
// caller guarantees the coordinate is in bounds. Channel values are
// passed through as received, no clamping.
func (c *Client) Lookup(ctx context.Context, base string, x, y int) (canvas.Color, error) {
	url := fmt.Sprintf("%s/%d/%d", base, y, x)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return canvas.Color{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("upstream lookup failed", zap.Int("x", x), zap.Int("y", y), zap.Error(err))
		return canvas.Color{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("upstream returned non-200", zap.Int("x", x), zap.Int("y", y), zap.Int("status", resp.StatusCode))
		return canvas.Color{}, fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	var color canvas.Color
	if err := json.NewDecoder(resp.Body).Decode(&color); err != nil {
		c.log.Debug("upstream payload malformed", zap.Int("x", x), zap.Int("y", y), zap.Error(err))
		return canvas.Color{}, fmt.Errorf("decode payload: %w", err)
	}
	return color, nil
}
