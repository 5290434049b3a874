// Package eventsapi is the HTTP client for the external events collaborator,
// which owns the billable line items of confirmed packages.
package eventsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/holidaydesk/backoffice/internal/domain"
	"github.com/holidaydesk/backoffice/internal/repository/ports"
)

const defaultTimeout = 5 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// EventsForPackage fetches the events of one package. Any transport or
// status failure is returned as-is; the caller decides how to degrade.
func (c *Client) EventsForPackage(ctx context.Context, packageID int64) ([]domain.PackageEvent, error) {
	url := fmt.Sprintf("%s/api/v1/packages/%d/events", c.baseURL, packageID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("events request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("events fetch: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("events fetch: unexpected status %d", res.StatusCode)
	}

	var body struct {
		Events []domain.PackageEvent `json:"events"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("events decode: %w", err)
	}
	return body.Events, nil
}

var _ ports.EventSource = (*Client)(nil)
