// Package webhook delivers completed leads to an outbound webhook endpoint
// (a Make.com scenario in production).
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
	statex "github.com/viliokaized/prime-intake/agent/state"
)

const maxErrorBodyBytes = 2048

type Config struct {
	URL     string        `envconfig:"URL" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// Client posts lead records as JSON. Any 2xx status is success; the caller
// owns retry policy (there is none within a turn).
type Client struct {
	url        string
	httpClient *http.Client
}

var _ contractx.Notifier = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.URL)
	if endpoint == "" {
		return nil, errors.New("webhook url is required")
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("invalid webhook url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		url: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type leadPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Type  string `json:"type"`
}

func (c *Client) Notify(ctx context.Context, lead statex.Lead) error {
	body, err := json.Marshal(leadPayload{
		Name:  lead.Name,
		Email: lead.Email,
		Phone: lead.Phone,
		Type:  lead.InsuranceType,
	})
	if err != nil {
		return fmt.Errorf("marshal lead payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("webhook status=%d body=%s", resp.StatusCode, string(raw))
	}
	return nil
}
