package ratefeed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Dan9191/gig-score/internal/config"
	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

// ErrNotConfigured is returned when no feed URL is set
var ErrNotConfigured = errors.New("rate feed URL is not configured")

// Client reads the policy rate from an XML feed
type Client struct {
	url    string
	path   string
	margin float64
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new rate feed client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url:    cfg.RateFeedURL,
		path:   cfg.RateFeedPath,
		margin: cfg.LendingMargin,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// fetch downloads the raw XML feed
func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml, text/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("Rate feed XML response: %s", string(body))
	return body, nil
}

// parse extracts the latest (first) rate found at the configured path
func (c *Client) parse(rawBody []byte) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, fmt.Errorf("failed to parse XML: %w", err)
	}

	el := doc.FindElement(c.path)
	if el == nil {
		return 0, fmt.Errorf("no rate found at %s", c.path)
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(el.Text()), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse rate: %w", err)
	}
	return rate, nil
}

// ReferenceRate returns the policy rate plus the lending margin, in percent
func (c *Client) ReferenceRate(ctx context.Context) (float64, error) {
	if c.url == "" {
		return 0, ErrNotConfigured
	}

	body, err := c.fetch(ctx)
	if err != nil {
		return 0, err
	}

	rate, err := c.parse(body)
	if err != nil {
		return 0, err
	}

	rate += c.margin
	c.log.Infof("Retrieved reference rate: %.2f%% (including %.2f%% lending margin)", rate, c.margin)
	return rate, nil
}
