// Package dogapi fetches random dog images from the upstream API.
package dogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"randomdog/metrics"
	"randomdog/types"
)

// DefaultURL is the upstream endpoint used when none is configured
const DefaultURL = "https://dog.ceo/api/breeds/image/random"

// randomImageResponse is the upstream payload
type randomImageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Client calls the upstream dog image API
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the given upstream URL.
// A zero timeout leaves the transport defaults in charge.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// URL returns the upstream endpoint this client calls
func (c *Client) URL() string {
	return c.url
}

// FetchRandomImage performs a single GET against the upstream API.
// Every failure is returned as *UpstreamError; there is no retry.
func (c *Client) FetchRandomImage(ctx context.Context) (*types.DogImage, error) {
	start := time.Now()
	img, outcome, err := c.fetch(ctx)
	metrics.ObserveUpstreamFetch(outcome, time.Since(start))
	return img, err
}

func (c *Client) fetch(ctx context.Context) (*types.DogImage, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, metrics.OutcomeTransportError, &UpstreamError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, metrics.OutcomeTransportError, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, metrics.OutcomeBadStatus, &UpstreamError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("Dog API returned status %d", resp.StatusCode),
		}
	}

	var payload randomImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, metrics.OutcomeBadPayload, &UpstreamError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to decode response: %w", err),
		}
	}

	if payload.Status != types.StatusSuccess {
		return nil, metrics.OutcomeBadPayload, &UpstreamError{
			StatusCode: resp.StatusCode,
			Err:        errUnsuccessfulPayload,
		}
	}

	return &types.DogImage{
		ImageURL: payload.Message,
		Status:   types.StatusSuccess,
	}, metrics.OutcomeSuccess, nil
}
