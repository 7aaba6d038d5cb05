package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"randomdog/types"
)

var (
	// ErrFetchFailed is returned for a non-2xx backend response without an error message
	ErrFetchFailed = errors.New("Failed to fetch dog image")

	// ErrInvalidResponse is returned for a 2xx response that is not a usable success envelope
	ErrInvalidResponse = errors.New("Invalid response from API")
)

// RandomDog asks the backend for a random dog image and returns its URL
func (c *Client) RandomDog(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/api/dogs/random", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var env types.Envelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && env.Error != "" {
			return "", errors.New(env.Error)
		}
		return "", ErrFetchFailed
	}

	if decodeErr != nil || !env.Success || env.Data == nil || env.Data.ImageURL == "" {
		return "", ErrInvalidResponse
	}

	return env.Data.ImageURL, nil
}
