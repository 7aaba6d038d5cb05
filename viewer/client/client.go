package client

import (
	"net/http"

	"randomdog/config"
)

// Client talks to the randomdog backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new backend client.
// No timeout is set; requests rely on the transport defaults.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = config.DefaultBackendURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// BaseURL returns the backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}
