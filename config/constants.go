package config

import "randomdog/dogapi"

// Server defaults
const (
	// DefaultPort is the port the API server listens on when PORT is unset
	DefaultPort = "5000"

	// DefaultGinMode keeps gin quiet unless GIN_MODE says otherwise
	DefaultGinMode = "release"
)

// Upstream defaults
const (
	// DefaultDogAPIURL is the random dog image endpoint proxied by the backend
	DefaultDogAPIURL = dogapi.DefaultURL
)

// Client defaults
const (
	// DefaultBackendURL is where client views look for the backend
	DefaultBackendURL = "http://localhost:5000"
)
