package dogapi

import "errors"

// ErrorPrefix starts the message of every UpstreamError
const ErrorPrefix = "Failed to fetch dog image: "

// errUnsuccessfulPayload is the cause used when the upstream answers 2xx
// with a status other than "success".
var errUnsuccessfulPayload = errors.New("Failed to fetch dog image from API")

// UpstreamError reports any failed fetch from the dog image API.
// Callers can match the fixed prefix and read the cause for diagnostics.
type UpstreamError struct {
	// StatusCode is the upstream HTTP status, zero when no response was received
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return ErrorPrefix + "Unknown error occurred"
	}
	return ErrorPrefix + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
