package types

// StatusSuccess is the only upstream status accepted as a successful fetch
const StatusSuccess = "success"

// DogImage is the normalized result of one upstream fetch
type DogImage struct {
	ImageURL string `json:"imageUrl"`
	Status   string `json:"status"`
}

// Envelope is the uniform JSON wrapper returned by the backend.
// Exactly one of Data and Error is set, selected by Success.
type Envelope struct {
	Success bool      `json:"success"`
	Data    *DogImage `json:"data,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// NewSuccessEnvelope wraps a fetched image
func NewSuccessEnvelope(img *DogImage) Envelope {
	return Envelope{Success: true, Data: img}
}

// NewErrorEnvelope wraps a failure message
func NewErrorEnvelope(message string) Envelope {
	return Envelope{Success: false, Error: message}
}
