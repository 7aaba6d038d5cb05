package tui

import "context"

// DogSource returns the URL of a random dog image
type DogSource interface {
	RandomDog(ctx context.Context) (string, error)
}
