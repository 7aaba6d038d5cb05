package api

import (
	"context"
	"errors"
	"net/http"

	"randomdog/logutil"
	"randomdog/types"

	"github.com/gin-gonic/gin"
)

// unexpectedErrorMessage is reported when a failure carries no usable message
const unexpectedErrorMessage = "An unexpected error occurred"

var errUnexpected = errors.New(unexpectedErrorMessage)

// ImageFetcher fetches one random dog image.
type ImageFetcher interface {
	FetchRandomImage(ctx context.Context) (*types.DogImage, error)
}

// DogController serves dog image requests.
type DogController struct {
	fetcher ImageFetcher
}

// NewDogController creates a controller backed by the given fetcher.
func NewDogController(fetcher ImageFetcher) *DogController {
	return &DogController{fetcher: fetcher}
}

// RegisterDogRoutes registers dog image endpoints.
func RegisterDogRoutes(r *gin.Engine, dc *DogController) {
	g := r.Group("/api/dogs")
	g.GET("/random", dc.GetRandomImage)
}

// GetRandomImage fetches one image and writes it inside the response envelope.
// GET /api/dogs/random
func (dc *DogController) GetRandomImage(c *gin.Context) {
	img, err := dc.fetch(c.Request.Context())
	if err != nil {
		message := err.Error()
		if message == "" {
			message = unexpectedErrorMessage
		}
		logutil.Error("dog image fetch failed", err, logutil.Fields{
			"request_id": c.GetString(requestIDKey),
		})
		c.JSON(http.StatusInternalServerError, types.NewErrorEnvelope(message))
		return
	}

	c.JSON(http.StatusOK, types.NewSuccessEnvelope(img))
}

// fetch calls the fetcher and turns panics and empty results into errors
// so the handler always answers with an envelope.
func (dc *DogController) fetch(ctx context.Context) (img *types.DogImage, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			img = nil
			if recErr, ok := rec.(error); ok {
				err = recErr
				return
			}
			err = errUnexpected
		}
	}()

	img, err = dc.fetcher.FetchRandomImage(ctx)
	if err == nil && img == nil {
		err = errUnexpected
	}
	return img, err
}
