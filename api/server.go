package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures router wiring.
type Options struct {
	// BackendURL is the base URL the browser view calls
	BackendURL string

	// UpstreamURL is reported by the health endpoint
	UpstreamURL string

	// AllowedOrigins limits cross-origin API access; empty allows any origin
	AllowedOrigins []string
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(fetcher ImageFetcher, opts Options) (*gin.Engine, error) {
	corsHandler, err := corsMiddleware(opts.AllowedOrigins)
	if err != nil {
		return nil, fmt.Errorf("invalid CORS configuration: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestIDMiddleware(), corsHandler, metricsMiddleware(), requestLogger())

	// Register resource routers
	RegisterDogRoutes(r, NewDogController(fetcher))
	RegisterHealthRoutes(r, NewHealthController(opts.UpstreamURL))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if err := RegisterWebRoutes(r, opts.BackendURL); err != nil {
		return nil, fmt.Errorf("failed to load web templates: %w", err)
	}
	return r, nil
}

// NewHTTPServer wraps the handler with the server timeouts used in production.
// WriteTimeout is left unset so slow upstream calls rely on transport defaults.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
