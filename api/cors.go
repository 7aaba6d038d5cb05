package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// apiPrefix scopes cross-origin access to the JSON endpoints
const apiPrefix = "/api/"

// corsMiddleware lets browser views on other origins call the API.
// An empty origin list allows any origin. Preflight requests are answered
// here, before routing, since no OPTIONS routes are registered.
func corsMiddleware(allowedOrigins []string) (gin.HandlerFunc, error) {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	handler := cors.New(cfg)
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
			c.Next()
			return
		}
		handler(c)
	}, nil
}
