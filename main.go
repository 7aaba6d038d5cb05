package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"randomdog/api"
	"randomdog/config"
	"randomdog/dogapi"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	fetcher := dogapi.NewClient(cfg.DogAPIURL, cfg.DogAPITimeout)
	r, err := api.NewRouter(fetcher, api.Options{
		BackendURL:     cfg.BackendURL,
		UpstreamURL:    fetcher.URL(),
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	srv := api.NewHTTPServer(cfg.Addr(), r)

	log.Printf("Starting API server on %s (upstream %s)", srv.Addr, fetcher.URL())
	log.Println("API endpoints available:")
	log.Println("  GET  /")
	log.Println("  GET  /api/dogs/random")
	log.Println("  GET  /api/health")
	log.Println("  GET  /metrics")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
