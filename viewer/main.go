package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"randomdog/config"
	"randomdog/viewer/client"
	"randomdog/viewer/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	backendURL, err := parseBackendURL(os.Args[1:], config.Load().BackendURL, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "viewer: %v\n", err)
		os.Exit(2)
	}

	if err := run(backendURL); err != nil {
		fmt.Fprintf(os.Stderr, "viewer: %v\n", err)
		os.Exit(1)
	}
}

// parseBackendURL reads -url and checks it is an absolute http(s) base URL
func parseBackendURL(args []string, fallback string, usage io.Writer) (string, error) {
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	fs.SetOutput(usage)
	raw := fs.String("url", fallback, "Backend base URL (defaults to VITE_BACKEND_URL)")
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	base := strings.TrimRight(strings.TrimSpace(*raw), "/")
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid backend url %q: %w", base, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid backend url %q: want http(s)://host[:port]", base)
	}
	return base, nil
}

// run drives the terminal view until the user quits or a signal arrives
func run(backendURL string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	program := tea.NewProgram(tui.NewModel(client.NewClient(backendURL), backendURL))
	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
