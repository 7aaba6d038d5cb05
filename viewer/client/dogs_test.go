package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newBackend(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/dogs/random" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRandomDogSuccess(t *testing.T) {
	t.Parallel()

	srv := newBackend(t, http.StatusOK,
		`{"success":true,"data":{"imageUrl":"https://images.dog.ceo/x.jpg","status":"success"}}`)

	url, err := NewClient(srv.URL).RandomDog(context.Background())
	if err != nil {
		t.Fatalf("RandomDog error: %v", err)
	}
	if url != "https://images.dog.ceo/x.jpg" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestRandomDogFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"backend error envelope", http.StatusInternalServerError,
			`{"success":false,"error":"Failed to fetch dog image: Dog API returned status 500"}`,
			"Failed to fetch dog image: Dog API returned status 500"},
		{"non-2xx without envelope", http.StatusBadGateway, `<html>bad gateway</html>`, "Failed to fetch dog image"},
		{"non-2xx empty error", http.StatusInternalServerError, `{"success":false}`, "Failed to fetch dog image"},
		{"success false", http.StatusOK, `{"success":false,"error":"nope"}`, "Invalid response from API"},
		{"missing data", http.StatusOK, `{"success":true}`, "Invalid response from API"},
		{"empty image url", http.StatusOK, `{"success":true,"data":{"imageUrl":"","status":"success"}}`, "Invalid response from API"},
		{"malformed json", http.StatusOK, `{"success":tru`, "Invalid response from API"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			srv := newBackend(t, c.status, c.body)

			url, err := NewClient(srv.URL).RandomDog(context.Background())
			if err == nil {
				t.Fatalf("expected error got url %q", url)
			}
			if err.Error() != c.wantMsg {
				t.Fatalf("error = %q; want %q", err.Error(), c.wantMsg)
			}
		})
	}
}

func TestRandomDogInvalidResponseSentinel(t *testing.T) {
	t.Parallel()

	srv := newBackend(t, http.StatusOK, `{}`)

	_, err := NewClient(srv.URL).RandomDog(context.Background())
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse got %v", err)
	}
}

func TestRandomDogBackendDown(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := NewClient(base).RandomDog(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to reach backend") {
		t.Fatalf("expected transport error got %v", err)
	}
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	t.Parallel()

	if got := NewClient("").BaseURL(); got != "http://localhost:5000" {
		t.Fatalf("BaseURL() = %q", got)
	}
}
