package dogapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.Method != http.MethodGet {
			t.Errorf("expected GET got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestFetchRandomImageSuccess(t *testing.T) {
	t.Parallel()

	srv, calls := newUpstream(t, http.StatusOK,
		`{"message":"https://images.dog.ceo/breeds/terrier-welsh/lucy.jpg","status":"success"}`)

	img, err := NewClient(srv.URL, 0).FetchRandomImage(context.Background())
	if err != nil {
		t.Fatalf("FetchRandomImage error: %v", err)
	}
	if img.ImageURL != "https://images.dog.ceo/breeds/terrier-welsh/lucy.jpg" {
		t.Fatalf("unexpected image url %q", img.ImageURL)
	}
	if img.Status != "success" {
		t.Fatalf("expected status success got %q", img.Status)
	}
	if got := atomic.LoadInt32(calls); got != 1 {
		t.Fatalf("expected exactly one upstream call got %d", got)
	}
}

func TestFetchRandomImageNon2xx(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusMovedPermanently, http.StatusNotFound, http.StatusInternalServerError, http.StatusBadGateway} {
		status := status
		t.Run(fmt.Sprintf("status_%d", status), func(t *testing.T) {
			t.Parallel()

			srv, calls := newUpstream(t, status, `{"message":"x","status":"success"}`)

			img, err := NewClient(srv.URL, 0).FetchRandomImage(context.Background())
			if err == nil {
				t.Fatalf("expected error got image %+v", img)
			}
			want := fmt.Sprintf("Failed to fetch dog image: Dog API returned status %d", status)
			if err.Error() != want {
				t.Fatalf("error = %q; want %q", err.Error(), want)
			}

			var upErr *UpstreamError
			if !errors.As(err, &upErr) {
				t.Fatalf("expected *UpstreamError got %T", err)
			}
			if upErr.StatusCode != status {
				t.Fatalf("StatusCode = %d; want %d", upErr.StatusCode, status)
			}
			if got := atomic.LoadInt32(calls); got != 1 {
				t.Fatalf("expected no retry, got %d calls", got)
			}
		})
	}
}

func TestFetchRandomImageRejectsUnsuccessfulStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"error literal", `{"message":"Breed not found","status":"error"}`},
		{"uppercase success", `{"message":"https://images.dog.ceo/x.jpg","status":"SUCCESS"}`},
		{"padded success", `{"message":"https://images.dog.ceo/x.jpg","status":" success"}`},
		{"missing status", `{"message":"https://images.dog.ceo/x.jpg"}`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			srv, _ := newUpstream(t, http.StatusOK, c.body)

			img, err := NewClient(srv.URL, 0).FetchRandomImage(context.Background())
			if err == nil {
				t.Fatalf("expected error got image %+v", img)
			}
			if img != nil {
				t.Fatalf("expected nil image on failure")
			}
			if err.Error() != "Failed to fetch dog image: Failed to fetch dog image from API" {
				t.Fatalf("unexpected error %q", err.Error())
			}
		})
	}
}

func TestFetchRandomImageMalformedBody(t *testing.T) {
	t.Parallel()

	srv, _ := newUpstream(t, http.StatusOK, `<html>not json</html>`)

	_, err := NewClient(srv.URL, 0).FetchRandomImage(context.Background())
	if err == nil {
		t.Fatalf("expected error for malformed body")
	}
	if !strings.HasPrefix(err.Error(), ErrorPrefix) {
		t.Fatalf("expected prefix %q in %q", ErrorPrefix, err.Error())
	}
}

func TestFetchRandomImageTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 0).FetchRandomImage(context.Background())
	if err == nil {
		t.Fatalf("expected error when upstream is unreachable")
	}
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UpstreamError got %T", err)
	}
	if upErr.StatusCode != 0 {
		t.Fatalf("expected no status code got %d", upErr.StatusCode)
	}
	if !strings.HasPrefix(err.Error(), ErrorPrefix) {
		t.Fatalf("expected prefix %q in %q", ErrorPrefix, err.Error())
	}
}

func TestFetchRandomImageCanceledContext(t *testing.T) {
	t.Parallel()

	srv, _ := newUpstream(t, http.StatusOK, `{"message":"x","status":"success"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, 0).FetchRandomImage(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain got %v", err)
	}
}

func TestNewClientDefaultURL(t *testing.T) {
	t.Parallel()

	if got := NewClient("", 0).URL(); got != "https://dog.ceo/api/breeds/image/random" {
		t.Fatalf("URL() = %q", got)
	}
}

func TestUpstreamErrorWithoutCause(t *testing.T) {
	t.Parallel()

	err := &UpstreamError{}
	if err.Error() != "Failed to fetch dog image: Unknown error occurred" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
