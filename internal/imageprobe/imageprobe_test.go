package imageprobe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIsImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD request, got %s", r.Method)
		}
		switch r.URL.Path {
		case "/photo.png":
			w.Header().Set("Content-Type", "image/png")
		case "/page.html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
		case "/empty":
			// no content type at all
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := New(2 * time.Second)
	ctx := context.Background()

	if !p.IsImage(ctx, srv.URL+"/photo.png") {
		t.Error("expected image/png response to be recognized as image")
	}
	if p.IsImage(ctx, srv.URL+"/page.html") {
		t.Error("expected text/html response to be rejected")
	}
	if p.IsImage(ctx, srv.URL+"/empty") {
		t.Error("expected missing content type to be rejected")
	}
}

func TestIsImage_FailsClosed(t *testing.T) {
	p := New(100 * time.Millisecond)
	ctx := context.Background()

	// unreachable host
	if p.IsImage(ctx, "http://127.0.0.1:1/photo.png") {
		t.Error("expected unreachable host to be reported as not an image")
	}
	// malformed URL
	if p.IsImage(ctx, "http://exa mple.com/photo.png") {
		t.Error("expected malformed URL to be reported as not an image")
	}
}
