// Package imageprobe checks whether a URL points at image content by
// issuing a HEAD request and inspecting the Content-Type header.
package imageprobe

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Prober performs best-effort content-type probes. The probe fails
// closed: any network or request error is reported as "not an image".
type Prober struct {
	client *http.Client
}

// New returns a Prober whose requests time out after the given duration.
func New(timeout time.Duration) *Prober {
	return &Prober{client: &http.Client{Timeout: timeout}}
}

// IsImage reports whether a HEAD request to url returns an image/*
// content type.
func (p *Prober) IsImage(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return strings.HasPrefix(resp.Header.Get("Content-Type"), "image/")
}
