// Package ansiimg downloads remote images and renders them as ANSI block art.
package ansiimg

import (
	"context"
	"fmt"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	"github.com/eliukblau/pixterm/pkg/ansimage"
)

// Loader fetches and renders images.
type Loader struct {
	client *http.Client
}

// NewLoader returns a Loader using hc, or a client with a 10s timeout.
func NewLoader(hc *http.Client) *Loader {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Loader{client: hc}
}

// Render fetches url and scales it to fit rows x cols terminal cells.
func (l *Loader) Render(ctx context.Context, url string, rows, cols int) (string, error) {
	if url == "" {
		return "", fmt.Errorf("empty image url")
	}
	if rows <= 0 || cols <= 0 {
		return "", fmt.Errorf("invalid size %dx%d", cols, rows)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image %s: failed with status code: %d", url, resp.StatusCode)
	}

	// Each cell holds two vertical pixels with half-block rendering.
	img, err := ansimage.NewScaledFromReader(resp.Body, rows*2, cols, color.Black, ansimage.ScaleModeFit, ansimage.NoDithering)
	if err != nil {
		return "", fmt.Errorf("decode image %s: %w", url, err)
	}
	return img.Render(), nil
}
