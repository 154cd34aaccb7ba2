package ansiimg

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func servePNG(w http.ResponseWriter, _ *http.Request) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 120, A: 255})
		}
	}
	w.Header().Set("Content-Type", "image/png")
	_ = png.Encode(w, img)
}

func TestRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(servePNG))
	defer srv.Close()

	out, err := NewLoader(nil).Render(context.Background(), srv.URL+"/w342/p.png", 4, 8)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out == "" {
		t.Fatalf("Render returned empty art")
	}
}

func TestRender_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing.png":
			http.NotFound(w, r)
		default:
			_, _ = w.Write([]byte("not an image"))
		}
	}))
	defer srv.Close()

	l := NewLoader(srv.Client())
	tests := []struct {
		name       string
		url        string
		rows, cols int
	}{
		{"empty url", "", 4, 4},
		{"bad size", srv.URL + "/x.png", 0, 4},
		{"not found", srv.URL + "/missing.png", 4, 4},
		{"garbage", srv.URL + "/garbage.png", 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := l.Render(context.Background(), tt.url, tt.rows, tt.cols); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
