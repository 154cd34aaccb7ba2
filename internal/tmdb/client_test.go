package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newTestServer(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key"), srv
}

func TestFetchJSON_BuildsURL(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"ok":true}`)
	})

	var out map[string]any
	if !c.FetchJSON(context.Background(), "search/movie", Params{"query": "alien", "page": "1"}, &out) {
		t.Fatalf("expected success")
	}
	if gotPath != "/search/movie" {
		t.Fatalf("path = %q", gotPath)
	}
	if got := gotQuery["api_key"]; len(got) != 1 || got[0] != "test-key" {
		t.Fatalf("api_key = %v", got)
	}
	if got := gotQuery["query"]; len(got) != 1 || got[0] != "alien" {
		t.Fatalf("query = %v", got)
	}
	if out["ok"] != true {
		t.Fatalf("decoded body = %v", out)
	}
}

func TestFetchJSON_FailuresAreAbsence(t *testing.T) {
	tests := []struct {
		name string
		h    http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"status_message":"nope"}`, http.StatusNotFound)
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"results": [`)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestServer(t, tt.h)
			if got := c.Trending(context.Background()); got != nil {
				t.Fatalf("Trending = %v, want nil", got)
			}
			if got := c.MovieDetail(context.Background(), 1); got != nil {
				t.Fatalf("MovieDetail = %v, want nil", got)
			}
		})
	}
}

func TestFetchJSON_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, "k")
	if got := c.Genres(context.Background()); got != nil {
		t.Fatalf("Genres = %v, want nil", got)
	}
}

func TestTrending_MissingResultsKeyIsEmpty(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"page":1}`)
	})
	if got := c.Trending(context.Background()); len(got) != 0 {
		t.Fatalf("Trending = %v, want empty", got)
	}
}

func TestDiscoverByGenre_Params(t *testing.T) {
	var q map[string][]string
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/discover/movie" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q = r.URL.Query()
		fmt.Fprint(w, `{"results":[{"id":7,"title":"Heat"}]}`)
	})

	got := c.DiscoverByGenre(context.Background(), 28)
	if len(got) != 1 || got[0].ID != 7 || got[0].Title != "Heat" {
		t.Fatalf("DiscoverByGenre = %+v", got)
	}
	want := map[string]string{
		"with_genres":   "28",
		"include_adult": "false",
		"language":      "en-US",
		"sort_by":       "popularity.desc",
		"page":          "1",
	}
	for k, v := range want {
		if got := q[k]; len(got) != 1 || got[0] != v {
			t.Fatalf("%s = %v, want %q", k, got, v)
		}
	}
}

func TestSearch_Params(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		q := r.URL.Query()
		if q.Get("query") != "blade runner" || q.Get("include_adult") != "false" || q.Get("page") != "1" {
			t.Errorf("unexpected query %v", q)
		}
		fmt.Fprint(w, `{"results":[]}`)
	})
	if got := c.Search(context.Background(), "blade runner"); len(got) != 0 {
		t.Fatalf("Search = %v", got)
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want a single attempt", calls.Load())
	}
}

func TestMovieDetailAndCredits(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movie/550":
			fmt.Fprint(w, `{"id":550,"title":"Fight Club","release_date":"1999-10-15","runtime":139,
				"vote_average":8.4,"original_language":"en","overview":"x",
				"backdrop_path":"/b.jpg","genres":[{"id":18,"name":"Drama"}]}`)
		case "/movie/550/credits":
			cast := make([]CastMember, 14)
			for i := range cast {
				cast[i] = CastMember{Name: fmt.Sprintf("Actor %d", i)}
			}
			_ = json.NewEncoder(w).Encode(Credits{Cast: cast})
		default:
			http.NotFound(w, r)
		}
	})

	d := c.MovieDetail(context.Background(), 550)
	if d == nil {
		t.Fatalf("MovieDetail returned nil")
	}
	if d.Title != "Fight Club" || d.Runtime != 139 || len(d.Genres) != 1 || d.Genres[0].Name != "Drama" {
		t.Fatalf("unexpected detail %+v", d)
	}
	if !d.VoteAverage.Valid || d.VoteAverage.Value != 8.4 {
		t.Fatalf("vote average = %+v", d.VoteAverage)
	}

	cr := c.Credits(context.Background(), 550)
	top := cr.TopCast()
	if len(top) != MaxCast {
		t.Fatalf("TopCast len = %d, want %d", len(top), MaxCast)
	}
	if top[0].Name != "Actor 0" || top[9].Name != "Actor 9" {
		t.Fatalf("TopCast order wrong: %v", top)
	}
}

func TestScoreUnmarshal(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
		value float64
	}{
		{`{"vote_average":7.96}`, true, 7.96},
		{`{"vote_average":0}`, true, 0},
		{`{"vote_average":null}`, false, 0},
		{`{"vote_average":"n/a"}`, false, 0},
		{`{}`, false, 0},
	}
	for _, tt := range tests {
		var m Movie
		if err := json.Unmarshal([]byte(tt.in), &m); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if m.VoteAverage.Valid != tt.valid || m.VoteAverage.Value != tt.value {
			t.Fatalf("%s -> %+v", tt.in, m.VoteAverage)
		}
	}
}

func TestTopCast_Nil(t *testing.T) {
	var c *Credits
	if got := c.TopCast(); got != nil {
		t.Fatalf("TopCast on nil = %v", got)
	}
}

func TestImages(t *testing.T) {
	img := Images{Base: "https://cdn.example/t/p/"}
	if got := img.Poster("/p.jpg"); got != "https://cdn.example/t/p/w342/p.jpg" {
		t.Fatalf("Poster = %q", got)
	}
	if got := img.Backdrop("/b.jpg"); got != "https://cdn.example/t/p/w780/b.jpg" {
		t.Fatalf("Backdrop = %q", got)
	}
	if got := img.Profile("/c.jpg"); got != "https://cdn.example/t/p/w185/c.jpg" {
		t.Fatalf("Profile = %q", got)
	}
	if got := img.Poster(""); got != "" {
		t.Fatalf("empty path should produce no URL, got %q", got)
	}
	if got := (Images{}).Poster("/p.jpg"); got != DefaultImageBaseURL+"/w342/p.jpg" {
		t.Fatalf("default base Poster = %q", got)
	}
}
