package card

import (
	"testing"

	"github.com/sebastiantruijens/moviefinder/internal/tmdb"
)

var testImages = tmdb.Images{Base: "https://img.test/t/p"}

func TestRating(t *testing.T) {
	tests := []struct {
		name string
		in   tmdb.Score
		want string
	}{
		{"zero is no rating", tmdb.Score{Value: 0, Valid: true}, NoRating},
		{"rounds up", tmdb.Score{Value: 7.96, Valid: true}, "8.0★"},
		{"one decimal", tmdb.Score{Value: 6.44, Valid: true}, "6.4★"},
		{"absent", tmdb.Score{}, NoRating},
		{"negative", tmdb.Score{Value: -1, Valid: true}, NoRating},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rating(tt.in); got != tt.want {
				t.Fatalf("Rating(%+v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestYear(t *testing.T) {
	tests := map[string]string{
		"2021-05-03": "2021",
		"1999":       "1999",
		"":           "",
		"99":         "",
	}
	for in, want := range tests {
		if got := Year(in); got != want {
			t.Fatalf("Year(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title("Alien", "ignored"); got != "Alien" {
		t.Fatalf("got %q", got)
	}
	if got := Title("", "Severance"); got != "Severance" {
		t.Fatalf("got %q", got)
	}
	if got := Title("", ""); got != Untitled {
		t.Fatalf("got %q", got)
	}
}

func TestMovie(t *testing.T) {
	c := Movie(tmdb.Movie{
		ID:          42,
		Title:       "Dune",
		ReleaseDate: "2021-09-15",
		VoteAverage: tmdb.Score{Value: 7.96, Valid: true},
		PosterPath:  "/dune.jpg",
	}, testImages)

	if c.Title != "Dune" || c.Year != "2021" || c.Rating != "8.0★" {
		t.Fatalf("unexpected card %+v", c)
	}
	if c.Subtitle != "2021 • 8.0★" {
		t.Fatalf("Subtitle = %q", c.Subtitle)
	}
	if c.Poster != "https://img.test/t/p/w342/dune.jpg" || c.PosterHidden() {
		t.Fatalf("Poster = %q", c.Poster)
	}
	if c.Action.MovieID != 42 || c.Action.Label != DetailsLabel {
		t.Fatalf("Action = %+v", c.Action)
	}
}

func TestMovie_Fallbacks(t *testing.T) {
	c := Movie(tmdb.Movie{ID: 1, Name: "Dark", FirstAirDate: "2017-12-01"}, testImages)
	if c.Title != "Dark" || c.Year != "2017" {
		t.Fatalf("unexpected card %+v", c)
	}
	if c.Subtitle != "2017 • —" {
		t.Fatalf("Subtitle = %q", c.Subtitle)
	}
	if !c.PosterHidden() {
		t.Fatalf("poster should be hidden without a path")
	}

	bare := Movie(tmdb.Movie{ID: 2}, testImages)
	if bare.Title != Untitled || bare.Year != "" || bare.Subtitle != NoRating {
		t.Fatalf("unexpected bare card %+v", bare)
	}
}

func TestBuilder(t *testing.T) {
	build := Builder(testImages)
	if c := build(tmdb.Movie{ID: 3, Title: "X"}); c == nil || c.ID != 3 {
		t.Fatalf("Builder produced %+v", c)
	}
}

func TestJoin(t *testing.T) {
	if got := Join(" ● ", "139m", "", "EN"); got != "139m ● EN" {
		t.Fatalf("Join = %q", got)
	}
	if got := Join(", "); got != "" {
		t.Fatalf("Join() = %q", got)
	}
}

func TestGenreChip(t *testing.T) {
	if c := GenreChip(tmdb.Genre{ID: 28, Name: "Action"}); c == nil || c.GenreID != 28 || c.Label != "Action" {
		t.Fatalf("GenreChip = %+v", c)
	}
	if c := GenreChip(tmdb.Genre{ID: 1}); c != nil {
		t.Fatalf("unnamed genre should be skipped, got %+v", c)
	}
}
