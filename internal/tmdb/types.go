package tmdb

import (
	"bytes"
	"encoding/json"
)

// MaxCast is how many cast members are kept from a credits list
const MaxCast = 10

// Score is a vote average that may be absent or non-numeric in the payload
type Score struct {
	Value float64
	Valid bool
}

// UnmarshalJSON accepts any JSON value; only numbers produce a valid score
func (s *Score) UnmarshalJSON(b []byte) error {
	*s = Score{}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	*s = Score{Value: f, Valid: true}
	return nil
}

// Movie is a raw list record as returned by trending, discover and search
type Movie struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	ReleaseDate  string `json:"release_date"`
	FirstAirDate string `json:"first_air_date"`
	VoteAverage  Score  `json:"vote_average"`
	PosterPath   string `json:"poster_path"`
}

// Genre is an entry of the genre catalog
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetail is the full record of a single movie
type MovieDetail struct {
	Movie
	BackdropPath     string  `json:"backdrop_path"`
	Runtime          int     `json:"runtime"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	Genres           []Genre `json:"genres"`
}

// CastMember is one billed actor of a movie
type CastMember struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// Credits holds the cast list of a movie
type Credits struct {
	Cast []CastMember `json:"cast"`
}

// TopCast returns at most MaxCast members, in billing order
func (c *Credits) TopCast() []CastMember {
	if c == nil {
		return nil
	}
	if len(c.Cast) > MaxCast {
		return c.Cast[:MaxCast]
	}
	return c.Cast
}

type movieList struct {
	Results []Movie `json:"results"`
}

type genreList struct {
	Genres []Genre `json:"genres"`
}
