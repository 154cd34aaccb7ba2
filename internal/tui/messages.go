package tui

import (
	"github.com/sebastiantruijens/moviefinder/internal/panel"
	"github.com/sebastiantruijens/moviefinder/internal/tmdb"
)

// Custom message types
type trendingMsg struct {
	ticket panel.Ticket
	movies []tmdb.Movie
}

type genresMsg struct {
	ticket panel.Ticket
	genres []tmdb.Genre
}

type genreMoviesMsg struct {
	ticket panel.Ticket
	seq    uint64
	movies []tmdb.Movie
}

type searchMsg struct {
	ticket panel.Ticket
	seq    uint64
	query  string
	movies []tmdb.Movie
}

type detailsMsg struct {
	seq     uint64
	movieID int
	detail  *tmdb.MovieDetail
	credits *tmdb.Credits
}

// detailsImageMsg carries the backdrop (index -1) or a cast portrait.
type detailsImageMsg struct {
	seq   uint64
	index int
	art   string
	err   error
}

type posterMsg struct {
	url string
	art string
	err error
}

type statusMsg struct {
	text string
}

type errorMsg struct {
	err error
}

type clearStatusMsg struct{}
