// Package card maps raw TMDB records to display descriptors.
package card

import (
	"fmt"
	"math"
	"strings"

	"github.com/sebastiantruijens/moviefinder/internal/tmdb"
)

const (
	// Untitled replaces a record with neither title nor name.
	Untitled = "Untitled"
	// NoRating is shown when a movie has no usable vote average.
	NoRating = "—"
	// DetailsLabel is the label of the card action.
	DetailsLabel = "See Details"

	sep = " • "
)

// Action opens the details view for MovieID.
type Action struct {
	Label   string
	MovieID int
}

// Card is the compact summary of one movie.
type Card struct {
	ID       int
	Title    string
	Year     string
	Rating   string
	Subtitle string
	// Poster is the full poster URL; empty means the image is hidden.
	Poster string
	Action Action
}

// PosterHidden reports whether the card shows no poster image.
func (c *Card) PosterHidden() bool { return c.Poster == "" }

// Builder returns a card builder templating posters with img.
func Builder(img tmdb.Images) func(tmdb.Movie) *Card {
	return func(m tmdb.Movie) *Card { return Movie(m, img) }
}

// Movie builds the card of a single record.
func Movie(m tmdb.Movie, img tmdb.Images) *Card {
	title := Title(m.Title, m.Name)
	date := m.ReleaseDate
	if date == "" {
		date = m.FirstAirDate
	}
	year := Year(date)
	rating := Rating(m.VoteAverage)

	return &Card{
		ID:       m.ID,
		Title:    title,
		Year:     year,
		Rating:   rating,
		Subtitle: Join(sep, year, rating),
		Poster:   img.Poster(m.PosterPath),
		Action:   Action{Label: DetailsLabel, MovieID: m.ID},
	}
}

// Title resolves the display title: title, then name, then Untitled.
func Title(title, name string) string {
	switch {
	case title != "":
		return title
	case name != "":
		return name
	default:
		return Untitled
	}
}

// Year returns the first four characters of date, or "" when it is shorter.
func Year(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// Rating formats a vote average as "8.0★". Absent and zero scores both
// render as NoRating.
func Rating(s tmdb.Score) string {
	if !s.Valid || s.Value <= 0 {
		return NoRating
	}
	return Stars(s.Value)
}

// Stars rounds v to one decimal and appends the star glyph.
func Stars(v float64) string {
	return fmt.Sprintf("%.1f★", math.Round(v*10)/10)
}

// Join joins the non-empty parts with sep.
func Join(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// Chip is a selectable genre label.
type Chip struct {
	GenreID int
	Label   string
}

// GenreChip builds the chip of a genre; unnamed genres are skipped.
func GenreChip(g tmdb.Genre) *Chip {
	if g.Name == "" {
		return nil
	}
	return &Chip{GenreID: g.ID, Label: g.Name}
}
