package htmlview

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sebastiantruijens/moviefinder/internal/card"
	"github.com/sebastiantruijens/moviefinder/internal/panel"
	"github.com/sebastiantruijens/moviefinder/internal/render"
	"github.com/sebastiantruijens/moviefinder/internal/tmdb"
)

// Source is the subset of the TMDB client a snapshot needs.
type Source interface {
	Trending(ctx context.Context) []tmdb.Movie
	Search(ctx context.Context, query string) []tmdb.Movie
}

// Snapshot builds a page showing Trending, or the results for query when it
// is not blank, and writes it to w.
func Snapshot(ctx context.Context, src Source, img tmdb.Images, query string, w io.Writer) error {
	page, err := NewPage()
	if err != nil {
		return err
	}
	coord := panel.New(page)
	build := card.Builder(img)

	var cards render.Container[card.Card]
	query = strings.TrimSpace(query)
	if query == "" {
		coord.Enter(panel.Trending)
		render.List(&cards, src.Trending(ctx), build,
			render.WithEmptyMessage("Failed to load trending movies."))
		err = page.PaintCards(ListTrending, &cards)
	} else {
		coord.Enter(panel.Search)
		render.List(&cards, src.Search(ctx, query), build,
			render.WithEmptyMessage(fmt.Sprintf("No results for “%s”.", query)))
		page.SetText(QueryLabel, query)
		err = page.PaintCards(ListSearch, &cards)
	}
	if err != nil {
		return err
	}

	if _, err := page.WriteTo(w); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
