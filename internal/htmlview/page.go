// Package htmlview renders panels and cards into a static HTML page.
//
// Page is a panel.Surface backed by a goquery document, so the same
// coordinator that drives the terminal UI toggles the hidden attribute of
// each tabpanel and the aria-selected state of each tab.
package htmlview

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sebastiantruijens/moviefinder/internal/card"
	"github.com/sebastiantruijens/moviefinder/internal/panel"
	"github.com/sebastiantruijens/moviefinder/internal/render"
	"github.com/sebastiantruijens/moviefinder/internal/theme"
)

//go:embed page.html
var skeleton string

// Container ids used by the page skeleton.
const (
	ListTrending = "list-trending"
	ListSearch   = "list-search"
	QueryLabel   = "q-label"
)

// MovieURL is where a card's details action points in a static page.
const MovieURL = "https://www.themoviedb.org/movie/%d"

var cardTmpl = template.Must(template.New("card").Parse(
	`<article class="trend-card" data-movie-id="{{.ID}}">` +
		`{{if .Poster}}<img class="poster" alt="Poster for {{.Title}}" src="{{.Poster}}">` +
		`{{else}}<img class="poster" alt="Poster for {{.Title}}" style="display:none">{{end}}` +
		`<div class="meta"><div class="title">{{.Title}}</div><div class="subtext">{{.Subtitle}}</div>` +
		`<a class="cardDetails" href="{{.Href}}">{{.Label}}</a></div></article>`))

// Page is an HTML document with the movie finder layout.
type Page struct {
	doc *goquery.Document
}

// NewPage parses the embedded skeleton and applies the shared palette.
func NewPage() (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(skeleton))
	if err != nil {
		return nil, fmt.Errorf("parse page skeleton: %w", err)
	}
	doc.Find("style#theme").SetText(theme.CSS())
	return &Page{doc: doc}, nil
}

// Document exposes the underlying goquery document.
func (p *Page) Document() *goquery.Document { return p.doc }

func (p *Page) panel(id panel.ID) *goquery.Selection {
	return p.doc.Find(`[role="tabpanel"]`).FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == string(id)
	})
}

// SetPanelHidden toggles the hidden attribute of a tabpanel.
func (p *Page) SetPanelHidden(id panel.ID, hidden bool) {
	sel := p.panel(id)
	if hidden {
		sel.SetAttr("hidden", "")
	} else {
		sel.RemoveAttr("hidden")
	}
}

// SetTabSelected sets aria-selected on the tab controlling id.
func (p *Page) SetTabSelected(id panel.ID, selected bool) {
	p.doc.Find(`.tabs [role="tab"]`).FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("aria-controls")
		return v == string(id)
	}).SetAttr("aria-selected", strconv.FormatBool(selected))
}

// ClearSlot empties a content container.
func (p *Page) ClearSlot(slot panel.Slot) {
	p.doc.Find("#" + string(slot)).Empty()
}

// SetText replaces the text of the element with the given id.
func (p *Page) SetText(id, text string) {
	p.doc.Find("#" + id).SetText(text)
}

// PaintCards writes the content of c into the container with the given id.
// All cards are appended in a single fragment.
func (p *Page) PaintCards(id string, c *render.Container[card.Card]) error {
	sel := p.doc.Find("#" + id)
	sel.Empty()
	if msg, ok := c.EmptyMessage(); ok {
		sel.SetHtml(`<p class="empty">` + template.HTMLEscapeString(msg) + `</p>`)
		return nil
	}

	var frag strings.Builder
	for _, n := range c.Nodes() {
		err := cardTmpl.Execute(&frag, struct {
			*card.Card
			Href  string
			Label string
		}{n, fmt.Sprintf(MovieURL, n.Action.MovieID), n.Action.Label})
		if err != nil {
			return fmt.Errorf("render card %d: %w", n.ID, err)
		}
	}
	sel.AppendHtml(frag.String())
	return nil
}

// WriteTo serialises the page.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	out, err := p.doc.Html()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, out)
	return int64(n), err
}
