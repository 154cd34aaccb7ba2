package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sebastiantruijens/moviefinder/internal/ansiimg"
	"github.com/sebastiantruijens/moviefinder/internal/card"
	"github.com/sebastiantruijens/moviefinder/internal/tmdb"
)

const (
	unavailableText = "Details unavailable"
	noOverviewText  = "No overview available"
	statsSep        = " ● "

	backdropRows = 10
	portraitRows = 4
	portraitCols = 8
)

type castCard struct {
	Name     string
	Role     string
	ImageURL string
	Art      string // empty = image hidden
}

// Details is the overlay showing one movie. It is created once at startup
// and reused for every open/close cycle.
type Details struct {
	client *tmdb.Client
	images tmdb.Images
	loader *ansiimg.Loader
	log    logrus.FieldLogger

	visible bool
	seq     uint64
	movieID int
	loading bool

	unavailable bool
	backdropURL string
	backdrop    string
	title       string
	stats       string
	genres      []string
	overview    string
	cast        []castCard

	viewport viewport.Model
	width    int
}

// NewDetails creates the hidden overlay. A nil loader disables images.
func NewDetails(client *tmdb.Client, images tmdb.Images, loader *ansiimg.Loader, log logrus.FieldLogger) *Details {
	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().BorderForeground(accentColor)
	return &Details{
		client:   client,
		images:   images,
		loader:   loader,
		log:      log,
		viewport: vp,
		width:    80,
	}
}

// Visible reports whether the overlay is shown.
func (d *Details) Visible() bool { return d.visible }

// MovieID is the movie the overlay was last opened for.
func (d *Details) MovieID() int { return d.movieID }

// SetSize resizes the scrollable area.
func (d *Details) SetSize(width, height int) {
	d.width = width
	d.viewport.Width = max(width-4, 10)
	d.viewport.Height = max(height-2, 3)
	d.refresh()
}

// Open shows the overlay immediately and fetches the detail record and its
// credits concurrently. The returned command resolves once both are done.
func (d *Details) Open(id int) tea.Cmd {
	d.visible = true
	d.seq++
	d.movieID = id
	d.loading = true
	d.refresh()

	seq := d.seq
	client := d.client
	return func() tea.Msg {
		var (
			detail  *tmdb.MovieDetail
			credits *tmdb.Credits
		)
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			detail = client.MovieDetail(ctx, id)
			return nil
		})
		g.Go(func() error {
			credits = client.Credits(ctx, id)
			return nil
		})
		_ = g.Wait()
		return detailsMsg{seq: seq, movieID: id, detail: detail, credits: credits}
	}
}

// Close hides the overlay and drops everything it showed.
func (d *Details) Close() {
	d.visible = false
	d.seq++
	d.loading = false
	d.unavailable = false
	d.backdropURL = ""
	d.backdrop = ""
	d.title = ""
	d.stats = ""
	d.genres = nil
	d.overview = ""
	d.cast = nil
	d.viewport.SetContent("")
	d.viewport.GotoTop()
}

func (d *Details) current(seq uint64) bool {
	return d.visible && seq == d.seq
}

func (d *Details) apply(msg detailsMsg) tea.Cmd {
	if !d.current(msg.seq) {
		d.log.WithFields(logrus.Fields{
			"movie_id": msg.movieID,
			"open_id":  d.movieID,
		}).Debug("discarding stale details response")
		return nil
	}
	d.loading = false

	x := msg.detail
	if x == nil {
		d.unavailable = true
		d.refresh()
		return nil
	}

	d.title = card.Title(x.Title, "")
	if year := card.Year(x.ReleaseDate); year != "" {
		d.title += " (" + year + ")"
	}

	var runtime, rating string
	if x.Runtime > 0 {
		runtime = fmt.Sprintf("%dm", x.Runtime)
	}
	if x.VoteAverage.Valid {
		rating = card.Stars(x.VoteAverage.Value)
	}
	d.stats = card.Join(statsSep, runtime, rating, strings.ToUpper(x.OriginalLanguage))

	d.genres = d.genres[:0]
	for _, g := range x.Genres {
		d.genres = append(d.genres, g.Name)
	}

	d.overview = x.Overview
	if d.overview == "" {
		d.overview = noOverviewText
	}

	d.cast = d.cast[:0]
	for _, c := range msg.credits.TopCast() {
		d.cast = append(d.cast, castCard{
			Name:     c.Name,
			Role:     c.Character,
			ImageURL: d.images.Profile(c.ProfilePath),
		})
	}

	d.backdropURL = d.images.Backdrop(x.BackdropPath)
	d.refresh()
	return d.imageCmds()
}

func (d *Details) imageCmds() tea.Cmd {
	if d.loader == nil {
		return nil
	}
	var cmds []tea.Cmd
	if d.backdropURL != "" {
		cmds = append(cmds, d.loadImage(-1, d.backdropURL, backdropRows, min(d.viewport.Width, 60)))
	}
	for i, c := range d.cast {
		if c.ImageURL != "" {
			cmds = append(cmds, d.loadImage(i, c.ImageURL, portraitRows, portraitCols))
		}
	}
	return tea.Batch(cmds...)
}

func (d *Details) loadImage(index int, url string, rows, cols int) tea.Cmd {
	seq, loader := d.seq, d.loader
	return func() tea.Msg {
		art, err := loader.Render(context.Background(), url, rows, cols)
		return detailsImageMsg{seq: seq, index: index, art: art, err: err}
	}
}

func (d *Details) applyImage(msg detailsImageMsg) {
	if !d.current(msg.seq) {
		return
	}
	if msg.err != nil {
		// failed images stay hidden
		d.log.WithError(msg.err).Debug("details image unavailable")
		return
	}
	switch {
	case msg.index < 0:
		d.backdrop = msg.art
	case msg.index < len(d.cast):
		d.cast[msg.index].Art = msg.art
	}
	d.refresh()
}

// Update scrolls the viewport.
func (d *Details) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return cmd
}

// View renders the overlay.
func (d *Details) View() string {
	return detailsStyle.Render(d.viewport.View())
}

func (d *Details) refresh() {
	d.viewport.SetContent(d.content())
}

func (d *Details) content() string {
	switch {
	case !d.visible:
		return ""
	case d.loading:
		return dimTextStyle.Render("Loading details...")
	case d.unavailable:
		return titleStyle.Render(unavailableText)
	}

	width := max(d.viewport.Width-2, 20)
	var sb strings.Builder

	if d.backdrop != "" {
		sb.WriteString(d.backdrop)
		sb.WriteString("\n")
	}

	sb.WriteString(titleStyle.Render(d.title))
	sb.WriteString("\n")
	if d.stats != "" {
		sb.WriteString(dimTextStyle.Render(d.stats))
		sb.WriteString("\n")
	}

	if len(d.genres) > 0 {
		chips := make([]string, 0, len(d.genres))
		for _, g := range d.genres {
			chips = append(chips, chipStyle.Render(g))
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Join(chips, " "))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(normalTextStyle.Width(width).Render(d.overview))
	sb.WriteString("\n")

	if len(d.cast) > 0 {
		sb.WriteString("\n")
		sb.WriteString(subtitleStyle.Render("Cast"))
		sb.WriteString("\n")
		for _, c := range d.cast {
			text := subtitleStyle.Render(c.Name) + "\n" + dimTextStyle.Render(c.Role)
			if c.Art != "" {
				text = lipgloss.JoinHorizontal(lipgloss.Top, c.Art, " ", text)
			}
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
