// Package tui is the terminal front end: a tab bar over the Trending,
// Genres, Search and About panels plus a details overlay.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/sebastiantruijens/moviefinder/internal/ansiimg"
	"github.com/sebastiantruijens/moviefinder/internal/card"
	"github.com/sebastiantruijens/moviefinder/internal/metrics"
	"github.com/sebastiantruijens/moviefinder/internal/panel"
	"github.com/sebastiantruijens/moviefinder/internal/render"
	"github.com/sebastiantruijens/moviefinder/internal/tmdb"
)

const (
	posterRows = 12
	posterCols = 24
)

// Options wires the model to its collaborators.
type Options struct {
	Client  *tmdb.Client
	Images  tmdb.Images
	Loader  *ansiimg.Loader // nil disables images
	Log     logrus.FieldLogger
	Metrics *metrics.Metrics
}

// Model represents the application state
type Model struct {
	client  *tmdb.Client
	loader  *ansiimg.Loader
	log     logrus.FieldLogger
	metrics *metrics.Metrics
	build   func(tmdb.Movie) *card.Card

	screen  *screen
	coord   *panel.Coordinator
	details *Details

	boot    tea.Cmd

	textInput textinput.Model
	spinner   spinner.Model
	help      help.Model
	keys      keyMap
	status    string
	width     int
	height    int
}

// New creates the model and starts on the Trending panel.
func New(opts Options) Model {
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}

	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	s := newScreen()
	m := Model{
		client:    opts.Client,
		loader:    opts.Loader,
		log:       log,
		metrics:   opts.Metrics,
		build:     card.Builder(opts.Images),
		screen:    s,
		coord:     panel.New(s),
		details:   NewDetails(opts.Client, opts.Images, opts.Loader, log),
		textInput: ti,
		spinner:   sp,
		help:      help.New(),
		keys:      defaultKeyMap(),
		width:     80,
		height:    24,
	}
	m, boot := m.showTrending()
	m.boot = boot
	return m
}

// Init starts the initial Trending fetch
func (m Model) Init() tea.Cmd {
	return m.boot
}

// Update handles messages and user input
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.details.SetSize(msg.Width, m.bodyHeight())
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case trendingMsg:
		if !m.fresh(msg.ticket) {
			m.abandon(listTrending)
			return m, nil
		}
		delete(m.screen.loading, listTrending)
		render.List(&m.screen.trending, msg.movies, m.build,
			render.WithEmptyMessage("Failed to load trending movies."))
		m.screen.cursor[listTrending] = 0
		return m, m.previewCmd()

	case genresMsg:
		if !m.fresh(msg.ticket) {
			m.abandon(listGenres)
			return m, nil
		}
		delete(m.screen.loading, listGenres)
		render.List(&m.screen.genres, msg.genres, card.GenreChip,
			render.WithEmptyMessage("No genres available."))
		m.screen.cursor[listGenres] = 0
		m.screen.genreFocus = false
		return m, nil

	case genreMoviesMsg:
		if !m.fresh(msg.ticket) {
			if msg.seq == m.screen.genreSeq {
				m.abandon(listGenreResults)
			}
			return m, nil
		}
		if msg.seq != m.screen.genreSeq {
			return m, nil
		}
		delete(m.screen.loading, listGenreResults)
		render.List(&m.screen.genreResults, msg.movies, m.build)
		m.screen.cursor[listGenreResults] = 0
		return m, m.previewCmd()

	case searchMsg:
		if !m.fresh(msg.ticket) {
			if msg.seq == m.screen.searchSeq {
				m.abandon(listSearch)
			}
			return m, nil
		}
		if msg.seq != m.screen.searchSeq {
			return m, nil
		}
		delete(m.screen.loading, listSearch)
		m.screen.queryLabel = msg.query
		render.List(&m.screen.search, msg.movies, m.build,
			render.WithEmptyMessage(fmt.Sprintf("No results for “%s”.", msg.query)))
		m.screen.cursor[listSearch] = 0
		return m, m.previewCmd()

	case detailsMsg:
		return m, m.details.apply(msg)

	case detailsImageMsg:
		m.details.applyImage(msg)
		return m, nil

	case posterMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Debug("poster unavailable")
			m.screen.posters[msg.url] = ""
			return m, nil
		}
		m.screen.posters[msg.url] = msg.art
		return m, nil

	case statusMsg:
		m.status = msg.text
		return m, clearStatusAfter(2 * time.Second)

	case errorMsg:
		m.status = errorStyle.Render("Error: " + msg.err.Error())
		return m, clearStatusAfter(2 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	if m.textInput.Focused() {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.details.Visible() {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.details.Close()
			return m, nil
		case key.Matches(msg, m.keys.Browser):
			id := m.details.MovieID()
			return m, func() tea.Msg {
				if err := openBrowser(id); err != nil {
					return errorMsg{fmt.Errorf("failed to open browser: %v", err)}
				}
				return statusMsg{"Opened in browser"}
			}
		}
		return m, m.details.Update(msg)
	}

	if m.textInput.Focused() {
		switch msg.Type {
		case tea.KeyEnter:
			return m.submitSearch()
		case tea.KeyEsc:
			m.textInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Trending):
		return m.showTrending()
	case key.Matches(msg, m.keys.Genres):
		return m.showGenres()
	case key.Matches(msg, m.keys.Search):
		return m.showSearch()
	case key.Matches(msg, m.keys.About):
		return m.showAbout()
	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab(-1)
	case key.Matches(msg, m.keys.Focus):
		m.textInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(1)
	case key.Matches(msg, m.keys.Left):
		if m.screen.visible() == panel.Genres {
			m.screen.genreFocus = false
		}
		return m, nil
	case key.Matches(msg, m.keys.Right):
		if m.screen.visible() == panel.Genres && m.screen.genreResults.Len() > 0 {
			m.screen.genreFocus = true
			return m, m.previewCmd()
		}
		return m, nil
	case key.Matches(msg, m.keys.Select):
		return m.activate()
	}
	return m, nil
}

// showTrending enters Trending and fetches it once per session.
func (m Model) showTrending() (Model, tea.Cmd) {
	t := m.coord.Enter(panel.Trending)
	if m.screen.trending.HasContent() {
		return m, m.previewCmd()
	}

	m.screen.loading[listTrending] = "Loading trending movies..."
	client := m.client
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return trendingMsg{ticket: t, movies: client.Trending(context.Background())}
	})
}

func (m Model) showGenres() (Model, tea.Cmd) {
	t := m.coord.Enter(panel.Genres)

	m.screen.loading[listGenres] = "Loading genres..."
	client := m.client
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return genresMsg{ticket: t, genres: client.Genres(context.Background())}
	})
}

// selectGenre loads the most popular movies of a genre into the results
// column. Results are kept only while Genres stays current and no newer
// genre was picked.
func (m Model) selectGenre(chip *card.Chip) (Model, tea.Cmd) {
	t := m.coord.Snapshot()
	m.screen.genreSeq++
	seq := m.screen.genreSeq
	m.screen.genreLabel = chip.Label
	m.screen.genreResults.Clear()

	m.screen.loading[listGenreResults] = fmt.Sprintf("Loading %s movies...", chip.Label)
	client, id := m.client, chip.GenreID
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return genreMoviesMsg{ticket: t, seq: seq, movies: client.DiscoverByGenre(context.Background(), id)}
	})
}

// showSearch shows the last search results without searching again.
func (m Model) showSearch() (Model, tea.Cmd) {
	m.coord.Enter(panel.Search)
	m.textInput.Focus()
	return m, textinput.Blink
}

func (m Model) submitSearch() (Model, tea.Cmd) {
	query := strings.TrimSpace(m.textInput.Value())
	m.textInput.Blur()
	if query == "" {
		return m.showTrending()
	}

	t := m.coord.Enter(panel.Search)
	m.screen.searchSeq++
	seq := m.screen.searchSeq

	m.screen.loading[listSearch] = fmt.Sprintf("Searching for “%s”...", query)
	client := m.client
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return searchMsg{ticket: t, seq: seq, query: query, movies: client.Search(context.Background(), query)}
	})
}

func (m Model) showAbout() (Model, tea.Cmd) {
	m.coord.Enter(panel.About)
	return m, nil
}

func (m Model) switchTab(delta int) (Model, tea.Cmd) {
	idx := 0
	for i, id := range panel.All {
		if id == m.coord.Current() {
			idx = i
		}
	}
	n := len(panel.All)
	switch panel.All[((idx+delta)%n+n)%n] {
	case panel.Genres:
		return m.showGenres()
	case panel.Search:
		return m.showSearch()
	case panel.About:
		return m.showAbout()
	default:
		return m.showTrending()
	}
}

func (m Model) moveCursor(delta int) (Model, tea.Cmd) {
	id, ok := m.screen.activeList()
	if !ok {
		return m, nil
	}
	m.screen.move(id, delta)
	return m, m.previewCmd()
}

// activate runs the action of the item under the cursor.
func (m Model) activate() (Model, tea.Cmd) {
	id, ok := m.screen.activeList()
	if !ok {
		return m, nil
	}
	if id == listGenres {
		chip := m.screen.genres.At(m.screen.cursor[listGenres])
		if chip == nil {
			return m, nil
		}
		return m.selectGenre(chip)
	}

	c := m.screen.selectedCard()
	if c == nil {
		return m, nil
	}
	return m, m.details.Open(c.Action.MovieID)
}

// fresh applies the staleness check and records discards.
func (m Model) fresh(t panel.Ticket) bool {
	if m.coord.Fresh(t) {
		return true
	}
	m.log.WithFields(logrus.Fields{
		"panel":   t.Panel,
		"ticket":  t.Seq,
		"current": m.coord.Current(),
	}).Debug("discarding stale response")
	m.metrics.StaleDiscard(string(t.Panel))
	return false
}

// abandon drops the loading label of the latest request for a list once its
// response has been discarded.
func (m Model) abandon(id listID) {
	delete(m.screen.loading, id)
}

func (m Model) busy() bool {
	return len(m.screen.loading) > 0 || m.details.loading
}

// previewCmd fetches the poster of the selected card once.
func (m Model) previewCmd() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	c := m.screen.selectedCard()
	if c == nil || c.PosterHidden() {
		return nil
	}
	url := c.Poster
	if _, requested := m.screen.posters[url]; requested {
		return nil
	}
	m.screen.posters[url] = ""
	loader := m.loader
	return func() tea.Msg {
		art, err := loader.Render(context.Background(), url, posterRows, posterCols)
		return posterMsg{url: url, art: art, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
