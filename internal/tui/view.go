package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/sebastiantruijens/moviefinder/internal/card"
	"github.com/sebastiantruijens/moviefinder/internal/panel"
	"github.com/sebastiantruijens/moviefinder/internal/render"
)

const aboutText = `Movie Finder browses this week's trending movies, the genre catalog
and free-text search results from The Movie Database.

Pick a card and press enter to see its details, cast and overview.

This product uses the TMDB API but is not endorsed or certified by TMDB.`

// chrome is the number of lines around the panel body
const chrome = 8

func (m Model) bodyHeight() int {
	return max(m.height-chrome, 4)
}

// View renders the current UI
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("🎬 Movie Finder"))
	sb.WriteString("\n")
	sb.WriteString(m.tabBar())
	sb.WriteString("\n")

	input := inputStyle
	if m.textInput.Focused() {
		input = focusedInputStyle
	}
	sb.WriteString(input.Render(m.textInput.View()))
	sb.WriteString("\n")

	if m.details.Visible() {
		sb.WriteString(m.details.View())
	} else {
		sb.WriteString(m.panelView(m.screen.visible()))
	}
	sb.WriteString("\n")

	if m.status != "" {
		sb.WriteString(m.status)
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.ShortHelpView(m.helpKeys()))

	return lipgloss.NewStyle().
		MaxWidth(m.width).
		MaxHeight(m.height).
		Render(sb.String())
}

func (m Model) helpKeys() []key.Binding {
	switch {
	case m.details.Visible():
		return m.keys.detailsHelp()
	case m.textInput.Focused():
		return m.keys.inputHelp()
	case m.screen.visible() == panel.Genres:
		return m.keys.genresHelp()
	}
	return m.keys.browseHelp()
}

func (m Model) tabBar() string {
	tabs := make([]string, 0, len(panel.All))
	for i, id := range panel.All {
		label := string(rune('1'+i)) + " " + string(id)
		if m.screen.selected[id] {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) panelView(id panel.ID) string {
	height := m.bodyHeight()
	switch id {
	case panel.Trending:
		if label, ok := m.screen.loading[listTrending]; ok {
			return m.spinnerLine(label)
		}
		return m.withPreview(m.cardList(&m.screen.trending, listTrending, true, height))

	case panel.Genres:
		return m.genresView(height)

	case panel.Search:
		if label, ok := m.screen.loading[listSearch]; ok {
			return m.spinnerLine(label)
		}
		if m.screen.queryLabel == "" {
			return dimTextStyle.Render("Type a query and press enter to search.")
		}
		header := subtitleStyle.Render("Results for “" + m.screen.queryLabel + "”")
		return header + "\n" + m.withPreview(m.cardList(&m.screen.search, listSearch, true, height-1))

	case panel.About:
		return normalTextStyle.Render(aboutText)
	}
	return ""
}

func (m Model) genresView(height int) string {
	if label, ok := m.screen.loading[listGenres]; ok {
		return m.spinnerLine(label)
	}

	chips := m.chipList(height)

	var results string
	switch label, loading := m.screen.loading[listGenreResults]; {
	case loading:
		results = m.spinnerLine(label)
	case m.screen.genreLabel != "":
		results = subtitleStyle.Render(m.screen.genreLabel) + "\n" +
			m.cardList(&m.screen.genreResults, listGenreResults, m.screen.genreFocus, height-1)
	default:
		results = dimTextStyle.Render("Pick a genre and press enter.")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(24).Render(chips),
		m.withPreview(results),
	)
}

func (m Model) chipList(height int) string {
	c := &m.screen.genres
	if msg, ok := c.EmptyMessage(); ok {
		return emptyStyle.Render(msg)
	}
	cursor := m.screen.cursor[listGenres]
	start, end := window(c.Len(), cursor, height)

	var sb strings.Builder
	for i := start; i < end; i++ {
		chip := c.At(i)
		if i == cursor && !m.screen.genreFocus {
			sb.WriteString(selectedChipStyle.Render(chip.Label))
		} else {
			sb.WriteString(chipStyle.Render(chip.Label))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// cardList renders a card container as two-line rows.
func (m Model) cardList(c *render.Container[card.Card], id listID, focused bool, height int) string {
	if msg, ok := c.EmptyMessage(); ok {
		return emptyStyle.Render(msg)
	}
	cursor := m.screen.cursor[id]
	start, end := window(c.Len(), cursor, max(height/2, 1))

	var sb strings.Builder
	for i := start; i < end; i++ {
		cd := c.At(i)
		if focused && i == cursor {
			sb.WriteString(highlightedTextStyle.Render("> " + cd.Title))
			sb.WriteString("\n  ")
			sb.WriteString(dimTextStyle.Render(cd.Subtitle))
			sb.WriteString("  ")
			sb.WriteString(actionStyle.Render(cd.Action.Label))
		} else {
			sb.WriteString(normalTextStyle.Render("  " + cd.Title))
			sb.WriteString("\n  ")
			sb.WriteString(dimTextStyle.Render(cd.Subtitle))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// withPreview places the selected card's poster next to content.
func (m Model) withPreview(content string) string {
	if m.loader == nil {
		return content
	}
	c := m.screen.selectedCard()
	if c == nil || c.PosterHidden() {
		return content
	}
	art := m.screen.posters[c.Poster]
	if art == "" {
		return content
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", art)
}

func (m Model) spinnerLine(label string) string {
	return m.spinner.View() + " " + normalTextStyle.Render(label)
}

// window returns the [start,end) range of n rows that keeps cursor visible.
func window(n, cursor, size int) (int, int) {
	if n <= size {
		return 0, n
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > n {
		start = n - size
	}
	return start, start + size
}
