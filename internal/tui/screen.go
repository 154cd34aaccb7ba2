package tui

import (
	"github.com/sebastiantruijens/moviefinder/internal/card"
	"github.com/sebastiantruijens/moviefinder/internal/panel"
	"github.com/sebastiantruijens/moviefinder/internal/render"
)

type listID int

const (
	listTrending listID = iota
	listGenres
	listGenreResults
	listSearch
)

// screen holds everything the panels paint into. It is the terminal
// panel.Surface.
type screen struct {
	hidden   map[panel.ID]bool
	selected map[panel.ID]bool

	trending     render.Container[card.Card]
	genres       render.Container[card.Chip]
	genreResults render.Container[card.Card]
	search       render.Container[card.Card]

	queryLabel string
	genreLabel string

	// latest genre chip / search request; older responses are dropped
	genreSeq  uint64
	searchSeq uint64

	genreFocus bool // results column has focus on the Genres panel
	cursor     map[listID]int

	// loading labels per list, shown with the spinner
	loading map[listID]string

	// poster art by URL; a present empty value means pending or failed
	posters map[string]string
}

func newScreen() *screen {
	s := &screen{
		hidden:   map[panel.ID]bool{},
		selected: map[panel.ID]bool{},
		cursor:   map[listID]int{},
		loading:  map[listID]string{},
		posters:  map[string]string{},
	}
	for _, id := range panel.All {
		s.hidden[id] = true
	}
	return s
}

func (s *screen) SetPanelHidden(id panel.ID, hidden bool) { s.hidden[id] = hidden }

func (s *screen) SetTabSelected(id panel.ID, selected bool) { s.selected[id] = selected }

func (s *screen) ClearSlot(slot panel.Slot) {
	switch slot {
	case panel.SlotGenreList:
		s.genres.Clear()
		delete(s.loading, listGenres)
		s.cursor[listGenres] = 0
		s.genreFocus = false
	case panel.SlotGenreResults:
		s.genreResults.Clear()
		delete(s.loading, listGenreResults)
		s.cursor[listGenreResults] = 0
		s.genreLabel = ""
		s.genreSeq++
	}
}

// visible returns the one panel that is not hidden, or "".
func (s *screen) visible() panel.ID {
	for _, id := range panel.All {
		if !s.hidden[id] {
			return id
		}
	}
	return ""
}

// activeList is the list receiving navigation keys on the visible panel.
func (s *screen) activeList() (listID, bool) {
	switch s.visible() {
	case panel.Trending:
		return listTrending, true
	case panel.Genres:
		if s.genreFocus {
			return listGenreResults, true
		}
		return listGenres, true
	case panel.Search:
		return listSearch, true
	}
	return 0, false
}

func (s *screen) cards(id listID) *render.Container[card.Card] {
	switch id {
	case listTrending:
		return &s.trending
	case listGenreResults:
		return &s.genreResults
	case listSearch:
		return &s.search
	}
	return nil
}

func (s *screen) length(id listID) int {
	if id == listGenres {
		return s.genres.Len()
	}
	return s.cards(id).Len()
}

func (s *screen) move(id listID, delta int) {
	n := s.length(id)
	if n == 0 {
		s.cursor[id] = 0
		return
	}
	c := s.cursor[id] + delta
	if c < 0 {
		c = 0
	}
	if c >= n {
		c = n - 1
	}
	s.cursor[id] = c
}

// selectedCard returns the card under the cursor of the active list.
func (s *screen) selectedCard() *card.Card {
	id, ok := s.activeList()
	if !ok || id == listGenres {
		return nil
	}
	return s.cards(id).At(s.cursor[id])
}
