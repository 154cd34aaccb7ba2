package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Trending key.Binding
	Genres   key.Binding
	Search   key.Binding
	About    key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Focus    key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Submit   key.Binding
	Back     key.Binding
	Browser  key.Binding
	Quit     key.Binding
	// ForceQuit works even while typing
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Trending: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "trending")),
		Genres:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "genres")),
		Search:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "search")),
		About:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "about")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Focus:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "genres")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "movies")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "close")),
		Browser:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in browser")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Focus, k.NextTab, k.Quit}
}

func (k keyMap) genresHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Left, k.Right, k.NextTab, k.Quit}
}

func (k keyMap) inputHelp() []key.Binding {
	esc := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	return []key.Binding{k.Submit, esc}
}

func (k keyMap) detailsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Browser, k.Back}
}
