package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Regenerate key.Binding
	Language   key.Binding
	Hand       key.Binding
	Smooth     key.Binding
	More       key.Binding
	Fewer      key.Binding
	Up         key.Binding
	Down       key.Binding
	Banner     key.Binding
	Copy       key.Binding
	Seed       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Regenerate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "regenerate")),
		Language:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "next language")),
		Hand:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hand balance")),
		Smooth:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "smoothness")),
		More:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more syllables")),
		Fewer:      key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer syllables")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Banner:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "banner")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Seed:       key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "set seed")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.Language, k.Down, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Regenerate, k.Language, k.Seed},
		{k.Hand, k.Smooth, k.More, k.Fewer},
		{k.Up, k.Down, k.Banner, k.Copy},
		{k.Help, k.Quit},
	}
}
