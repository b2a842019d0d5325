package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/onamer/internal/analyzer"
	"github.com/f3rmion/onamer/internal/banner"
	"github.com/f3rmion/onamer/internal/clipboard"
	"github.com/f3rmion/onamer/internal/config"
	"github.com/f3rmion/onamer/internal/kana"
	"github.com/f3rmion/onamer/internal/onamer"
	"github.com/f3rmion/onamer/internal/rng"
	"github.com/f3rmion/onamer/internal/synth"
)

const (
	maxSyllables = 8
	bannerRows   = 6
)

// Options configures the browser.
type Options struct {
	// Context cancels batches still running when the program stops.
	// Defaults to context.Background.
	Context  context.Context
	Registry *config.Registry
	Language onamer.Language
	Range    onamer.Range
	Count    int
	Seed     uint64
	Flags    onamer.Flags
	Logger   *slog.Logger
}

// generatedMsg carries a finished batch.
type generatedMsg struct {
	gen   int
	words []synth.Word
	err   error
}

type copiedMsg struct {
	word string
	err  error
}

type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Model is the Bubble Tea model of the name browser.
type Model struct {
	ctx       context.Context
	registry  *config.Registry
	languages []onamer.Language
	langIdx   int
	model     synth.Model
	logger    *slog.Logger

	rangeOf onamer.Range
	count   int
	seed    uint64
	flags   onamer.Flags

	words    []synth.Word
	selected int
	loading  bool
	gen      int

	showBanner  bool
	editingSeed bool
	seedInput   textinput.Model

	keys keyMap
	help help.Model

	nextSeed func() uint64
	copy     func(string) error

	status string
	err    error

	width  int
	height int
}

// New creates the browser. The first batch is generated by Init.
func New(opts Options) (Model, error) {
	reg := opts.Registry
	if reg == nil {
		reg = config.NewRegistry()
	}
	m, err := reg.Resolve(string(opts.Language))
	if err != nil {
		return Model{}, err
	}
	if err := opts.Range.Validate(); err != nil {
		return Model{}, err
	}
	if opts.Count <= 0 {
		opts.Count = 10
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	languages := reg.Names()
	idx := 0
	for i, l := range languages {
		if l == m.Name() {
			idx = i
		}
	}

	ti := textinput.New()
	ti.Placeholder = "seed"
	ti.CharLimit = 20
	ti.Width = 24
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		ctx:       ctx,
		registry:  reg,
		languages: languages,
		langIdx:   idx,
		model:     m,
		logger:    log,
		rangeOf:   opts.Range,
		count:     opts.Count,
		seed:      opts.Seed,
		flags:     opts.Flags,
		seedInput: ti,
		keys:      defaultKeyMap(),
		help:      help.New(),
		nextSeed:  rng.RandomSeed,
		copy:      clipboard.Write,
		loading:   true,
	}, nil
}

// Init generates the first batch.
func (m Model) Init() tea.Cmd {
	return m.generate()
}

// generate runs the current request in a command.
func (m Model) generate() tea.Cmd {
	ctx, model, gen := m.ctx, m.model, m.gen
	req := synth.Request{
		Range:  m.rangeOf,
		Count:  m.count,
		Seed:   m.seed,
		Logger: m.logger,
	}
	return func() tea.Msg {
		words, err := synth.Generate(ctx, model, req)
		return generatedMsg{gen: gen, words: words, err: err}
	}
}

// regenerate marks the model loading and returns the generate command.
func (m Model) regenerate() (Model, tea.Cmd) {
	m.gen++
	m.loading = true
	m.showBanner = false
	return m, m.generate()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case generatedMsg:
		if msg.gen != m.gen {
			// stale batch from an earlier request
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.words = msg.words
			m.selected = min(m.selected, max(len(m.words)-1, 0))
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("copying: %w", msg.err)
			return m, nil
		}
		m.status = "copied " + msg.word
		return m, clearStatusAfter(2 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.editingSeed {
			return m.updateSeedInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Regenerate):
		m.seed = m.nextSeed()
		m.err = nil
		return m.regenerate()

	case key.Matches(msg, m.keys.Language):
		if len(m.languages) < 2 {
			return m, nil
		}
		m.langIdx = (m.langIdx + 1) % len(m.languages)
		next, err := m.registry.Resolve(string(m.languages[m.langIdx]))
		if err != nil {
			m.err = err
			return m, nil
		}
		m.model = next
		return m.regenerate()

	case key.Matches(msg, m.keys.Hand):
		m.flags.HandBalance = !m.flags.HandBalance

	case key.Matches(msg, m.keys.Smooth):
		m.flags.Smoothness = !m.flags.Smoothness
		if m.flags.Smoothness && !analyzer.SmoothnessSupported {
			m.status = "smoothness is not implemented yet and rejects every pair"
			return m, clearStatusAfter(3 * time.Second)
		}

	case key.Matches(msg, m.keys.More):
		if m.rangeOf.Max >= maxSyllables {
			return m, nil
		}
		m.rangeOf.Max++
		return m.regenerate()

	case key.Matches(msg, m.keys.Fewer):
		if m.rangeOf.Max <= m.rangeOf.Min {
			return m, nil
		}
		m.rangeOf.Max--
		return m.regenerate()

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.words)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Banner):
		m.showBanner = !m.showBanner && len(m.words) > 0

	case key.Matches(msg, m.keys.Copy):
		if len(m.words) == 0 {
			return m, nil
		}
		word, copyFn := m.words[m.selected].String(), m.copy
		return m, func() tea.Msg {
			return copiedMsg{word: word, err: copyFn(word)}
		}

	case key.Matches(msg, m.keys.Seed):
		m.editingSeed = true
		m.seedInput.SetValue(strconv.FormatUint(m.seed, 10))
		m.seedInput.CursorEnd()
		cmd := m.seedInput.Focus()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSeedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editingSeed = false
		m.seedInput.Blur()
		return m, nil
	case tea.KeyEnter:
		seed, err := strconv.ParseUint(strings.TrimSpace(m.seedInput.Value()), 10, 64)
		if err != nil {
			m.err = fmt.Errorf("invalid seed %q", m.seedInput.Value())
			return m, nil
		}
		m.editingSeed = false
		m.seedInput.Blur()
		m.err = nil
		m.seed = seed
		return m.regenerate()
	}

	var cmd tea.Cmd
	m.seedInput, cmd = m.seedInput.Update(msg)
	return m, cmd
}

// Selected returns the highlighted word, or "" when the batch is empty.
func (m Model) Selected() string {
	if len(m.words) == 0 {
		return ""
	}
	return m.words[m.selected].String()
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("  onamer  ") + "  " + subtitleStyle.Render("pseudo-word name browser"))
	b.WriteString("\n\n")
	b.WriteString(m.renderSettings())
	b.WriteString("\n")

	if m.editingSeed {
		b.WriteString("  " + m.seedInput.View() + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("  "+m.err.Error()) + "\n")
	}

	b.WriteString("\n")
	if m.loading && len(m.words) == 0 {
		b.WriteString(helpStyle.Render("  generating...") + "\n")
	} else {
		b.WriteString(boxStyle.Render(m.renderWords()))
		b.WriteString("\n")
	}

	if m.showBanner {
		if art, err := banner.Cached(m.Selected(), bannerRows); err == nil && art != "" {
			b.WriteString(bannerStyle.Render(art))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render("  "+m.status) + "\n")
	}

	b.WriteString("\n  ")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderSettings() string {
	field := func(label, value string) string {
		return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
	}
	parts := []string{
		field("language", string(m.model.Name())),
		field("syllables", fmt.Sprintf("%d-%d", m.rangeOf.Min, m.rangeOf.Max)),
		field("seed", strconv.FormatUint(m.seed, 10)),
		field("hand", onOff(m.flags.HandBalance)),
		field("smooth", onOff(m.flags.Smoothness)),
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderWords() string {
	units, isUnits := m.model.(*synth.UnitModel)
	lines := make([]string, 0, len(m.words))
	for i, w := range m.words {
		text := w.String()
		style := wordStyle
		if i == m.selected {
			style = wordSelectedStyle
		}
		line := style.Render(text)

		if isUnits && units.Name() == onamer.LanguageJapanese {
			if h, err := kana.Hiragana(w.Syllables); err == nil {
				line += " " + kanaStyle.Render(h)
			}
		}
		if m.flags.Any() {
			if analyzer.Accepts(text, m.flags) {
				line += " " + acceptedStyle.Render("✓")
			} else {
				line += " " + rejectedStyle.Render("✗")
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
