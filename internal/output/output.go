// Package output prints generated words for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/f3rmion/onamer/internal/onamer"
)

// Format selects how a batch is printed.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTemplate Format = "template"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTemplate}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatText, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", onamer.ConfigErrorf("unknown output format %q", s)
}

// Entry is one printed word.
type Entry struct {
	Word      string   `json:"word" yaml:"word"`
	Syllables []string `json:"syllables" yaml:"syllables"`
	Kana      string   `json:"kana,omitempty" yaml:"kana,omitempty"`
	Accepted  *bool    `json:"accepted,omitempty" yaml:"accepted,omitempty"`
}

// DefaultTemplate prints one word per line.
const DefaultTemplate = "{{.Word}}\n"

var (
	acceptedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a8e6cf"))
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	kanaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
)

// Printer writes batches in one format.
type Printer struct {
	w        io.Writer
	format   Format
	color    bool
	header   string
	template *template.Template
}

// NewPrinter creates a printer. Color is off until SetColor is called.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:        w,
		format:   format,
		header:   "GENERATE:",
		template: template.Must(template.New("entry").Parse(DefaultTemplate)),
	}
}

// SetColor enables lipgloss styling of the text format.
func (p *Printer) SetColor(on bool) { p.color = on }

// SetHeader replaces the first line of the text format. An empty header
// omits the line.
func (p *Printer) SetHeader(h string) { p.header = h }

// SetTemplate sets the per-entry template used by FormatTemplate.
func (p *Printer) SetTemplate(tmpl string) error {
	t, err := template.New("entry").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	p.template = t
	return nil
}

// Print writes entries in the printer's format.
func (p *Printer) Print(entries []Entry) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if entries == nil {
			entries = []Entry{}
		}
		return enc.Encode(entries)
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatTemplate:
		for _, e := range entries {
			if err := p.template.Execute(p.w, e); err != nil {
				return fmt.Errorf("executing template: %w", err)
			}
		}
		return nil
	default:
		return p.printText(entries)
	}
}

func (p *Printer) printText(entries []Entry) error {
	width := 0
	kanaWidth := 0
	for _, e := range entries {
		width = max(width, runewidth.StringWidth(e.Word))
		kanaWidth = max(kanaWidth, runewidth.StringWidth(e.Kana))
	}

	var b strings.Builder
	if p.header != "" {
		b.WriteString(p.style(headerStyle, p.header))
		b.WriteByte('\n')
	}
	for _, e := range entries {
		line := " * " + e.Word
		if kanaWidth > 0 || e.Accepted != nil {
			line += strings.Repeat(" ", width-runewidth.StringWidth(e.Word))
		}
		if kanaWidth > 0 {
			line += "  " + p.style(kanaStyle, e.Kana)
			if e.Accepted != nil {
				line += strings.Repeat(" ", kanaWidth-runewidth.StringWidth(e.Kana))
			}
		}
		if e.Accepted != nil {
			if *e.Accepted {
				line += "  " + p.style(acceptedStyle, "accepted")
			} else {
				line += "  " + p.style(rejectedStyle, "rejected")
			}
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Info describes a batch request for verbose output.
type Info struct {
	Language string
	Count    int
	Range    onamer.Range
	Seed     uint64
}

// PrintInfo writes the verbose INFO block followed by a blank line.
func PrintInfo(w io.Writer, info Info) error {
	title := cases.Title(language.English)
	_, err := fmt.Fprintf(w, "INFO:\n  language: %s\n  word_count: %dw\n  syllable range: %s\n  seed: %d\n\n",
		title.String(info.Language), info.Count, info.Range, info.Seed)
	return err
}

// Bool returns a pointer to v for Entry.Accepted.
func Bool(v bool) *bool { return &v }
