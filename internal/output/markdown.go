package output

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/lepinkainen/bookaura/internal/enrichment"
)

// DefaultWrapWidth is used when the terminal width is unknown.
const DefaultWrapWidth = 80

// Markdown renders markdown for a terminal of the given width.
type Markdown struct {
	renderer *glamour.TermRenderer
}

// NewMarkdown creates a renderer. With plain set no colours are emitted.
// If glamour cannot be initialised the renderer passes text through.
func NewMarkdown(width int, plain bool) *Markdown {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStylePath("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		slog.Debug("Markdown renderer unavailable, using plain text", "error", err)
		return &Markdown{}
	}
	return &Markdown{renderer: r}
}

// Render returns md formatted for the terminal.
func (m *Markdown) Render(md string) string {
	if m == nil || m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		slog.Debug("Failed to render markdown", "error", err)
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}

// WriteRecord writes an enrichment record for the named book.
func WriteRecord(w io.Writer, title string, record enrichment.Record, format Format, md *Markdown) error {
	switch format {
	case FormatJSON, FormatYAML:
		return Encode(w, record, format)
	}
	_, err := fmt.Fprint(w, md.Render(record.Markdown(title)))
	return err
}
