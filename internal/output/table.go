package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/lepinkainen/bookaura/internal/bookapi"
)

const (
	// DefaultTableWidth bounds the summary column.
	DefaultTableWidth     = 120
	summaryPreviewLength  = 160
	bookNameColumnWidth   = 36
	categoryColumnWidth   = 16
	relevanceColumnWidth  = 10
	summaryColumnMaxWidth = DefaultTableWidth - bookNameColumnWidth - categoryColumnWidth - relevanceColumnWidth
)

// WriteBooks writes search hits in the requested format.
func WriteBooks(w io.Writer, books []bookapi.Book, query string, format Format) error {
	switch format {
	case FormatJSON, FormatYAML:
		return Encode(w, books, format)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = true
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: 4},
		{Number: 2, WidthMax: bookNameColumnWidth},
		{Number: 3, WidthMax: categoryColumnWidth},
		{Number: 4, WidthMax: relevanceColumnWidth},
		{Number: 5, WidthMax: summaryColumnMaxWidth},
	})

	t.AppendHeader(table.Row{"#", "Book", "Category", "Relevance", "Summary"})
	for i, b := range books {
		t.AppendRow(table.Row{
			i + 1,
			b.BookName,
			b.Category,
			bookapi.FormatRelevance(b.Relevance),
			Preview(b.Summary, summaryPreviewLength),
		})
	}
	t.AppendFooter(table.Row{"Total", len(books), "", "", fmt.Sprintf("Query: %s", query)})
	t.Render()
	return nil
}

// WriteCategories lists the catalog categories.
func WriteCategories(w io.Writer, categories []string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Category"})
	for _, c := range categories {
		t.AppendRow(table.Row{c})
	}
	t.Render()
}

// Preview collapses whitespace and truncates s to at most limit runes.
func Preview(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
