package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/obsidian"
	"github.com/lepinkainen/bookaura/internal/output"
)

// InfoCmd represents the info command
type InfoCmd struct {
	Book      string `short:"b" help:"Title of the book" required:""`
	Summary   string `short:"s" help:"Summary or description of the book"`
	Category  string `short:"c" help:"Catalog category of the book"`
	Format    string `short:"F" help:"Output format: text, json, yaml or note (Obsidian markdown)" default:"text"`
	Plain     bool   `help:"Disable colours in text output"`
	Output    string `short:"o" help:"Write the details to a file instead of stdout"`
	Overwrite bool   `help:"Overwrite the output file if it exists"`
}

func (i *InfoCmd) Run() error {
	format, err := output.ParseFormat(i.Format)
	if err != nil {
		return err
	}

	book := bookapi.Book{BookName: i.Book, Summary: i.Summary, Category: i.Category}
	record, err := newClient().Enrich(context.Background(), book)
	if err != nil {
		return fmt.Errorf("%s: %w", bookapi.UserMessage(bookapi.EndpointEnriched, err), err)
	}

	// Files never get terminal escape codes
	md := output.NewMarkdown(output.DefaultWrapWidth, i.Plain || i.Output != "")
	return writeOutput(i.Output, i.Overwrite, func(w io.Writer) error {
		if format == output.FormatNote {
			data, err := obsidian.BookNote(book, record).Build()
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		}
		return output.WriteRecord(w, i.Book, record, format, md)
	})
}
