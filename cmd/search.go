package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/config"
	"github.com/lepinkainen/bookaura/internal/output"
)

// SearchCmd represents the search command
type SearchCmd struct {
	Query     []string `arg:"" help:"What kind of book you are looking for"`
	Category  string   `short:"c" help:"Restrict results to one catalog category (see 'categories')"`
	Format    string   `short:"F" help:"Output format: table, json or yaml" default:"table"`
	Output    string   `short:"o" help:"Write results to a file instead of stdout"`
	Overwrite bool     `help:"Overwrite the output file if it exists"`
}

func (s *SearchCmd) Run() error {
	format, err := output.ParseFormat(s.Format)
	if err != nil {
		return err
	}

	category := strings.TrimSpace(s.Category)
	if category == "" {
		category = config.DefaultCategory
	}
	if !bookapi.ValidCategory(category) {
		return fmt.Errorf("unknown category %q (run 'bookaura categories' for the list)", category)
	}

	query := strings.Join(s.Query, " ")
	books, err := newClient().Search(context.Background(), bookapi.SearchRequest{
		Query:    query,
		Category: category,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", bookapi.UserMessage(bookapi.EndpointSearch, err), err)
	}

	slog.Debug("Search finished", "query", query, "category", category, "results", len(books), "api", config.APIURL)
	return writeOutput(s.Output, s.Overwrite, func(w io.Writer) error {
		return output.WriteBooks(w, books, query, format)
	})
}
