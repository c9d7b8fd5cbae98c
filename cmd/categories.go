package cmd

import (
	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/output"
)

// CategoriesCmd represents the categories command
type CategoriesCmd struct {
	Format string `short:"F" help:"Output format: table, json or yaml" default:"table"`
}

func (c *CategoriesCmd) Run() error {
	format, err := output.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.Encode(stdout, bookapi.Categories, format)
	}
	output.WriteCategories(stdout, bookapi.Categories)
	return nil
}
