package cmd

import (
	"fmt"

	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/config"
	"github.com/lepinkainen/bookaura/internal/output"
	"github.com/lepinkainen/bookaura/internal/tui"
)

var runBrowser = tui.Run

// BrowseCmd represents the interactive browser
type BrowseCmd struct {
	Category string `short:"c" help:"Preselect a catalog category"`
	Discover bool   `short:"d" help:"Start on the search view instead of the landing page"`
	Plain    bool   `help:"Render answers without colours"`
}

func (b *BrowseCmd) Run() error {
	category := b.Category
	if category == "" {
		category = config.DefaultCategory
	}
	if !bookapi.ValidCategory(category) {
		return fmt.Errorf("unknown category %q (run 'bookaura categories' for the list)", category)
	}

	start := tui.ViewLanding
	if b.Discover {
		start = tui.ViewDiscover
	}

	client := newClient()
	return runBrowser(client, tui.Options{
		Start:           start,
		DefaultCategory: category,
		BaseURL:         client.BaseURL(),
		Markdown:        output.NewMarkdown(output.DefaultWrapWidth-8, b.Plain),
	})
}
