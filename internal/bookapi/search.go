package bookapi

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Search runs a catalog search and returns the hits ordered by relevance.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]Book, error) {
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return nil, ErrEmptyQuery
	}
	req.Category = strings.TrimSpace(req.Category)

	var books []Book
	if err := c.postJSON(ctx, EndpointSearch, req, &books); err != nil {
		return nil, err
	}
	if books == nil {
		books = []Book{}
	}

	SortByRelevance(books)
	return books, nil
}

// SortByRelevance orders books by descending relevance in place.
// Missing relevance counts as zero; equal scores keep their original order.
func SortByRelevance(books []Book) {
	sort.SliceStable(books, func(i, j int) bool {
		return books[i].Score() > books[j].Score()
	})
}

// FormatRelevance renders a relevance score as a percentage.
func FormatRelevance(relevance *float64) string {
	if relevance == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", *relevance*100)
}
