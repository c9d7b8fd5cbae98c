package bookapi

import (
	"context"

	"github.com/lepinkainen/bookaura/internal/enrichment"
)

// EnrichedInfo fetches the raw enrichment text for a book.
func (c *Client) EnrichedInfo(ctx context.Context, req EnrichRequest) (string, error) {
	var resp enrichResponse
	if err := c.postJSON(ctx, EndpointEnriched, req, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// Enrich fetches and decodes the enrichment for a search hit.
func (c *Client) Enrich(ctx context.Context, b Book) (enrichment.Record, error) {
	text, err := c.EnrichedInfo(ctx, NewEnrichRequest(b))
	if err != nil {
		return enrichment.Record{}, err
	}
	return enrichment.Parse(text), nil
}
