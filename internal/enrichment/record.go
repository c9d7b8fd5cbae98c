package enrichment

import (
	"fmt"
	"strings"
)

// Default values used when the service response omits a field.
const (
	DefaultAuthor         = "Unknown"
	DefaultReleaseYear    = "Unknown"
	DefaultRating         = "Not rated"
	DefaultTargetAudience = "General audience"
)

// Keys recognised in an enrichment response.
const (
	KeyAuthor         = "author"
	KeyReleaseYear    = "release_year"
	KeyRating         = "rating"
	KeyTags           = "tags"
	KeySimilarBooks   = "similar_books"
	KeyTargetAudience = "target_audience"
)

// Record is the structured form of an enrichment response.
// A Record is built once per response and not modified afterwards.
type Record struct {
	Author         string   `json:"author" yaml:"author"`
	ReleaseYear    string   `json:"release_year" yaml:"release_year"`
	Rating         string   `json:"rating" yaml:"rating"`
	Tags           []string `json:"tags" yaml:"tags"`
	SimilarBooks   []string `json:"similar_books" yaml:"similar_books"`
	TargetAudience string   `json:"target_audience" yaml:"target_audience"`
}

// Defaults returns the record produced for an empty response.
func Defaults() Record {
	return Record{
		Author:         DefaultAuthor,
		ReleaseYear:    DefaultReleaseYear,
		Rating:         DefaultRating,
		Tags:           []string{},
		SimilarBooks:   []string{},
		TargetAudience: DefaultTargetAudience,
	}
}

// Markdown renders the record as a small markdown document headed by title.
func (r Record) Markdown(title string) string {
	var sb strings.Builder

	if title != "" {
		fmt.Fprintf(&sb, "## %s\n\n", title)
	}

	fmt.Fprintf(&sb, "- **Author:** %s\n", r.Author)
	fmt.Fprintf(&sb, "- **Release year:** %s\n", r.ReleaseYear)
	fmt.Fprintf(&sb, "- **Rating:** %s\n", r.Rating)
	fmt.Fprintf(&sb, "- **Target audience:** %s\n", r.TargetAudience)

	if len(r.Tags) > 0 {
		fmt.Fprintf(&sb, "- **Tags:** %s\n", strings.Join(r.Tags, ", "))
	}

	if len(r.SimilarBooks) > 0 {
		sb.WriteString("\n### Similar books\n\n")
		for _, book := range r.SimilarBooks {
			fmt.Fprintf(&sb, "- %s\n", book)
		}
	}

	return sb.String()
}
