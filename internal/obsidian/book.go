package obsidian

import (
	"fmt"
	"strings"

	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/enrichment"
)

// Frontmatter keys written for a book note.
const (
	KeyTitle          = "title"
	KeyAuthor         = "author"
	KeyCategory       = "category"
	KeyReleaseYear    = "release_year"
	KeyRating         = "rating"
	KeyTargetAudience = "target_audience"
	KeySimilarBooks   = "similar_books"
	KeyTags           = "tags"
)

// BookNote builds a note for book from its enrichment record. Fields still at
// their defaults are left out of the frontmatter.
func BookNote(book bookapi.Book, record enrichment.Record) *Note {
	fm := NewFrontmatter()
	fm.Set(KeyTitle, book.BookName)
	fm.SetIf(KeyCategory, book.Category)
	fm.SetIf(KeyAuthor, known(record.Author, enrichment.DefaultAuthor))
	fm.SetIf(KeyReleaseYear, known(record.ReleaseYear, enrichment.DefaultReleaseYear))
	fm.SetIf(KeyRating, known(record.Rating, enrichment.DefaultRating))
	fm.SetIf(KeyTargetAudience, known(record.TargetAudience, enrichment.DefaultTargetAudience))
	fm.SetIf(KeySimilarBooks, record.SimilarBooks)

	tags := NewTagSet()
	tags.Add("book")
	if book.Category != "" {
		tags.Add("book/" + book.Category)
	}
	tags.AddAll(record.Tags)
	fm.Set(KeyTags, tags.Sorted())

	return &Note{Frontmatter: fm, Body: bookBody(book, record)}
}

func bookBody(book bookapi.Book, record enrichment.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", book.BookName)

	if summary := strings.TrimSpace(book.Summary); summary != "" {
		fmt.Fprintf(&sb, "> %s\n\n", strings.Join(strings.Fields(summary), " "))
	}

	if len(record.SimilarBooks) > 0 {
		sb.WriteString("## Similar books\n\n")
		for _, title := range record.SimilarBooks {
			fmt.Fprintf(&sb, "- [[%s]]\n", title)
		}
	}
	return sb.String()
}

func known(value, fallback string) string {
	if value == fallback {
		return ""
	}
	return value
}
