package obsidian

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/enrichment"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#Fantasy", "Fantasy"},
		{"  coming of age  ", "coming-of-age"},
		{"war & peace", "war-and-peace"},
		{"book/self-help", "book/self-help"},
		{"--a   -- b--", "a-b"},
		{"#", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTag(tt.input))
		})
	}
}

func TestTagSetDeduplicates(t *testing.T) {
	ts := NewTagSet()
	ts.AddAll([]string{"history", "#history", " ", "ancient rome"})
	assert.Equal(t, []string{"ancient-rome", "history"}, ts.Sorted())
}

func TestFrontmatterKeysSorted(t *testing.T) {
	fm := NewFrontmatter()
	fm.Set("title", "x")
	fm.Set("author", "y")
	fm.Set("title", "z")
	fm.SetIf("rating", "")
	fm.SetIf("similar_books", []string{})

	assert.Equal(t, []string{"author", "title"}, fm.Keys())
	val, ok := fm.Get("title")
	require.True(t, ok)
	assert.Equal(t, "z", val)
}

func TestNoteBuildWithoutFrontmatter(t *testing.T) {
	out, err := (&Note{Frontmatter: NewFrontmatter(), Body: "body\n"}).Build()
	require.NoError(t, err)
	assert.Equal(t, "body\n", string(out))
}

func TestBookNote(t *testing.T) {
	book := bookapi.Book{BookName: "SPQR", Category: "history", Summary: "A history\nof Rome."}
	record := enrichment.Parse("author: Mary Beard\nrelease_year: 2015\ntags: rome, ancient history\nsimilar_books: Rubicon, Dynasty")

	out, err := BookNote(book, record).Build()
	require.NoError(t, err)

	want := strings.Join([]string{
		"---",
		"author: Mary Beard",
		"category: history",
		"release_year: \"2015\"",
		"similar_books:",
		"    - Rubicon",
		"    - Dynasty",
		"tags: [ancient-history, book, book/history, rome]",
		"title: SPQR",
		"---",
		"",
		"# SPQR",
		"",
		"> A history of Rome.",
		"",
		"## Similar books",
		"",
		"- [[Rubicon]]",
		"- [[Dynasty]]",
		"",
	}, "\n")
	assert.Equal(t, want, string(out))
}

func TestBookNoteSkipsDefaults(t *testing.T) {
	note := BookNote(bookapi.Book{BookName: "Unknown Book"}, enrichment.Defaults())

	assert.Equal(t, []string{KeyTags, KeyTitle}, note.Frontmatter.Keys())
	tags, _ := note.Frontmatter.Get(KeyTags)
	assert.Equal(t, []string{"book"}, tags)
}
