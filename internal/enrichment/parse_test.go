package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllFieldsPresent(t *testing.T) {
	text := `author: Frank Herbert
release_year: 1965
rating: 4.3/5
tags: science fiction, politics, ecology
similar_books: Foundation, Hyperion
target_audience: Adult readers`

	got := Parse(text)

	assert.Equal(t, Record{
		Author:         "Frank Herbert",
		ReleaseYear:    "1965",
		Rating:         "4.3/5",
		Tags:           []string{"science fiction", "politics", "ecology"},
		SimilarBooks:   []string{"Foundation", "Hyperion"},
		TargetAudience: "Adult readers",
	}, got)
}

func TestParseDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "  \n\t\n   "},
		{name: "no colons", input: "just some text\nanother line"},
		{name: "empty keys", input: ": value\n   : other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.Equal(t, Defaults(), got)
			assert.NotNil(t, got.Tags)
			assert.NotNil(t, got.SimilarBooks)
		})
	}
}

func TestParseDefaultValues(t *testing.T) {
	got := Defaults()

	assert.Equal(t, "Unknown", got.Author)
	assert.Equal(t, "Unknown", got.ReleaseYear)
	assert.Equal(t, "Not rated", got.Rating)
	assert.Empty(t, got.Tags)
	assert.Empty(t, got.SimilarBooks)
	assert.Equal(t, "General audience", got.TargetAudience)
}

func TestParseKeepsColonsInValue(t *testing.T) {
	got := Parse("author: Jane Doe\nrating: 4.5: stars")

	assert.Equal(t, "Jane Doe", got.Author)
	assert.Equal(t, "4.5: stars", got.Rating)
	assert.Equal(t, DefaultReleaseYear, got.ReleaseYear)
}

func TestParseListFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "trimmed elements", input: "tags: a, b ,c", want: []string{"a", "b", "c"}},
		{name: "empty value", input: "tags:", want: []string{}},
		{name: "absent", input: "author: X", want: []string{}},
		{name: "empty elements dropped", input: "tags: a,, ,b,", want: []string{"a", "b"}},
		{name: "only commas", input: "tags: , ,", want: []string{}},
		{name: "single element", input: "tags: classic", want: []string{"classic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			require.NotNil(t, got.Tags)
			assert.Equal(t, tt.want, got.Tags)
		})
	}
}

func TestParseEmptyListMatchesAbsentList(t *testing.T) {
	assert.Equal(t, Parse("").SimilarBooks, Parse("similar_books:").SimilarBooks)
	assert.Equal(t, Parse("").Tags, Parse("tags:   ").Tags)
}

func TestParseEmptyScalarFallsBackToDefault(t *testing.T) {
	got := Parse("author:\nrating:   \ntarget_audience:")

	assert.Equal(t, DefaultAuthor, got.Author)
	assert.Equal(t, DefaultRating, got.Rating)
	assert.Equal(t, DefaultTargetAudience, got.TargetAudience)
}

func TestParseKeysAreCaseSensitive(t *testing.T) {
	got := Parse("Author: Jane Doe\nRATING: 5\n release_year : 2001")

	assert.Equal(t, DefaultAuthor, got.Author)
	assert.Equal(t, DefaultRating, got.Rating)
	// surrounding whitespace is not part of the key
	assert.Equal(t, "2001", got.ReleaseYear)
}

func TestParseLastDuplicateWins(t *testing.T) {
	got := Parse("author: First\nauthor: Second")
	assert.Equal(t, "Second", got.Author)
}

func TestParseCarriageReturns(t *testing.T) {
	got := Parse("author: Jane Doe\r\nrelease_year: 1999\r\n")

	assert.Equal(t, "Jane Doe", got.Author)
	assert.Equal(t, "1999", got.ReleaseYear)
}

func TestParseIgnoresMalformedLines(t *testing.T) {
	got := Parse("Here is the info you asked for\nauthor: Jane Doe\n---\nrating: 4")

	assert.Equal(t, "Jane Doe", got.Author)
	assert.Equal(t, "4", got.Rating)
}

func TestFields(t *testing.T) {
	got := Fields("author: A\nnot a pair\nextra: x: y\n: nope")

	assert.Equal(t, map[string]string{
		"author": "A",
		"extra":  "x: y",
	}, got)
}

func TestRecordMarkdown(t *testing.T) {
	record := Parse("author: Jane Doe\ntags: a, b\nsimilar_books: One, Two")

	md := record.Markdown("Some Book")

	assert.Contains(t, md, "## Some Book")
	assert.Contains(t, md, "**Author:** Jane Doe")
	assert.Contains(t, md, "**Tags:** a, b")
	assert.Contains(t, md, "### Similar books")
	assert.Contains(t, md, "- Two")
	assert.Contains(t, md, "**Rating:** Not rated")
}

func TestRecordMarkdownWithoutLists(t *testing.T) {
	md := Defaults().Markdown("")

	assert.NotContains(t, md, "##")
	assert.NotContains(t, md, "Tags")
	assert.NotContains(t, md, "Similar books")
}
