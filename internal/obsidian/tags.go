package obsidian

import (
	"regexp"
	"sort"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// NormalizeTag turns free text into an Obsidian tag: no leading '#',
// whitespace becomes hyphens and '&' becomes "and". Case is preserved and '/'
// is kept for nested tags. Returns "" if nothing is left.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
	if tag == "" {
		return ""
	}

	tag = strings.ReplaceAll(tag, "&", "and")
	tag = strings.ReplaceAll(tag, "#", "")
	tag = whitespaceRun.ReplaceAllString(tag, "-")
	tag = hyphenRun.ReplaceAllString(tag, "-")
	return strings.Trim(tag, "-")
}

// TagSet collects normalized, deduplicated tags.
type TagSet struct {
	tags map[string]struct{}
}

// NewTagSet creates an empty TagSet.
func NewTagSet() *TagSet {
	return &TagSet{tags: make(map[string]struct{})}
}

// Add normalizes tag and adds it unless it is empty.
func (ts *TagSet) Add(tag string) {
	if normalized := NormalizeTag(tag); normalized != "" {
		ts.tags[normalized] = struct{}{}
	}
}

// AddAll adds every tag in tags.
func (ts *TagSet) AddAll(tags []string) {
	for _, tag := range tags {
		ts.Add(tag)
	}
}

// Sorted returns the tags in sorted order.
func (ts *TagSet) Sorted() []string {
	result := make([]string, 0, len(ts.tags))
	for tag := range ts.tags {
		result = append(result, tag)
	}
	sort.Strings(result)
	return result
}
