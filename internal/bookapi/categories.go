package bookapi

import "strings"

// Categories lists the catalog categories the search endpoint filters on.
var Categories = []string{
	"science", "biography", "politics", "economics", "environment", "relationships",
	"happiness", "money", "productivity", "psychology", "motivation", "marketing",
	"management", "health", "business", "creativity", "education", "communication",
	"religion", "technology", "work", "mindfulness",
}

// ValidCategory reports whether name is empty (no filter) or a known category.
func ValidCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return true
	}
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
