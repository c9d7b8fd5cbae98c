package enrichment

import "strings"

// Parse decodes an enrichment response into a Record.
// It never fails: missing or malformed data yields default field values.
func Parse(text string) Record {
	fields := Fields(text)

	return Record{
		Author:         stringOr(fields, KeyAuthor, DefaultAuthor),
		ReleaseYear:    stringOr(fields, KeyReleaseYear, DefaultReleaseYear),
		Rating:         stringOr(fields, KeyRating, DefaultRating),
		Tags:           splitList(fields[KeyTags]),
		SimilarBooks:   splitList(fields[KeySimilarBooks]),
		TargetAudience: stringOr(fields, KeyTargetAudience, DefaultTargetAudience),
	}
}

// Fields returns every key/value pair found in text.
// Later occurrences of a key replace earlier ones.
func Fields(text string) map[string]string {
	fields := make(map[string]string)

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, ok := parseLine(line)
		if !ok {
			continue
		}
		fields[key] = value
	}

	return fields
}

// parseLine splits a line on its first colon.
func parseLine(line string) (key, value string, ok bool) {
	rawKey, rawValue, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(rawKey)
	if key == "" {
		return "", "", false
	}

	return key, strings.TrimSpace(rawValue), true
}

// stringOr returns the value for key, or fallback when it is absent or empty.
func stringOr(fields map[string]string, key, fallback string) string {
	if value := fields[key]; value != "" {
		return value
	}
	return fallback
}

// splitList splits a comma separated value, trimming elements and dropping
// empty ones. The result is never nil.
func splitList(value string) []string {
	result := []string{}
	if value == "" {
		return result
	}

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}

	return result
}
