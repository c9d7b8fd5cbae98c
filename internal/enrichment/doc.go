// Package enrichment decodes the tagged-line text returned by the book
// service's enrichment endpoint into a Record.
//
// The format is line oriented:
//
//	document = { line "\n" }
//	line     = key ":" value
//
// The key is everything before the first colon, trimmed, and must not be
// empty. The value is everything after that colon, trimmed; it may contain
// further colons. Blank lines and lines without a colon carry no data and are
// skipped. When a key repeats, the last value wins. Keys are matched exactly,
// so "Author" and "author" are different keys.
//
// Decoding never fails. Anything missing or unreadable falls back to the
// defaults of the corresponding Record field.
package enrichment
