// Package textutil cleans up text pulled from feed documents so it can be
// embedded in pages as plain text. Stripping is deliberately conservative:
// a tag-removal regex rather than a full HTML parse, so malformed markup
// degrades to leftover text instead of an error.
package textutil

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Clean decodes HTML entities, strips tags and collapses runs of
// whitespace into single spaces.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(s)
	s = tagRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Truncate caps s at max runes. Safe on multi-byte text.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
