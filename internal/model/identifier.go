package model

import (
	"regexp"
	"strings"
	"unicode"
)

var nonIdentifierRuns = regexp.MustCompile(`[^a-z0-9]+`)

// PackageName derives an importable Python package identifier from a
// project name: lower-cased, runs of non-alphanumeric characters
// collapsed into single underscores, leading and trailing separators
// trimmed. "My Cool-Project" becomes "my_cool_project".
func PackageName(name string) string {
	collapsed := nonIdentifierRuns.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(collapsed, "_")
}

// ProjectTitle derives a human-readable title from a project name:
// hyphens and underscores become spaces, each word is title-cased.
func ProjectTitle(name string) string {
	spaced := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	words := strings.Fields(spaced)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
