// Package textutil provides small text helpers for document generation.
package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// CleanDoc normalizes multi-line documentation text: each line is trimmed of
// surrounding whitespace and blank leading/trailing lines are dropped, so
// indented declarations read cleanly in the generated document.
func CleanDoc(doc string) string {
	if doc == "" {
		return ""
	}
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	// Drop leading and trailing blank lines left by declaration formatting.
	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// Title renders a verbose field name as an English title, e.g.
// "date joined" becomes "Date Joined".
func Title(s string) string {
	if s == "" {
		return ""
	}
	return titleCaser.String(s)
}
