package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizeKey trims a roll number or subject code and upper-cases it.
func normalizeKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// normalizeName trims a display name and converts it to title case. A letter
// after an apostrophe starts a new word, so "o'brien" becomes "O'Brien".
func normalizeName(s string) string {
	caser := cases.Title(language.English)
	parts := strings.Split(strings.TrimSpace(s), "'")
	for i, p := range parts {
		parts[i] = caser.String(p)
	}
	return strings.Join(parts, "'")
}
