package util

import (
	"regexp"
	"strings"
)

// NormalizeName folds a participant name to its comparison key: trimmed,
// inner whitespace collapsed to one space, lower-cased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// CleanName trims a name and collapses inner whitespace, keeping its case.
func CleanName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename makes a display name safe for a Content-Disposition
// filename: whitespace becomes underscores, anything else outside ASCII letters,
// digits, dot, dash and underscore is dropped.
func SanitizeFilename(name string) string {
	joined := strings.Join(strings.Fields(name), "_")
	cleaned := unsafeFilenameChars.ReplaceAllString(joined, "")
	cleaned = strings.Trim(cleaned, "._")
	if cleaned == "" {
		return "participant"
	}
	return cleaned
}
