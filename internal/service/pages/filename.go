package pages

import (
	"path/filepath"
	"regexp"
	"strings"

	"motionpro/internal/config"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Everything outside the allowed filename character class. Applied
	// after whitespace collapsing, so underscores survive.
	disallowedChars = regexp.MustCompile(`[^a-z0-9_-]+`)
)

// SanitizeTitle converts a page title into a filesystem-safe filename
// stem: lowercase, whitespace runs collapsed to single underscores, all
// characters outside [a-z0-9_-] stripped, truncated to a bounded length.
// An empty result falls back to "untitled".
func SanitizeTitle(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = disallowedChars.ReplaceAllString(s, "")
	s = strings.Trim(s, "_-")

	if len(s) > config.MaxSuggestedFileNameLength {
		s = s[:config.MaxSuggestedFileNameLength]
		s = strings.Trim(s, "_-")
	}

	if s == "" {
		return "untitled"
	}
	return s
}

// SuggestedFileName derives a download filename from a page title and the
// originally uploaded file's name, keeping the original extension.
func SuggestedFileName(title, originalFileName string) string {
	ext := strings.ToLower(filepath.Ext(originalFileName))
	return SanitizeTitle(title) + ext
}
