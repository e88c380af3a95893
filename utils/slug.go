package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug derives a URL-safe identifier from a display name: accents
// stripped, lowercased, non-alphanumeric runs collapsed to single hyphens,
// no leading or trailing hyphen.
func GenerateSlug(name string) string {
	// Normalize accents
	t := norm.NFD.String(name)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue // remove accent marks
		}
		b.WriteRune(r)
	}

	s := strings.ToLower(b.String())
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
