package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashes  = regexp.MustCompile(`-{2,}`)
)

// Slugify turns a title into a URL slug. Accented characters common in French
// titles are transliterated before stripping.
func Slugify(title string) string {
	s := strings.ToLower(title)

	replacements := []struct{ from, to string }{
		{"à", "a"}, {"â", "a"}, {"ä", "a"},
		{"é", "e"}, {"è", "e"}, {"ê", "e"}, {"ë", "e"},
		{"î", "i"}, {"ï", "i"},
		{"ô", "o"}, {"ö", "o"},
		{"ù", "u"}, {"û", "u"}, {"ü", "u"},
		{"ç", "c"}, {"œ", "oe"},
	}
	for _, r := range replacements {
		s = strings.ReplaceAll(s, r.from, r.to)
	}

	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
