package simpleblog

import (
	"regexp"
	"strings"
)

var (
	slugJoinerRuns = regexp.MustCompile(`[.'’]+`)
	slugHyphenRuns = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify derives the URL-safe slug for a title. Periods and apostrophes
// join the surrounding words ("Next.js" becomes "nextjs"); every other run
// of non-alphanumeric characters collapses to a single hyphen, and leading
// and trailing hyphens are trimmed.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugJoinerRuns.ReplaceAllString(s, "")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
