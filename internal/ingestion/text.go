package ingestion

import (
	"regexp"
	"strings"
)

var (
	horizontalSpaceRe = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRunRe      = regexp.MustCompile(`\n+`)
)

// CleanText normalizes whitespace in decoded resume text: non-breaking spaces
// become regular spaces, horizontal whitespace runs collapse to one space,
// and newline runs collapse to one newline. Line structure is preserved
// because downstream role detection is line-oriented.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = horizontalSpaceRe.ReplaceAllString(s, " ")
	s = newlineRunRe.ReplaceAllString(s, "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
