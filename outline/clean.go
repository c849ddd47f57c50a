package outline

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Trailing table-of-contents noise: a dot leader followed by a page
	// number, e.g. "Introduction ....... 7".
	dotLeaderRe = regexp.MustCompile(`\s*\.{3,}\s*\d+$`)
)

// CleanText normalizes heading and title text: typographic ligatures are
// folded to their letter sequences (NFKC), runs of whitespace collapse to
// a single space, and trailing table-of-contents dot leaders with page
// numbers are stripped.
func CleanText(s string) string {
	s = norm.NFKC.String(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = dotLeaderRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
