package outline

import (
	"regexp"
	"strings"

	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/ingest"
	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/model"
)

// PatternRule associates a structural numbering pattern with the heading
// level its shape implies. Rules are evaluated in order, so more specific
// numbering forms must precede coarser ones.
type PatternRule struct {
	// Pattern matches the line's leading text. The matched prefix is
	// stripped from the heading text.
	Pattern *regexp.Regexp

	// Level is the heading level the pattern shape implies
	Level model.Level

	// Score is the fixed confidence for this tier. Pattern matches are
	// high-confidence, so scores sit above the style detector's range.
	Score float64
}

// DefaultPatternRules returns the built-in rule set, most specific first:
//
//	"Appendix A"  -> H1
//	"Chapter 1"   -> H1
//	"1.2.3 Text"  -> H3
//	"1.2 Text"    -> H2
//	"1. Text"     -> H1
//	"A. Text"     -> H2
func DefaultPatternRules() []PatternRule {
	return []PatternRule{
		{regexp.MustCompile(`^(?i)appendix\s+[A-Z][.:]?\s+`), model.LevelH1, 0.95},
		{regexp.MustCompile(`^(?i)chapter\s+\d+[.:]?\s+`), model.LevelH1, 0.95},
		{regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+`), model.LevelH3, 0.90},
		{regexp.MustCompile(`^\d+\.\d+\.?\s+`), model.LevelH2, 0.90},
		{regexp.MustCompile(`^\d+\.\s+`), model.LevelH1, 0.85},
		{regexp.MustCompile(`^[A-Z]\.\s+`), model.LevelH2, 0.80},
	}
}

// patternMatch is the result of a successful rule match.
type patternMatch struct {
	level     model.Level
	remainder string
	score     float64
}

// matchPattern tests a line's leading text against the ordered rule set.
// The first matching rule wins; a line matching no rule reports no match.
func matchPattern(text string, rules []PatternRule) (patternMatch, bool) {
	for _, rule := range rules {
		prefix := rule.Pattern.FindString(text)
		if prefix == "" {
			continue
		}
		return patternMatch{
			level:     rule.Level,
			remainder: strings.TrimSpace(text[len(prefix):]),
			score:     rule.Score,
		}, true
	}
	return patternMatch{}, false
}

// DetectPatternHeadings scans all lines for structural numbering and
// lettering prefixes, assigning each match a heading level from the
// pattern shape. Lines matching no pattern, and matches whose remaining
// text is empty, produce no candidate.
func DetectPatternHeadings(lines []ingest.TextLine, cfg Config) []Candidate {
	var candidates []Candidate

	for _, line := range lines {
		if !line.Valid() {
			continue
		}

		cleaned := CleanText(line.Text)
		if cleaned == "" {
			continue
		}

		match, ok := matchPattern(cleaned, cfg.PatternRules)
		if !ok || match.remainder == "" {
			continue
		}

		candidates = append(candidates, Candidate{
			Text:   match.remainder,
			Level:  match.level,
			Page:   line.Page,
			Y:      line.BBox.Y,
			Source: SourcePattern,
			Score:  match.score,
		})
	}

	return candidates
}
