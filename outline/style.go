package outline

import (
	"math"

	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/ingest"
	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/model"
)

// DetectStyleHeadings scans all lines for bold text sized above body
// text. A line qualifies only when it is bold and its font size reaches
// body size times the H3 ratio; the level comes from the largest ratio
// threshold met. Over-long lines are excluded so bold body paragraphs do
// not masquerade as headings.
func DetectStyleHeadings(lines []ingest.TextLine, body BodyProfile, cfg Config) []Candidate {
	var candidates []Candidate

	for _, line := range lines {
		if !line.Valid() || !line.Bold {
			continue
		}

		cleaned := CleanText(line.Text)
		if cleaned == "" || len([]rune(cleaned)) > cfg.MaxHeadingLength {
			continue
		}

		ratio := line.FontSize / body.BodyFontSize
		if ratio < cfg.StyleRatioH3 {
			continue
		}

		var level model.Level
		switch {
		case ratio >= cfg.StyleRatioH1:
			level = model.LevelH1
		case ratio >= cfg.StyleRatioH2:
			level = model.LevelH2
		default:
			level = model.LevelH3
		}

		candidates = append(candidates, Candidate{
			Text:   cleaned,
			Level:  level,
			Page:   line.Page,
			Y:      line.BBox.Y,
			Source: SourceStyle,
			Score:  styleScore(ratio, cfg),
		})
	}

	return candidates
}

// styleScore maps the size ratio onto [0.40, 0.75]: higher the further
// the ratio sits above the qualifying threshold, and always below the
// pattern tiers' fixed scores.
func styleScore(ratio float64, cfg Config) float64 {
	span := cfg.StyleRatioH1 - cfg.StyleRatioH3
	if span <= 0 {
		return 0.40
	}
	excess := math.Min(1, math.Max(0, (ratio-cfg.StyleRatioH3)/span))
	return 0.40 + 0.35*excess
}
