package outline

import (
	"math"
	"strings"

	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/ingest"
)

// BodyProfile is the document's typographical profile, computed once per
// document and read by all downstream stages.
type BodyProfile struct {
	// BodyFontSize is the dominant body-text font size. Always positive,
	// even for an empty document.
	BodyFontSize float64
}

// Profile computes the dominant body-text font size: the statistical mode
// of the lines' font sizes, weighted by character count so that long body
// paragraphs outweigh short headings. Ties prefer the smaller size, since
// body text is conventionally smaller than headings. Malformed lines
// contribute nothing; a document with no usable lines gets the configured
// default.
func Profile(lines []ingest.TextLine, cfg Config) BodyProfile {
	weights := make(map[float64]int)

	for _, line := range lines {
		if !line.Valid() {
			continue
		}
		chars := len([]rune(strings.TrimSpace(line.Text)))
		if chars == 0 {
			continue
		}
		size := roundTo(line.FontSize, cfg.FontSizePrecision)
		// Sub-precision sizes round to the zero bucket; treat them as
		// malformed so the profile stays positive.
		if size <= 0 {
			continue
		}
		weights[size] += chars
	}

	if len(weights) == 0 {
		return BodyProfile{BodyFontSize: cfg.DefaultBodyFontSize}
	}

	var best float64
	bestWeight := -1
	for size, weight := range weights {
		if weight > bestWeight || (weight == bestWeight && size < best) {
			best = size
			bestWeight = weight
		}
	}

	return BodyProfile{BodyFontSize: best}
}

// roundTo rounds v to the nearest multiple of precision.
func roundTo(v, precision float64) float64 {
	if precision <= 0 {
		return v
	}
	return math.Round(v/precision) * precision
}
