package outline

import (
	"math"
	"sort"

	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/ingest"
	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/model"
)

// titleCandidate is a run of adjacent first-page lines under scoring.
// Candidates are ephemeral: they are discarded once the winner is chosen.
type titleCandidate struct {
	text     string
	bbox     model.BBox
	fontSize float64
	bold     bool
	score    float64
}

// ExtractTitle selects the most likely document title from the upper
// region of the first page. Each candidate (a run of adjacent lines
// merged across small vertical gaps) receives a composite score from its
// size relative to body text, its boldness, and its horizontal centering.
// The highest score wins, topmost first on ties. When no candidate
// reaches the configured floor the title is the empty string, which is a
// valid, expected outcome.
func ExtractTitle(lines []ingest.TextLine, body BodyProfile, cfg Config) string {
	candidates := titleCandidates(lines, body, cfg)

	best := -1
	for i, c := range candidates {
		if c.score < cfg.TitleScoreFloor {
			continue
		}
		// Candidates are in vertical order, so a strict comparison keeps
		// the topmost of equally scored candidates.
		if best < 0 || c.score > candidates[best].score {
			best = i
		}
	}

	if best < 0 {
		return ""
	}
	return candidates[best].text
}

// titleCandidates builds and scores the merged candidate runs from the
// first page's title window.
func titleCandidates(lines []ingest.TextLine, body BodyProfile, cfg Config) []titleCandidate {
	window := windowLines(lines, cfg)
	if len(window) == 0 {
		return nil
	}

	sort.SliceStable(window, func(i, j int) bool {
		return window[i].BBox.Y < window[j].BBox.Y
	})

	var candidates []titleCandidate
	var run []ingest.TextLine

	flush := func() {
		if len(run) == 0 {
			return
		}
		if c, ok := buildTitleCandidate(run, body, cfg); ok {
			candidates = append(candidates, c)
		}
		run = nil
	}

	for _, line := range window {
		if len(run) > 0 {
			prev := run[len(run)-1]
			gap := line.BBox.Y - prev.BBox.Bottom()
			if gap > cfg.TitleLineGapRatio*math.Max(line.FontSize, prev.FontSize) {
				flush()
			}
		}
		run = append(run, line)
	}
	flush()

	return candidates
}

// windowLines filters to valid first-page lines whose top edge falls
// within the title window.
func windowLines(lines []ingest.TextLine, cfg Config) []ingest.TextLine {
	var window []ingest.TextLine
	for _, line := range lines {
		if !line.Valid() || line.Page != 0 {
			continue
		}
		if line.PageHeight > 0 && line.BBox.Y > line.PageHeight*cfg.TitleWindowFraction {
			continue
		}
		window = append(window, line)
	}
	return window
}

// buildTitleCandidate merges a run of adjacent lines into one scored
// candidate. Runs whose cleaned text falls outside the configured length
// bounds, or whose font size sits too close to body text, are rejected.
func buildTitleCandidate(run []ingest.TextLine, body BodyProfile, cfg Config) (titleCandidate, bool) {
	text := ""
	bbox := run[0].BBox
	fontSize := 0.0
	bold := false

	for _, line := range run {
		cleaned := CleanText(line.Text)
		if cleaned == "" {
			continue
		}
		if text != "" {
			text += " "
		}
		text += cleaned
		bbox = bbox.Union(line.BBox)
		if line.FontSize > fontSize {
			fontSize = line.FontSize
		}
		bold = bold || line.Bold
	}

	length := len([]rune(text))
	if length < cfg.MinTitleLength || length > cfg.MaxTitleLength {
		return titleCandidate{}, false
	}

	ratio := fontSize / body.BodyFontSize
	if ratio < cfg.TitleMinSizeRatio {
		return titleCandidate{}, false
	}

	c := titleCandidate{
		text:     text,
		bbox:     bbox,
		fontSize: fontSize,
		bold:     bold,
	}
	c.score = scoreTitleCandidate(c, run[0].PageWidth, ratio, cfg)
	return c, true
}

// scoreTitleCandidate computes the weighted composite score: the size
// ratio mapped onto [0,1], a fixed bold bonus, and centering proximity.
func scoreTitleCandidate(c titleCandidate, pageWidth, ratio float64, cfg Config) float64 {
	sizeScore := math.Min(1, math.Max(0, ratio-1))

	boldScore := 0.0
	if c.bold {
		boldScore = 1.0
	}

	centerScore := 0.0
	if pageWidth > 0 {
		pageCenter := pageWidth / 2
		offset := math.Abs(c.bbox.Center().X - pageCenter)
		centerScore = math.Max(0, 1-offset/(pageCenter*0.8))
	}

	return cfg.TitleSizeWeight*sizeScore +
		cfg.TitleBoldWeight*boldScore +
		cfg.TitleCenterWeight*centerScore
}
