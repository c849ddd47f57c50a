package outline

import (
	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/ingest"
	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/model"
)

// BuildOutline runs the full classification pipeline over one document's
// lines: typographical profiling, title scoring, both heading detectors,
// and finalization. The result is deterministic for a given line sequence
// and configuration.
func BuildOutline(lines []ingest.TextLine, cfg Config) *model.Outline {
	body := Profile(lines, cfg)
	title := ExtractTitle(lines, body, cfg)
	pattern := DetectPatternHeadings(lines, cfg)
	style := DetectStyleHeadings(lines, body, cfg)
	return Finalize(pattern, style, title, cfg)
}
