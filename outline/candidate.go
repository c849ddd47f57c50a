package outline

import (
	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/model"
)

// CandidateSource identifies which detection strategy produced a candidate
type CandidateSource int

const (
	// SourcePattern marks candidates from structural numbering patterns
	SourcePattern CandidateSource = iota

	// SourceStyle marks candidates from boldness and size heuristics
	SourceStyle
)

// String returns a string representation of the candidate source
func (s CandidateSource) String() string {
	switch s {
	case SourcePattern:
		return "pattern"
	case SourceStyle:
		return "style"
	default:
		return "unknown"
	}
}

// Candidate is a provisional heading classification produced by one of
// the two detectors. Both detectors may emit candidates for the same
// logical line; the finalizer resolves such duplicates.
type Candidate struct {
	// Text is the heading text, cleaned and with any matched numbering
	// prefix stripped
	Text string

	// Level is the assigned heading level (always H1-H3)
	Level model.Level

	// Page is the 0-based page index of the source line
	Page int

	// Y is the vertical position of the source line's top edge
	Y float64

	// Source is the detection strategy that produced this candidate
	Source CandidateSource

	// Score is the detection confidence. Pattern candidates carry fixed
	// per-tier scores; style scores scale with the size ratio.
	Score float64
}
