package outline

import (
	"math"
	"sort"
	"strings"

	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/model"
)

// Finalize merges the two detectors' candidate lists into the final
// outline: duplicates referring to the same source line are merged with
// the pattern-sourced level winning conflicts, survivors are sorted by
// (page, vertical position), and entries that are empty or restate the
// title are dropped.
func Finalize(pattern, style []Candidate, title string, cfg Config) *model.Outline {
	combined := make([]Candidate, 0, len(pattern)+len(style))
	combined = append(combined, pattern...)
	combined = append(combined, style...)

	merged := dedupe(combined, cfg)

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Page != merged[j].Page {
			return merged[i].Page < merged[j].Page
		}
		return merged[i].Y < merged[j].Y
	})

	outline := &model.Outline{Title: title}
	for _, c := range merged {
		text := strings.TrimSpace(c.Text)
		if text == "" || strings.EqualFold(text, title) {
			continue
		}
		outline.Headings = append(outline.Headings, model.Heading{
			Level: c.Level,
			Text:  text,
			Page:  c.Page,
		})
	}

	return outline
}

// dedupe collapses candidates that refer to the same source line: same
// page, vertical position within epsilon, and near-identical text.
func dedupe(candidates []Candidate, cfg Config) []Candidate {
	var merged []Candidate

	for _, c := range candidates {
		found := false
		for i := range merged {
			if sameSourceLine(merged[i], c, cfg) {
				merged[i] = mergeCandidates(merged[i], c)
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, c)
		}
	}

	return merged
}

// sameSourceLine reports whether two candidates refer to one logical
// line. Text comparison is case-insensitive and tolerates a stripped
// numbering prefix: "1. Introduction" and "Introduction" from the same
// position are one line seen by both detectors.
func sameSourceLine(a, b Candidate, cfg Config) bool {
	if a.Page != b.Page || math.Abs(a.Y-b.Y) > cfg.DedupeYEpsilon {
		return false
	}

	at := strings.ToLower(strings.TrimSpace(a.Text))
	bt := strings.ToLower(strings.TrimSpace(b.Text))
	if at == bt {
		return true
	}
	if len(at) > len(bt) {
		return strings.HasSuffix(at, bt)
	}
	return strings.HasSuffix(bt, at)
}

// mergeCandidates resolves a duplicate pair. The pattern-sourced
// candidate's level and text win a cross-source conflict; within one
// source the higher score wins.
func mergeCandidates(a, b Candidate) Candidate {
	if a.Source == b.Source {
		if b.Score > a.Score {
			return b
		}
		return a
	}
	if a.Source == SourcePattern {
		return a
	}
	return b
}
