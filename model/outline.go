package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Level represents the hierarchical level of a heading (H1-H3)
type Level int

const (
	LevelUnknown Level = iota
	LevelH1            // H1 - Main title/chapter
	LevelH2            // H2 - Major section
	LevelH3            // H3 - Subsection
)

// String returns a string representation of the heading level
func (l Level) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string such as "H1" into a Level.
// Matching is case-insensitive; unrecognized input returns LevelUnknown.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H1":
		return LevelH1
	case "H2":
		return LevelH2
	case "H3":
		return LevelH3
	default:
		return LevelUnknown
	}
}

// MarshalJSON encodes the level as its string form ("H1", "H2", "H3").
func (l Level) MarshalJSON() ([]byte, error) {
	if l < LevelH1 || l > LevelH3 {
		return nil, fmt.Errorf("cannot marshal unknown heading level %d", int(l))
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its string form.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed := ParseLevel(s)
	if parsed == LevelUnknown {
		return fmt.Errorf("unknown heading level %q", s)
	}
	*l = parsed
	return nil
}

// Heading is a single entry in a document outline
type Heading struct {
	// Level is the heading level (H1-H3)
	Level Level `json:"level"`

	// Text is the heading text with any numbering prefix removed
	Text string `json:"text"`

	// Page is the 0-based page index where the heading appears
	Page int `json:"page"`
}

// Outline is the structured result of processing one document.
// It is immutable once emitted: Headings are sorted ascending by
// (page, vertical position) with no two entries referring to the
// same source line.
type Outline struct {
	// Title is the extracted document title. Empty when no candidate
	// on the first page scored above the configured floor.
	Title string `json:"title"`

	// Headings are the detected headings in reading order
	Headings []Heading `json:"outline"`
}

// HeadingCount returns the number of headings in the outline
func (o *Outline) HeadingCount() int {
	if o == nil {
		return 0
	}
	return len(o.Headings)
}

// HeadingsAtLevel returns all headings at a specific level
func (o *Outline) HeadingsAtLevel(level Level) []Heading {
	if o == nil {
		return nil
	}

	var result []Heading
	for _, h := range o.Headings {
		if h.Level == level {
			result = append(result, h)
		}
	}
	return result
}

// ToJSON returns the outline as indented JSON, matching the layout
// written by the batch command: a "title" string and an "outline"
// array of {level, text, page} objects.
func (o *Outline) ToJSON() ([]byte, error) {
	out := *o
	if out.Headings == nil {
		out.Headings = []Heading{}
	}
	return json.MarshalIndent(&out, "", "    ")
}

// ToMarkdownTOC returns a markdown-formatted table of contents
func (o *Outline) ToMarkdownTOC() string {
	if o == nil || len(o.Headings) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, h := range o.Headings {
		indent := strings.Repeat("  ", int(h.Level)-1)
		sb.WriteString(indent)
		sb.WriteString("- ")
		sb.WriteString(h.Text)
		sb.WriteString("\n")
	}

	return sb.String()
}
