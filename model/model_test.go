package model

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestPointDistance(t *testing.T) {
	p1 := Point{X: 0, Y: 0}
	p2 := Point{X: 3, Y: 4}

	if got := p1.Distance(p2); math.Abs(got-5) > 1e-9 {
		t.Errorf("Distance = %f, want 5", got)
	}
}

func TestBBoxEdges(t *testing.T) {
	b := NewBBox(10, 20, 100, 50)

	if b.Left() != 10 {
		t.Errorf("Left() = %f, want 10", b.Left())
	}
	if b.Right() != 110 {
		t.Errorf("Right() = %f, want 110", b.Right())
	}
	if b.Top() != 20 {
		t.Errorf("Top() = %f, want 20", b.Top())
	}
	if b.Bottom() != 70 {
		t.Errorf("Bottom() = %f, want 70", b.Bottom())
	}

	c := b.Center()
	if c.X != 60 || c.Y != 45 {
		t.Errorf("Center() = (%f, %f), want (60, 45)", c.X, c.Y)
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(5, 5, 10, 10)

	u := a.Union(b)
	if u.X != 0 || u.Y != 0 || u.Width != 15 || u.Height != 15 {
		t.Errorf("Union = %+v, want {0 0 15 15}", u)
	}
}

func TestBBoxIsValid(t *testing.T) {
	tests := []struct {
		name  string
		bbox  BBox
		valid bool
	}{
		{"normal", NewBBox(0, 0, 10, 10), true},
		{"zero width", NewBBox(0, 0, 0, 10), false},
		{"negative height", NewBBox(0, 0, 10, -1), false},
	}

	for _, tt := range tests {
		if got := tt.bbox.IsValid(); got != tt.valid {
			t.Errorf("%s: IsValid() = %v, want %v", tt.name, got, tt.valid)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelUnknown, "unknown"},
		{LevelH1, "H1"},
		{LevelH2, "H2"},
		{LevelH3, "H3"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"H1", LevelH1},
		{"h2", LevelH2},
		{" H3 ", LevelH3},
		{"H4", LevelUnknown},
		{"", LevelUnknown},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLevelJSONRoundTrip(t *testing.T) {
	h := Heading{Level: LevelH2, Text: "Background", Page: 3}

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"level":"H2"`) {
		t.Errorf("marshaled heading = %s, want level encoded as \"H2\"", data)
	}

	var decoded Heading
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded != h {
		t.Errorf("round trip = %+v, want %+v", decoded, h)
	}
}

func TestLevelMarshalUnknown(t *testing.T) {
	if _, err := json.Marshal(LevelUnknown); err == nil {
		t.Error("expected error marshaling unknown level")
	}
}

func TestOutlineToJSON(t *testing.T) {
	o := &Outline{
		Title: "Test Document",
		Headings: []Heading{
			{Level: LevelH1, Text: "Introduction", Page: 0},
			{Level: LevelH2, Text: "Scope", Page: 1},
		},
	}

	data, err := o.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded Outline
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Title != o.Title {
		t.Errorf("Title = %q, want %q", decoded.Title, o.Title)
	}
	if len(decoded.Headings) != 2 {
		t.Fatalf("Headings count = %d, want 2", len(decoded.Headings))
	}
	if decoded.Headings[0] != o.Headings[0] {
		t.Errorf("Headings[0] = %+v, want %+v", decoded.Headings[0], o.Headings[0])
	}
}

func TestOutlineToJSONEmptyHeadings(t *testing.T) {
	o := &Outline{Title: ""}

	data, err := o.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), `"outline": []`) {
		t.Errorf("empty outline should encode as [], got %s", data)
	}
}

func TestHeadingsAtLevel(t *testing.T) {
	o := &Outline{
		Headings: []Heading{
			{Level: LevelH1, Text: "One", Page: 0},
			{Level: LevelH2, Text: "Two", Page: 0},
			{Level: LevelH1, Text: "Three", Page: 1},
		},
	}

	h1s := o.HeadingsAtLevel(LevelH1)
	if len(h1s) != 2 {
		t.Fatalf("H1 count = %d, want 2", len(h1s))
	}
	if h1s[1].Text != "Three" {
		t.Errorf("second H1 = %q, want %q", h1s[1].Text, "Three")
	}
}

func TestOutlineToMarkdownTOC(t *testing.T) {
	o := &Outline{
		Headings: []Heading{
			{Level: LevelH1, Text: "Introduction", Page: 0},
			{Level: LevelH2, Text: "Scope", Page: 0},
		},
	}

	toc := o.ToMarkdownTOC()
	want := "- Introduction\n  - Scope\n"
	if toc != want {
		t.Errorf("ToMarkdownTOC() = %q, want %q", toc, want)
	}

	var empty *Outline
	if empty.ToMarkdownTOC() != "" {
		t.Error("nil outline should produce empty TOC")
	}
}
