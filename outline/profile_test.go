package outline

import (
	"testing"

	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/ingest"
)

func TestProfileWeightsByCharacterCount(t *testing.T) {
	// Two short heading lines at 16pt against one long body line at
	// 10pt: character weighting makes 10pt win despite fewer lines.
	lines := []ingest.TextLine{
		makeLine("Overview", 0, 16, true, 72, 50, 100),
		makeLine("Details", 0, 16, true, 72, 80, 90),
		makeLine("This single paragraph carries far more characters than both headings combined, which is the point.", 0, 10, false, 72, 120, 450),
	}

	profile := Profile(lines, DefaultConfig())
	if profile.BodyFontSize != 10 {
		t.Errorf("BodyFontSize = %f, want 10", profile.BodyFontSize)
	}
}

func TestProfileTieBreakPrefersSmaller(t *testing.T) {
	// Equal weight at two sizes: the smaller one is body text.
	lines := []ingest.TextLine{
		makeLine("aaaaaaaaaa", 0, 10, false, 72, 50, 100),
		makeLine("bbbbbbbbbb", 0, 12, false, 72, 80, 100),
	}

	profile := Profile(lines, DefaultConfig())
	if profile.BodyFontSize != 10 {
		t.Errorf("BodyFontSize = %f, want 10 on tie", profile.BodyFontSize)
	}
}

func TestProfileBucketsAbsorbFloatNoise(t *testing.T) {
	lines := []ingest.TextLine{
		makeLine("first body line with some text", 0, 10.04, false, 72, 50, 300),
		makeLine("second body line with some text", 0, 9.96, false, 72, 70, 300),
		makeLine("HEADING", 0, 16, true, 72, 20, 100),
	}

	profile := Profile(lines, DefaultConfig())
	if profile.BodyFontSize != 10 {
		t.Errorf("BodyFontSize = %f, want 10 after bucketing", profile.BodyFontSize)
	}
}

func TestProfileEmptyDocument(t *testing.T) {
	cfg := DefaultConfig()

	profile := Profile(nil, cfg)
	if profile.BodyFontSize != cfg.DefaultBodyFontSize {
		t.Errorf("BodyFontSize = %f, want default %f", profile.BodyFontSize, cfg.DefaultBodyFontSize)
	}
}

func TestProfileSkipsMalformedLines(t *testing.T) {
	malformed := makeLine("broken line with plenty of characters to dominate", 0, 0, false, 72, 50, 300)
	lines := []ingest.TextLine{
		malformed,
		makeLine("valid body text", 0, 11, false, 72, 80, 120),
	}

	profile := Profile(lines, DefaultConfig())
	if profile.BodyFontSize != 11 {
		t.Errorf("BodyFontSize = %f, want 11 (malformed line skipped)", profile.BodyFontSize)
	}
}

func TestProfileSubPrecisionSizeFallsBackToDefault(t *testing.T) {
	// A font size below the rounding precision would bucket to zero.
	// Such lines must count as malformed so the profile stays positive.
	cfg := DefaultConfig()
	lines := []ingest.TextLine{
		makeLine("tiny but technically valid line of text", 0, 0.04, false, 72, 50, 300),
	}

	profile := Profile(lines, cfg)
	if profile.BodyFontSize <= 0 {
		t.Fatalf("BodyFontSize = %f, want > 0", profile.BodyFontSize)
	}
	if profile.BodyFontSize != cfg.DefaultBodyFontSize {
		t.Errorf("BodyFontSize = %f, want default %f", profile.BodyFontSize, cfg.DefaultBodyFontSize)
	}
}

func TestProfileSubPrecisionSizeIgnoredAmongValidLines(t *testing.T) {
	lines := []ingest.TextLine{
		makeLine("tiny line that would dominate by character count if it were counted", 0, 0.04, false, 72, 50, 300),
		makeLine("normal body text", 0, 11, false, 72, 80, 140),
	}

	profile := Profile(lines, DefaultConfig())
	if profile.BodyFontSize != 11 {
		t.Errorf("BodyFontSize = %f, want 11 (sub-precision line skipped)", profile.BodyFontSize)
	}
}

func TestProfileSingleLineDocument(t *testing.T) {
	lines := []ingest.TextLine{
		makeLine("only line", 0, 9.5, false, 72, 50, 80),
	}

	profile := Profile(lines, DefaultConfig())
	if profile.BodyFontSize <= 0 {
		t.Fatalf("BodyFontSize = %f, want > 0", profile.BodyFontSize)
	}
	if profile.BodyFontSize != 9.5 {
		t.Errorf("BodyFontSize = %f, want 9.5", profile.BodyFontSize)
	}
}
