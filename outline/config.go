package outline

// Config holds the heuristic constants used by the classification
// pipeline. All fields are read-only during a pipeline run; a single
// Config may be shared by concurrent runs.
type Config struct {
	// DefaultBodyFontSize is returned by the profiler when a document
	// has no usable text lines.
	// Default: 12.0
	DefaultBodyFontSize float64

	// FontSizePrecision is the bucket width used when counting font
	// sizes, absorbing floating-point noise in reported sizes.
	// Default: 0.1
	FontSizePrecision float64

	// TitleWindowFraction restricts title candidates to the top fraction
	// of the first page's height.
	// Default: 0.30
	TitleWindowFraction float64

	// TitleMinSizeRatio is the minimum font size relative to body text
	// for a line to be considered a title candidate.
	// Default: 1.2
	TitleMinSizeRatio float64

	// TitleSizeWeight, TitleBoldWeight, and TitleCenterWeight are the
	// weights of the three title score components. The size component is
	// the body-size ratio mapped to [0,1], the bold component is a fixed
	// bonus, and the center component rewards horizontal centering.
	// Defaults: 0.5, 0.2, 0.3
	TitleSizeWeight   float64
	TitleBoldWeight   float64
	TitleCenterWeight float64

	// TitleScoreFloor is the minimum composite score a candidate must
	// reach. Below the floor the title is the empty string, which is a
	// valid outcome rather than a failure.
	// Default: 0.30
	TitleScoreFloor float64

	// TitleLineGapRatio is the maximum vertical gap between adjacent
	// lines merged into one title candidate, as a fraction of the larger
	// line's font size.
	// Default: 0.8
	TitleLineGapRatio float64

	// MinTitleLength and MaxTitleLength bound the character count of a
	// title candidate's cleaned text.
	// Defaults: 4, 150
	MinTitleLength int
	MaxTitleLength int

	// PatternRules are the structural numbering patterns tested against
	// each line, most specific first. The first matching rule wins.
	PatternRules []PatternRule

	// StyleRatioH1, StyleRatioH2, and StyleRatioH3 are the font size
	// ratios relative to body text that assign heading levels in the
	// style detector, largest first. H3 is also the qualifying floor:
	// bold lines below body size times StyleRatioH3 are not headings.
	// Defaults: 1.5, 1.25, 1.1
	StyleRatioH1 float64
	StyleRatioH2 float64
	StyleRatioH3 float64

	// MaxHeadingLength is the character ceiling for style-detected
	// headings. Headings are short; this keeps bold body paragraphs out.
	// Default: 100
	MaxHeadingLength int

	// DedupeYEpsilon is the vertical distance within which two
	// candidates on the same page may refer to the same source line.
	// Default: 3.0
	DedupeYEpsilon float64
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		DefaultBodyFontSize: 12.0,
		FontSizePrecision:   0.1,
		TitleWindowFraction: 0.30,
		TitleMinSizeRatio:   1.2,
		TitleSizeWeight:     0.5,
		TitleBoldWeight:     0.2,
		TitleCenterWeight:   0.3,
		TitleScoreFloor:     0.30,
		TitleLineGapRatio:   0.8,
		MinTitleLength:      4,
		MaxTitleLength:      150,
		PatternRules:        DefaultPatternRules(),
		StyleRatioH1:        1.5,
		StyleRatioH2:        1.25,
		StyleRatioH3:        1.1,
		MaxHeadingLength:    100,
		DedupeYEpsilon:      3.0,
	}
}
