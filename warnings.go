package caelix

import "strings"

// WarningCode identifies a class of non-fatal extraction issue.
type WarningCode string

const (
	// WarnEmptyDocument indicates the document yielded no text lines.
	// The pipeline still emits a valid, empty outline.
	WarnEmptyDocument WarningCode = "empty_document"

	// WarnSkippedRuns indicates malformed text runs (non-positive font
	// size, degenerate geometry) were dropped during ingestion.
	WarnSkippedRuns WarningCode = "skipped_runs"
)

// Warning describes a non-fatal issue encountered while processing a
// document. Extraction succeeded but results may be imperfect.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns the warning as "code: message".
func (w Warning) String() string {
	return string(w.Code) + ": " + w.Message
}

// FormatWarnings joins warnings into a single semicolon-separated string
// suitable for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
