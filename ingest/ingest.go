// Package ingest provides the layout-ingestion boundary for outline
// extraction: it turns a PDF document into positioned, styled text lines.
//
// The classification pipeline never reads raw document bytes; it consumes
// the [TextLine] values produced here (or by any other [Source]
// implementation supplied by the caller).
package ingest

import (
	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/model"
)

// TextLine is a single line of text on a page, with the layout attributes
// the detection stages score against. Lines are immutable once produced
// and owned by the pipeline for the duration of one document's processing.
type TextLine struct {
	// Text is the assembled line text
	Text string

	// Page is the 0-based page index
	Page int

	// FontSize is the dominant font size of the line, weighted by
	// character count across the line's runs
	FontSize float64

	// Bold reports whether the majority of the line's characters use a
	// bold-weighted font
	Bold bool

	// BBox is the line's bounding box in top-origin coordinates
	// (Y increases downward from the top of the page)
	BBox model.BBox

	// PageWidth is the width of the page the line appears on
	PageWidth float64

	// PageHeight is the height of the page the line appears on
	PageHeight float64
}

// Valid reports whether the line carries usable layout data. Lines with a
// non-positive font size or a degenerate bounding box are skipped by all
// scoring and detection stages rather than aborting the pipeline.
func (l TextLine) Valid() bool {
	return l.FontSize > 0 && l.BBox.IsValid()
}

// Source yields the ordered text lines of one document. Implementations
// own the underlying document resources; Close releases them.
//
// Lines returns every line of the document in page order, top to bottom
// within each page. An empty slice with a nil error is a valid result
// (an empty document is not an error).
type Source interface {
	Lines() ([]TextLine, error)
	Close() error
}
