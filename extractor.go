package caelix

import (
	"fmt"
	"log/slog"

	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/ingest"
	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/model"
	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/outline"
)

// Extractor provides a fluent interface for extracting outlines from PDF
// documents. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	source   ingest.Source

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if the source has been opened

	// Configuration
	config outline.Config
	logger *slog.Logger

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		source:       e.source,
		ownsSource:   e.ownsSource,
		sourceOpened: e.sourceOpened,
		config:       e.config,
		logger:       e.logger,
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureSource opens the ingestion source if not already open.
func (e *Extractor) ensureSource() error {
	if e.sourceOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	src, err := ingest.OpenPDF(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.source = src
	e.ownsSource = true
	e.sourceOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsSource && e.source != nil {
		err := e.source.Close()
		e.source = nil
		e.ownsSource = false
		// A later terminal operation re-opens from the filename.
		e.sourceOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithConfig replaces the pipeline configuration. Use
// outline.DefaultConfig() as a starting point for selective overrides.
//
// Example:
//
//	cfg := outline.DefaultConfig()
//	cfg.MaxHeadingLength = 80
//	result, _, err := caelix.Open("doc.pdf").WithConfig(cfg).Outline()
func (e *Extractor) WithConfig(cfg outline.Config) *Extractor {
	newExt := e.clone()
	newExt.config = cfg
	return newExt
}

// WithLogger attaches a structured logger. The extractor logs line and
// warning counts at debug level; it never logs document content.
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.logger = logger
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Outline extracts the document title and heading hierarchy.
// This is a terminal operation that closes the underlying source.
//
// Returns the outline, any warnings encountered during processing, and
// an error if ingestion failed. An empty document is not an error: it
// yields an outline with an empty title and no headings, plus a warning.
//
// Example:
//
//	result, warnings, err := caelix.Open("document.pdf").Outline()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", caelix.FormatWarnings(warnings))
//	}
func (e *Extractor) Outline() (*model.Outline, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureSource(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	lines, err := e.source.Lines()
	if err != nil {
		return nil, e.warnings, fmt.Errorf("ingesting lines: %w", err)
	}

	e.collectWarnings(lines)

	result := outline.BuildOutline(lines, e.config)

	if e.logger != nil {
		e.logger.Debug("outline extracted",
			"lines", len(lines),
			"headings", len(result.Headings),
			"warnings", len(e.warnings))
	}

	return result, e.warnings, nil
}

// Title extracts just the document title. An empty string is a valid
// result when no first-page candidate scores above the configured floor.
// This is a terminal operation that closes the underlying source.
func (e *Extractor) Title() (string, []Warning, error) {
	result, warnings, err := e.Outline()
	if err != nil {
		return "", warnings, err
	}
	return result.Title, warnings, nil
}

// Headings extracts just the ordered heading list.
// This is a terminal operation that closes the underlying source.
//
// Example:
//
//	headings, _, err := caelix.Open("document.pdf").Headings()
//	for _, h := range headings {
//	    fmt.Printf("[%s] %s (page %d)\n", h.Level, h.Text, h.Page)
//	}
func (e *Extractor) Headings() ([]model.Heading, []Warning, error) {
	result, warnings, err := e.Outline()
	if err != nil {
		return nil, warnings, err
	}
	return result.Headings, warnings, nil
}

// collectWarnings records non-fatal issues observed during ingestion.
func (e *Extractor) collectWarnings(lines []ingest.TextLine) {
	if len(lines) == 0 {
		e.warnings = append(e.warnings, Warning{
			Code:    WarnEmptyDocument,
			Message: "document produced no text lines",
		})
	}

	if counter, ok := e.source.(interface{ SkippedRuns() int }); ok {
		if n := counter.SkippedRuns(); n > 0 {
			e.warnings = append(e.warnings, Warning{
				Code:    WarnSkippedRuns,
				Message: fmt.Sprintf("dropped %d malformed text runs", n),
			})
		}
	}
}
