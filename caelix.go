// Package caelix provides a fluent API for extracting a structured
// outline (title plus nested H1-H3 headings with page positions) from a
// PDF document, using layout heuristics only: no machine-learning models,
// no network, no cross-document state.
//
// Basic usage:
//
//	result, warnings, err := caelix.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", caelix.FormatWarnings(warnings))
//	}
//	fmt.Println(result.Title)
//
// With a custom configuration:
//
//	cfg := outline.DefaultConfig()
//	cfg.TitleWindowFraction = 0.4
//	result, _, err := caelix.Open("report.pdf").WithConfig(cfg).Outline()
//
// For callers that already have positioned text lines, the lower-level
// ingest and outline packages are also available.
package caelix

import (
	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/ingest"
	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/outline"
)

// Open opens a PDF file and returns an Extractor for fluent
// configuration. The returned Extractor must be closed when done, either
// explicitly via Close() or implicitly by calling a terminal operation
// like Outline().
//
// Example:
//
//	result, warnings, err := caelix.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		config:   outline.DefaultConfig(),
	}
}

// FromSource creates an Extractor from an already-opened ingestion
// source. This is useful for non-PDF line sources and for tests.
// Note: The caller is responsible for closing the source.
//
// Example:
//
//	src, err := ingest.OpenPDF("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//	result, warnings, err := caelix.FromSource(src).Outline()
func FromSource(src ingest.Source) *Extractor {
	return &Extractor{
		source:       src,
		ownsSource:   false,
		sourceOpened: true,
		config:       outline.DefaultConfig(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOutline is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	result := caelix.MustOutline(caelix.Open("document.pdf").Outline())
func MustOutline[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
