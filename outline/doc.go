// Package outline implements the classification pipeline that turns
// per-line layout data into a ranked document title and a deduplicated,
// ordered heading hierarchy.
//
// The pipeline runs five stages over one document's text lines:
//
//  1. [Profile] computes the dominant body-text font size.
//  2. [ExtractTitle] scores candidates in the upper region of page one.
//  3. [DetectPatternHeadings] matches structural numbering prefixes.
//  4. [DetectStyleHeadings] matches bold, oversized lines.
//  5. [Finalize] merges, deduplicates, and orders the candidates.
//
// [BuildOutline] runs all five stages. Each stage is a pure function over
// its inputs; a pipeline run holds no state beyond its own candidate
// lists, so independent documents may be processed concurrently with a
// shared read-only [Config].
//
// Heuristic thresholds and weights live in [Config] with documented
// defaults rather than scattered literals, so detection can be retuned
// per document domain and tested reproducibly.
package outline
