package ingest

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"rsc.io/pdf"

	"github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A/model"
)

// Default page dimensions (US Letter points) used when a page carries no
// resolvable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// PDFSource reads positioned, font-attributed text lines from a PDF file.
// It implements [Source] on top of rsc.io/pdf, which provides per-run font
// name, font size, and baseline position.
type PDFSource struct {
	file    *os.File
	reader  *pdf.Reader
	skipped int
}

// OpenPDF opens a PDF file for ingestion. The returned source must be
// closed when done.
func OpenPDF(path string) (*PDFSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat pdf: %w", err)
	}

	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("parse pdf: %w", err)
	}

	return &PDFSource{file: f, reader: r}, nil
}

// Close releases the underlying file.
// It is safe to call Close multiple times.
func (s *PDFSource) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}

// PageCount returns the number of pages in the document.
func (s *PDFSource) PageCount() int {
	return s.reader.NumPage()
}

// SkippedRuns returns the number of malformed text runs dropped during the
// most recent Lines call. Malformed runs never abort ingestion; callers
// surface the count through the warning channel.
func (s *PDFSource) SkippedRuns() int {
	return s.skipped
}

// Lines extracts every text line of the document in page order, top to
// bottom within each page. Pages whose content streams cannot be decoded
// contribute no lines.
func (s *PDFSource) Lines() ([]TextLine, error) {
	s.skipped = 0

	var all []TextLine
	for i := 1; i <= s.reader.NumPage(); i++ {
		page := s.reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		width, height := pageSize(page)
		runs := pageText(page)

		lines, skipped := assembleLines(runs, i-1, width, height)
		s.skipped += skipped
		all = append(all, lines...)
	}

	return all, nil
}

// pageText extracts the raw text runs for a page. rsc.io/pdf panics on
// some malformed content streams; such pages yield no runs.
func pageText(page pdf.Page) (texts []pdf.Text) {
	defer func() {
		if recover() != nil {
			texts = nil
		}
	}()
	return page.Content().Text
}

// pageSize resolves the page dimensions from the MediaBox, walking the
// Parent chain for inherited values. Falls back to US Letter.
func pageSize(page pdf.Page) (width, height float64) {
	defer func() {
		if recover() != nil {
			width, height = defaultPageWidth, defaultPageHeight
		}
	}()

	v := page.V
	for depth := 0; depth < 16 && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			x0 := box.Index(0).Float64()
			y0 := box.Index(1).Float64()
			x1 := box.Index(2).Float64()
			y1 := box.Index(3).Float64()
			if x1 > x0 && y1 > y0 {
				return x1 - x0, y1 - y0
			}
		}
		v = v.Key("Parent")
	}

	return defaultPageWidth, defaultPageHeight
}

// isBoldFont reports whether a font name indicates a bold weight.
func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy") ||
		strings.Contains(lower, "semibold") ||
		strings.Contains(lower, "demibold")
}

// assembleLines groups raw text runs into lines by baseline proximity and
// returns them top to bottom. Runs with a non-positive font size are
// dropped and counted; runs with no text are ignored.
//
// The input Y coordinates are PDF bottom-origin baselines; the produced
// line boxes use top-origin coordinates.
func assembleLines(runs []pdf.Text, pageIndex int, pageWidth, pageHeight float64) ([]TextLine, int) {
	skipped := 0
	kept := make([]pdf.Text, 0, len(runs))
	for _, r := range runs {
		if r.S == "" {
			continue
		}
		if r.FontSize <= 0 {
			skipped++
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == 0 {
		return nil, skipped
	}

	// Sort top to bottom, left to right. Runs within half a font size of
	// each other vertically belong to the same baseline. Stable sort
	// preserves stream order for overlapping runs.
	sort.SliceStable(kept, func(i, j int) bool {
		yDiff := kept[i].Y - kept[j].Y
		if abs(yDiff) > kept[i].FontSize*0.5 {
			return yDiff > 0 // Higher baseline first (PDF coordinates)
		}
		return kept[i].X < kept[j].X
	})

	var lines []TextLine
	var current []pdf.Text

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, buildLine(current, pageIndex, pageWidth, pageHeight))
			current = nil
		}
	}

	for _, r := range kept {
		if len(current) > 0 {
			prev := current[len(current)-1]
			if abs(r.Y-prev.Y) > maxFloat(r.FontSize, prev.FontSize)*0.5 {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()

	return lines, skipped
}

// buildLine assembles one TextLine from runs sharing a baseline.
func buildLine(runs []pdf.Text, pageIndex int, pageWidth, pageHeight float64) TextLine {
	var sb strings.Builder
	var lastEndX float64

	// Dominant font size and weight, weighted by character count.
	sizeWeight := make(map[float64]int)
	boldChars, totalChars := 0, 0
	minX, maxX := runs[0].X, runs[0].X+runs[0].W
	baseline := runs[0].Y
	maxSize := 0.0

	for i, r := range runs {
		// Word gaps in justified text can shrink to a quarter em, so the
		// space threshold sits below that.
		if i > 0 && r.X-lastEndX > r.FontSize*0.2 {
			sb.WriteString(" ")
		}
		sb.WriteString(r.S)
		lastEndX = r.X + r.W

		n := len([]rune(r.S))
		sizeWeight[r.FontSize] += n
		totalChars += n
		if isBoldFont(r.Font) {
			boldChars += n
		}

		if r.X < minX {
			minX = r.X
		}
		if r.X+r.W > maxX {
			maxX = r.X + r.W
		}
		if r.FontSize > maxSize {
			maxSize = r.FontSize
			baseline = r.Y
		}
	}

	fontSize := 0.0
	bestWeight := -1
	for size, weight := range sizeWeight {
		if weight > bestWeight || (weight == bestWeight && size > fontSize) {
			bestWeight = weight
			fontSize = size
		}
	}

	// Approximate the line box from the baseline: ascent above, a small
	// descent below.
	top := pageHeight - baseline - maxSize
	if top < 0 {
		top = 0
	}

	return TextLine{
		Text:       strings.TrimSpace(sb.String()),
		Page:       pageIndex,
		FontSize:   fontSize,
		Bold:       totalChars > 0 && boldChars*2 >= totalChars,
		BBox:       model.NewBBox(minX, top, maxX-minX, maxSize*1.2),
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
