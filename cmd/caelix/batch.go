package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/cobra"

	caelix "github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A"
)

func batchCmd() *cobra.Command {
	var inputDir string
	var outputDir string
	var workers int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Extract outlines for every PDF in a directory",
		Long: `Batch scans the input directory for PDF files and writes one
<name>.json outline per document to the output directory. Documents are
processed independently: a failure in one never aborts the rest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)

			entries, err := os.ReadDir(inputDir)
			if err != nil {
				return fmt.Errorf("read input dir: %w", err)
			}
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			var pdfs []string
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
					pdfs = append(pdfs, entry.Name())
				}
			}
			if len(pdfs) == 0 {
				logger.Info("no PDF files found", "dir", inputDir)
				return nil
			}

			if workers < 1 {
				workers = 1
			}

			// Each document runs an independent pipeline; the only shared
			// state is the read-only configuration inside the extractor.
			jobs := make(chan string)
			var failed atomic.Int64
			var wg sync.WaitGroup

			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for name := range jobs {
						if err := processDocument(inputDir, outputDir, name, logger); err != nil {
							failed.Add(1)
							logger.Error("document failed", "file", name, "error", err)
						}
					}
				}()
			}

			for _, name := range pdfs {
				jobs <- name
			}
			close(jobs)
			wg.Wait()

			logger.Info("batch complete",
				"total", len(pdfs),
				"failed", failed.Load(),
				"output", outputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input-dir", "i", "input", "directory containing PDF files")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "output", "directory for JSON outlines")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "number of documents processed concurrently")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// processDocument runs the pipeline for one PDF and writes its outline.
func processDocument(inputDir, outputDir, name string, logger *slog.Logger) error {
	path := filepath.Join(inputDir, name)
	logger.Debug("processing", "file", name)

	result, warnings, err := caelix.Open(path).WithLogger(logger).Outline()
	if err != nil {
		return err
	}
	if len(warnings) > 0 {
		logger.Warn("extraction warnings", "file", name, "warnings", caelix.FormatWarnings(warnings))
	}

	data, err := result.ToJSON()
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	outPath := filepath.Join(outputDir, base+".json")
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	logger.Debug("written", "file", outPath, "headings", len(result.Headings))
	return nil
}
