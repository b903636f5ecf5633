// Package pipeline provides documentation post-processing orchestration.
// It coordinates XML lookup, escape filtering, compound extraction, and
// indexing for the headers of a documented component.
package pipeline

import (
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/fwojciec/doxyrst"
	"golang.org/x/sync/errgroup"
)

// Postprocessor orchestrates post-processing of doxygen build output.
type Postprocessor struct {
	Locator        doxyrst.XMLLocator
	Escaper        doxyrst.DotEscaper
	Extractor      doxyrst.CompoundExtractor
	Substitutor    doxyrst.LatexSubstitutor
	Compounds      doxyrst.CompoundService
	CaseSenseNames bool
	Concurrency    int
}

// Result holds the outcome of a post-processing operation. Processed and
// Failed count the operation's targets (headers, or docstring files for
// substitution); Files counts XML files rewritten and Compounds the
// records indexed.
type Result struct {
	Processed int
	Failed    int
	Files     int
	Compounds int
}

// ProgressEvent reports progress during a post-processing operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Target    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting post-processing progress.
type ProgressFunc func(event ProgressEvent)

// headerResult holds the outcome of processing a single header.
type headerResult struct {
	position int
	header   string
	files    int
	records  []*doxyrst.CompoundRecord
	err      error
}

// ProcessHeaders post-processes the XML output of every header and indexes
// the extracted compounds. Headers are processed concurrently; index
// writes happen sequentially afterwards, in header order. The progress
// callback, if provided, receives events as processing proceeds.
func (p *Postprocessor) ProcessHeaders(ctx context.Context, xmlDir string, headers []string, progress ProgressFunc) (*Result, error) {
	if len(headers) == 0 {
		return &Result{}, nil
	}

	// Set up concurrency
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	// Channel for collecting results
	resultCh := make(chan headerResult, len(headers))

	// Progress tracking
	var completed atomic.Int64
	total := len(headers)

	// Notify start
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	// Start workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, header := range headers {
			i, header := i, header
			g.Go(func() error {
				result := p.processHeader(gctx, i, xmlDir, header)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]headerResult, len(headers))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failedCount++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					Target:    result.header,
					Error:     result.err,
				})
			}
		} else {
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Load()),
					Total:     total,
					Target:    result.header,
				})
			}
		}
	}

	// Index compounds and accumulate stats
	var processedCount int
	var totalFiles int
	var totalCompounds int

	for _, result := range results {
		if result.err != nil {
			continue
		}

		if err := p.indexRecords(ctx, result.header, result.records); err != nil {
			failedCount++
			continue
		}

		processedCount++
		totalFiles += result.files
		totalCompounds += len(result.records)
	}

	// Notify finished
	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Processed: processedCount,
		Failed:    failedCount,
		Files:     totalFiles,
		Compounds: totalCompounds,
	}, nil
}

// ProcessHeader post-processes the XML output of a single header and
// indexes the extracted compounds.
func (p *Postprocessor) ProcessHeader(ctx context.Context, xmlDir, header string) (*Result, error) {
	result := p.processHeader(ctx, 0, xmlDir, header)
	if result.err != nil {
		return nil, result.err
	}
	if err := p.indexRecords(ctx, header, result.records); err != nil {
		return nil, err
	}
	return &Result{
		Processed: 1,
		Files:     result.files,
		Compounds: len(result.records),
	}, nil
}

// processHeader rewrites and reads the XML files of a single header.
func (p *Postprocessor) processHeader(ctx context.Context, position int, xmlDir, header string) headerResult {
	result := headerResult{
		position: position,
		header:   header,
	}

	// Locate the header's XML output
	files, err := p.Locator.FindXMLFiles(xmlDir, header, p.CaseSenseNames)
	if err != nil {
		result.err = err
		return result
	}

	for _, file := range files {
		// Check context cancellation
		if err := ctx.Err(); err != nil {
			result.err = err
			return result
		}

		// Unescape LaTeX dot commands in place
		if err := p.Escaper.FilterDotEscapes(file); err != nil {
			result.err = err
			return result
		}

		// Extract compound summaries
		infos, err := p.Extractor.ExtractCompoundInfos(file)
		if err != nil {
			result.err = err
			return result
		}

		for _, info := range infos {
			result.records = append(result.records, &doxyrst.CompoundRecord{
				Name:    info.Name,
				Kind:    info.Kind,
				Brief:   info.Brief,
				Header:  header,
				XMLFile: filepath.Base(file),
			})
		}
	}

	result.files = len(files)
	return result
}

// indexRecords replaces the indexed compounds of header with records.
// Without a compound service indexing is skipped.
func (p *Postprocessor) indexRecords(ctx context.Context, header string, records []*doxyrst.CompoundRecord) error {
	if p.Compounds == nil {
		return nil
	}

	if err := p.Compounds.DeleteCompoundsByHeader(ctx, header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := p.Compounds.CreateCompound(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// RunComponent post-processes one manifest component: its headers first,
// then formula substitution over its docstring files. Substitution runs
// only when the component names both docstring files and a dictionary
// directory.
func (p *Postprocessor) RunComponent(ctx context.Context, xmlDir string, comp Component, progress ProgressFunc) (*Result, error) {
	result, err := p.ProcessHeaders(ctx, xmlDir, comp.Headers, progress)
	if err != nil {
		return nil, err
	}

	if len(comp.DocFiles) > 0 && comp.LatexDir != "" {
		sub, err := p.SubstituteFiles(ctx, comp.LatexDir, comp.DocFiles, progress)
		if err != nil {
			return nil, err
		}
		result.Processed += sub.Processed
		result.Failed += sub.Failed
	}

	return result, nil
}

// SubstituteFiles rewrites formula placeholders in generated docstring
// files, applying the dictionaries found under latexDir. Files are
// rewritten sequentially: a failed file is reported and skipped, the rest
// still proceed.
func (p *Postprocessor) SubstituteFiles(ctx context.Context, latexDir string, files []string, progress ProgressFunc) (*Result, error) {
	total := len(files)

	// Notify start
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	var result Result
	for i, file := range files {
		// Check context cancellation
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := p.Substitutor.ReplaceLatex(file, latexDir); err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     total,
					Target:    file,
					Error:     err,
				})
			}
			continue
		}

		result.Processed++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: i + 1,
				Total:     total,
				Target:    file,
			})
		}
	}

	// Notify finished
	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &result, nil
}

// TruncatePath shortens a file path for display, keeping the end which is
// more informative.
func TruncatePath(path string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return path[:min(len(path), maxLen)]
	}
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}
