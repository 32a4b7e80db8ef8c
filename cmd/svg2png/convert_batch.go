package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alnah/go-svg2png/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for per-file conversion. These never abort the batch.
var (
	ErrReadSource   = errors.New("failed to read SVG file")
	ErrWriteTarget  = errors.New("failed to write PNG file")
	ErrPoolAcquire  = errors.New("failed to initialize converter")
	ErrBatchAborted = errors.New("conversion interrupted")
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
	Skipped    bool // not started because the run was interrupted
}

// progress writes per-file notices. Lines from concurrent workers are
// serialized so each line stays whole and names its own file.
type progress struct {
	mu      sync.Mutex
	stdout  io.Writer
	stderr  io.Writer
	quiet   bool
	verbose bool
}

func (p *progress) starting(f FileToConvert) {
	if p.quiet {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.stdout, "Converting %s -> %s\n", f.InputPath, f.OutputPath)
}

func (p *progress) finished(r ConversionResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case r.Skipped:
		return
	case r.Err != nil:
		fmt.Fprintf(p.stderr, "Error converting %s: %v\n", r.InputPath, r.Err)
	case p.quiet:
		return
	case p.verbose:
		fmt.Fprintf(p.stdout, "Saved %s (%v)\n", r.OutputPath, r.Duration.Round(time.Millisecond))
	default:
		fmt.Fprintf(p.stdout, "Saved %s\n", r.OutputPath)
	}
}

// convertBatch processes files using the converter pool.
// With a pool of size 1, files run strictly one after another in job order.
// Results are returned in job order regardless of completion order.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, p *progress) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				// Converter creation failed, mark this worker's share as failed
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath:  files[idx].InputPath,
						OutputPath: files[idx].OutputPath,
						Err:        fmt.Errorf("%w: %w", ErrPoolAcquire, err),
					}
					p.finished(results[idx])
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath:  files[idx].InputPath,
						OutputPath: files[idx].OutputPath,
						Err:        ctx.Err(),
						Skipped:    true,
					}
					continue
				}
				p.starting(files[idx])
				results[idx] = convertFile(ctx, conv, files[idx])
				p.finished(results[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile reads, converts and writes a single file.
// Every failure is captured in the result; nothing here aborts the batch.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadSource, err)
		result.Duration = time.Since(start)
		return result
	}

	res, err := conv.Convert(ctx, content)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: creating output directory: %v", ErrWriteTarget, err)
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- PNGs are meant to be readable
	if err := fileutil.WriteFileAtomic(f.OutputPath, res.PNG, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteTarget, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded, failed and skipped conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Skipped   int
}

// countResults tallies conversion outcomes.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Skipped:
			summary.Skipped++
		case r.Err != nil:
			summary.Failed++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the first per-file error in job order, ignoring skips.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil && !r.Skipped {
			return r.Err
		}
	}
	return nil
}
