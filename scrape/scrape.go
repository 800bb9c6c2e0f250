// Package scrape runs the extraction pipeline over saved mosaic pages.
// It coordinates reading, extraction, normalization, writing and
// optional storage of processed records.
package scrape

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/mosaic"
	"github.com/fwojciec/mosaic/fs"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the documents processed at once by ScrapeAll.
const DefaultConcurrency = 4

// Scraper orchestrates the processing of saved result pages.
type Scraper struct {
	Documents  mosaic.DocumentReader
	Extractor  mosaic.Extractor
	Normalizer mosaic.Normalizer
	Records    mosaic.RecordWriter

	// Snapshots is optional. When set, every processed document is also
	// stored as a snapshot.
	Snapshots mosaic.SnapshotService

	Concurrency int
}

// Result holds the outcome of processing one document.
type Result struct {
	Input      string
	Output     string
	SnapshotID string
	Bytes      int // size of the decoded document
	Records    int
	Recovered  int // images recovered from inline scripts
	Preloaded  int // images taken from the lazy-load URL
	Missing    int // records without an image
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Input     string
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

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Scrape processes the document at input and writes its records to output.
// Extraction errors abort the run before anything is written.
func (s *Scraper) Scrape(ctx context.Context, input, output string) (*Result, error) {
	html, err := s.Documents.ReadDocument(ctx, input)
	if err != nil {
		return nil, err
	}

	raw, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	records := s.Normalizer.Normalize(html, raw)

	if err := s.Records.WriteRecords(ctx, output, records); err != nil {
		return nil, err
	}

	result := &Result{
		Input:   input,
		Output:  output,
		Bytes:   len(html),
		Records: len(records),
	}
	countImages(result, raw, records)

	if s.Snapshots != nil {
		snapshot := &mosaic.Snapshot{
			Name:        fs.DocumentName(input),
			SourcePath:  input,
			ContentHash: ComputeHash(html),
		}
		if err := s.Snapshots.CreateSnapshot(ctx, snapshot, records); err != nil {
			return nil, fmt.Errorf("store snapshot: %w", err)
		}
		result.SnapshotID = snapshot.ID
	}

	return result, nil
}

// ScrapeAll processes every input concurrently, writing each document's
// records into outDir. Results are returned in input order. Inputs that
// share a base name are rejected with EINVALID before any work starts. The
// first failure cancels the remaining work and is returned.
func (s *Scraper) ScrapeAll(ctx context.Context, inputs []string, outDir string, progress ProgressFunc) ([]*Result, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(inputs)

	outputs, err := outputPaths(inputs, outDir)
	if err != nil {
		return nil, err
	}

	// Serializes progress callbacks across workers.
	var mu sync.Mutex
	report := func(event ProgressEvent) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		progress(event)
	}

	report(ProgressEvent{
		Type:  ProgressStarted,
		Total: total,
	})

	results := make([]*Result, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := s.Scrape(gctx, input, outputs[i])
			n := int(completed.Add(1))
			if err != nil {
				report(ProgressEvent{
					Type:      ProgressFailed,
					Completed: n,
					Total:     total,
					Input:     input,
					Error:     err,
				})
				return err
			}

			results[i] = result
			report(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: n,
				Total:     total,
				Input:     input,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report(ProgressEvent{
		Type:      ProgressFinished,
		Completed: total,
		Total:     total,
	})

	return results, nil
}

// outputPaths derives the output path of every input and returns EINVALID
// when two inputs would write to the same file.
func outputPaths(inputs []string, outDir string) ([]string, error) {
	outputs := make([]string, len(inputs))
	owners := make(map[string]string, len(inputs))
	for i, input := range inputs {
		output := fs.OutputPath(input, outDir)
		if other, ok := owners[output]; ok {
			return nil, mosaic.Errorf(mosaic.EINVALID, "documents %q and %q both write to %s", other, input, output)
		}
		owners[output] = input
		outputs[i] = output
	}
	return outputs, nil
}

// countImages classifies where each record's image came from.
func countImages(result *Result, raw []*mosaic.RawRecord, records []*mosaic.Record) {
	for i, record := range records {
		switch {
		case record.Image == nil:
			result.Missing++
		case i < len(raw) && raw[i].PreloadURL != nil && *raw[i].PreloadURL == *record.Image:
			result.Preloaded++
		default:
			result.Recovered++
		}
	}
}
