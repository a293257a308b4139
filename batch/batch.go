// Package batch extracts documents from many URLs concurrently and stores
// the results.
package batch

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs processed at once.
const DefaultConcurrency = 10

// dedupeFalsePositiveRate is the chance that a new URL is taken for a
// duplicate and skipped.
const dedupeFalsePositiveRate = 0.0001

// Runner fetches, extracts and stores documents for a list of URLs.
type Runner struct {
	Fetcher     justext.Fetcher
	Extractor   justext.Extractor
	Writer      justext.DocumentWriter
	RateLimiter justext.DomainLimiter
	Options     justext.ExtractOptions
	Concurrency int
	RetryDelays []time.Duration

	// SkipEmpty drops documents without good paragraphs instead of storing them.
	SkipEmpty bool

	Logger *slog.Logger
}

// Result holds the outcome of a batch run.
type Result struct {
	Saved      int
	Failed     int
	Duplicates int
	Empty      int
	Paragraphs int
	Bytes      int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
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

// item is one URL on its way through the pipeline.
type item struct {
	position int
	url      string
	host     string
	doc      *justext.Document
	err      error
}

// Run processes urls. Duplicate URLs, after canonicalization, are
// processed once. Documents are stored in input order once every URL has
// been processed; per-URL failures are counted, not returned. The error
// is non-nil only when ctx ends the run early.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	var result Result

	seen := bloom.NewFilter(uint(max(len(urls), 1)), dedupeFalsePositiveRate)
	var items []item
	for _, raw := range urls {
		it := item{position: len(items), url: raw}
		u, err := Canonical(raw)
		if err != nil {
			it.err = err
		} else {
			it.url = u.String()
			it.host = u.Host
			if seen.TestAndAdd(it.url) {
				result.Duplicates++
				continue
			}
		}
		items = append(items, it)
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(items)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	resultCh := make(chan item, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, it := range items {
			g.Go(func() error {
				resultCh <- r.process(gctx, it)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	processed := make([]item, total)
	for it := range resultCh {
		completed.Add(1)
		processed[it.position] = it

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			URL:       it.url,
		}
		if it.err != nil {
			event.Type = ProgressFailed
			event.Error = it.err
		}
		progress(event)
	}

	for _, it := range processed {
		if it.err != nil {
			result.Failed++
			continue
		}

		good := it.doc.Good()
		if r.SkipEmpty && len(good) == 0 {
			result.Empty++
			continue
		}

		if err := r.Writer.CreateDocument(ctx, it.doc); err != nil {
			if r.Logger != nil {
				r.Logger.Error("store", "url", it.url, "error", err)
			}
			result.Failed++
			continue
		}

		result.Saved++
		result.Paragraphs += len(good)
		result.Bytes += len(it.doc.Text())
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	if err := ctx.Err(); err != nil {
		return &result, err
	}
	return &result, nil
}

// process fetches and extracts a single URL.
func (r *Runner) process(ctx context.Context, it item) item {
	if it.err != nil {
		return it
	}

	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(ctx, it.host); err != nil {
			it.err = err
			return it
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, it.url, r.Fetcher.Fetch, r.Logger, delays)
	if err != nil {
		it.err = err
		return it
	}

	it.doc, it.err = r.Extractor.Extract(ctx, html, it.url, r.Options)
	return it
}
