// Package pipeline provides the high-level orchestration for the tax return
// process: extract every uploaded document, aggregate income, and assemble
// the complete return.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/tax-return-agent/internal/assembly"
	"github.com/jonathan/tax-return-agent/internal/extraction"
	"github.com/jonathan/tax-return-agent/internal/llm"
	"github.com/jonathan/tax-return-agent/internal/types"
)

// ErrNoDocumentsParsed is returned by Run when every supplied document failed
// extraction. The per-document failures are reported in Result.Documents.
var ErrNoDocumentsParsed = errors.New("no documents could be parsed")

// DefaultConcurrency bounds how many documents are extracted at once. Each
// extraction may hold a model call, so the bound keeps request bursts tame.
const DefaultConcurrency = 4

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Stage    string `json:"stage"`
	Document string `json:"document,omitempty"`
	Message  string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs. Extraction runs
// concurrently, so callbacks must be safe for concurrent use.
type ProgressCallback func(event ProgressEvent)

// Document is one raw input to the pipeline: a display name and the plain
// text pulled out of the upload.
type Document struct {
	Name string
	Text string
}

// RunOptions holds configuration for running the pipeline.
type RunOptions struct {
	Documents   []Document
	Personal    types.PersonalInfo
	Client      llm.Client // optional; nil disables model fallback
	Concurrency int        // 0 means DefaultConcurrency
	OnProgress  ProgressCallback
}

// DocumentResult pairs an input document with its extraction outcome. Exactly
// one of Document and Err is set.
type DocumentResult struct {
	Name     string
	Document types.TaxDocument
	Err      error
}

// Result is the output of a full pipeline run.
type Result struct {
	Documents []DocumentResult
	Return    types.CompleteReturn
}

func (o *RunOptions) progress(stage, document, message string) {
	if o.OnProgress != nil {
		o.OnProgress(ProgressEvent{Stage: stage, Document: document, Message: message})
	}
}

// ExtractAll extracts every document concurrently, bounded by
// opts.Concurrency. One document failing never aborts the batch; each failure
// is captured in its slot of the returned slice, which preserves input order.
func ExtractAll(ctx context.Context, opts RunOptions) []DocumentResult {
	extractor := extraction.New(opts.Client)

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]DocumentResult, len(opts.Documents))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, doc := range opts.Documents {
		g.Go(func() error {
			opts.progress("extract", doc.Name, "extracting document")

			parsed, err := extractor.Extract(gCtx, doc.Text)
			results[i] = DocumentResult{Name: doc.Name, Document: parsed, Err: err}

			if err != nil {
				opts.progress("extract", doc.Name, fmt.Sprintf("skipped: %v", err))
			} else {
				opts.progress("extract", doc.Name, fmt.Sprintf("parsed as %s", parsed.Type()))
			}
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	return results
}

// Run executes the full pipeline: extract all documents, then assemble the
// return from the ones that parsed. If none parsed, the extraction results
// are returned alongside ErrNoDocumentsParsed so callers can report the
// per-document failures.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	results := ExtractAll(ctx, opts)

	parsed := make([]types.TaxDocument, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			parsed = append(parsed, r.Document)
		}
	}

	if len(parsed) == 0 {
		return &Result{Documents: results}, ErrNoDocumentsParsed
	}

	opts.progress("assemble", "", fmt.Sprintf("assembling return from %d documents", len(parsed)))

	ret, err := assembly.ComputeReturn(parsed, opts.Personal)
	if err != nil {
		return &Result{Documents: results}, err
	}

	opts.progress("assemble", "", ret.RefundOrOwed.Message)

	return &Result{Documents: results, Return: ret}, nil
}
