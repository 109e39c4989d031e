package convert

import (
	"context"
	"fmt"

	"github.com/fwojciec/spafrag"
)

// Runner converts every page found below a root directory, one at a time.
type Runner struct {
	Finder    spafrag.PageFinder
	Converter spafrag.PageConverter
}

// Result holds the outcome of a run.
type Result struct {
	Total     int
	Converted int
	Skipped   int
	Failed    int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type       ProgressType
	Completed  int
	Total      int
	Path       string
	Conversion *spafrag.Conversion
	Error      error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressProcessing
	ProgressConverted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run finds the pages below root and converts each of them. A page that
// fails does not stop the run; only discovery errors and cancellation
// are returned.
func (r *Runner) Run(ctx context.Context, root string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	paths, err := r.Finder.FindPages(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("page discovery: %w", err)
	}

	result := &Result{Total: len(paths)}
	progress(ProgressEvent{Type: ProgressStarted, Total: result.Total})

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		progress(ProgressEvent{Type: ProgressProcessing, Completed: i, Total: result.Total, Path: path})

		conv, err := r.Converter.ConvertPage(ctx, path)
		event := ProgressEvent{Completed: i + 1, Total: result.Total, Path: path, Conversion: conv, Error: err}
		switch {
		case err == nil:
			result.Converted++
			event.Type = ProgressConverted
		case spafrag.ErrorCode(err) == spafrag.ENOTFOUND:
			result.Skipped++
			event.Type = ProgressSkipped
		default:
			result.Failed++
			event.Type = ProgressFailed
		}
		progress(event)
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: result.Total, Total: result.Total})
	return result, nil
}
