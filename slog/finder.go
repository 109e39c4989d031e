package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spafrag"
)

// Ensure LoggingPageFinder implements spafrag.PageFinder.
var _ spafrag.PageFinder = (*LoggingPageFinder)(nil)

// LoggingPageFinder wraps a PageFinder with logging.
type LoggingPageFinder struct {
	next   spafrag.PageFinder
	logger *slog.Logger
}

// NewLoggingPageFinder creates a new LoggingPageFinder.
func NewLoggingPageFinder(next spafrag.PageFinder, logger *slog.Logger) *LoggingPageFinder {
	return &LoggingPageFinder{next: next, logger: logger}
}

// FindPages delegates to the wrapped finder and logs the operation.
func (f *LoggingPageFinder) FindPages(ctx context.Context, root string) (pages []string, err error) {
	defer func(begin time.Time) {
		f.logger.InfoContext(ctx, "find pages",
			"root", root,
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FindPages(ctx, root)
}
