// Package slog provides logging decorators for spafrag services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spafrag"
)

// Ensure LoggingPageConverter implements spafrag.PageConverter.
var _ spafrag.PageConverter = (*LoggingPageConverter)(nil)

// LoggingPageConverter wraps a PageConverter with logging.
type LoggingPageConverter struct {
	next   spafrag.PageConverter
	logger *slog.Logger
}

// NewLoggingPageConverter creates a new LoggingPageConverter.
func NewLoggingPageConverter(next spafrag.PageConverter, logger *slog.Logger) *LoggingPageConverter {
	return &LoggingPageConverter{next: next, logger: logger}
}

// ConvertPage delegates to the wrapped converter and logs the outcome.
// Pages skipped for lacking a body are logged as warnings.
func (c *LoggingPageConverter) ConvertPage(ctx context.Context, path string) (conv *spafrag.Conversion, err error) {
	defer func(begin time.Time) {
		switch {
		case err == nil:
			c.logger.InfoContext(ctx, "convert page",
				"path", path,
				"dest", conv.Destination,
				"styles", conv.Styles,
				"scripts", conv.Scripts,
				"script", conv.ScriptPath,
				"hash", conv.FragmentHash,
				"source_hash", conv.SourceHash,
				"duration", time.Since(begin),
			)
		case spafrag.ErrorCode(err) == spafrag.ENOTFOUND:
			c.logger.WarnContext(ctx, "convert page skipped",
				"path", path,
				"reason", spafrag.ErrorMessage(err),
				"duration", time.Since(begin),
			)
		default:
			c.logger.ErrorContext(ctx, "convert page",
				"path", path,
				"duration", time.Since(begin),
				"err", err,
			)
		}
	}(time.Now())
	return c.next.ConvertPage(ctx, path)
}
