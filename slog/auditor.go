package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/spafrag"
)

// Ensure LoggingAuditor implements spafrag.AssetAuditor.
var _ spafrag.AssetAuditor = (*LoggingAuditor)(nil)

// LoggingAuditor wraps an AssetAuditor with debug logging.
type LoggingAuditor struct {
	next   spafrag.AssetAuditor
	logger *slog.Logger
}

// NewLoggingAuditor creates a new LoggingAuditor.
func NewLoggingAuditor(next spafrag.AssetAuditor, logger *slog.Logger) *LoggingAuditor {
	return &LoggingAuditor{next: next, logger: logger}
}

// Audit delegates to the wrapped auditor and logs the reference counts.
func (a *LoggingAuditor) Audit(page *spafrag.Page) (report *spafrag.AssetReport, err error) {
	defer func(begin time.Time) {
		var scripts, stylesheets, globals int
		if report != nil {
			scripts = len(report.Scripts)
			stylesheets = len(report.Stylesheets)
			globals = len(report.Globals())
		}
		a.logger.Debug("audit page",
			"path", page.Path,
			"scripts", scripts,
			"stylesheets", stylesheets,
			"globals", globals,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Audit(page)
}
