package services

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/essgate/internal/logging"
	"github.com/terraincognita07/essgate/internal/models"
)

// ErrorReporter records unexpected failures in the error log so operators
// can inspect them. Callers only ever show the generic message.
type ErrorReporter struct {
	logs   ErrorLogRepository
	logger logging.Logger
	now    func() time.Time
}

func NewErrorReporter(logs ErrorLogRepository, logger logging.Logger) *ErrorReporter {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &ErrorReporter{logs: logs, logger: logger, now: time.Now}
}

// Report stores the error with a stack trace and returns the log entry id.
func (reporter *ErrorReporter) Report(ctx context.Context, title string, err error) string {
	entry := models.ErrorLog{
		ID:        uuid.NewString(),
		Title:     title,
		Traceback: err.Error() + "\n\n" + string(debug.Stack()),
		CreatedAt: reporter.now().UTC(),
	}

	reporter.logger.Error(ctx, title, "error_log_id", entry.ID, "error", err)
	if reporter.logs == nil {
		return entry.ID
	}
	if storeErr := reporter.logs.Create(context.WithoutCancel(ctx), &entry); storeErr != nil {
		reporter.logger.Error(ctx, "store error log failed", "error_log_id", entry.ID, "error", storeErr)
	}
	return entry.ID
}
