//go:build !windows

package debug

import (
	"log/slog"
	"time"
)

// StartMemLogger is a no-op where no RSS query is implemented; heap stats are
// still covered by StartGoroutineLogger.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {}
