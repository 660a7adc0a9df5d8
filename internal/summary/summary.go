// Package summary handles display of resolution results and statistics
package summary

import (
	"time"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults shows the end results of a resolution run
func DisplayResults(
	logger Logger,
	matchCount int64,
	patternCount int,
	duration time.Duration,
	quiet bool,
) {
	if !quiet {
		logger.Info("Resolved %d patterns to %d files.", patternCount, matchCount)
		logger.Info("Resolution complete in %v.", duration.Round(time.Millisecond))
	}
}
