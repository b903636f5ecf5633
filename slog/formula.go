package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/doxyrst"
)

// Ensure LoggingFormulaStore implements doxyrst.FormulaStore.
var _ doxyrst.FormulaStore = (*LoggingFormulaStore)(nil)

// LoggingFormulaStore wraps a FormulaStore with debug logging.
type LoggingFormulaStore struct {
	next   doxyrst.FormulaStore
	logger *slog.Logger
}

// NewLoggingFormulaStore creates a new LoggingFormulaStore.
func NewLoggingFormulaStore(next doxyrst.FormulaStore, logger *slog.Logger) *LoggingFormulaStore {
	return &LoggingFormulaStore{next: next, logger: logger}
}

// FindDicts delegates to the wrapped store and logs the operation.
func (s *LoggingFormulaStore) FindDicts(dir string) (paths []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find formula dictionaries",
			"dir", dir,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDicts(dir)
}

// LoadDict delegates to the wrapped store and logs the operation.
func (s *LoggingFormulaStore) LoadDict(path string) (dict doxyrst.FormulaDict, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("load formula dictionary",
			"path", path,
			"count", len(dict),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadDict(path)
}
