// Package slog provides logging decorators for doxyrst services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doxyrst"
)

// Ensure LoggingCompoundService implements doxyrst.CompoundService.
var _ doxyrst.CompoundService = (*LoggingCompoundService)(nil)

// LoggingCompoundService wraps a CompoundService with debug logging.
type LoggingCompoundService struct {
	next   doxyrst.CompoundService
	logger *slog.Logger
}

// NewLoggingCompoundService creates a new LoggingCompoundService.
func NewLoggingCompoundService(next doxyrst.CompoundService, logger *slog.Logger) *LoggingCompoundService {
	return &LoggingCompoundService{next: next, logger: logger}
}

// CreateCompound delegates to the wrapped service and logs the operation.
func (s *LoggingCompoundService) CreateCompound(ctx context.Context, rec *doxyrst.CompoundRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create compound",
			"name", rec.Name,
			"kind", rec.Kind,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateCompound(ctx, rec)
}

// FindCompoundByID delegates to the wrapped service and logs the operation.
func (s *LoggingCompoundService) FindCompoundByID(ctx context.Context, id string) (rec *doxyrst.CompoundRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find compound by id",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCompoundByID(ctx, id)
}

// FindCompounds delegates to the wrapped service and logs the operation.
func (s *LoggingCompoundService) FindCompounds(ctx context.Context, filter doxyrst.CompoundFilter) (recs []*doxyrst.CompoundRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find compounds",
			"count", len(recs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCompounds(ctx, filter)
}

// DeleteCompound delegates to the wrapped service and logs the operation.
func (s *LoggingCompoundService) DeleteCompound(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete compound",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteCompound(ctx, id)
}

// DeleteCompoundsByHeader delegates to the wrapped service and logs the operation.
func (s *LoggingCompoundService) DeleteCompoundsByHeader(ctx context.Context, header string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete compounds by header",
			"header", header,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteCompoundsByHeader(ctx, header)
}
