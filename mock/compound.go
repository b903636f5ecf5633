package mock

import (
	"context"

	"github.com/fwojciec/doxyrst"
)

var _ doxyrst.CompoundService = (*CompoundService)(nil)

// CompoundService is a mock implementation of doxyrst.CompoundService.
type CompoundService struct {
	CreateCompoundFn          func(ctx context.Context, rec *doxyrst.CompoundRecord) error
	FindCompoundByIDFn        func(ctx context.Context, id string) (*doxyrst.CompoundRecord, error)
	FindCompoundsFn           func(ctx context.Context, filter doxyrst.CompoundFilter) ([]*doxyrst.CompoundRecord, error)
	DeleteCompoundFn          func(ctx context.Context, id string) error
	DeleteCompoundsByHeaderFn func(ctx context.Context, header string) error
}

func (s *CompoundService) CreateCompound(ctx context.Context, rec *doxyrst.CompoundRecord) error {
	return s.CreateCompoundFn(ctx, rec)
}

func (s *CompoundService) FindCompoundByID(ctx context.Context, id string) (*doxyrst.CompoundRecord, error) {
	return s.FindCompoundByIDFn(ctx, id)
}

func (s *CompoundService) FindCompounds(ctx context.Context, filter doxyrst.CompoundFilter) ([]*doxyrst.CompoundRecord, error) {
	return s.FindCompoundsFn(ctx, filter)
}

func (s *CompoundService) DeleteCompound(ctx context.Context, id string) error {
	return s.DeleteCompoundFn(ctx, id)
}

func (s *CompoundService) DeleteCompoundsByHeader(ctx context.Context, header string) error {
	return s.DeleteCompoundsByHeaderFn(ctx, header)
}
