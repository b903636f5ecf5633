package mock

import (
	"github.com/fwojciec/doxyrst"
)

var _ doxyrst.CompoundExtractor = (*CompoundExtractor)(nil)

// CompoundExtractor is a mock implementation of doxyrst.CompoundExtractor.
type CompoundExtractor struct {
	ExtractCompoundInfosFn func(path string) ([]*doxyrst.CompoundInfo, error)
}

func (e *CompoundExtractor) ExtractCompoundInfos(path string) ([]*doxyrst.CompoundInfo, error) {
	return e.ExtractCompoundInfosFn(path)
}
