package mock

import (
	"github.com/fwojciec/doxyrst"
)

var _ doxyrst.DotEscaper = (*DotEscaper)(nil)

// DotEscaper is a mock implementation of doxyrst.DotEscaper.
type DotEscaper struct {
	FilterDotEscapesFn func(path string) error
}

func (e *DotEscaper) FilterDotEscapes(path string) error {
	return e.FilterDotEscapesFn(path)
}
