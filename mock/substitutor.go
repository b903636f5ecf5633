package mock

import (
	"github.com/fwojciec/doxyrst"
)

var _ doxyrst.LatexSubstitutor = (*LatexSubstitutor)(nil)

// LatexSubstitutor is a mock implementation of doxyrst.LatexSubstitutor.
type LatexSubstitutor struct {
	ReplaceLatexFn func(path, latexDir string) error
}

func (s *LatexSubstitutor) ReplaceLatex(path, latexDir string) error {
	return s.ReplaceLatexFn(path, latexDir)
}
