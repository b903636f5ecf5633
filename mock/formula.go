package mock

import (
	"github.com/fwojciec/doxyrst"
)

var _ doxyrst.FormulaStore = (*FormulaStore)(nil)

// FormulaStore is a mock implementation of doxyrst.FormulaStore.
type FormulaStore struct {
	FindDictsFn func(dir string) ([]string, error)
	LoadDictFn  func(path string) (doxyrst.FormulaDict, error)
}

func (s *FormulaStore) FindDicts(dir string) ([]string, error) {
	return s.FindDictsFn(dir)
}

func (s *FormulaStore) LoadDict(path string) (doxyrst.FormulaDict, error) {
	return s.LoadDictFn(path)
}
