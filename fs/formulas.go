package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/doxyrst"
)

// Ensure DictStore implements doxyrst.FormulaStore at compile time.
var _ doxyrst.FormulaStore = (*DictStore)(nil)

// DictStore reads formula dictionaries serialized by the docstring
// generator as latex_*.json files, one dictionary per docstring source.
type DictStore struct{}

// NewDictStore creates a new DictStore.
func NewDictStore() *DictStore {
	return &DictStore{}
}

// FindDicts returns the dictionary files under dir in sorted name order.
func (s *DictStore) FindDicts(dir string) ([]string, error) {
	return filepath.Glob(filepath.Join(dir, "latex_*.json"))
}

// LoadDict reads one JSON formula dictionary.
func (s *DictStore) LoadDict(path string) (doxyrst.FormulaDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var dict doxyrst.FormulaDict
	if err := json.NewDecoder(f).Decode(&dict); err != nil {
		return nil, fmt.Errorf("parsing formula dictionary %s: %w", filepath.Base(path), err)
	}
	return dict, nil
}
