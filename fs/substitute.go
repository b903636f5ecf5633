package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/doxyrst"
)

// Ensure service implements interface.
var _ doxyrst.LatexSubstitutor = (*Substitutor)(nil)

// Substitutor rewrites formula placeholders in generated docstring files.
type Substitutor struct {
	store doxyrst.FormulaStore
}

// NewSubstitutor returns a new instance of Substitutor reading formula
// dictionaries through store.
func NewSubstitutor(store doxyrst.FormulaStore) *Substitutor {
	return &Substitutor{store: store}
}

// ReplaceLatex rewrites the generated docstring file at path in place,
// replacing formula placeholder tokens with the formulas found in the
// dictionary files under latexDir. A sibling <stem>.copy backup is taken
// first and doubles as the staging file: the rewritten content lands
// there, then moves over the original.
//
// Dictionaries apply in the order the store returns them, each result
// feeding the next. Tokens no dictionary covers stay verbatim; a formula
// dictionary may apply to only part of a multi-file document set.
func (s *Substitutor) ReplaceLatex(path, latexDir string) error {
	dicts, err := s.store.FindDicts(latexDir)
	if err != nil {
		return err
	}

	target := filepath.Join(filepath.Dir(path), stem(path)+".copy")
	if err := copyFile(path, target); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lines := splitLines(string(content))

	for _, dictPath := range dicts {
		dict, err := s.store.LoadDict(dictPath)
		if err != nil {
			return err
		}
		lines = doxyrst.SubstituteFormulas(lines, dict)
	}

	if err := os.WriteFile(target, []byte(strings.Join(lines, "")), 0644); err != nil {
		return err
	}
	return moveFile(target, path)
}

// splitLines splits s into lines, line terminators kept.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
