package doxyrst

import (
	"slices"
	"strconv"
	"strings"
)

// Formula labels. Dictionaries written by the docstring generator label
// every formula either inline or display-style; any label other than
// "inline" is treated as a block formula during substitution.
const (
	LabelInline = "inline"
	LabelBlock  = "block"
)

// Formula is one LaTeX formula extracted during docstring generation and
// stashed in a per-directory dictionary file, keyed by its placeholder id.
type Formula struct {
	Latex string `json:"latex"`
	Label string `json:"label"`
}

// FormulaDict maps placeholder ids to formulas, as loaded from one
// dictionary file.
type FormulaDict map[int]Formula

// FormulaToken returns the placeholder token standing in for formula id in
// generated docstring files.
//
// e.g. FormulaToken(12) → "FORMULA12_"
func FormulaToken(id int) string {
	return "FORMULA" + strconv.Itoa(id) + "_"
}

// EscapeLatex doubles every backslash in s so the formula survives literal
// embedding in a docstring.
func EscapeLatex(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}

// SubstituteFormulas replaces the placeholder tokens of dict in lines and
// returns the rewritten lines. Inline formulas are embedded verbatim; any
// other label is re-indented to the leading-whitespace width of the line
// under rewrite before embedding. Backslashes in the formula source are
// escaped first. Tokens with no matching dictionary entry survive verbatim.
//
// Formulas apply in ascending id order, each pass feeding the next, so the
// result is deterministic regardless of map iteration order.
func SubstituteFormulas(lines []string, dict FormulaDict) []string {
	ids := make([]int, 0, len(dict))
	for id := range dict {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := lines
	for _, id := range ids {
		form := dict[id]
		token := FormulaToken(id)
		formula := EscapeLatex(form.Latex)

		next := make([]string, 0, len(out))
		for _, line := range out {
			if form.Label == LabelInline {
				next = append(next, strings.ReplaceAll(line, token, formula))
				continue
			}
			next = append(next, strings.ReplaceAll(line, token, IndentBlock(formula, LeadingWidth(line))))
		}
		out = next
	}
	return out
}

// FormulaStore loads serialized formula dictionaries from a directory.
type FormulaStore interface {
	// FindDicts returns the dictionary files found in dir, in the order
	// they should be applied.
	FindDicts(dir string) ([]string, error)

	// LoadDict reads one formula dictionary file.
	LoadDict(path string) (FormulaDict, error)
}

// LatexSubstitutor rewrites formula placeholders in generated docstring
// files back into LaTeX source.
type LatexSubstitutor interface {
	// ReplaceLatex rewrites the docstring file at path in place, applying
	// every formula dictionary found in latexDir.
	ReplaceLatex(path, latexDir string) error
}
