package doxyrst

import "strings"

// ReplaceInlineMath rewrites the first $...$ inline formula found in
// content as a Sphinx :math: role, with the delimiters and surrounding
// whitespace stripped. Every occurrence of that exact delimited substring
// is rewritten; a later, different $...$ pair in the same string is left
// untouched. Content with fewer than two dollar signs passes through
// unchanged.
func ReplaceInlineMath(content string) string {
	if strings.Count(content, "$") < 2 {
		return content
	}
	start := strings.IndexByte(content, '$')
	end := start + 1 + strings.IndexByte(content[start+1:], '$')
	formula := content[start : end+1]
	role := ":math:`" + strings.TrimSpace(formula[1:len(formula)-1]) + "`"
	return strings.ReplaceAll(content, formula, role)
}
