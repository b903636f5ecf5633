package doxyrst

import (
	"strings"
	"unicode"
)

// ReplaceUppercaseLetters rewrites every uppercase letter in s as an
// underscore followed by its lowercase form, matching the filenames doxygen
// produces when CASE_SENSE_NAMES = NO.
//
// e.g. "TimeStepping" → "_time_stepping"
func ReplaceUppercaseLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MangleStem converts a header file stem into the form doxygen uses when
// naming the XML files generated for that header: underscores are doubled,
// then uppercase letters are folded per ReplaceUppercaseLetters when
// caseSenseNames is false. Folding an already-folded stem is a no-op.
func MangleStem(stem string, caseSenseNames bool) string {
	mangled := strings.ReplaceAll(stem, "_", "__")
	if !caseSenseNames {
		mangled = ReplaceUppercaseLetters(mangled)
	}
	return mangled
}
