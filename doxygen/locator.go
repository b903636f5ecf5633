package doxygen

import (
	"path/filepath"
	"strings"

	"github.com/fwojciec/doxyrst"
)

// Ensure service implements interface.
var _ doxyrst.XMLLocator = (*Locator)(nil)

// Locator finds doxygen XML output files for headers.
type Locator struct{}

// NewLocator returns a new instance of Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// FindXMLFiles returns the XML files doxygen generated for the header at
// headerPath, searched for in xmlDir. Doxygen derives file names from the
// header stem by doubling underscores and, when caseSenseNames is false,
// folding every uppercase letter to '_' + lowercase. Candidates are the
// class, struct and file ("_8h") compounds, in that order.
//
// Zero matches is not an error: a header with no doxygen-extractable
// symbols legitimately produces no XML.
func (l *Locator) FindXMLFiles(xmlDir, headerPath string, caseSenseNames bool) ([]string, error) {
	base := filepath.Base(headerPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = doxyrst.MangleStem(stem, caseSenseNames)

	patterns := []string{
		"class" + stem + ".xml",
		"struct" + stem + ".xml",
		stem + "_8h*.xml",
	}

	files := []string{}
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(xmlDir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	return files, nil
}
