package mock

import (
	"github.com/fwojciec/doxyrst"
)

var _ doxyrst.XMLLocator = (*XMLLocator)(nil)

// XMLLocator is a mock implementation of doxyrst.XMLLocator.
type XMLLocator struct {
	FindXMLFilesFn func(xmlDir, headerPath string, caseSenseNames bool) ([]string, error)
}

func (l *XMLLocator) FindXMLFiles(xmlDir, headerPath string, caseSenseNames bool) ([]string, error) {
	return l.FindXMLFilesFn(xmlDir, headerPath, caseSenseNames)
}
