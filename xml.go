package doxyrst

// XMLLocator finds the XML files doxygen generated for a header.
type XMLLocator interface {
	// FindXMLFiles returns the candidate compound files for the header at
	// headerPath, searched for in xmlDir. Zero matches is not an error.
	FindXMLFiles(xmlDir, headerPath string, caseSenseNames bool) ([]string, error)
}

// DotEscaper rewrites the escaped LaTeX dot command in an XML file.
type DotEscaper interface {
	// FilterDotEscapes rewrites the file at path in place.
	FilterDotEscapes(path string) error
}
