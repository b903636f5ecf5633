package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/doxyrst"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	xmlDir, caseSense, err := resolveXMLSettings(c.Doxyfile, c.XMLDir, c.CaseSenseNames)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxyrst.ErrorMessage(err))
		return err
	}

	files, err := deps.Locator.FindXMLFiles(xmlDir, c.Header, caseSense)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxyrst.ErrorMessage(err))
		return err
	}

	var total int
	for _, file := range files {
		infos, err := deps.Extractor.ExtractCompoundInfos(file)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", file, doxyrst.ErrorMessage(err))
			return err
		}

		for _, info := range infos {
			total++
			fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", info.Kind, info.Name, firstLine(info.Brief))
		}
	}

	if total == 0 {
		fmt.Fprintf(deps.Stdout, "No compounds found for %s in %s\n", c.Header, xmlDir)
	}

	return nil
}

// firstLine returns s up to its first line break.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
