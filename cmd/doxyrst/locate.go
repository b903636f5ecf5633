package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/doxyrst"
	"github.com/fwojciec/doxyrst/doxygen"
)

// Run executes the locate command.
func (c *LocateCmd) Run(deps *Dependencies) error {
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

	if len(files) == 0 {
		fmt.Fprintf(deps.Stdout, "No XML files found for %s in %s\n", c.Header, xmlDir)
		return nil
	}

	for _, f := range files {
		fmt.Fprintln(deps.Stdout, f)
	}

	return nil
}

// resolveXMLSettings returns the XML output directory and case sensitivity
// for header lookup. A doxyfile provides both; an explicit --xml-dir wins
// over the doxyfile's resolved directory.
func resolveXMLSettings(doxyfile, xmlDir string, caseSense bool) (string, bool, error) {
	if doxyfile == "" {
		if xmlDir == "" {
			return "", false, doxyrst.Errorf(doxyrst.EINVALID, "either --doxyfile or --xml-dir required")
		}
		return xmlDir, caseSense, nil
	}

	cfg, err := doxygen.LoadConfig(doxyfile)
	if err != nil {
		return "", false, err
	}

	dir := cfg.XMLOutputDir(filepath.Dir(doxyfile))
	if xmlDir != "" {
		dir = xmlDir
	}
	return dir, cfg.CaseSenseNames(), nil
}
