package main

import (
	"fmt"

	"github.com/fwojciec/doxyrst"
)

// Run executes the substitute command.
func (c *SubstituteCmd) Run(deps *Dependencies) error {
	for _, path := range c.Files {
		if err := deps.Substitutor.ReplaceLatex(path, c.LatexDir); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", path, doxyrst.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Substituted formulas in %s\n", path)
	}

	return nil
}
