package main

import (
	"fmt"

	"github.com/fwojciec/doxyrst"
)

// Run executes the fixdot command.
func (c *FixdotCmd) Run(deps *Dependencies) error {
	for _, path := range c.Files {
		if err := deps.Escaper.FilterDotEscapes(path); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", path, doxyrst.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Rewrote %d files\n", len(c.Files))
	return nil
}
