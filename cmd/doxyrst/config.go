package main

import (
	"fmt"
	"slices"

	"github.com/fwojciec/doxyrst"
	"github.com/fwojciec/doxyrst/doxygen"
)

// Run executes the config command.
func (c *ConfigCmd) Run(deps *Dependencies) error {
	cfg, err := doxygen.LoadConfig(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxyrst.ErrorMessage(err))
		return err
	}

	if c.Tag != "" {
		if _, ok := cfg.Lookup(c.Tag); !ok {
			fmt.Fprintf(deps.Stderr, "error: tag %q not set in %s\n", c.Tag, c.Path)
			return doxyrst.Errorf(doxyrst.ENOTFOUND, "tag %q not set", c.Tag)
		}
		fmt.Fprintln(deps.Stdout, cfg.Value(c.Tag))
		return nil
	}

	tags := make([]string, 0, len(cfg))
	for tag := range cfg {
		tags = append(tags, tag)
	}
	slices.Sort(tags)

	for _, tag := range tags {
		fmt.Fprintf(deps.Stdout, "%s = %s\n", tag, cfg.Value(tag))
	}

	return nil
}
