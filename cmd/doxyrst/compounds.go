package main

import (
	"fmt"

	"github.com/fwojciec/doxyrst"
)

// Run executes the compounds command.
func (c *CompoundsCmd) Run(deps *Dependencies) error {
	filter := doxyrst.CompoundFilter{
		Offset: c.Offset,
		Limit:  c.Limit,
	}
	if c.Name != "" {
		filter.Name = &c.Name
	}
	if c.Kind != "" {
		filter.Kind = &c.Kind
	}
	if c.Header != "" {
		filter.Header = &c.Header
	}
	if c.Sort == "name" {
		filter.SortBy = doxyrst.SortByName
	} else {
		filter.SortBy = doxyrst.SortByIndexedAt
	}

	recs, err := deps.Compounds.FindCompounds(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxyrst.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No compounds found. Use 'doxyrst postprocess' to build the index.")
		return nil
	}

	if c.Full {
		for i, rec := range recs {
			fmt.Fprintf(deps.Stdout, "  %d. %s (%s)\n", i+1, rec.Name, rec.Kind)
			if rec.Header != "" {
				fmt.Fprintf(deps.Stdout, "     %s\n", rec.Header)
			}
			if rec.Brief != "" {
				fmt.Fprintf(deps.Stdout, "     %s\n", rec.Brief)
			}
		}
		return nil
	}

	for _, rec := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", rec.ID, rec.Kind, rec.Name, rec.Header)
	}

	return nil
}
