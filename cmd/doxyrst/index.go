package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/doxyrst"
	"github.com/fwojciec/doxyrst/doxygen"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	refs, err := doxygen.LoadIndex(filepath.Join(c.XMLDir, "index.xml"))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxyrst.ErrorMessage(err))
		return err
	}

	if len(refs) == 0 {
		fmt.Fprintf(deps.Stdout, "No compounds listed in %s\n", c.XMLDir)
		return nil
	}

	// Records from earlier full-index runs carry no header; purge them
	// before re-indexing.
	if err := deps.Compounds.DeleteCompoundsByHeader(deps.Ctx, ""); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxyrst.ErrorMessage(err))
		return err
	}

	var indexed, skipped int
	for _, ref := range refs {
		infos, err := deps.Extractor.ExtractCompoundInfos(filepath.Join(c.XMLDir, ref.XMLFile()))
		if err != nil {
			skipped++
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", ref.Name, doxyrst.ErrorMessage(err))
			continue
		}

		for _, info := range infos {
			rec := &doxyrst.CompoundRecord{
				Name:    info.Name,
				Kind:    info.Kind,
				Brief:   info.Brief,
				XMLFile: ref.XMLFile(),
			}
			if err := deps.Compounds.CreateCompound(deps.Ctx, rec); err != nil {
				skipped++
				fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", info.Name, doxyrst.ErrorMessage(err))
				continue
			}
			indexed++
		}
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d compounds from %s (%d skipped)\n", indexed, c.XMLDir, skipped)
	return nil
}
