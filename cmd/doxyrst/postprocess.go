package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/doxyrst"
	"github.com/fwojciec/doxyrst/doxygen"
	"github.com/fwojciec/doxyrst/pipeline"
)

// Run executes the postprocess command.
func (c *PostprocessCmd) Run(deps *Dependencies) error {
	m, err := pipeline.LoadManifest(c.Manifest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxyrst.ErrorMessage(err))
		return err
	}

	cfg, err := doxygen.LoadConfig(m.Doxyfile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxyrst.ErrorMessage(err))
		return err
	}
	configDir := filepath.Dir(m.Doxyfile)

	// Apply user-specified concurrency
	if c.Concurrency > 0 {
		deps.Postprocessor.Concurrency = c.Concurrency
	}
	deps.Postprocessor.CaseSenseNames = cfg.CaseSenseNames()

	var ran int
	for _, comp := range m.Components {
		if c.Component != "" && comp.Name != c.Component {
			continue
		}
		ran++

		xmlDir := comp.XMLDir
		if xmlDir == "" {
			xmlDir = cfg.XMLOutputDir(configDir)
		}

		fmt.Fprintf(deps.Stdout, "Post-processing %s\n", comp.Name)

		progress := func(event pipeline.ProgressEvent) {
			switch event.Type {
			case pipeline.ProgressStarted:
				fmt.Fprintf(deps.Stdout, "  Processing %d targets\n", event.Total)
			case pipeline.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", pipeline.TruncatePath(event.Target, 60), event.Error)
			case pipeline.ProgressFinished:
				// Summary printed after the component completes
			}
		}

		result, err := deps.Postprocessor.RunComponent(deps.Ctx, xmlDir, comp, progress)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error post-processing %s: %v\n", comp.Name, err)
			return err
		}

		fmt.Fprintf(deps.Stdout, "  Rewrote %d XML files, indexed %d compounds (%d failed)\n",
			result.Files, result.Compounds, result.Failed)
	}

	if ran == 0 {
		fmt.Fprintf(deps.Stderr, "error: component %q not in manifest %s\n", c.Component, c.Manifest)
		return doxyrst.Errorf(doxyrst.ENOTFOUND, "component %q not in manifest", c.Component)
	}

	return nil
}
