package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fwojciec/doxyrst"
	"github.com/fwojciec/doxyrst/doxygen"
	"github.com/fwojciec/doxyrst/pipeline"
)

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
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

	if c.Concurrency > 0 {
		deps.Postprocessor.Concurrency = c.Concurrency
	}
	deps.Postprocessor.CaseSenseNames = cfg.CaseSenseNames()

	// Components sharing an XML directory share one watcher
	dirs := make(map[string][]pipeline.Component)
	for _, comp := range m.Components {
		if c.Component != "" && comp.Name != c.Component {
			continue
		}
		xmlDir := comp.XMLDir
		if xmlDir == "" {
			xmlDir = cfg.XMLOutputDir(configDir)
		}
		dirs[xmlDir] = append(dirs[xmlDir], comp)
	}

	if len(dirs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: component %q not in manifest %s\n", c.Component, c.Manifest)
		return doxyrst.Errorf(doxyrst.ENOTFOUND, "component %q not in manifest", c.Component)
	}

	ctx, cancel := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	for xmlDir, comps := range dirs {
		xmlDir, comps := xmlDir, comps
		run := func(runCtx context.Context) {
			for _, comp := range comps {
				result, err := deps.Postprocessor.RunComponent(runCtx, xmlDir, comp, nil)
				if err != nil {
					deps.Logger.Error("post-processing failed", "component", comp.Name, "error", err)
					continue
				}
				deps.Logger.Info("component post-processed",
					"component", comp.Name,
					"files", result.Files,
					"compounds", result.Compounds,
					"failed", result.Failed,
				)
			}
		}

		w, err := pipeline.NewWatcher(xmlDir, run, deps.Logger)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", doxyrst.ErrorMessage(err))
			return err
		}
		if c.Debounce > 0 {
			w.Debounce = c.Debounce
		}

		if err := w.Start(ctx); err != nil {
			w.Stop()
			fmt.Fprintf(deps.Stderr, "error: %s\n", doxyrst.ErrorMessage(err))
			return err
		}
		defer w.Stop()
	}

	fmt.Fprintf(deps.Stdout, "Watching %d directories. Press Ctrl-C to stop.\n", len(dirs))
	<-ctx.Done()
	fmt.Fprintln(deps.Stdout, "Stopped.")

	return nil
}
