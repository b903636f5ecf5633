package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/doxyrst"
	"github.com/fwojciec/doxyrst/pipeline"
	"github.com/fwojciec/doxyrst/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx           context.Context
	Stdout        io.Writer
	Stderr        io.Writer
	Logger        *slog.Logger
	DB            *sqlite.DB
	Compounds     doxyrst.CompoundService
	Formulas      doxyrst.FormulaStore
	Locator       doxyrst.XMLLocator
	Escaper       doxyrst.DotEscaper
	Extractor     doxyrst.CompoundExtractor
	Substitutor   doxyrst.LatexSubstitutor
	Postprocessor *pipeline.Postprocessor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Enable debug logging"`

	Locate      LocateCmd      `cmd:"" help:"Find the XML files doxygen generated for a header"`
	Config      ConfigCmd      `cmd:"" help:"Print a parsed doxygen configuration"`
	Fixdot      FixdotCmd      `cmd:"" help:"Unescape LaTeX dot commands in doxygen XML files"`
	Extract     ExtractCmd     `cmd:"" help:"Extract compound summaries for a header"`
	Substitute  SubstituteCmd  `cmd:"" help:"Substitute formula placeholders in docstring files"`
	Index       IndexCmd       `cmd:"" help:"Index every compound listed in a doxygen index.xml"`
	Compounds   CompoundsCmd   `cmd:"" help:"Query the compound index"`
	Postprocess PostprocessCmd `cmd:"" help:"Run the post-processing pipeline from a manifest"`
	Watch       WatchCmd       `cmd:"" help:"Re-run the pipeline whenever doxygen regenerates its XML"`
}

// LocateCmd is the "locate" subcommand.
type LocateCmd struct {
	Header         string `arg:"" help:"Header file path"`
	XMLDir         string `name:"xml-dir" help:"Doxygen XML output directory (overrides the doxyfile)"`
	Doxyfile       string `help:"Resolve XML directory and case sensitivity from a doxygen config"`
	CaseSenseNames bool   `name:"case-sense-names" default:"true" help:"Doxygen CASE_SENSE_NAMES setting (ignored with --doxyfile)"`
}

// ConfigCmd is the "config" subcommand.
type ConfigCmd struct {
	Path string `arg:"" help:"Doxygen configuration file"`
	Tag  string `arg:"" optional:"" help:"Print only this tag's value"`
}

// FixdotCmd is the "fixdot" subcommand.
type FixdotCmd struct {
	Files []string `arg:"" help:"XML files to rewrite in place"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Header         string `arg:"" help:"Header file path"`
	XMLDir         string `name:"xml-dir" help:"Doxygen XML output directory (overrides the doxyfile)"`
	Doxyfile       string `help:"Resolve XML directory and case sensitivity from a doxygen config"`
	CaseSenseNames bool   `name:"case-sense-names" default:"true" help:"Doxygen CASE_SENSE_NAMES setting (ignored with --doxyfile)"`
}

// SubstituteCmd is the "substitute" subcommand.
type SubstituteCmd struct {
	Files    []string `arg:"" help:"Generated docstring files to rewrite in place"`
	LatexDir string   `name:"latex-dir" required:"" help:"Directory holding latex_*.json formula dictionaries"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	XMLDir string `arg:"" help:"Doxygen XML output directory containing index.xml"`
}

// CompoundsCmd is the "compounds" subcommand.
type CompoundsCmd struct {
	Name   string `help:"Filter by compound name"`
	Kind   string `help:"Filter by kind (class, struct, file, ...)"`
	Header string `help:"Filter by source header"`
	Limit  int    `help:"Maximum number of results"`
	Offset int    `help:"Skip this many results"`
	Sort   string `enum:"recent,name" default:"recent" help:"Sort order (recent or name)"`
	Full   bool   `help:"Show brief descriptions"`
}

// PostprocessCmd is the "postprocess" subcommand.
type PostprocessCmd struct {
	Manifest    string `arg:"" help:"Build manifest (doxyrst.yml)"`
	Component   string `help:"Only run this component"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent header limit"`
	NoIndex     bool   `help:"Rewrite files without touching the compound index"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Manifest    string        `arg:"" help:"Build manifest (doxyrst.yml)"`
	Component   string        `help:"Only watch this component"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent header limit"`
	Debounce    time.Duration `default:"2s" help:"Quiet period before a rebuild triggers a run"`
}
