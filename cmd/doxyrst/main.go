package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/doxyrst"
	"github.com/fwojciec/doxyrst/doxygen"
	"github.com/fwojciec/doxyrst/fs"
	"github.com/fwojciec/doxyrst/pipeline"
	doxslog "github.com/fwojciec/doxyrst/slog"
	"github.com/fwojciec/doxyrst/sqlite"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	ctx := context.Background()

	// Respect container CPU quotas
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	CompoundService doxyrst.CompoundService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// dbCommands are the commands that read or write the compound index.
var dbCommands = map[string]bool{
	"index":       true,
	"compounds":   true,
	"postprocess": true,
	"watch":       true,
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doxyrst"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'doxyrst --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	// Logger writes to stderr, debug level with --debug
	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Wire the file-level services
	deps.Locator = doxygen.NewLocator()
	deps.Escaper = fs.NewEscaper()
	deps.Extractor = doxygen.NewExtractor()
	deps.Formulas = doxslog.NewLoggingFormulaStore(fs.NewDictStore(), logger)
	deps.Substitutor = fs.NewSubstitutor(deps.Formulas)

	// Open the database only for commands that use the compound index
	needsDB := dbCommands[cmd]
	if cmd == "postprocess" && cli.Postprocess.NoIndex {
		needsDB = false
	}
	if needsDB {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOXYRST_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.CompoundService = doxslog.NewLoggingCompoundService(sqlite.NewCompoundService(m.DB), logger)
		deps.DB = m.DB
		deps.Compounds = m.CompoundService
	}

	// The pipeline commands share one orchestrator
	deps.Postprocessor = &pipeline.Postprocessor{
		Locator:     deps.Locator,
		Escaper:     deps.Escaper,
		Extractor:   deps.Extractor,
		Substitutor: deps.Substitutor,
		Compounds:   deps.Compounds,
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOXYRST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "doxyrst.db"
	}
	dir := filepath.Join(home, ".doxyrst")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "index.db")
}
