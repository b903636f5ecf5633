package doxygen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/doxyrst"
	"github.com/fwojciec/doxyrst/doxygen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("parses tag lines", func(t *testing.T) {
		t.Parallel()

		input := "PROJECT_NAME = siconos\nGENERATE_XML = YES\n"

		cfg, err := doxygen.ParseConfig(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, doxyrst.Config{
			"PROJECT_NAME": " siconos",
			"GENERATE_XML": " YES",
		}, cfg)
	})

	t.Run("appends continuation lines verbatim", func(t *testing.T) {
		t.Parallel()

		input := "OUTPUT_DIRECTORY = build\n  continued\n"

		cfg, err := doxygen.ParseConfig(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, doxyrst.Config{"OUTPUT_DIRECTORY": " build  continued\n"}, cfg)
	})

	t.Run("skips comments and blank lines", func(t *testing.T) {
		t.Parallel()

		input := "# Doxyfile for the numerics component\n\nCASE_SENSE_NAMES = NO\n\n# trailing comment\n"

		cfg, err := doxygen.ParseConfig(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, doxyrst.Config{"CASE_SENSE_NAMES": " NO"}, cfg)
	})

	t.Run("splits at the first equals sign only", func(t *testing.T) {
		t.Parallel()

		input := `ALIASES = rst=\verbatim embed:rst` + "\n"

		cfg, err := doxygen.ParseConfig(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, ` rst=\verbatim embed:rst`, cfg["ALIASES"])
	})

	t.Run("later assignment overwrites earlier value", func(t *testing.T) {
		t.Parallel()

		input := "XML_OUTPUT = xml\nXML_OUTPUT = xml-v2\n"

		cfg, err := doxygen.ParseConfig(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, doxyrst.Config{"XML_OUTPUT": " xml-v2"}, cfg)
	})

	t.Run("empty input yields empty config", func(t *testing.T) {
		t.Parallel()

		cfg, err := doxygen.ParseConfig(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, cfg)
	})

	t.Run("continuation before any tag is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := doxygen.ParseConfig(strings.NewReader("  orphan line\nKEY = v\n"))

		require.Error(t, err)
		assert.Equal(t, doxyrst.EINVALID, doxyrst.ErrorCode(err))
	})

	t.Run("missing tag before equals is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := doxygen.ParseConfig(strings.NewReader(" = YES\n"))

		require.Error(t, err)
		assert.Equal(t, doxyrst.EINVALID, doxyrst.ErrorCode(err))
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("loads a doxyfile from disk", func(t *testing.T) {
		t.Parallel()

		content := `# Doxyfile 1.9.1
PROJECT_NAME      = siconos
OUTPUT_DIRECTORY  = build/docs
GENERATE_XML      = YES
XML_OUTPUT        = xml
CASE_SENSE_NAMES  = NO
INPUT             = src/TimeStepping.hpp
                    src/DynamicalSystem.hpp
`
		path := filepath.Join(t.TempDir(), "doxy.config")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := doxygen.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "siconos", cfg.Value("PROJECT_NAME"))
		assert.Equal(t, "build/docs", cfg.Value("OUTPUT_DIRECTORY"))
		assert.True(t, cfg.Bool("GENERATE_XML"))
		assert.False(t, cfg.CaseSenseNames())
		assert.Contains(t, cfg["INPUT"], "src/DynamicalSystem.hpp")
	})

	t.Run("missing file propagates the error", func(t *testing.T) {
		t.Parallel()

		_, err := doxygen.LoadConfig(filepath.Join(t.TempDir(), "nope.config"))

		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}
