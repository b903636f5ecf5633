package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/doxyrst/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceLatex(t *testing.T) {
	t.Parallel()

	t.Run("substitutes inline and block formulas", func(t *testing.T) {
		t.Parallel()

		src := writeDocstrings(t, "class Solver:\n    \"\"\"Solves FORMULA1_\n    FORMULA2_\n    \"\"\"\n")
		latexDir := writeDicts(t, map[string]string{
			"latex_numerics.json": `{"1":{"latex":"x^2","label":"inline"},"2":{"latex":"M \\dot v = F\nq = v","label":"block"}}`,
		})

		err := fs.NewSubstitutor(fs.NewDictStore()).ReplaceLatex(src, latexDir)

		require.NoError(t, err)
		got, err := os.ReadFile(src)
		require.NoError(t, err)
		want := "class Solver:\n" +
			"    \"\"\"Solves x^2\n" +
			"        M \\\\dot v = F\n" +
			"    q = v\n" +
			"    \"\"\"\n"
		assert.Equal(t, want, string(got))
	})

	t.Run("applies dictionaries in sequence", func(t *testing.T) {
		t.Parallel()

		src := writeDocstrings(t, "FORMULA1_\n")
		latexDir := writeDicts(t, map[string]string{
			"latex_a.json": `{"1":{"latex":"see FORMULA2_","label":"inline"}}`,
			"latex_b.json": `{"2":{"latex":"y","label":"inline"}}`,
		})

		err := fs.NewSubstitutor(fs.NewDictStore()).ReplaceLatex(src, latexDir)

		require.NoError(t, err)
		got, err := os.ReadFile(src)
		require.NoError(t, err)
		assert.Equal(t, "see y\n", string(got))
	})

	t.Run("unmatched tokens stay verbatim", func(t *testing.T) {
		t.Parallel()

		src := writeDocstrings(t, "    FORMULA9_ stays\n")
		latexDir := writeDicts(t, map[string]string{
			"latex_numerics.json": `{"1":{"latex":"x^2","label":"inline"}}`,
		})

		err := fs.NewSubstitutor(fs.NewDictStore()).ReplaceLatex(src, latexDir)

		require.NoError(t, err)
		got, err := os.ReadFile(src)
		require.NoError(t, err)
		assert.Equal(t, "    FORMULA9_ stays\n", string(got))
	})

	t.Run("no dictionaries leaves content unchanged", func(t *testing.T) {
		t.Parallel()

		src := writeDocstrings(t, "def solve():\n    pass\n")

		err := fs.NewSubstitutor(fs.NewDictStore()).ReplaceLatex(src, t.TempDir())

		require.NoError(t, err)
		got, err := os.ReadFile(src)
		require.NoError(t, err)
		assert.Equal(t, "def solve():\n    pass\n", string(got))
	})

	t.Run("staging copy is consumed by the final move", func(t *testing.T) {
		t.Parallel()

		src := writeDocstrings(t, "FORMULA1_\n")
		latexDir := writeDicts(t, map[string]string{
			"latex_kernel.json": `{"1":{"latex":"E = m c^2","label":"inline"}}`,
		})

		err := fs.NewSubstitutor(fs.NewDictStore()).ReplaceLatex(src, latexDir)

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(filepath.Dir(src), "numerics.copy"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing source file propagates the error", func(t *testing.T) {
		t.Parallel()

		err := fs.NewSubstitutor(fs.NewDictStore()).ReplaceLatex(filepath.Join(t.TempDir(), "nope.py"), t.TempDir())

		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("broken dictionary aborts before rewriting", func(t *testing.T) {
		t.Parallel()

		src := writeDocstrings(t, "FORMULA1_\n")
		latexDir := writeDicts(t, map[string]string{
			"latex_broken.json": `{not json`,
		})

		err := fs.NewSubstitutor(fs.NewDictStore()).ReplaceLatex(src, latexDir)

		require.Error(t, err)
		got, readErr := os.ReadFile(src)
		require.NoError(t, readErr)
		assert.Equal(t, "FORMULA1_\n", string(got))
	})
}

// writeDocstrings writes a generated docstring fixture named numerics.py
// and returns its path.
func writeDocstrings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numerics.py")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// writeDicts writes formula dictionary fixtures into a fresh directory and
// returns the directory.
func writeDicts(t *testing.T, dicts map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range dicts {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}
