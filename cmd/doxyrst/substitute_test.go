package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	main "github.com/fwojciec/doxyrst/cmd/doxyrst"
	"github.com/fwojciec/doxyrst/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("substitutes each file against the latex directory", func(t *testing.T) {
		t.Parallel()

		var substituted []string

		substitutor := &mock.LatexSubstitutor{
			ReplaceLatexFn: func(path, latexDir string) error {
				assert.Equal(t, "/build/latex", latexDir)
				substituted = append(substituted, path)
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Substitutor: substitutor,
		}

		cmd := &main.SubstituteCmd{
			Files:    []string{"kernel_docstrings.py", "control_docstrings.py"},
			LatexDir: "/build/latex",
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"kernel_docstrings.py", "control_docstrings.py"}, substituted)

		output := stdout.String()
		assert.Contains(t, output, "Substituted formulas in kernel_docstrings.py")
		assert.Contains(t, output, "Substituted formulas in control_docstrings.py")
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		t.Parallel()

		dictErr := errors.New("no formula dictionaries")

		substitutor := &mock.LatexSubstitutor{
			ReplaceLatexFn: func(path, _ string) error {
				if path == "control_docstrings.py" {
					return dictErr
				}
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Substitutor: substitutor,
		}

		cmd := &main.SubstituteCmd{
			Files:    []string{"kernel_docstrings.py", "control_docstrings.py"},
			LatexDir: "/build/latex",
		}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dictErr, err)
		assert.Contains(t, stdout.String(), "Substituted formulas in kernel_docstrings.py")
		assert.Contains(t, stderr.String(), "control_docstrings.py")
	})
}
