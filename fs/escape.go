// Package fs post-processes generated documentation artifacts on disk.
package fs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/doxyrst"
)

// Ensure service implements interface.
var _ doxyrst.DotEscaper = (*Escaper)(nil)

// Escaper rewrites escaped LaTeX dot commands in doxygen XML files.
type Escaper struct{}

// NewEscaper returns a new instance of Escaper.
func NewEscaper() *Escaper {
	return &Escaper{}
}

// FilterDotEscapes rewrites the escaped LaTeX dot command in the XML file
// at path. Formulas inside doxygen rst blocks spell it \\dot so doxygen
// does not read a graphviz command; once the XML moves on to the
// documentation renderer the extra backslash has to go. The content is
// staged in a <stem>.tmp file in the working directory and moved over the
// original.
func (e *Escaper) FilterDotEscapes(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	filtered := strings.ReplaceAll(string(content), `\\dot`, `\dot`)

	tmp := stem(path) + ".tmp"
	if err := os.WriteFile(tmp, []byte(filtered), 0644); err != nil {
		return err
	}
	return moveFile(tmp, path)
}

// stem returns the file name at path without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// moveFile renames src onto dst, falling back to copy-and-remove when the
// rename fails (src and dst on different filesystems).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// copyFile copies src to dst, replacing dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
