// Package doxygen reads doxygen build output: configuration files and the
// XML compound descriptions doxygen's XML generator emits.
package doxygen

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/doxyrst"
)

// ParseConfig reads a doxygen configuration from r into a tag mapping.
//
// Comment lines (leading '#') and empty lines are dropped. A line
// containing '=' starts a new tag: the key is the first whitespace-delimited
// token left of the first '=', the value is everything to its right. A line
// without '=' continues the most recent tag; the raw line, newline included,
// is appended to its value. Values are kept as raw text: no type coercion
// and no list splitting happens here.
func ParseConfig(r io.Reader) (doxyrst.Config, error) {
	cfg := doxyrst.Config{}
	current := ""
	lineno := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lhs, rhs, found := strings.Cut(line, "=")
		if !found {
			if current == "" {
				return nil, doxyrst.Errorf(doxyrst.EINVALID, "continuation on line %d before any tag", lineno)
			}
			cfg[current] += line + "\n"
			continue
		}

		fields := strings.Fields(lhs)
		if len(fields) == 0 {
			return nil, doxyrst.Errorf(doxyrst.EINVALID, "line %d has no tag before '='", lineno)
		}
		current = fields[0]
		cfg[current] = rhs
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfig reads the doxygen configuration file at path.
func LoadConfig(path string) (doxyrst.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseConfig(f)
}
