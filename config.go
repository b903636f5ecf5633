package doxyrst

import (
	"path/filepath"
	"strings"
)

// Doxygen configuration tags this package interprets. All other tags are
// carried as raw text only.
const (
	TagCaseSenseNames  = "CASE_SENSE_NAMES"
	TagOutputDirectory = "OUTPUT_DIRECTORY"
	TagXMLOutput       = "XML_OUTPUT"
)

// Config is a parsed doxygen configuration: raw tag values keyed by tag
// name. A value keeps the exact text found after the first '=' of its tag
// line, with continuation lines appended verbatim; no type coercion happens
// at parse time.
type Config map[string]string

// Lookup returns the raw value for tag and whether the tag is present.
func (c Config) Lookup(tag string) (string, bool) {
	v, ok := c[tag]
	return v, ok
}

// Value returns the value for tag with surrounding whitespace trimmed, or
// "" when the tag is absent.
func (c Config) Value(tag string) string {
	return strings.TrimSpace(c[tag])
}

// Bool interprets the value for tag as a doxygen boolean. Doxygen writes
// booleans as YES or NO; anything but YES reads as false.
func (c Config) Bool(tag string) bool {
	return strings.EqualFold(c.Value(tag), "YES")
}

// CaseSenseNames reports the CASE_SENSE_NAMES setting. A missing tag reads
// as YES, matching doxygen's default on case-sensitive filesystems.
func (c Config) CaseSenseNames() bool {
	if _, ok := c[TagCaseSenseNames]; !ok {
		return true
	}
	return c.Bool(TagCaseSenseNames)
}

// XMLOutputDir resolves the directory doxygen writes XML output to, given
// the directory the config file lives in. OUTPUT_DIRECTORY defaults to the
// config directory and XML_OUTPUT to "xml", per doxygen.
func (c Config) XMLOutputDir(configDir string) string {
	out := c.Value(TagOutputDirectory)
	if out == "" {
		out = "."
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(configDir, out)
	}
	xml := c.Value(TagXMLOutput)
	if xml == "" {
		xml = "xml"
	}
	if filepath.IsAbs(xml) {
		return xml
	}
	return filepath.Join(out, xml)
}
