// Package doxyrst post-processes doxygen XML output for Sphinx-based
// documentation builds. It locates the XML files doxygen generates for a
// header, parses doxygen configuration files, extracts brief descriptions
// from compound nodes, rewrites embedded LaTeX math as Sphinx inline-math
// roles, and substitutes formula placeholders in generated docstring files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., doxygen/, sqlite/, fs/).
package doxyrst
