package deps

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options configures dependency resolution behavior.
type Options struct {
	Refresh bool        // Bypass cached responses for fresh data
	Logger  *log.Logger // Diagnostics sink (default: discarded)

	// Progress, if set, is called after every fetch round with the round
	// number and the count of records discovered so far.
	Progress func(round, records int)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return opts
}

// Package is the record of one package as returned by the metadata service.
//
// Dependencies holds the raw dependency strings, runtime dependencies first
// followed by build dependencies. Entries may carry version constraints;
// see [IsConstrained].
type Package struct {
	Name         string   // Package name
	Version      string   // Package version
	Description  string   // Package summary
	Dependencies []string // Raw dependency strings
}

// Metadata converts Package fields to a map for node metadata.
func (p *Package) Metadata() map[string]any {
	m := map[string]any{}
	if p.Version != "" {
		m["version"] = p.Version
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	return m
}
