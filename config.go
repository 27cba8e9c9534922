package verex

import (
	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"
)

// Config controls how a builder is compiled.
//
// A Config is an explicit value passed to CompileWithConfig; there are no
// process-wide defaults, so builders in the same process never affect each
// other's compiled flags.
//
// Example:
//
//	config := verex.DefaultConfig()
//	config.Flags |= verex.CaseInsensitive
//	config.Engine.MaxDFAStates = 50000
//	re, err := verex.Find("hello").CompileWithConfig(config)
type Config struct {
	// Flags are OR-ed with the builder's own flags for this compile only.
	// Default: none
	Flags Flags

	// Engine tunes the regex engine (DFA cache, prefilters, limits).
	// Default: coregex.DefaultConfig()
	Engine meta.Config
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{
		Engine: coregex.DefaultConfig(),
	}
}
