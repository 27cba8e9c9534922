// Package verex builds regular expressions from readable, chainable operations.
//
// Instead of writing regex syntax by hand, a pattern is assembled from
// semantic steps ("start of line", "find http", "maybe s", "anything but a
// space") and compiled by the coregex engine on demand.
//
// Basic usage:
//
//	re, err := verex.StartOfLine().
//	    Find("http").
//	    Maybe("s").
//	    Find("://").
//	    Maybe("www.").
//	    AnythingBut(" ").
//	    EndOfLine().
//	    Compile()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(re.MatchString("https://www.google.com")) // true
//
// Every literal is escaped before it is appended and every step is wrapped in
// a non-capturing group, so quantifiers and alternation added later bind to
// the intended fragment only. Anchors and flags are kept apart from the
// fragment text and applied once, when the pattern is rendered.
//
// A builder is mutable: each operation changes it in place and returns the
// same pointer for chaining. Compiling does not freeze it; it can be extended
// and compiled again. A builder must not be shared between goroutines without
// external synchronization, and must not be copied by value once used.
package verex

import (
	"strings"

	"github.com/coregx/coregex"
)

// Verex is a regular-expression builder.
//
// The zero value is an empty builder ready to use.
type Verex struct {
	addr *Verex // self pointer, detects copies by value

	source   string
	prefixes string
	suffixes string
	flags    Flags
}

// New returns an empty builder.
func New() *Verex {
	return &Verex{}
}

// FromString returns a builder whose pattern starts with raw.
//
// raw is taken verbatim: it is neither escaped nor wrapped in a group.
func FromString(raw string) *Verex {
	return New().add(raw)
}

func (v *Verex) copyCheck() {
	if v.addr == nil {
		v.addr = v
	} else if v.addr != v {
		panic("verex: illegal use of non-zero Verex copied by value")
	}
}

// add appends fragment verbatim. Every public operation goes through add.
func (v *Verex) add(fragment string) *Verex {
	v.copyCheck()
	v.source += fragment
	return v
}

// Source returns the rendered pattern: the accumulated fragments with the
// anchors and the builder's flags applied, wrapped in one outer group.
//
// Example:
//
//	verex.StartOfLine().Find("a").Maybe("b").Source() // (?:^(?:a)(?:b)?)
func (v *Verex) Source() string {
	return v.render(v.flags)
}

// Raw is an alias of Source.
func (v *Verex) Raw() string {
	return v.Source()
}

// Value is an alias of Source.
func (v *Verex) Value() string {
	return v.Source()
}

// String implements fmt.Stringer and returns Source.
func (v *Verex) String() string {
	return v.Source()
}

// Flags returns the flags set on the builder.
func (v *Verex) Flags() Flags {
	return v.flags
}

func (v *Verex) render(flags Flags) string {
	mods := flags.String()

	var b strings.Builder
	b.Grow(len(v.prefixes) + len(v.source) + len(v.suffixes) + len(mods) + 4)
	b.WriteString("(?")
	b.WriteString(mods)
	b.WriteByte(':')
	b.WriteString(v.prefixes)
	b.WriteString(v.source)
	b.WriteString(v.suffixes)
	b.WriteByte(')')
	return b.String()
}

// Compile renders the pattern and compiles it with the default configuration.
//
// The returned *coregex.Regex is independent of the builder; later changes to
// the builder do not affect it. On failure the error is a *CompileError
// wrapping the engine's error.
func (v *Verex) Compile() (*coregex.Regex, error) {
	return v.CompileWithConfig(DefaultConfig())
}

// Regex is an alias of Compile.
func (v *Verex) Regex() (*coregex.Regex, error) {
	return v.Compile()
}

// CompileWithConfig renders the pattern with config.Flags merged into the
// builder's flags and compiles it with config.Engine.
//
// Case-insensitive patterns are compiled with the literal prefilter off:
// the engine's prefilter compares bytes exactly and would reject folded
// matches. The builder itself is not changed.
func (v *Verex) CompileWithConfig(config Config) (*coregex.Regex, error) {
	flags := v.flags | config.Flags
	if flags&CaseInsensitive != 0 {
		config.Engine.EnablePrefilter = false
	}
	pattern := v.render(flags)
	re, err := coregex.CompileWithConfig(pattern, config.Engine)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func (v *Verex) MustCompile() *coregex.Regex {
	re, err := v.Compile()
	if err != nil {
		panic("verex: Compile(`" + v.Source() + "`): " + err.Error())
	}
	return re
}

// IsMatch compiles the builder and reports whether text contains a match.
func (v *Verex) IsMatch(text string) (bool, error) {
	re, err := v.Compile()
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}

// Replace compiles the builder and replaces every match in text with repl.
// Inside repl, $1 and ${name} expand to capture groups as in the engine's
// ReplaceAllString.
func (v *Verex) Replace(text, repl string) (string, error) {
	re, err := v.Compile()
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(text, repl), nil
}
