package verex

import (
	"strings"

	"github.com/coregx/verex/internal/quote"
)

// CharRange is an inclusive range of characters, From through To.
type CharRange struct {
	From, To rune
}

// Find appends the literal value: (?:value).
//
// value must be valid UTF-8; otherwise Compile reports a *CompileError.
func (v *Verex) Find(value string) *Verex {
	return v.add("(?:" + quote.Literal(value) + ")")
}

// Then is Find, for readability after a previous step.
func (v *Verex) Then(value string) *Verex {
	return v.Find(value)
}

// Maybe appends the literal value zero or one times: (?:value)?.
func (v *Verex) Maybe(value string) *Verex {
	return v.add("(?:" + quote.Literal(value) + ")?")
}

// Or turns everything built so far into the left branch of an alternation.
// The steps that follow form the right branch. On an empty builder there is
// no left branch and Or does nothing, so New().OrFind("b") is Find("b").
func (v *Verex) Or() *Verex {
	v.copyCheck()
	if v.source == "" {
		return v
	}
	v.source = "(?:" + v.source + ")|"
	return v
}

// OrFind matches either everything built so far or the literal value:
// (?:previous)|(?:value).
func (v *Verex) OrFind(value string) *Verex {
	return v.Or().Find(value)
}

// Anything appends any character zero or more times: (?:.*).
func (v *Verex) Anything() *Verex {
	return v.add("(?:.*)")
}

// AnythingBut appends zero or more characters not in chars: (?:[^chars]*).
// With empty chars it is Anything.
func (v *Verex) AnythingBut(chars string) *Verex {
	if chars == "" {
		return v.Anything()
	}
	return v.add("(?:[^" + quote.Class(chars) + "]*)")
}

// Something appends any character one or more times: (?:.+).
func (v *Verex) Something() *Verex {
	return v.add("(?:.+)")
}

// SomethingBut appends one or more characters not in chars: (?:[^chars]+).
// With empty chars it is Something.
func (v *Verex) SomethingBut(chars string) *Verex {
	if chars == "" {
		return v.Something()
	}
	return v.add("(?:[^" + quote.Class(chars) + "]+)")
}

// AnyOf appends exactly one character from chars: (?:[chars]).
// Empty chars add no constraint: (?:).
func (v *Verex) AnyOf(chars string) *Verex {
	if chars == "" {
		return v.add("(?:)")
	}
	return v.add("(?:[" + quote.Class(chars) + "])")
}

// Any is AnyOf.
func (v *Verex) Any(chars string) *Verex {
	return v.AnyOf(chars)
}

// Range appends one character from the union of the given ranges:
// (?:[a-zA-Z]). No ranges add no constraint: (?:).
//
// A range with From > To is passed through; the engine reports it at
// compile time.
func (v *Verex) Range(ranges ...CharRange) *Verex {
	if len(ranges) == 0 {
		return v.add("(?:)")
	}
	var b strings.Builder
	b.WriteString("(?:[")
	for _, r := range ranges {
		b.WriteString(quote.Rune(r.From))
		b.WriteByte('-')
		b.WriteString(quote.Rune(r.To))
	}
	b.WriteString("])")
	return v.add(b.String())
}

// LineBreak appends a Unix or Windows line break: (?:(?:\n)|(?:\r\n)).
func (v *Verex) LineBreak() *Verex {
	return v.add(`(?:(?:\n)|(?:\r\n))`)
}

// Br is LineBreak.
func (v *Verex) Br() *Verex {
	return v.LineBreak()
}

// Tab appends a tab character: (?:\t).
func (v *Verex) Tab() *Verex {
	return v.add(`(?:\t)`)
}

// Word appends one or more word characters: (?:\w+).
func (v *Verex) Word() *Verex {
	return v.add(`(?:\w+)`)
}

// Digit appends a single digit: (?:\d).
func (v *Verex) Digit() *Verex {
	return v.add(`(?:\d)`)
}

// Capture appends the literal value as a capturing group: (value).
func (v *Verex) Capture(value string) *Verex {
	return v.add("(" + quote.Literal(value) + ")")
}

// StartOfLine anchors the pattern at the start: ^. Repeated calls keep a
// single anchor.
func (v *Verex) StartOfLine() *Verex {
	v.copyCheck()
	v.prefixes = "^"
	return v
}

// EndOfLine anchors the pattern at the end: $. Repeated calls keep a
// single anchor.
func (v *Verex) EndOfLine() *Verex {
	v.copyCheck()
	v.suffixes = "$"
	return v
}

// WithAnyCase toggles case-insensitive matching.
func (v *Verex) WithAnyCase(enable bool) *Verex {
	v.copyCheck()
	v.flags = v.flags.set(CaseInsensitive, enable)
	return v
}

// SearchOneLine toggles whether ^ and $ match only at the start and end of
// the text (true, the default) or at every line boundary (false).
func (v *Verex) SearchOneLine(enable bool) *Verex {
	v.copyCheck()
	v.flags = v.flags.set(MultiLine, !enable)
	return v
}
