package verex

// Each function here starts a fresh builder and applies one operation.

// Find returns a new builder matching the literal value.
func Find(value string) *Verex { return New().Find(value) }

// Maybe returns a new builder matching value zero or one times.
func Maybe(value string) *Verex { return New().Maybe(value) }

// Anything returns a new builder matching any character zero or more times.
func Anything() *Verex { return New().Anything() }

// AnythingBut returns a new builder matching zero or more characters not in chars.
func AnythingBut(chars string) *Verex { return New().AnythingBut(chars) }

// Something returns a new builder matching any character one or more times.
func Something() *Verex { return New().Something() }

// SomethingBut returns a new builder matching one or more characters not in chars.
func SomethingBut(chars string) *Verex { return New().SomethingBut(chars) }

// AnyOf returns a new builder matching one character from chars.
func AnyOf(chars string) *Verex { return New().AnyOf(chars) }

// Any is AnyOf.
func Any(chars string) *Verex { return New().Any(chars) }

// Range returns a new builder matching one character from the given ranges.
func Range(ranges ...CharRange) *Verex { return New().Range(ranges...) }

// LineBreak returns a new builder matching a line break.
func LineBreak() *Verex { return New().LineBreak() }

// Br is LineBreak.
func Br() *Verex { return New().Br() }

// Tab returns a new builder matching a tab.
func Tab() *Verex { return New().Tab() }

// Word returns a new builder matching one or more word characters.
func Word() *Verex { return New().Word() }

// Digit returns a new builder matching a digit.
func Digit() *Verex { return New().Digit() }

// Capture returns a new builder capturing the literal value.
func Capture(value string) *Verex { return New().Capture(value) }

// StartOfLine returns a new builder anchored at the start.
func StartOfLine() *Verex { return New().StartOfLine() }

// EndOfLine returns a new builder anchored at the end.
func EndOfLine() *Verex { return New().EndOfLine() }

// WithAnyCase returns a new builder with case-insensitive matching toggled.
func WithAnyCase(enable bool) *Verex { return New().WithAnyCase(enable) }

// SearchOneLine returns a new builder with one-line search toggled.
func SearchOneLine(enable bool) *Verex { return New().SearchOneLine(enable) }

// Or returns a new builder matching any one of the literal values.
//
//	verex.Or("foo", "bar").Source() // (?:(?:(?:foo))|(?:bar))
//
// With no values the builder is empty.
func Or(values ...string) *Verex {
	v := New()
	for i, value := range values {
		if i == 0 {
			v.Find(value)
			continue
		}
		v.OrFind(value)
	}
	return v
}
