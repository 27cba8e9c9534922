// Fuzz tests for literal and class escaping.
//
// Run with:
//
//	go test -fuzz=FuzzFindExact -fuzztime=30s
//	go test -fuzz=FuzzAnythingBut -fuzztime=30s
package verex

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"
)

var seedLiterals = []string{
	"",
	"a",
	".",
	"a.b",
	`.*+?^${}()|[]\`,
	"http://",
	"www.",
	"[:alpha:]",
	"-",
	"^",
	"héllo",
	"\t\n",
}

// FuzzFindExact checks that Find(s) matches s itself, anchored.
func FuzzFindExact(f *testing.F) {
	for _, s := range seedLiterals {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip("invalid UTF-8")
		}

		v := StartOfLine().Find(s).EndOfLine()
		re, err := v.Compile()
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", v.Source(), err)
		}
		if !re.MatchString(s) {
			t.Errorf("%q does not match %q", v.Source(), s)
		}
		if !regexp.MustCompile(v.Source()).MatchString(s) {
			t.Errorf("stdlib: %q does not match %q", v.Source(), s)
		}
	})
}

// FuzzAnythingBut checks that AnythingBut(chars) rejects exactly the texts
// containing one of chars.
func FuzzAnythingBut(f *testing.F) {
	for _, s := range seedLiterals {
		f.Add(s, "abc x")
		f.Add(s, s+"z")
	}

	f.Fuzz(func(t *testing.T, chars, text string) {
		if !utf8.ValidString(chars) || !utf8.ValidString(text) {
			t.Skip("invalid UTF-8")
		}
		if chars == "" || strings.ContainsRune(text, '\n') {
			t.Skip("empty set or multi-line text")
		}

		v := StartOfLine().AnythingBut(chars).EndOfLine()
		re, err := v.Compile()
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", v.Source(), err)
		}
		std, err := regexp.Compile(v.Source())
		if err != nil {
			t.Fatalf("stdlib Compile(%q) error = %v", v.Source(), err)
		}

		want := !strings.ContainsAny(text, chars)
		if got := re.MatchString(text); got != want {
			t.Errorf("%q on %q = %v, want %v", v.Source(), text, got, want)
		}
		if got := std.MatchString(text); got != want {
			t.Errorf("stdlib: %q on %q = %v, want %v", v.Source(), text, got, want)
		}
	})
}
