package verex_test

import (
	"errors"
	"fmt"

	"github.com/coregx/verex"
)

// ExampleNew demonstrates reusing one builder for several regexes.
func ExampleNew() {
	v := verex.New()
	re1 := v.Find("a").MustCompile()
	re2 := v.OrFind("b").MustCompile()

	fmt.Println(re1.MatchString("b"))
	fmt.Println(re2.MatchString("b"))
	fmt.Println(re2.String())
	// Output:
	// false
	// true
	// (?:(?:(?:a))|(?:b))
}

// ExampleVerex_Source demonstrates building a URL matcher.
func ExampleVerex_Source() {
	v := verex.StartOfLine().
		Find("http").
		Maybe("s").
		Find("://").
		Maybe("www.").
		AnythingBut(" ").
		EndOfLine()

	re, err := v.Compile()
	if err != nil {
		panic(err)
	}

	fmt.Println(v.Source())
	fmt.Println(re.MatchString("https://www.google.com"))
	fmt.Println(re.MatchString("https://www.google.com/a b"))
	// Output:
	// (?:^(?:http)(?:s)?(?:://)(?:www\.)?(?:[^ ]*)$)
	// true
	// false
}

// ExampleOr demonstrates matching any of several literals.
func ExampleOr() {
	re := verex.Or("foo", "bar", "baz").MustCompile()

	fmt.Println(re.MatchString("bar"))
	fmt.Println(re.MatchString("bum"))
	// Output:
	// true
	// false
}

// ExampleRange demonstrates a character class from ranges.
func ExampleRange() {
	v := verex.Range(verex.CharRange{From: 'a', To: 'z'}, verex.CharRange{From: '0', To: '9'})
	fmt.Println(v.Source())
	// Output: (?:(?:[a-z0-9]))
}

// ExampleVerex_WithAnyCase demonstrates case-insensitive matching.
func ExampleVerex_WithAnyCase() {
	re := verex.Find("hello").WithAnyCase(true).MustCompile()
	fmt.Println(re.MatchString("HeLLo world"))
	// Output: true
}

// ExampleVerex_Replace demonstrates replacing every match.
func ExampleVerex_Replace() {
	out, err := verex.Find("r").Replace("foobar", "z")
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: foobaz
}

// ExampleCompileError demonstrates inspecting a compile failure.
func ExampleCompileError() {
	_, err := verex.Range(verex.CharRange{From: 'z', To: 'a'}).Compile()

	var ce *verex.CompileError
	if errors.As(err, &ce) {
		fmt.Println(ce.Pattern)
	}
	// Output: (?:(?:[z-a]))
}
