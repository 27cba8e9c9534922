// Package quote escapes caller-supplied text for embedding in a pattern.
//
// Two targets exist: literal text outside brackets, and set members inside a
// bracketed character class. The metacharacters differ between the two, so
// each has its own function.
package quote

import (
	"strings"

	"github.com/coregx/coregex"
)

// classSpecial lists the characters that change meaning inside [...].
//
// '[' is included because "[:" opens a POSIX class such as [:alpha:].
const classSpecial = `\]^-[`

// Literal escapes every metacharacter in s (. * + ? ^ $ { } ( ) | [ ] \)
// so the result matches s exactly.
func Literal(s string) string {
	return coregex.QuoteMeta(s)
}

// Class escapes s for use as the member list of a character class.
// Characters that are plain inside brackets (such as '.' or '*') are left bare.
func Class(s string) string {
	if !strings.ContainsAny(s, classSpecial) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		writeClassRune(&b, r)
	}
	return b.String()
}

// Rune escapes a single range bound for use inside a character class.
func Rune(r rune) string {
	var b strings.Builder
	writeClassRune(&b, r)
	return b.String()
}

func writeClassRune(b *strings.Builder, r rune) {
	if r < 0x80 && strings.IndexByte(classSpecial, byte(r)) >= 0 {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}
