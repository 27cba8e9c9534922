package verex

// Flags is a set of engine-level matching options.
//
// Flags are rendered as an inline flag group around the whole pattern
// ((?i:...), (?m:...)) and never enter the accumulated fragment text.
type Flags uint8

const (
	// CaseInsensitive makes letters match regardless of case (i).
	CaseInsensitive Flags = 1 << iota

	// MultiLine makes ^ and $ match at line boundaries instead of only at
	// the start and end of the text (m).
	MultiLine
)

// String returns the inline flag letters of f in canonical order, e.g. "im".
func (f Flags) String() string {
	var buf [2]byte
	n := 0
	if f&CaseInsensitive != 0 {
		buf[n] = 'i'
		n++
	}
	if f&MultiLine != 0 {
		buf[n] = 'm'
		n++
	}
	return string(buf[:n])
}

// set returns f with flag enabled or disabled.
func (f Flags) set(flag Flags, enable bool) Flags {
	if enable {
		return f | flag
	}
	return f &^ flag
}
