package verex

import "fmt"

// CompileError reports that the engine rejected an assembled pattern.
//
// Building never fails; a malformed raw fragment, a reversed Range or a
// literal that is not valid UTF-8 surfaces here instead.
//
// Pattern is the exact text handed to the engine (anchors and flags
// included). Err is the engine's error, unchanged.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
// The engine's diagnostic is included verbatim.
func (e *CompileError) Error() string {
	return fmt.Sprintf("verex: compiling %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying engine error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
