package fixtext

import "reflect"

// Two failure profiles, selected once and applied by every Assign:
//
//   - strict: an assignment that would truncate, a zero-capacity buffer, or
//     a buffer type that is not a byte array panics at the call site. Meant
//     for development builds to surface mis-sized buffers immediately.
//   - release (default): the same conditions silently truncate or no-op.
//     There is deliberately no error return for overflow — callers size
//     buffers under the assumption that overflow means truncation.
//
// The default comes from the fixtextstrict build tag; SetStrict overrides it
// at run time so tests can exercise both paths.

var strictMode = strictDefault

// SetStrict switches between fail-fast and silent-truncate handling of
// capacity overflow. Not synchronized; call it during initialization, before
// other goroutines touch the package.
func SetStrict(on bool) {
	strictMode = on
}

// StrictMode reports whether overflow currently panics.
func StrictMode() bool {
	return strictMode
}

// checkLayout verifies that A is a usable buffer type. Only called on the
// strict path; release builds alias whatever A is, same as any other
// opt-out of validation.
func checkLayout[A comparable]() {
	var zero A
	rt := reflect.TypeOf(zero)
	if rt.Kind() != reflect.Array || rt.Elem().Kind() != reflect.Uint8 {
		panic("fixtext: buffer type must be a byte array, got " + rt.String())
	}
	if rt.Len() == 0 {
		panic("fixtext: capacity must be > 0, no room for the terminator")
	}
}
