package fixtext

import "github.com/rawbytedev/fixtext/internal/common"

// View is a non-owning window over text bytes owned elsewhere: a (pointer,
// length) pair with no ownership and no null state. Views produced by
// Text.View alias the Text's buffer and are invalidated by its next Assign.
type View struct {
	b []byte
}

// ViewOf wraps b. The View references b directly, no copy.
func ViewOf(b []byte) View {
	return View{b: b}
}

// ViewOfString aliases s without copying.
func ViewOfString(s string) View {
	return View{b: common.Bytes(s)}
}

// Len returns the view's length in bytes.
func (v View) Len() int {
	return len(v.b)
}

// Empty reports whether the view references zero bytes.
func (v View) Empty() bool {
	return len(v.b) == 0
}

// Bytes returns the referenced bytes without copying. Read-only.
func (v View) Bytes() []byte {
	return v.b
}

// String copies the referenced bytes into a new string. Allocates.
func (v View) String() string {
	return string(v.b)
}
