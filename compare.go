package fixtext

import "bytes"

// Equal reports whether two Texts of possibly different capacities hold
// identical content. Capacity never matters: a Text8 holding "ab" equals a
// Text64 holding "ab".
func Equal[A, B comparable](a *Text[A], b *Text[B]) bool {
	return bytes.Equal(a.content(), b.content())
}

// EqualBytes reports whether the content equals b. A nil b is never equal,
// even to an empty Text — unlike Assign, which treats nil as empty.
func (t *Text[A]) EqualBytes(b []byte) bool {
	if b == nil {
		return false
	}
	return bytes.Equal(t.content(), b)
}

// EqualString reports whether the content equals s. Does not allocate.
func (t *Text[A]) EqualString(s string) bool {
	return string(t.content()) == s
}

// EqualView reports whether the content equals the bytes v references.
// Pure content comparison; a zero View equals an empty Text.
func (t *Text[A]) EqualView(v View) bool {
	return bytes.Equal(t.content(), v.b)
}
