// Package fixtext provides Text, a fixed-capacity text value whose bytes
// live inside the value itself. No heap allocation, no pointer indirection:
// a []Text16 is one contiguous block and each element owns its own bytes.
// Intended for hot paths holding identifiers, tags, paths and keys where a
// Go string's header+backing-array indirection costs too much.
package fixtext

import (
	"bytes"
	"fmt"
	"io"
	"unsafe"

	"github.com/rawbytedev/fixtext/internal/common"
)

// Text is a fixed-capacity text value backed by the byte array A.
// The capacity is unsafe.Sizeof(A) bytes, one of which is reserved for a
// 0x00 terminator, so a Text[[16]byte] holds at most 15 content bytes.
//
// A must be a byte array type such as [16]byte (strict mode enforces this,
// see SetStrict). The zero value is a valid empty Text.
//
// Data is exported so composite literals can build instances directly;
// after any Assign the buffer is terminator-delimited and bytes past the
// terminator are unspecified. Do not compare with == (it compares the raw
// buffers, unspecified tail included); use Equal and friends.
type Text[A comparable] struct {
	Data A
}

// Common capacities. The number is the buffer size in bytes including the
// terminator slot, so Text8 holds up to 7 content bytes.
type (
	Text8   = Text[[8]byte]
	Text16  = Text[[16]byte]
	Text32  = Text[[32]byte]
	Text64  = Text[[64]byte]
	Text128 = Text[[128]byte]
	Text256 = Text[[256]byte]
)

// From builds a Text from s, truncating per Assign's contract.
func From[A comparable](s string) Text[A] {
	var t Text[A]
	t.AssignString(s)
	return t
}

// FromBytes builds a Text from b. A nil b yields an empty Text.
func FromBytes[A comparable](b []byte) Text[A] {
	var t Text[A]
	t.Assign(b)
	return t
}

// FromView builds a Text from the bytes v references.
func FromView[A comparable](v View) Text[A] {
	var t Text[A]
	t.AssignView(v)
	return t
}

// raw aliases the whole embedded buffer, terminator slot included.
func (t *Text[A]) raw() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&t.Data)), unsafe.Sizeof(t.Data))
}

// content is the terminator-delimited prefix of the buffer.
func (t *Text[A]) content() []byte {
	return common.Terminated(t.raw())
}

// Assign copies src into the buffer and terminates it. All other assignment
// forms funnel through here.
//
// A nil src is treated as empty. At most Cap()-1 bytes are copied; a longer
// src is silently truncated, except in strict mode where truncation (or a
// zero-capacity or non-byte-array buffer) panics instead. Bytes past the
// terminator are left untouched.
func (t *Text[A]) Assign(src []byte) {
	buf := t.raw()
	if strictMode {
		checkLayout[A]()
		if len(src) >= len(buf) {
			panic(fmt.Sprintf("fixtext: assigning %d bytes to capacity %d would truncate", len(src), len(buf)))
		}
	}
	if len(buf) == 0 {
		return
	}
	n := len(src)
	if m := len(buf) - 1; n > m {
		n = m
	}
	copy(buf[:n], src)
	buf[n] = 0
}

// AssignString copies s into the buffer under Assign's contract.
func (t *Text[A]) AssignString(s string) {
	t.Assign(common.Bytes(s))
}

// AssignView copies the bytes v references under Assign's contract.
func (t *Text[A]) AssignView(v View) {
	t.Assign(v.b)
}

// Bytes returns the content without copying. The slice aliases the internal
// buffer: it must not be mutated and is invalidated by the next Assign.
func (t *Text[A]) Bytes() []byte {
	return t.content()
}

// View returns a read-only view of the content without allocating.
// Same lifetime rules as Bytes.
func (t *Text[A]) View() View {
	return View{b: t.content()}
}

// Len is the content length in bytes, found by scanning for the terminator.
// O(Len).
func (t *Text[A]) Len() int {
	return len(t.content())
}

// Empty reports whether the content is empty. O(1).
func (t *Text[A]) Empty() bool {
	buf := t.raw()
	return len(buf) == 0 || buf[0] == 0
}

// Cap is the total buffer size in bytes, terminator slot included.
func (t *Text[A]) Cap() int {
	var zero A
	return int(unsafe.Sizeof(zero))
}

// String copies the content into a new Go string. This is the allocating
// conversion; hot paths should use Bytes or View instead.
// Also makes Text print as its content under fmt.
func (t *Text[A]) String() string {
	return string(t.content())
}

// WriteTo writes the content bytes to w without allocating.
func (t *Text[A]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.content())
	return int64(n), err
}

// MarshalText returns a copy of the content. The serialized form is just
// the terminator-delimited bytes.
func (t *Text[A]) MarshalText() ([]byte, error) {
	return bytes.Clone(t.content()), nil
}

// UnmarshalText assigns text under Assign's contract, truncation policy
// included.
func (t *Text[A]) UnmarshalText(text []byte) error {
	t.Assign(text)
	return nil
}
