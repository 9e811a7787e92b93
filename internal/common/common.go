// Package common holds the zero-copy byte/string plumbing shared by the
// fixtext package. Everything here aliases memory instead of copying it;
// callers own the lifetime and read-only guarantees.
package common

import (
	"bytes"
	"unsafe"
)

// String aliases b as a string without copying. The result must be treated
// as read-only and must not outlive b.
func String(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Bytes aliases s as a byte slice without copying. The result must never be
// written to: s may live in read-only memory.
func Bytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Terminated returns the prefix of buf up to, but not including, the first
// 0x00 byte. A buffer with no terminator (possible only through aggregate
// initialization) yields the whole buffer.
func Terminated(buf []byte) []byte {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return buf[:i]
	}
	return buf
}
