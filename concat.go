package fixtext

import "github.com/rawbytedev/fixtext/internal/common"

// Concatenation always returns a freshly allocated string: the result length
// is only known at run time and a Text cannot grow to hold it, so the result
// is never constrained by either operand's capacity. These exist for
// diagnostics and logging, not hot paths.

// Concat joins the contents of a and b, in that order.
func Concat[A, B comparable](a *Text[A], b *Text[B]) string {
	return join(a.content(), b.content())
}

// Append joins the content followed by suffix. A nil suffix is treated as
// empty.
func (t *Text[A]) Append(suffix []byte) string {
	return join(t.content(), suffix)
}

// Prepend joins prefix followed by the content. A nil prefix is treated as
// empty.
func (t *Text[A]) Prepend(prefix []byte) string {
	return join(prefix, t.content())
}

// AppendString joins the content followed by s.
func (t *Text[A]) AppendString(s string) string {
	return join(t.content(), common.Bytes(s))
}

// PrependString joins s followed by the content.
func (t *Text[A]) PrependString(s string) string {
	return join(common.Bytes(s), t.content())
}

// AppendView joins the content followed by the bytes v references.
func (t *Text[A]) AppendView(v View) string {
	return join(t.content(), v.b)
}

// PrependView joins the bytes v references followed by the content.
func (t *Text[A]) PrependView(v View) string {
	return join(v.b, t.content())
}

func join(a, b []byte) string {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	// out never escapes as a mutable slice, so aliasing it is safe.
	return common.String(out)
}
