//go:build !fixtextstrict

package fixtext

const strictDefault = false
