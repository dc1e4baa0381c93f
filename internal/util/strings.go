// Package util provides small string helpers.
package util

import (
	"strings"
	"sync"
)

// LCase lower-cases the ASCII letters of s. Other bytes are kept as is.
func LCase[T ~string](s T) T {
	if IsASCIILower(string(s)) {
		return s
	}
	b := []byte(s)
	for i, ch := range b {
		b[i] = lowerASCII(ch)
	}
	return T(b)
}

// EqFold reports whether s1 and s2 are equal when ASCII letters are
// compared case-insensitively. Non-ASCII bytes must match exactly.
func EqFold[T1, T2 ~string](s1 T1, s2 T2) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := 0; i < len(s1); i++ {
		if lowerASCII(s1[i]) != lowerASCII(s2[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(ch byte) byte {
	if 'A' <= ch && ch <= 'Z' {
		return ch + 'a' - 'A'
	}
	return ch
}

// IsASCIILower reports whether s has no upper-case ASCII letters.
func IsASCIILower(s string) bool {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			return false
		}
	}
	return true
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

// GetStringBuilder takes a [strings.Builder] from the pool.
func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

// FreeStringBuilder returns sb to the pool.
func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
