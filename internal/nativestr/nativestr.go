// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

// Package nativestr converts strings received from native windowing layers
// into the canonical form promised to applications: valid UTF-8 in
// Unicode NFC, regardless of what the platform delivered (UTF-16 on
// Windows, NFD-decomposed paths on macOS, arbitrary bytes elsewhere).
package nativestr

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// Clean returns the canonical UTF-8 NFC form of a native string.
// Invalid byte sequences are replaced with U+FFFD.
func Clean(s string) string {
	s = strings.ToValidUTF8(s, "�")
	return norm.NFC.String(s)
}

// CleanAll canonicalizes a list of native strings in place and returns it.
// Order is preserved.
func CleanAll(ss []string) []string {
	for i, s := range ss {
		ss[i] = Clean(s)
	}
	return ss
}

// FromUTF16 decodes a NUL-terminated UTF-16 buffer into canonical UTF-8.
// Used by the Windows message filter for DragQueryFileW results.
func FromUTF16(u []uint16) string {
	for i, c := range u {
		if c == 0 {
			u = u[:i]
			break
		}
	}
	return Clean(string(utf16.Decode(u)))
}
