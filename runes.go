// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// rawByteBase offsets bytes that are not valid UTF-8 past the Unicode range,
// so they survive the rune-based parsers and are written back unchanged.
const rawByteBase = unicode.MaxRune + 1

// replacementEscape is how a raw byte appears in regexp source: regexp2
// decodes subject strings to runes, turning every invalid byte into U+FFFD.
const replacementEscape = `\uFFFD`

// decodeGlob splits s into runes, mapping each invalid UTF-8 byte b to
// rawByteBase+b.
func decodeGlob(s string) []rune {
	rs := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		c, size := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError && size == 1 {
			c = rawByteBase + rune(s[i])
		}

		rs = append(rs, c)
		i += size
	}

	return rs
}

// isRawByte reports whether c stands for an undecodable byte.
func isRawByte(c rune) bool {
	return c >= rawByteBase && c <= rawByteBase+0xff
}

// writeGlobRune appends c to sb, restoring raw bytes.
func writeGlobRune(sb *strings.Builder, c rune) {
	if isRawByte(c) {
		sb.WriteByte(byte(c - rawByteBase))
		return
	}

	sb.WriteRune(c)
}

// encodeGlob is the inverse of decodeGlob.
func encodeGlob(rs []rune) string {
	var sb strings.Builder
	sb.Grow(len(rs))
	for _, c := range rs {
		writeGlobRune(&sb, c)
	}

	return sb.String()
}
