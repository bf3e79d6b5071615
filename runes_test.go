// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDecodeGlobRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "abc", "日本", "\xff", "x\xfey", "\xc3\x28", "a\xe2\x82"} {
		assert.Equal(t, s, encodeGlob(decodeGlob(s)), "%q", s)
	}

	rs := decodeGlob("a\xffb")
	assert.Len(t, rs, 3)
	assert.True(t, isRawByte(rs[1]))
	assert.False(t, isRawByte(rs[0]))
	assert.False(t, isRawByte(utf8.RuneError))
}

func TestRawBytesInSources(t *testing.T) {
	t.Parallel()

	f := parseGlob("x\xfe*", false)
	assert.Equal(t, `x\uFFFD[^/]*?`, f.src)
	assert.True(t, f.magic)

	f = parseGlob("x\xfey", false)
	assert.Equal(t, "x\xfey", f.literal)
	assert.False(t, f.magic)

	cls := parseClass(decodeGlob("[\xfe\xff]"), 0)
	assert.Equal(t, `[\uFFFD\uFFFD]`, cls.src)

	cls = parseClass(decodeGlob("[\xff]"), 0)
	assert.Equal(t, "\xff", cls.literal)
	assert.False(t, cls.magic)
}
