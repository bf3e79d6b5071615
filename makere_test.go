// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeReSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		opts    Options
		want    string
	}{
		{pattern: "*.js", want: `^(?!\.)[^/]*?\.js$`},
		{pattern: "a/**/b", want: `^a(?:\/|\/(?:(?!(?:\/|^)\.).)*?\/)b$`},
		{pattern: "**", want: `^(?:(?!(?:\/|^)\.).)*?$`},
		{pattern: "{a,b}", want: `^(?:a|b)$`},
		{pattern: "!a", want: `^(?!^a$).+$`},
		{pattern: "a/b", opts: Options{Partial: true}, want: `^(?:\/|(?:a|a/b))$`},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()

			re, ok, err := MakeRe(tt.pattern, tt.opts)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, re.String())
		})
	}
}

func TestMakeReMatches(t *testing.T) {
	t.Parallel()

	re, ok, err := MakeRe("*.js", Options{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, re.MatchString("a.js"))
	assert.False(t, re.MatchString(".a.js"))
	assert.False(t, re.MatchString("a.js\n"))
	assert.Empty(t, re.Flags())
	assert.NotNil(t, re.Regexp())

	re, ok, err = MakeRe("a/**/b", Options{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, re.MatchString("a/b"))
	assert.True(t, re.MatchString("a/x/y/b"))
	assert.False(t, re.MatchString("a/.x/b"))

	re, ok, err = MakeRe("!a", Options{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, re.MatchString("a"))
	assert.True(t, re.MatchString("b"))

	re, ok, err = MakeRe("a/b", Options{Partial: true})
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, re.MatchString("/"))
	assert.True(t, re.MatchString("a"))
	assert.False(t, re.MatchString("b"))
}

func TestMakeReFlags(t *testing.T) {
	t.Parallel()

	re, ok, err := MakeRe("*.JS", Options{NoCase: true})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "i", re.Flags())
	assert.True(t, re.MatchString("a.js"))
}

func TestMakeReNoAlternatives(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{"#comment", "", "[z-a]"} {
		_, ok, err := MakeRe(pattern, Options{})
		require.NoError(t, err)
		assert.False(t, ok, pattern)
	}
}

func TestMakeReAgreesWithMatch(t *testing.T) {
	t.Parallel()

	paths := []string{"a", "a/b", "a/b/c.js", ".a", "a/.b", "src/x.ts", "src/x.tsx", "x.js"}
	patterns := []string{"*", "**", "a/*", "**/*.js", "src/*.{ts,tsx}", "a/**", "+(a|x)*", "?"}

	for _, pattern := range patterns {
		m, err := Compile(pattern, Options{})
		require.NoError(t, err)

		re, ok := m.Regex()
		require.True(t, ok, pattern)

		for _, p := range paths {
			assert.Equal(t, m.Match(p), re.MatchString(p), "%q on %q", pattern, p)
		}
	}
}
