// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchCase struct {
	pattern string
	opts    Options
	yes     []string
	no      []string
}

func runMatchCases(t *testing.T, cases []matchCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			t.Parallel()

			m, err := Compile(tc.pattern, tc.opts)
			require.NoError(t, err)

			for _, p := range tc.yes {
				assert.True(t, m.Match(p), "%q must match %q", tc.pattern, p)
			}

			for _, p := range tc.no {
				assert.False(t, m.Match(p), "%q must not match %q", tc.pattern, p)
			}
		})
	}
}

func TestMatchBasics(t *testing.T) {
	t.Parallel()

	runMatchCases(t, []matchCase{
		{pattern: "*.js", yes: []string{"a.js", "x.y.js"}, no: []string{".a.js", "a/b.js", "a.ts"}},
		{pattern: "a/*/c", yes: []string{"a/b/c", "a/b/c/"}, no: []string{"a/c", "a/b/d/c", "a/.b/c"}},
		{pattern: "a/?", yes: []string{"a/b"}, no: []string{"a/bc", "a/.", "a/"}},
		{pattern: "abc", yes: []string{"abc", "abc/"}, no: []string{"ABC", "abcd", "a/bc"}},
		{pattern: "/abs/*", yes: []string{"/abs/x"}, no: []string{"abs/x"}},
		{pattern: "a//b", yes: []string{"a/b", "a//b"}, no: []string{"a/x/b"}},
		{pattern: "file[0-2].txt", yes: []string{"file1.txt"}, no: []string{"file9.txt"}},
		{pattern: `a\*b`, yes: []string{"a*b"}, no: []string{"axb"}},
		{pattern: "x+(y", yes: []string{"x+(y"}, no: []string{"xy"}},
	})
}

func TestMatchGlobstar(t *testing.T) {
	t.Parallel()

	runMatchCases(t, []matchCase{
		{pattern: "**", yes: []string{"a", "a/b/c"}, no: []string{".a", "a/.b/c", "a/../b"}},
		{pattern: "**", opts: Options{Dot: true}, yes: []string{".a", "a/.b/c"}, no: []string{"a/./b", "a/../b"}},
		{pattern: "**/*.js", yes: []string{"c.js", "a/b/c.js"}, no: []string{"a/.b/c.js", "a/b/c.ts"}},
		{pattern: "a/**/b", yes: []string{"a/b", "a/x/b", "a/x/y/b"}, no: []string{"a/.x/b", "b"}},
		{pattern: "a/**/b", opts: Options{Dot: true}, yes: []string{"a/.x/b"}},
		{pattern: "a/**", yes: []string{"a/b", "a/b/c", "a/"}, no: []string{"b/a", "a/.git/x"}},
		{pattern: "a/**/**/b", yes: []string{"a/b", "a/x/b"}},
		{pattern: "**", opts: Options{NoGlobstar: true}, yes: []string{"a"}, no: []string{"a/b"}},
	})
}

func TestMatchDot(t *testing.T) {
	t.Parallel()

	runMatchCases(t, []matchCase{
		{pattern: "*", yes: []string{"a"}, no: []string{".a", ""}},
		{pattern: "*", opts: Options{Dot: true}, yes: []string{".a"}, no: []string{".", ".."}},
		{pattern: ".*", yes: []string{".a", ".git"}, no: []string{".", "..", "a"}},
		{pattern: "a/.", yes: []string{"a/."}, no: []string{"a"}},
	})
}

func TestMatchExtglob(t *testing.T) {
	t.Parallel()

	runMatchCases(t, []matchCase{
		{pattern: "+(a|b)", yes: []string{"a", "abba"}, no: []string{"c", ""}},
		{pattern: "*(a|b)x", yes: []string{"x", "abx"}, no: []string{"cx"}},
		{pattern: "@(foo|bar).txt", yes: []string{"foo.txt"}, no: []string{"baz.txt", "foobar.txt"}},
		{pattern: "?(a|b).js", yes: []string{"a.js"}, no: []string{"ab.js"}},
		{pattern: "!(*.js)", yes: []string{"a.txt", "js"}, no: []string{"a.js", ".a"}},
		{pattern: "a/!(b)/c", yes: []string{"a/x/c"}, no: []string{"a/b/c"}},
		{pattern: "!(a).js", yes: []string{"b.js", "ab.js"}, no: []string{"a.js"}},
		{pattern: "+(a|b)", opts: Options{NoExt: true}, yes: []string{"+(a|b)"}, no: []string{"a"}},
		{pattern: "@()", yes: []string{"@()"}, no: []string{""}},
	})
}

func TestMatchBraces(t *testing.T) {
	t.Parallel()

	runMatchCases(t, []matchCase{
		{pattern: "src/*.{ts,tsx}", yes: []string{"src/a.ts", "src/b.tsx"}, no: []string{"src/c.js"}},
		{pattern: "file{1..3}", yes: []string{"file1", "file3"}, no: []string{"file4"}},
		{pattern: "a{b,c}", opts: Options{NoBrace: true}, yes: []string{"a{b,c}"}, no: []string{"ab"}},
		{pattern: `\{a,b\}`, yes: []string{"{a,b}"}, no: []string{"a"}},
		{pattern: "{[z-a],b}", yes: []string{"b"}, no: []string{"a"}},
	})
}

func TestMatchNoCase(t *testing.T) {
	t.Parallel()

	runMatchCases(t, []matchCase{
		{pattern: "*.JS", opts: Options{NoCase: true}, yes: []string{"a.js", "B.Js"}},
		{pattern: "Src/Main.go", opts: Options{NoCase: true}, yes: []string{"src/main.go", "SRC/MAIN.GO"}},
		{pattern: "[A-C]x", opts: Options{NoCase: true}, yes: []string{"bx", "Bx"}, no: []string{"dx"}},
	})
}

func TestMatchNegation(t *testing.T) {
	t.Parallel()

	m, err := Compile("!*.js", Options{})
	require.NoError(t, err)
	assert.True(t, m.Negated())
	assert.False(t, m.Match("a.js"))
	assert.True(t, m.Match("a.txt"))

	m, err = Compile("!!*.js", Options{})
	require.NoError(t, err)
	assert.False(t, m.Negated())
	assert.True(t, m.Match("a.js"))

	m, err = Compile("!*.js", Options{NoNegate: true})
	require.NoError(t, err)
	assert.False(t, m.Negated())
	assert.False(t, m.Match("a.js"))

	m, err = Compile("!*.js", Options{FlipNegate: true})
	require.NoError(t, err)
	assert.True(t, m.Match("a.js"))
	assert.False(t, m.Match("a.txt"))

	// Any hit among alternatives means false.
	m, err = Compile("!{a,b}", Options{})
	require.NoError(t, err)
	assert.False(t, m.Match("a"))
	assert.False(t, m.Match("b"))
	assert.True(t, m.Match("c"))

	m, err = Compile("[z-a]", Options{})
	require.NoError(t, err)
	assert.False(t, m.Match("a"))
	assert.False(t, m.Match("[z-a]"))

	m, err = Compile("![z-a]", Options{})
	require.NoError(t, err)
	assert.True(t, m.Match("a"))
}

func TestMatchCommentAndEmpty(t *testing.T) {
	t.Parallel()

	m, err := Compile("#foo", Options{})
	require.NoError(t, err)
	assert.True(t, m.Comment())
	assert.False(t, m.Match("#foo"))
	assert.False(t, m.MatchPartial("/"))

	m, err = Compile("#foo", Options{NoComment: true})
	require.NoError(t, err)
	assert.False(t, m.Comment())
	assert.True(t, m.Match("#foo"))

	m, err = Compile("", Options{})
	require.NoError(t, err)
	assert.True(t, m.Empty())
	assert.True(t, m.Match(""))
	assert.False(t, m.Match("a"))
}

func TestMatchBase(t *testing.T) {
	t.Parallel()

	runMatchCases(t, []matchCase{
		{pattern: "*.js", opts: Options{MatchBase: true}, yes: []string{"a/b/c.js", "c.js", "a/c.js/"}, no: []string{"a/b.ts"}},
		{pattern: "b/*.js", opts: Options{MatchBase: true}, yes: []string{"b/c.js"}, no: []string{"a/b/c.js"}},
	})
}

func TestMatchPartial(t *testing.T) {
	t.Parallel()

	m, err := Compile("a/b/*/d", Options{})
	require.NoError(t, err)

	assert.True(t, m.MatchPartial("a"))
	assert.True(t, m.MatchPartial("a/b"))
	assert.True(t, m.MatchPartial("a/b/x"))
	assert.True(t, m.MatchPartial("/"))
	assert.False(t, m.MatchPartial("a/x"))
	assert.False(t, m.Match("a/b"))

	m, err = Compile("a/**/z", Options{Partial: true})
	require.NoError(t, err)
	assert.True(t, m.Match("a/x/y"))
	assert.False(t, m.Match("b/x"))
}

func TestMatchPreserveMultipleSlashes(t *testing.T) {
	t.Parallel()

	runMatchCases(t, []matchCase{
		{pattern: "a//b", opts: Options{PreserveMultipleSlashes: true}, yes: []string{"a//b"}, no: []string{"a/b"}},
		{pattern: "a/*/b", opts: Options{PreserveMultipleSlashes: true}, yes: []string{"a/x/b"}, no: []string{"a//b"}},
	})
}

func TestMatchOptimizationLevels(t *testing.T) {
	t.Parallel()

	runMatchCases(t, []matchCase{
		{pattern: "a/./b", opts: Options{OptimizationLevel: OptimizationBasic}, yes: []string{"a/./b"}, no: []string{"a/b"}},
		{pattern: "a/./b", opts: Options{OptimizationLevel: OptimizationAggressive}, yes: []string{"a/b", "a/./b"}},
		{pattern: "a/b/../c", yes: []string{"a/c"}, no: []string{"a/b/../c"}},
		{pattern: "a/b/../c", opts: Options{OptimizationLevel: OptimizationNone}, yes: []string{"a/b/../c"}, no: []string{"a/c"}},
		{pattern: "a/c", opts: Options{OptimizationLevel: OptimizationAggressive}, yes: []string{"a/b/../c", "a//c"}},
	})
}

func TestMatchWindows(t *testing.T) {
	t.Parallel()

	win := Options{Platform: PlatformWin32}
	runMatchCases(t, []matchCase{
		{pattern: "c:/foo/*", opts: win, yes: []string{`C:\foo\bar`, "c:/foo/bar"}, no: []string{`d:\foo\bar`}},
		{pattern: "//?/c:/foo", opts: win, yes: []string{"c:/foo", `\\?\C:\foo`}, no: []string{"d:/foo"}},
		{pattern: "C:/foo", opts: win, yes: []string{`\\?\c:\foo`}},
		{pattern: "a/*.txt", opts: win, yes: []string{`a\b.txt`}},
		{pattern: `a\b`, opts: Options{Platform: PlatformWin32, WindowsPathsNoEscape: true}, yes: []string{"a/b", `a\b`}},
		{pattern: "//host/share/*", opts: Options{Platform: PlatformWin32, NoCase: true}, yes: []string{`\\host\share\x`, `\\host\share\X`}, no: []string{`\\HOST\share\x`}},
	})

	posix := Options{Platform: PlatformPOSIX}
	runMatchCases(t, []matchCase{
		{pattern: "a/*.txt", opts: posix, yes: []string{"a/b.txt"}, no: []string{`a\b.txt`}},
	})
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	_, err := Compile(strings.Repeat("a", MaxPatternLength+1), Options{})
	require.ErrorIs(t, err, ErrPatternTooLong)
	require.ErrorIs(t, err, ErrInvalidPattern)

	_, err = Compile(strings.Repeat("a", MaxPatternLength), Options{})
	require.NoError(t, err)

	_, err = Compile("a", Options{Platform: "beos"})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = Compile("a", Options{OptimizationLevel: 9})
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestMatcherAccessors(t *testing.T) {
	t.Parallel()

	m, err := Compile("a{b,c}/x/../y", Options{Platform: PlatformPOSIX})
	require.NoError(t, err)

	assert.Equal(t, "a{b,c}/x/../y", m.Pattern())
	assert.Equal(t, []string{"ab/x/../y", "ac/x/../y"}, m.GlobSet())
	assert.Equal(t, [][]string{{"ab", "y"}, {"ac", "y"}}, m.GlobParts())
	assert.Equal(t, OptimizationBasic, m.Options().OptimizationLevel)
	assert.Equal(t, PlatformPOSIX, m.Options().Platform)

	parts := m.GlobParts()
	parts[0][0] = "mutated"
	assert.Equal(t, "ab", m.GlobParts()[0][0])
}

func TestMatcherHasMagic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		opts    Options
		want    bool
	}{
		{pattern: "a/b", want: false},
		{pattern: "a/*", want: true},
		{pattern: "[a]", want: false},
		{pattern: "a{b,c}", want: false},
		{pattern: "a{b,c}", opts: Options{MagicalBraces: true}, want: true},
		{pattern: "a/**", want: true},
		{pattern: "+(a)", want: true},
		{pattern: "ABC", opts: Options{NoCase: true}, want: true},
		{pattern: "123", opts: Options{NoCase: true}, want: false},
	}

	for _, tt := range tests {
		got, err := HasMagic(tt.pattern, tt.opts)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%q %+v", tt.pattern, tt.opts)
	}
}

func TestMatcherFilter(t *testing.T) {
	t.Parallel()

	paths := []string{"a.js", "b.ts", "c.js", ".d.js"}

	got, err := FilterList(paths, "*.js", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.js", "c.js"}, got)

	got, err = FilterList(paths, "*.go", Options{})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = FilterList(paths, "*.go", Options{NoNull: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"*.go"}, got)
}

func TestMatchOne(t *testing.T) {
	t.Parallel()

	ok, err := MatchOne("src/main.go", "src/**/*.go", Options{})
	require.NoError(t, err)
	assert.True(t, ok)

	key := cacheKey{pattern: "src/**/*.go", opts: Options{}}
	_, cached := matcherCache.Get(key)
	assert.True(t, cached)

	_, err = MatchOne("x", strings.Repeat("*", MaxPatternLength+1), Options{})
	require.ErrorIs(t, err, ErrPatternTooLong)
}

func TestMatcherConcurrentUse(t *testing.T) {
	t.Parallel()

	m, err := Compile("**/+(a|b)*.go", Options{})
	require.NoError(t, err)

	done := make(chan bool)
	for range 8 {
		go func() {
			ok := true
			for range 200 {
				ok = ok && m.Match("x/y/ab_test.go") && !m.Match("x/y/c.go")
				_, _ = m.Regex()
			}

			done <- ok
		}()
	}

	for range 8 {
		assert.True(t, <-done)
	}
}

func TestMatchProperties(t *testing.T) {
	t.Parallel()

	t.Run("filter globstar skips hidden", func(t *testing.T) {
		t.Parallel()

		got, err := FilterList([]string{"src/index.ts", "src/a/b.ts", "src/.hidden/c.ts", "readme.md"}, "src/**/*.ts", Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"src/index.ts", "src/a/b.ts"}, got)
	})

	t.Run("filter brace extensions", func(t *testing.T) {
		t.Parallel()

		got, err := FilterList([]string{"a.ts", "a.tsx", "a.js"}, "*.{ts,tsx}", Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.ts", "a.tsx"}, got)
	})

	t.Run("brace expansion", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"ax", "bx", "cx"}, BraceExpand("{a,b,c}x", Options{}))
	})

	t.Run("literals match only themselves", func(t *testing.T) {
		t.Parallel()

		for _, p := range []string{
			"abc",
			"a.b",
			"README.md",
			"src/main.go",
			"a b",
			"a+b",
			"日本語/ファイル.txt",
			"\xff",
			"x\xfey",
			"dir/\xc3\x28.bin",
		} {
			m, err := Compile(p, Options{})
			require.NoError(t, err)
			assert.False(t, m.HasMagic(), "%q", p)
			assert.True(t, m.Match(p), "%q must match itself", p)
			assert.False(t, m.Match(p+"x"), "%q must not match %q", p, p+"x")
		}
	})

	t.Run("invalid utf-8 in wildcards and classes", func(t *testing.T) {
		t.Parallel()

		m, err := Compile("[\xff]", Options{})
		require.NoError(t, err)
		assert.False(t, m.HasMagic())
		assert.True(t, m.Match("\xff"))
		assert.False(t, m.Match("\xfe"))

		m, err = Compile("*\xff", Options{})
		require.NoError(t, err)
		assert.True(t, m.Match("abc\xff"))
		assert.False(t, m.Match("abc\xfe"))

		m, err = Compile("x?\xfe", Options{})
		require.NoError(t, err)
		assert.True(t, m.Match("xy\xfe"))
	})

	t.Run("compile is deterministic", func(t *testing.T) {
		t.Parallel()

		paths := []string{"a", "a/b", ".a", "src/x.ts", "a/.b/c", "abx", "x.js"}
		for _, p := range []string{"*", "**/*.ts", "+(a|b)x", "!(*.js)", "a/**", "{a,b}/*", "[[:alpha:]]*"} {
			m1, err := Compile(p, Options{})
			require.NoError(t, err)
			m2, err := Compile(p, Options{})
			require.NoError(t, err)

			for _, path := range paths {
				assert.Equal(t, m1.Match(path), m2.Match(path), "%q on %q", p, path)
			}

			re1, ok1 := m1.Regex()
			re2, ok2 := m2.Regex()
			require.Equal(t, ok1, ok2, p)
			if ok1 {
				assert.Equal(t, re1.String(), re2.String(), p)
			}
		}
	})

	t.Run("dot option admits dotfiles", func(t *testing.T) {
		t.Parallel()

		ok, err := MatchOne(".eslintrc.js", "*.js", Options{Dot: true})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = MatchOne(".eslintrc.js", "*.js", Options{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("posix digit class", func(t *testing.T) {
		t.Parallel()

		m, err := Compile("[[:digit:]]", Options{})
		require.NoError(t, err)
		assert.True(t, m.Match("5"))
		assert.False(t, m.Match("a"))
	})
}
