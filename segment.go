// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// segmentKind selects how a pattern segment is tested.
type segmentKind uint8

const (
	// segLiteral compares the segment text exactly.
	segLiteral segmentKind = iota
	// segRegex tests the segment against a compiled regexp or fast path.
	segRegex
	// segGlobstar is "**": zero or more whole path segments.
	segGlobstar
)

// segment is one compiled pattern segment.
type segment struct {
	re      *regexp2.Regexp
	fast    func(string) bool
	literal string
	// glob is the segment text the segment was compiled from.
	glob string
	// src is the regexp source without anchors.
	src     string
	kind    segmentKind
	unicode bool
	dead    bool
}

var globstarSegment = segment{kind: segGlobstar, glob: "**"}

// literalSegment matches text exactly.
func literalSegment(text string) segment {
	return segment{kind: segLiteral, literal: text, glob: text}
}

// match tests one path segment.
func (s *segment) match(f string) bool {
	switch s.kind {
	case segLiteral:
		return f == s.literal
	case segRegex:
		if s.fast != nil {
			return s.fast(f)
		}

		ok, err := s.re.MatchString(f)
		return err == nil && ok
	default:
		return false
	}
}

// regexSource returns the segment as regexp source for full-pattern export.
func (s *segment) regexSource() string {
	if s.kind == segLiteral {
		return regexEscape(s.literal)
	}

	return s.src
}

// matchTimeout bounds one regexp evaluation. Nested repeating extglobs
// such as "*(*(a|aa))b" backtrack exponentially; a timed-out
// evaluation counts as no match.
const matchTimeout = 2 * time.Second

// anchored compiles "^body$" where "$" only matches at the very end.
func anchored(body string, nocase bool) (*regexp2.Regexp, error) {
	var flags regexp2.RegexOptions
	if nocase {
		flags |= regexp2.IgnoreCase
	}

	re, err := regexp2.Compile("^"+body+`\z`, flags)
	if err != nil {
		return nil, err
	}

	re.MatchTimeout = matchTimeout
	return re, nil
}

var (
	starRE        = regexp.MustCompile(`^\*+$`)
	starDotExtRE  = regexp.MustCompile(`^\*+([^+@!?*\[(\\]*)$`)
	qmarksRE      = regexp.MustCompile(`^(\?+)([^+@!?*\[(\\]*)$`)
	starDotStarRE = regexp.MustCompile(`^\*+\.\*+$`)
	dotStarRE     = regexp.MustCompile(`^\.\*+$`)
)

// compileSegment turns one pattern segment into a segment matcher.
func compileSegment(glob string, opts *Options) segment {
	if glob == "**" && !opts.NoGlobstar {
		return globstarSegment
	}

	if glob == "" {
		return literalSegment("")
	}

	g := generator{t: parseSegment(glob, opts.NoExt), dot: opts.Dot}
	f := g.generate()
	if !f.magic && !(opts.NoCase && caseSensitive(f.literal)) {
		return literalSegment(f.literal)
	}

	seg := segment{
		kind:    segRegex,
		glob:    glob,
		src:     f.src,
		unicode: f.unicode,
		dead:    f.dead,
	}

	re, err := anchored(f.src, opts.NoCase)
	if err != nil {
		// Generated source is always valid; treat anything else as unmatchable.
		seg.dead = true
		seg.src = neverMatch
		seg.fast = func(string) bool { return false }
		return seg
	}

	seg.re = re
	seg.fast = fastPath(glob, opts)

	return seg
}

// caseSensitive reports whether s changes under Unicode case mapping.
func caseSensitive(s string) bool {
	return cases.Upper(language.Und).String(s) != cases.Lower(language.Und).String(s)
}

// foldCase returns the caseless form of s.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

// fastPath returns a direct test for common segment shapes, or nil.
func fastPath(glob string, opts *Options) func(string) bool {
	dot := opts.Dot

	if starRE.MatchString(glob) {
		if dot {
			return func(f string) bool { return f != "" && f != "." && f != ".." }
		}

		return func(f string) bool { return f != "" && f[0] != '.' }
	}

	if m := starDotExtRE.FindStringSubmatch(glob); m != nil {
		return starExtTest(m[1], dot, opts.NoCase)
	}

	if m := qmarksRE.FindStringSubmatch(glob); m != nil {
		return qmarksTest(utf8.RuneCountInString(m[0]), m[2], dot, opts.NoCase)
	}

	if starDotStarRE.MatchString(glob) {
		if dot {
			return func(f string) bool { return f != "." && f != ".." && strings.Contains(f, ".") }
		}

		return func(f string) bool { return f != "" && f[0] != '.' && strings.Contains(f, ".") }
	}

	if dotStarRE.MatchString(glob) {
		return func(f string) bool { return f != "." && f != ".." && strings.HasPrefix(f, ".") }
	}

	return nil
}

// starExtTest matches "*<ext>".
func starExtTest(ext string, dot, nocase bool) func(string) bool {
	hasExt := func(f string) bool { return strings.HasSuffix(f, ext) }
	if nocase {
		folded := foldCase(ext)
		hasExt = func(f string) bool { return strings.HasSuffix(foldCase(f), folded) }
	}

	if dot {
		return hasExt
	}

	return func(f string) bool { return !strings.HasPrefix(f, ".") && hasExt(f) }
}

// qmarksTest matches "?...?<ext>" of total rune length size.
func qmarksTest(size int, ext string, dot, nocase bool) func(string) bool {
	sized := func(f string) bool {
		if utf8.RuneCountInString(f) != size {
			return false
		}

		if dot {
			return f != "." && f != ".."
		}

		return !strings.HasPrefix(f, ".")
	}

	if ext == "" {
		return sized
	}

	hasExt := func(f string) bool { return strings.HasSuffix(f, ext) }
	if nocase {
		folded := foldCase(ext)
		hasExt = func(f string) bool { return strings.HasSuffix(foldCase(f), folded) }
	}

	return func(f string) bool { return sized(f) && hasExt(f) }
}
