// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var (
	// globMagicRE detects wildcard syntax in a raw segment.
	globMagicRE = regexp.MustCompile(`[?*]|[+@!]\(.*?\)|\[|\]`)
	// driveRE matches a bare win32 drive segment such as "c:".
	driveRE = regexp.MustCompile(`^[a-zA-Z]:$`)
)

// slashSplit splits a pattern or candidate path into segments.
//
// Runs of "/" collapse unless preserve is set. On win32 a leading "//host"
// keeps an empty first element so UNC roots survive the split.
func slashSplit(p string, preserve, windows bool) []string {
	if preserve {
		return strings.Split(p, "/")
	}

	if windows && len(p) > 2 && strings.HasPrefix(p, "//") && p[2] != '/' {
		return append([]string{""}, splitSlashRuns(p)...)
	}

	return splitSlashRuns(p)
}

// splitSlashRuns splits on one or more consecutive "/".
func splitSlashRuns(p string) []string {
	out := make([]string, 0, strings.Count(p, "/")+1)
	start := 0
	for i := 0; i < len(p); i++ {
		if p[i] != '/' {
			continue
		}

		out = append(out, p[start:i])
		for i+1 < len(p) && p[i+1] == '/' {
			i++
		}

		start = i + 1
	}

	return append(out, p[start:])
}

// preprocess rewrites split alternatives according to the optimization level.
func preprocess(globParts [][]string, opts *Options) [][]string {
	if opts.NoGlobstar {
		for _, parts := range globParts {
			for j, p := range parts {
				if p == "**" {
					parts[j] = "*"
				}
			}
		}
	}

	preserve := opts.PreserveMultipleSlashes
	switch opts.OptimizationLevel {
	case OptimizationAggressive:
		globParts = firstPhasePreprocess(globParts, preserve)
		globParts = secondPhasePreprocess(globParts, preserve, opts.Dot)
	case OptimizationBasic:
		globParts = lo.Map(globParts, func(parts []string, _ int) []string {
			return levelOneOptimize(parts)
		})
	default:
		globParts = lo.Map(globParts, func(parts []string, _ int) []string {
			return collapseGlobstars(parts)
		})
	}

	return globParts
}

// collapseGlobstars folds runs of "**" into a single "**".
func collapseGlobstars(parts []string) []string {
	return slices.CompactFunc(slices.Clone(parts), func(a, b string) bool {
		return a == "**" && b == "**"
	})
}

// levelOneOptimize collapses "**" runs and resolves "<p>/.." pairs where p
// is neither "..", ".", "**" nor empty.
func levelOneOptimize(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		prev := ""
		if len(out) > 0 {
			prev = out[len(out)-1]
		}

		if p == "**" && prev == "**" {
			continue
		}

		if p == ".." && prev != "" && prev != ".." && prev != "." && prev != "**" {
			out = out[:len(out)-1]
			continue
		}

		out = append(out, p)
	}

	if len(out) == 0 {
		return []string{""}
	}

	return out
}

// firstPhasePreprocess applies the aggressive rewrites until nothing changes:
//
//	<pre>/**/../<p>/<p>/<rest> -> {<pre>/../<p>/<p>/<rest>,<pre>/**/<p>/<p>/<rest>}
//	<pre>/<e>/<rest>           -> <pre>/<rest>   (e is "." or empty)
//	<pre>/<p>/../<rest>        -> <pre>/<rest>
func firstPhasePreprocess(globParts [][]string, preserve bool) [][]string {
	for changed := true; changed; {
		changed = false

		for pi := 0; pi < len(globParts); pi++ {
			parts := globParts[pi]

			for gs := indexFrom(parts, "**", 0); gs >= 0; gs = indexFrom(parts, "**", gs+1) {
				gss := gs
				for gss+1 < len(parts) && parts[gss+1] == "**" {
					gss++
				}

				if gss > gs {
					parts = splice(parts, gs+1, gss-gs)
				}

				next, p, p2 := at(parts, gs+1), at(parts, gs+2), at(parts, gs+3)
				if next != ".." || !concreteSegment(p) || !concreteSegment(p2) {
					continue
				}

				changed = true
				parts = splice(parts, gs, 1)
				other := slices.Clone(parts)
				other[gs] = "**"
				globParts = append(globParts, other)
				gs--
			}

			if !preserve {
				var dropped bool
				parts, dropped = dropEmptyAndDot(parts)
				changed = changed || dropped
			}

			for dd := indexFrom(parts, "..", 1); dd >= 0; dd = indexFrom(parts, "..", dd+1) {
				if dd == 0 {
					continue
				}

				p := parts[dd-1]
				if p == "" || p == "." || p == ".." || p == "**" {
					continue
				}

				changed = true
				if dd == 1 && at(parts, dd+1) == "**" {
					parts = splice(parts, dd-1, 2, ".")
				} else {
					parts = splice(parts, dd-1, 2)
				}

				if len(parts) == 0 {
					parts = []string{""}
				}

				dd -= 2
			}

			globParts[pi] = parts
		}
	}

	return globParts
}

// secondPhasePreprocess merges alternatives that differ only where one side
// is strictly more general.
func secondPhasePreprocess(globParts [][]string, preserve, dot bool) [][]string {
	for i := 0; i < len(globParts)-1; i++ {
		for j := i + 1; j < len(globParts); j++ {
			if matched, ok := partsMatch(globParts[i], globParts[j], !preserve, dot); ok {
				globParts[i] = nil
				globParts[j] = matched
				break
			}
		}
	}

	return lo.Filter(globParts, func(parts []string, _ int) bool {
		return len(parts) > 0
	})
}

// partsMatch returns the more general of two alternatives when one covers
// the other segment by segment.
func partsMatch(a, b []string, emptyGSMatch, dot bool) ([]string, bool) {
	ai, bi := 0, 0
	result := make([]string, 0, max(len(a), len(b)))
	which := byte(0)

	general := func(s string) bool {
		return s != "" && s != "**" && (dot || !strings.HasPrefix(s, "."))
	}

	for ai < len(a) && bi < len(b) {
		switch {
		case a[ai] == b[bi]:
			if which == 'b' {
				result = append(result, b[bi])
			} else {
				result = append(result, a[ai])
			}

			ai++
			bi++

		case emptyGSMatch && a[ai] == "**" && ai+1 < len(a) && b[bi] == a[ai+1]:
			result = append(result, a[ai])
			ai++

		case emptyGSMatch && b[bi] == "**" && bi+1 < len(b) && a[ai] == b[bi+1]:
			result = append(result, b[bi])
			bi++

		case a[ai] == "*" && general(b[bi]):
			if which == 'b' {
				return nil, false
			}

			which = 'a'
			result = append(result, a[ai])
			ai++
			bi++

		case b[bi] == "*" && general(a[ai]):
			if which == 'a' {
				return nil, false
			}

			which = 'b'
			result = append(result, b[bi])
			ai++
			bi++

		default:
			return nil, false
		}
	}

	// Alternatives of different length never merge.
	if len(a) != len(b) {
		return nil, false
	}

	return result, true
}

// levelTwoFileOptimize cleans a candidate path the way aggressive pattern
// optimization cleans patterns. The input is never modified.
func levelTwoFileOptimize(parts []string, preserve bool) []string {
	parts = slices.Clone(parts)

	for changed := true; changed; {
		changed = false

		if !preserve {
			parts, changed = dropEmptyAndDot(parts)
		}

		for dd := indexFrom(parts, "..", 1); dd >= 0; dd = indexFrom(parts, "..", dd+1) {
			if dd == 0 {
				continue
			}

			p := parts[dd-1]
			if p == "" || p == "." || p == ".." || p == "**" {
				continue
			}

			changed = true
			parts = splice(parts, dd-1, 2)
			dd -= 2
		}

		if len(parts) == 0 {
			return []string{""}
		}
	}

	return parts
}

// dropEmptyAndDot removes interior "." and empty segments, keeping a
// leading "//" and the trailing element, and collapses "./." into ".".
func dropEmptyAndDot(parts []string) ([]string, bool) {
	changed := false
	for i := 1; i < len(parts)-1; i++ {
		p := parts[i]
		if i == 1 && p == "" && parts[0] == "" {
			continue
		}

		if p == "." || p == "" {
			changed = true
			parts = splice(parts, i, 1)
			i--
		}
	}

	if len(parts) == 2 && parts[0] == "." && (parts[1] == "." || parts[1] == "") {
		changed = true
		parts = parts[:1]
	}

	return parts, changed
}

// concreteSegment reports whether s names a real directory component.
func concreteSegment(s string) bool {
	return s != "" && s != "." && s != ".."
}

// indexFrom is slices.Index starting at from.
func indexFrom(parts []string, s string, from int) int {
	if from < 0 {
		from = 0
	}

	if from >= len(parts) {
		return -1
	}

	if idx := slices.Index(parts[from:], s); idx >= 0 {
		return idx + from
	}

	return -1
}

// at returns parts[i] or "" when out of range.
func at(parts []string, i int) string {
	if i < 0 || i >= len(parts) {
		return ""
	}

	return parts[i]
}

// splice removes n elements at start and inserts items, returning a new slice.
func splice(parts []string, start, n int, items ...string) []string {
	out := make([]string, 0, len(parts)-n+len(items))
	out = append(out, parts[:start]...)
	out = append(out, items...)

	return append(out, parts[start+n:]...)
}

// hasGlobMagic reports whether a raw segment contains wildcard syntax.
func hasGlobMagic(s string) bool {
	return globMagicRE.MatchString(s)
}

// normalizePath turns a candidate path into slash-separated relative clean
// form for rulesets.
func normalizePath(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, `\`) {
		raw = strings.ReplaceAll(raw, `\`, `/`)
	}

	raw = strings.TrimPrefix(raw, "./")
	raw = strings.TrimPrefix(raw, "/")
	if raw == "" {
		return ""
	}

	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return raw
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
