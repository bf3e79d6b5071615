// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// maxBraceExpansions caps the length of any single expansion list.
const maxBraceExpansions = 100_000

// Placeholders for escaped characters while braces are expanded.
// NUL never appears in a meaningful path pattern.
const (
	escSlash  = "\x00SLASH\x00"
	escOpen   = "\x00OPEN\x00"
	escClose  = "\x00CLOSE\x00"
	escComma  = "\x00COMMA\x00"
	escPeriod = "\x00PERIOD\x00"
)

var (
	braceEscaper = strings.NewReplacer(
		`\\`, escSlash,
		`\{`, escOpen,
		`\}`, escClose,
		`\,`, escComma,
		`\.`, escPeriod,
	)
	// Escapes are restored as escapes so the expanded pattern stays literal
	// for the glob parser.
	braceUnescaper = strings.NewReplacer(
		escSlash, `\\`,
		escOpen, `\{`,
		escClose, `\}`,
		escComma, `\,`,
		escPeriod, `\.`,
	)

	numericSequenceRE = regexp.MustCompile(`^-?\d+\.\.-?\d+(?:\.\.-?\d+)?$`)
	alphaSequenceRE   = regexp.MustCompile(`^[a-zA-Z]\.\.[a-zA-Z](?:\.\.-?\d+)?$`)
	paddedNumberRE    = regexp.MustCompile(`^-?0\d`)
)

// BraceExpand expands brace sets in pattern unless disabled by options.
//
// Patterns without any "{...}" span are returned as a single-element slice.
func BraceExpand(pattern string, opts Options) []string {
	if opts.NoBrace || !hasBraceSet(pattern) {
		return []string{pattern}
	}

	return ExpandBraces(pattern)
}

// ExpandBraces performs shell-style brace expansion.
//
//	a{b,c}d       -> abd acd
//	a{b,}c        -> abc ac
//	a{0..3}d      -> a0d a1d a2d a3d
//	a{b,c{d,e}f}g -> abg acdfg acefg
//
// Invalid sets are kept as literal text: "a{2..}b" and "a{b}c" expand to
// themselves. Escaped "\{", "\}", "\,", "\." and "\\" are never treated as
// brace syntax and stay escaped in the output.
func ExpandBraces(pattern string) []string {
	if pattern == "" {
		return nil
	}

	// Bash keeps a leading "{}" literal.
	if strings.HasPrefix(pattern, "{}") {
		pattern = `\{\}` + pattern[2:]
	}

	out := expandBraces(braceEscaper.Replace(pattern), true)
	for i := range out {
		out[i] = braceUnescaper.Replace(out[i])
	}

	return out
}

// hasBraceSet reports whether pattern contains "{" followed by "}" with no
// other "{" in between.
func hasBraceSet(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '{' {
			continue
		}

		for j := i + 1; j < len(pattern); j++ {
			c := pattern[j]
			if c == '{' || c == '\n' {
				break
			}

			if c == '}' {
				return true
			}
		}
	}

	return false
}

// braceMatch is one balanced "{...}" span split out of a string.
type braceMatch struct {
	pre  string
	body string
	post string
}

// balancedBraces locates the first balanced brace pair. When opening braces
// are unbalanced it falls back to the leftmost complete inner pair.
func balancedBraces(str string) (braceMatch, bool) {
	start, end, ok := braceRange(str)
	if !ok {
		return braceMatch{}, false
	}

	return braceMatch{
		pre:  str[:start],
		body: str[start+1 : end],
		post: str[end+1:],
	}, true
}

// braceRange returns indexes of the opening and closing brace of the pair
// selected by balancedBraces.
func braceRange(str string) (int, int, bool) {
	ai := strings.IndexByte(str, '{')
	if ai < 0 {
		return 0, 0, false
	}

	bi := indexByteFrom(str, '}', ai+1)
	if bi < 0 {
		return 0, 0, false
	}

	begs := make([]int, 0, 4)
	left, right := len(str), -1

	for i := ai; i >= 0; {
		switch {
		case i == ai:
			begs = append(begs, i)
			ai = indexByteFrom(str, '{', i+1)
		case len(begs) == 1:
			return begs[0], bi, true
		default:
			beg := begs[len(begs)-1]
			begs = begs[:len(begs)-1]
			if beg < left {
				left, right = beg, bi
			}

			bi = indexByteFrom(str, '}', i+1)
		}

		if ai >= 0 && ai < bi {
			i = ai
		} else {
			i = bi
		}
	}

	if len(begs) > 0 && right >= 0 {
		return left, right, true
	}

	return 0, 0, false
}

// indexByteFrom is strings.IndexByte starting at from.
func indexByteFrom(s string, c byte, from int) int {
	if from >= len(s) {
		return -1
	}

	idx := strings.IndexByte(s[from:], c)
	if idx < 0 {
		return -1
	}

	return idx + from
}

// expandBraces is the recursive expansion step over escaped input.
func expandBraces(str string, isTop bool) []string {
	m, ok := balancedBraces(str)
	if !ok {
		return []string{str}
	}

	post := []string{""}
	if m.post != "" {
		post = expandBraces(m.post, false)
	}

	// "${...}" is a shell variable, not a brace set.
	if strings.HasSuffix(m.pre, "$") {
		out := make([]string, 0, len(post))
		for _, p := range post {
			out = append(out, m.pre+"{"+m.body+"}"+p)
		}

		return out
	}

	isAlpha := alphaSequenceRE.MatchString(m.body)
	isSequence := isAlpha || numericSequenceRE.MatchString(m.body)
	isOptions := strings.Contains(m.body, ",")

	if !isSequence && !isOptions {
		// "{a},b}" closes at the second brace.
		if hasCommaBeforeClose(m.post) {
			return expandBraces(m.pre+"{"+m.body+escClose+m.post, false)
		}

		return []string{str}
	}

	var alternatives []string
	if isSequence {
		seq, ok := braceSequence(strings.Split(m.body, ".."), isAlpha)
		if !ok {
			return []string{str}
		}

		alternatives = seq
	} else {
		parts := parseCommaParts(m.body)
		if len(parts) == 1 {
			// "{{a,b}}": the commas are all nested, keep the outer braces.
			parts = lo.Map(expandBraces(parts[0], false), func(s string, _ int) string {
				return "{" + s + "}"
			})

			if len(parts) == 1 {
				return lo.Map(post, func(p string, _ int) string {
					return m.pre + parts[0] + p
				})
			}
		}

		for _, part := range parts {
			alternatives = append(alternatives, expandBraces(part, false)...)
		}
	}

	out := make([]string, 0, min(len(alternatives)*len(post), maxBraceExpansions))
	for _, alt := range alternatives {
		for _, p := range post {
			if len(out) >= maxBraceExpansions {
				return out
			}

			expansion := m.pre + alt + p
			if !isTop || isSequence || expansion != "" {
				out = append(out, expansion)
			}
		}
	}

	return out
}

// hasCommaBeforeClose reports whether s has a "," not followed by another
// "," with a "}" somewhere after it.
func hasCommaBeforeClose(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ',' || (i+1 < len(s) && s[i+1] == ',') {
			continue
		}

		rest := s[i+1:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[:nl]
		}

		if strings.IndexByte(rest, '}') >= 0 {
			return true
		}
	}

	return false
}

// parseCommaParts splits a brace body on top-level commas.
func parseCommaParts(str string) []string {
	if str == "" {
		return []string{""}
	}

	m, ok := balancedBraces(str)
	if !ok {
		return strings.Split(str, ",")
	}

	parts := strings.Split(m.pre, ",")
	parts[len(parts)-1] += "{" + m.body + "}"

	if m.post != "" {
		postParts := parseCommaParts(m.post)
		parts[len(parts)-1] += postParts[0]
		parts = append(parts, postParts[1:]...)
	}

	return parts
}

// braceSequence renders "x..y" or "x..y..step" ranges.
func braceSequence(bounds []string, isAlpha bool) ([]string, bool) {
	x, ok := braceNumeric(bounds[0])
	if !ok {
		return nil, false
	}

	y, ok := braceNumeric(bounds[1])
	if !ok {
		return nil, false
	}

	width := max(len(bounds[0]), len(bounds[1]))

	step := int64(1)
	if len(bounds) == 3 {
		incr, ok := braceNumeric(bounds[2])
		if !ok {
			return nil, false
		}

		step = max(abs64(incr), 1)
	}

	reverse := y < x
	if reverse {
		step = -step
	}

	pad := lo.SomeBy(bounds, paddedNumberRE.MatchString)

	capacity := maxBraceExpansions
	if span := (y - x) / step; span >= 0 && span < maxBraceExpansions {
		capacity = int(span) + 1
	}

	out := make([]string, 0, capacity)
	for i := x; (!reverse && i <= y) || (reverse && i >= y); i += step {
		if len(out) >= maxBraceExpansions {
			break
		}

		if isAlpha {
			c := string(rune(i))
			if c == `\` {
				c = ""
			}

			out = append(out, c)
			continue
		}

		c := strconv.FormatInt(i, 10)
		if pad {
			if need := width - len(c); need > 0 {
				zeros := strings.Repeat("0", need)
				if i < 0 {
					c = "-" + zeros + c[1:]
				} else {
					c = zeros + c
				}
			}
		}

		out = append(out, c)
	}

	return out, true
}

// braceNumeric parses a sequence bound as an integer, or as the code point
// of a single letter.
func braceNumeric(s string) (int64, bool) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}

	if len(s) == 1 {
		return int64(s[0]), true
	}

	return 0, false
}

// abs64 returns absolute value of v.
func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
