// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "strings"

// posixClass maps a "[:name:]" bracket class to a regexp class body.
type posixClass struct {
	name string
	src  string
	// unicode reports whether src relies on Unicode properties.
	unicode bool
	// negated reports whether src describes the complement of the class.
	negated bool
}

var posixClasses = []posixClass{
	{name: "[:alnum:]", src: `\p{L}\p{Nl}\p{Nd}`, unicode: true},
	{name: "[:alpha:]", src: `\p{L}\p{Nl}`, unicode: true},
	{name: "[:ascii:]", src: `\x00-\x7f`},
	{name: "[:blank:]", src: `\p{Zs}\t`, unicode: true},
	{name: "[:cntrl:]", src: `\p{Cc}`, unicode: true},
	{name: "[:digit:]", src: `\p{Nd}`, unicode: true},
	{name: "[:graph:]", src: `\p{Z}\p{C}`, unicode: true, negated: true},
	{name: "[:lower:]", src: `\p{Ll}`, unicode: true},
	{name: "[:print:]", src: `\p{C}`, unicode: true},
	{name: "[:punct:]", src: `\p{P}`, unicode: true},
	{name: "[:space:]", src: `\p{Z}\t\r\n\v\f`, unicode: true},
	{name: "[:upper:]", src: `\p{Lu}`, unicode: true},
	{name: "[:word:]", src: `\p{L}\p{Nl}\p{Nd}\p{Pc}`, unicode: true},
	{name: "[:xdigit:]", src: `A-Fa-f0-9`},
}

// classResult is the outcome of parsing one bracket expression.
type classResult struct {
	// src is the regexp fragment.
	src string
	// literal is the matched character when the class degraded to one literal.
	literal string
	// consumed is the number of runes used; zero means "not a class".
	consumed int
	// unicode reports whether src relies on Unicode properties.
	unicode bool
	// magic reports whether the class is a real wildcard.
	magic bool
	// unmatchable reports a class that can never match anything.
	unmatchable bool
}

// parseClass parses the bracket expression starting at glob[pos] == '['.
//
// Unterminated classes return zero consumption so the caller keeps "[" as a
// literal. Classes that can never match consume the rest of the glob and
// are reported as unmatchable.
func parseClass(glob []rune, pos int) classResult {
	var ranges, negs []string
	// singles[i] is the character of ranges[i] when it names exactly one, else -1.
	var singles []rune

	i := pos + 1
	endPos := pos
	sawStart := false
	escaping := false
	negate := false
	unicode := false
	var rangeStart rune
	inRange := false

scan:
	for i < len(glob) {
		c := glob[i]
		if (c == '!' || c == '^') && i == pos+1 {
			negate = true
			i++
			continue
		}

		if c == ']' && sawStart && !escaping {
			endPos = i + 1
			break
		}

		sawStart = true
		if c == '\\' && !escaping {
			escaping = true
			i++
			continue
		}

		if c == '[' && !escaping {
			for _, cls := range posixClasses {
				if !hasRunePrefix(glob[i:], cls.name) {
					continue
				}

				// A named class cannot be a range endpoint.
				if inRange {
					return unmatchableClass(len(glob) - pos)
				}

				i += len(cls.name)
				if cls.negated {
					negs = append(negs, cls.src)
				} else {
					ranges = append(ranges, cls.src)
					singles = append(singles, -1)
				}

				unicode = unicode || cls.unicode
				continue scan
			}
		}

		escaping = false
		if inRange {
			// Inverted ranges such as "z-a" are dropped.
			if c > rangeStart {
				ranges = append(ranges, classEscape(rangeStart)+"-"+classEscape(c))
				singles = append(singles, -1)
			} else if c == rangeStart {
				ranges = append(ranges, classEscape(c))
				singles = append(singles, c)
			}

			inRange = false
			i++
			continue
		}

		if hasRunePrefix(glob[i+1:], "-]") {
			ranges = append(ranges, classEscape(c)+classEscape('-'))
			singles = append(singles, -1)
			i += 2
			continue
		}

		if hasRunePrefix(glob[i+1:], "-") {
			rangeStart = c
			inRange = true
			i += 2
			continue
		}

		ranges = append(ranges, classEscape(c))
		singles = append(singles, c)
		i++
	}

	if endPos < i {
		return classResult{}
	}

	if len(ranges) == 0 && len(negs) == 0 {
		return unmatchableClass(len(glob) - pos)
	}

	if len(negs) == 0 && len(ranges) == 1 && !negate && singles[0] >= 0 {
		r := singles[0]
		return classResult{
			src:      regexEscapeRune(r),
			literal:  encodeGlob([]rune{r}),
			consumed: endPos - pos,
		}
	}

	caret, antiCaret := "", "^"
	if negate {
		caret, antiCaret = "^", ""
	}

	sranges := "[" + caret + strings.Join(ranges, "") + "]"
	snegs := "[" + antiCaret + strings.Join(negs, "") + "]"

	src := snegs
	switch {
	case len(ranges) > 0 && len(negs) > 0:
		src = "(" + sranges + "|" + snegs + ")"
	case len(ranges) > 0:
		src = sranges
	}

	return classResult{
		src:      src,
		consumed: endPos - pos,
		unicode:  unicode,
		magic:    true,
	}
}

// unmatchableClass builds a never-matching class result.
func unmatchableClass(consumed int) classResult {
	return classResult{
		src:         neverMatch,
		consumed:    consumed,
		magic:       true,
		unmatchable: true,
	}
}

// classEscape escapes characters special inside a regexp class.
func classEscape(c rune) string {
	if isRawByte(c) {
		return replacementEscape
	}

	switch c {
	case '[', ']', '\\', '-':
		return `\` + string(c)
	default:
		return string(c)
	}
}

// hasRunePrefix reports whether rs starts with prefix.
func hasRunePrefix(rs []rune, prefix string) bool {
	i := 0
	for _, p := range prefix {
		if i >= len(rs) || rs[i] != p {
			return false
		}

		i++
	}

	return true
}
