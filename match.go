// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"slices"
	"strings"
)

// matchOne matches split file segments against one compiled alternative.
func (m *Matcher) matchOne(file []string, pattern []segment, partial bool) bool {
	fi, pi := 0, 0
	for ; fi < len(file) && pi < len(pattern); fi, pi = fi+1, pi+1 {
		p := &pattern[pi]
		f := file[fi]

		if p.kind != segGlobstar {
			if !p.match(f) {
				m.debug("segment mismatch", "pattern", p.glob, "file", f)
				return false
			}

			continue
		}

		// Trailing "**" swallows the rest unless it would cross ".", ".."
		// or a hidden segment.
		pr := pi + 1
		if pr == len(pattern) {
			for ; fi < len(file); fi++ {
				if m.refusesGlobstar(file[fi]) {
					return false
				}
			}

			return true
		}

		fr := fi
		for fr < len(file) {
			swallowee := file[fr]
			if m.matchOne(file[fr:], pattern[pr:], partial) {
				m.debug("globstar found match", "at", fr, "swallowee", swallowee)
				return true
			}

			if m.refusesGlobstar(swallowee) {
				m.debug("globstar refused", "swallowee", swallowee)
				break
			}

			fr++
		}

		// Ran out of file while still inside "**": could match later.
		return partial && fr == len(file)
	}

	switch {
	case fi == len(file) && pi == len(pattern):
		return true
	case fi == len(file):
		return partial
	default:
		// Pattern is exhausted; "a/" still matches "a" via the trailing empty segment.
		return fi == len(file)-1 && file[fi] == ""
	}
}

// refusesGlobstar reports segments "**" never crosses.
func (m *Matcher) refusesGlobstar(s string) bool {
	return s == "." || s == ".." || (!m.opts.Dot && strings.HasPrefix(s, "."))
}

// reconcileRoots aligns win32 drive roots of file and pattern so that
// "c:/x" matches "C:/x" and "//?/c:/x" matches "c:/x". The pattern slice is
// copied before any change.
func (m *Matcher) reconcileRoots(file []string, pattern []segment) ([]string, []segment) {
	if !m.opts.isWindows() {
		return file, pattern
	}

	fileDrive := at(file, 0) != "" && driveRE.MatchString(file[0])
	patternDrive := len(pattern) > 0 && pattern[0].kind == segLiteral && driveRE.MatchString(pattern[0].literal)

	fileUNC := !fileDrive && len(file) > 3 && file[0] == "" && file[1] == "" && file[2] == "?" && driveRE.MatchString(file[3])
	patternUNC := !patternDrive && len(pattern) > 3 &&
		isLiteral(pattern[0], "") && isLiteral(pattern[1], "") && isLiteral(pattern[2], "?") &&
		pattern[3].kind == segLiteral && driveRE.MatchString(pattern[3].literal)

	fdi, pdi := -1, -1
	switch {
	case fileUNC:
		fdi = 3
	case fileDrive:
		fdi = 0
	}

	switch {
	case patternUNC:
		pdi = 3
	case patternDrive:
		pdi = 0
	}

	if fdi < 0 || pdi < 0 {
		return file, pattern
	}

	fd, pd := file[fdi], pattern[pdi].literal
	if !strings.EqualFold(fd, pd) {
		return file, pattern
	}

	pattern = slices.Clone(pattern)
	pattern[pdi] = literalSegment(fd)
	switch {
	case pdi > fdi:
		pattern = pattern[pdi:]
	case fdi > pdi:
		file = file[fdi:]
	}

	return file, pattern
}

// isLiteral reports whether s is the literal segment text.
func isLiteral(s segment, text string) bool {
	return s.kind == segLiteral && s.literal == text
}
