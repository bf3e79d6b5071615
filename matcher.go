// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

// Matcher is a compiled glob pattern.
//
// A Matcher is immutable after Compile and safe for concurrent use.
type Matcher struct {
	log   *log.Logger
	regex *Regex

	source  string
	pattern string

	globSet   []string
	globParts [][]string
	set       [][]segment

	opts      Options
	regexOnce sync.Once

	negate  bool
	comment bool
	empty   bool
}

// Compile parses pattern into a Matcher.
//
// Patterns never fail to parse; errors are reserved for oversized patterns
// and invalid options.
func Compile(pattern string, opts Options) (*Matcher, error) {
	if len(pattern) > MaxPatternLength {
		return nil, fmt.Errorf("%w: %w: %d bytes, limit %d", ErrInvalidPattern, ErrPatternTooLong, len(pattern), MaxPatternLength)
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	opts.applyDefaults()

	m := &Matcher{
		log:     newLogger(opts),
		source:  pattern,
		pattern: pattern,
		opts:    opts,
	}

	if opts.WindowsPathsNoEscape {
		m.pattern = strings.ReplaceAll(pattern, `\`, "/")
	}

	m.make()

	return m, nil
}

// make builds the alternative set.
func (m *Matcher) make() {
	if !m.opts.NoComment && strings.HasPrefix(m.pattern, "#") {
		m.comment = true
		return
	}

	if m.pattern == "" {
		m.empty = true
		return
	}

	m.parseNegate()

	m.globSet = lo.Uniq(BraceExpand(m.pattern, m.opts))
	m.debug("brace expansion", "pattern", m.pattern, "alternatives", len(m.globSet))

	windows := m.opts.isWindows()
	preserve := m.opts.PreserveMultipleSlashes
	rawParts := lo.Map(m.globSet, func(glob string, _ int) []string {
		return slashSplit(glob, preserve, windows)
	})

	m.globParts = preprocess(rawParts, &m.opts)

	m.set = make([][]segment, 0, len(m.globParts))
	for _, parts := range m.globParts {
		segs, dead := m.compileParts(parts)
		if dead && !m.opts.Partial {
			m.debug("dropping unmatchable alternative", "parts", parts)
			continue
		}

		m.set = append(m.set, segs)
	}

	m.debug("compiled", "pattern", m.source, "alternatives", len(m.set), "negate", m.negate)
}

// parseNegate strips leading "!" characters; an odd count negates.
func (m *Matcher) parseNegate() {
	if m.opts.NoNegate {
		return
	}

	n := 0
	for n < len(m.pattern) && m.pattern[n] == '!' {
		n++
	}

	m.negate = n%2 == 1
	m.pattern = m.pattern[n:]
}

// compileParts compiles one alternative and reports whether it can never match.
func (m *Matcher) compileParts(parts []string) ([]segment, bool) {
	segs := make([]segment, len(parts))

	// With nocase on win32, drive and UNC roots stay literal for reconcileRoots.
	rootLiterals := 0
	if m.opts.isWindows() && m.opts.NoCase {
		switch {
		case len(parts) >= 2 && parts[0] == "" && parts[1] == "" &&
			(at(parts, 2) == "?" || !hasGlobMagic(at(parts, 2))) && !hasGlobMagic(at(parts, 3)):
			rootLiterals = min(4, len(parts))
		case driveRE.MatchString(at(parts, 0)):
			rootLiterals = 1
		}
	}

	dead := false
	for i, p := range parts {
		if i < rootLiterals {
			segs[i] = literalSegment(p)
			continue
		}

		segs[i] = compileSegment(p, &m.opts)
		dead = dead || segs[i].dead
	}

	// "//?/c:/..." keeps its "?" literal.
	if m.opts.isWindows() && len(parts) > 3 && parts[0] == "" && parts[1] == "" && parts[2] == "?" &&
		segs[3].kind == segLiteral && driveRE.MatchString(segs[3].literal) {
		segs[2] = literalSegment("?")
	}

	return segs, dead
}

// Match reports whether path matches the pattern.
func (m *Matcher) Match(path string) bool {
	return m.match(path, m.opts.Partial)
}

// MatchPartial reports whether path could match once more segments are
// appended, as if Options.Partial were set.
func (m *Matcher) MatchPartial(path string) bool {
	return m.match(path, true)
}

func (m *Matcher) match(path string, partial bool) bool {
	if m.comment {
		return false
	}

	if m.empty {
		return path == ""
	}

	if path == "/" && partial {
		return true
	}

	if m.opts.isWindows() {
		path = strings.ReplaceAll(path, `\`, "/")
	}

	preserve := m.opts.PreserveMultipleSlashes
	file := slashSplit(path, preserve, m.opts.isWindows())

	filename := ""
	for i := len(file) - 1; i >= 0; i-- {
		if file[i] != "" {
			filename = file[i]
			break
		}
	}

	aggressive := m.opts.OptimizationLevel == OptimizationAggressive
	for _, pattern := range m.set {
		candidate := file
		if m.opts.MatchBase && len(pattern) == 1 {
			candidate = []string{filename}
		}

		candidate, pattern = m.reconcileRoots(candidate, pattern)
		if aggressive {
			candidate = levelTwoFileOptimize(candidate, preserve)
		}

		if m.matchOne(candidate, pattern, partial) {
			if m.opts.FlipNegate {
				return true
			}

			return !m.negate
		}
	}

	if m.opts.FlipNegate {
		return false
	}

	return m.negate
}

// Filter returns the paths that match, in input order. With NoNull and no
// match it returns the original pattern.
func (m *Matcher) Filter(paths []string) []string {
	out := lo.Filter(paths, func(p string, _ int) bool {
		return m.Match(p)
	})

	return m.noNull(out)
}

// noNull applies the NoNull fallback to a filter result.
func (m *Matcher) noNull(out []string) []string {
	if m.opts.NoNull && len(out) == 0 {
		return []string{m.source}
	}

	return out
}

// HasMagic reports whether the pattern contains any wildcard segment. With
// MagicalBraces a brace expansion to several alternatives also counts.
func (m *Matcher) HasMagic() bool {
	if m.opts.MagicalBraces && len(m.set) > 1 {
		return true
	}

	for _, pattern := range m.set {
		for i := range pattern {
			if pattern[i].kind != segLiteral {
				return true
			}
		}
	}

	return false
}

// Negated reports whether the pattern had an odd number of leading "!".
func (m *Matcher) Negated() bool { return m.negate }

// Comment reports whether the pattern is a "#" comment.
func (m *Matcher) Comment() bool { return m.comment }

// Empty reports whether the pattern is empty.
func (m *Matcher) Empty() bool { return m.empty }

// Pattern returns the source pattern.
func (m *Matcher) Pattern() string { return m.source }

// Options returns the resolved options.
func (m *Matcher) Options() Options { return m.opts }

// GlobSet returns the brace-expanded alternatives.
func (m *Matcher) GlobSet() []string {
	return append([]string(nil), m.globSet...)
}

// GlobParts returns the split and optimized alternatives.
func (m *Matcher) GlobParts() [][]string {
	return lo.Map(m.globParts, func(parts []string, _ int) []string {
		return append([]string(nil), parts...)
	})
}
