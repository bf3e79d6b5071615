// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Regex is a whole-path regular expression equivalent to a Matcher.
type Regex struct {
	re         *regexp2.Regexp
	source     string
	ignoreCase bool
	unicode    bool
}

// MatchString reports whether s matches the whole expression.
func (r *Regex) MatchString(s string) bool {
	ok, err := r.re.MatchString(s)
	return err == nil && ok
}

// String returns the expression source.
func (r *Regex) String() string { return r.source }

// Flags returns "i" for case-insensitive and "u" for expressions using
// Unicode properties.
func (r *Regex) Flags() string {
	var sb strings.Builder
	if r.ignoreCase {
		sb.WriteByte('i')
	}

	if r.unicode {
		sb.WriteByte('u')
	}

	return sb.String()
}

// Regexp returns the underlying compiled expression.
func (r *Regex) Regexp() *regexp2.Regexp { return r.re }

// Regex returns a single regular expression covering every alternative.
// It reports false when the pattern has no viable alternative, such as a
// comment, an empty pattern or one that can never match.
func (m *Matcher) Regex() (*Regex, bool) {
	m.regexOnce.Do(func() {
		m.regex = m.buildRegex()
	})

	return m.regex, m.regex != nil
}

// buildRegex renders m.set as one anchored expression.
func (m *Matcher) buildRegex() *Regex {
	if len(m.set) == 0 {
		return nil
	}

	twoStar := twoStarNoDot
	switch {
	case m.opts.NoGlobstar:
		twoStar = star
	case m.opts.Dot:
		twoStar = twoStarDot
	}

	unicode := false
	alternatives := make([]string, 0, len(m.set))
	for _, pattern := range m.set {
		pp := make([]string, len(pattern))
		globstar := make([]bool, len(pattern))
		for i := range pattern {
			unicode = unicode || pattern[i].unicode
			if pattern[i].kind == segGlobstar {
				globstar[i] = true
				continue
			}

			pp[i] = pattern[i].regexSource()
		}

		// Fold every "**" into its neighbours; a consumed neighbour is
		// marked as globstar so it is dropped below.
		for i := range pp {
			if !globstar[i] || (i > 0 && globstar[i-1]) {
				continue
			}

			hasPrev, hasNext := i > 0, i+1 < len(pp)
			switch {
			case !hasPrev:
				if hasNext && !globstar[i+1] {
					pp[i+1] = `(?:\/|` + twoStar + `\/)?` + pp[i+1]
				} else {
					pp[i] = twoStar
					globstar[i] = false
				}

			case !hasNext:
				pp[i-1] += `(?:\/|` + twoStar + `)?`

			case !globstar[i+1]:
				pp[i-1] += `(?:\/|\/` + twoStar + `\/)` + pp[i+1]
				globstar[i+1] = true
			}
		}

		kept := make([]string, 0, len(pp))
		for i, p := range pp {
			if !globstar[i] {
				kept = append(kept, p)
			}
		}

		if m.opts.Partial && len(kept) >= 1 {
			prefixes := make([]string, 0, len(kept))
			for i := 1; i <= len(kept); i++ {
				prefixes = append(prefixes, strings.Join(kept[:i], "/"))
			}

			alternatives = append(alternatives, "(?:"+strings.Join(prefixes, "|")+")")
			continue
		}

		alternatives = append(alternatives, strings.Join(kept, "/"))
	}

	open, closing := "", ""
	if len(alternatives) > 1 {
		open, closing = "(?:", ")"
	}

	body := open + strings.Join(alternatives, "|") + closing
	if m.opts.Partial {
		body = `(?:\/|` + open + body + closing + `)`
	}

	if m.negate {
		body = "(?!^" + body + "$).+"
	}

	re, err := anchored(body, m.opts.NoCase)
	if err != nil {
		m.debug("regex export failed", "pattern", m.source, "err", err)
		return nil
	}

	return &Regex{
		re:         re,
		source:     "^" + body + "$",
		ignoreCase: m.opts.NoCase,
		unicode:    unicode,
	}
}
