// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "strings"

// Regexp fragments shared by segment and full-pattern regexes.
const (
	qmark       = `[^/]`
	star        = qmark + `*?`
	starNoEmpty = qmark + `+?`

	startNoDot       = `(?!\.)`
	startNoTraversal = `(?!(?:^|/)\.\.?(?:$|/))`
	negationEnd      = `(?:$|\/)`
	neverMatch       = `(?!)`

	twoStarDot   = `(?:(?!(?:\/|^)(?:\.{1,2})($|\/)).)*?`
	twoStarNoDot = `(?:(?!(?:\/|^)\.).)*?`
)

// fragment is generated regexp source for a node.
type fragment struct {
	src string
	// literal is the unescaped text, meaningful when magic is false.
	literal string
	magic   bool
	unicode bool
	// dead reports a fragment that can never match.
	dead bool
}

// dotMode is the allow-dot input threaded through generation.
type dotMode uint8

const (
	dotInherit dotMode = iota
	dotDenied
	dotAllowed
)

// generator renders a segment AST as regexp source.
type generator struct {
	t   *tree
	dot bool
}

// generate renders the whole segment.
func (g *generator) generate() fragment {
	return g.source(root, dotInherit)
}

// source renders node id.
func (g *generator) source(id nodeID, mode dotMode) fragment {
	if g.t.nodes[id].kind == extNone {
		return g.plainSource(id, mode)
	}

	return g.extSource(id, mode)
}

// plainSource renders a plain node and its start guard.
func (g *generator) plainSource(id nodeID, mode dotMode) fragment {
	t := g.t
	n := &t.nodes[id]
	dot := mode == dotAllowed || (mode == dotInherit && g.dot)
	dotAllowedFlag := mode == dotAllowed
	noEmpty := t.isStart(id) && t.isEnd(id)

	var src, lit strings.Builder
	out := fragment{}
	for _, p := range n.parts {
		var f fragment
		if p.child == noNode {
			f = parseGlob(p.text, noEmpty)
		} else {
			f = g.source(p.child, mode)
		}

		src.WriteString(f.src)
		lit.WriteString(f.literal)
		out.magic = out.magic || f.magic
		out.unicode = out.unicode || f.unicode
		out.dead = out.dead || f.dead
	}

	body := src.String()
	start := ""
	if t.isStart(id) && len(n.parts) > 0 && n.parts[0].child == noNode {
		first := n.parts[0].text
		dotTraversal := len(n.parts) == 1 && (first == "." || first == "..")
		if !dotTraversal {
			needNoTrav := (dot && patternStartAt(body, 0)) ||
				(strings.HasPrefix(body, `\.`) && patternStartAt(body, 2)) ||
				(strings.HasPrefix(body, `\.\.`) && patternStartAt(body, 4))
			needNoDot := !dot && !dotAllowedFlag && patternStartAt(body, 0)

			switch {
			case needNoDot:
				start = startNoDot
			case needNoTrav:
				start = startNoTraversal
			}
		}
	}

	end := ""
	if t.isEnd(id) && n.parent != noNode && t.nodes[n.parent].kind == extNot {
		end = negationEnd
	}

	out.src = start + body + end
	out.literal = lit.String()

	return out
}

// extSource renders an extglob node.
func (g *generator) extSource(id nodeID, mode dotMode) fragment {
	t := g.t
	n := &t.nodes[id]
	dot := mode == dotAllowed || (mode == dotInherit && g.dot)
	dotAllowedFlag := mode == dotAllowed

	body, allDead, unicode := g.alternatives(id, dot)

	// "*(a)" and "+(a)" may repeat into a dot-led chunk after the first one.
	bodyDot := ""
	if n.kind.repeated() && !dot && !dotAllowedFlag {
		if again, _, _ := g.alternatives(id, true); again != body {
			bodyDot = again
		}
	}

	if bodyDot != "" {
		body = "(?:" + body + ")(?:" + bodyDot + ")*?"
	}

	var src string
	switch n.kind {
	case extNot:
		guard := ""
		if t.isStart(id) && !dot && !dotAllowedFlag {
			guard = startNoDot
		}

		if n.emptyExt {
			src = guard + starNoEmpty
		} else {
			src = "(?:(?!(?:" + body + "))" + guard + star + ")"
		}

	case extOptional:
		src = "(?:" + body + ")?"

	case extOneOrMore:
		if bodyDot != "" {
			src = "(?:" + body + ")"
		} else {
			src = "(?:" + body + ")+"
		}

	case extZeroOrMore:
		if bodyDot != "" {
			src = "(?:" + body + ")?"
		} else {
			src = "(?:" + body + ")*"
		}

	case extExactlyOne:
		src = "(?:" + body + ")"
	}

	dead := false
	if n.kind == extExactlyOne || n.kind == extOneOrMore {
		dead = allDead
	}

	return fragment{
		src:     src,
		literal: t.String(id),
		magic:   true,
		unicode: unicode,
		dead:    dead,
	}
}

// alternatives renders the alternatives of an extglob joined by "|".
func (g *generator) alternatives(id nodeID, dot bool) (string, bool, bool) {
	t := g.t
	mode := dotDenied
	if dot {
		mode = dotAllowed
	}

	startEnd := t.isStart(id) && t.isEnd(id)
	out := make([]string, 0, len(t.nodes[id].parts))
	allDead := len(t.nodes[id].parts) > 0
	unicode := false

	for _, p := range t.nodes[id].parts {
		f := g.source(p.child, mode)
		unicode = unicode || f.unicode
		allDead = allDead && f.dead
		if startEnd && f.src == "" {
			continue
		}

		out = append(out, f.src)
	}

	return strings.Join(out, "|"), allDead, unicode
}

// patternStartAt reports whether src at i starts with something that could
// match a leading dot: a class or a literal ".".
func patternStartAt(src string, i int) bool {
	return i < len(src) && (src[i] == '[' || src[i] == '.')
}

// parseGlob renders raw glob text (no extglob groups) as regexp source.
func parseGlob(glob string, noEmpty bool) fragment {
	rs := decodeGlob(glob)

	var src, lit strings.Builder
	out := fragment{}
	escaping := false

	for i := 0; i < len(rs); i++ {
		c := rs[i]
		if escaping {
			escaping = false
			src.WriteString(regexEscapeRune(c))
			writeGlobRune(&lit, c)
			continue
		}

		switch c {
		case '\\':
			if i == len(rs)-1 {
				src.WriteString(`\\`)
				writeGlobRune(&lit, c)
			} else {
				escaping = true
			}

			continue

		case '[':
			cls := parseClass(rs, i)
			if cls.consumed > 0 {
				src.WriteString(cls.src)
				lit.WriteString(cls.literal)
				out.magic = out.magic || cls.magic
				out.unicode = out.unicode || cls.unicode
				out.dead = out.dead || cls.unmatchable
				i += cls.consumed - 1
				continue
			}

		case '*':
			if noEmpty && glob == "*" {
				src.WriteString(starNoEmpty)
			} else {
				src.WriteString(star)
			}

			out.magic = true
			continue

		case '?':
			src.WriteString(qmark)
			out.magic = true
			continue
		}

		src.WriteString(regexEscapeRune(c))
		writeGlobRune(&lit, c)
	}

	out.src = src.String()
	out.literal = lit.String()

	return out
}

// regexEscapeRune escapes c for use outside a regexp class.
func regexEscapeRune(c rune) string {
	if isRawByte(c) {
		return replacementEscape
	}

	switch c {
	case '-', '[', ']', '{', '}', '(', ')', '*', '+', '?', '.', ',', '\\', '^', '$', '|', '#',
		' ', '\t', '\n', '\v', '\f', '\r':
		return `\` + string(c)
	default:
		return string(c)
	}
}

// regexEscape escapes every special character of s.
func regexEscape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, c := range s {
		sb.WriteString(regexEscapeRune(c))
	}

	return sb.String()
}
