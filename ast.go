// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "strings"

// extKind is the kind of an extglob group; extNone marks a plain node.
type extKind uint8

const (
	extNone extKind = iota
	// extNot is "!(a|b)": anything except the alternatives.
	extNot
	// extOptional is "?(a|b)": zero or one occurrence.
	extOptional
	// extOneOrMore is "+(a|b)": one or more occurrences.
	extOneOrMore
	// extZeroOrMore is "*(a|b)": zero or more occurrences.
	extZeroOrMore
	// extExactlyOne is "@(a|b)": exactly one occurrence.
	extExactlyOne
)

// extKindOf maps an extglob trigger character to its kind.
func extKindOf(c rune) (extKind, bool) {
	switch c {
	case '!':
		return extNot, true
	case '?':
		return extOptional, true
	case '+':
		return extOneOrMore, true
	case '*':
		return extZeroOrMore, true
	case '@':
		return extExactlyOne, true
	default:
		return extNone, false
	}
}

// trigger returns the extglob trigger character.
func (k extKind) trigger() string {
	switch k {
	case extNot:
		return "!"
	case extOptional:
		return "?"
	case extOneOrMore:
		return "+"
	case extZeroOrMore:
		return "*"
	case extExactlyOne:
		return "@"
	default:
		return ""
	}
}

// repeated reports kinds that may match their body several times.
func (k extKind) repeated() bool {
	return k == extOneOrMore || k == extZeroOrMore
}

// nodeID indexes tree.nodes.
type nodeID int32

const noNode nodeID = -1

// part is either raw glob text or a child node.
type part struct {
	text  string
	child nodeID
}

// node is one AST node. Plain nodes hold a sequence of parts; extglob nodes
// hold one plain child per alternative.
type node struct {
	parts  []part
	parent nodeID
	// index is the position of this node inside parent.parts.
	index int
	kind  extKind
	// emptyExt marks "!()" with no alternatives at all.
	emptyExt bool
}

// tree is the AST of a single path segment stored as an arena.
type tree struct {
	nodes []node
	// negs collects negation nodes pending the finalize pass.
	negs   []nodeID
	noext  bool
	filled bool
}

// root is always the first node.
const root nodeID = 0

// parseSegment builds and finalizes the AST of one pattern segment.
func parseSegment(glob string, noext bool) *tree {
	t := &tree{noext: noext}
	id := t.newNode(extNone, noNode)
	t.parse(decodeGlob(glob), id, 0)
	t.finalize()

	return t
}

// newNode allocates a node that will be appended to parent.parts next.
func (t *tree) newNode(kind extKind, parent nodeID) nodeID {
	id := nodeID(len(t.nodes))

	index := 0
	if parent != noNode {
		index = len(t.nodes[parent].parts)
	}

	t.nodes = append(t.nodes, node{kind: kind, parent: parent, index: index})
	if kind == extNot && !t.filled {
		t.negs = append(t.negs, id)
	}

	return id
}

// pushText appends non-empty text to id.
func (t *tree) pushText(id nodeID, text string) {
	if text == "" {
		return
	}

	t.nodes[id].parts = append(t.nodes[id].parts, part{text: text, child: noNode})
}

// pushChild appends child to id.
func (t *tree) pushChild(id, child nodeID) {
	t.nodes[id].parts = append(t.nodes[id].parts, part{child: child})
}

// parse consumes glob from pos into node id and returns the next position.
func (t *tree) parse(glob []rune, id nodeID, pos int) int {
	var acc strings.Builder
	var scan bracketScanner

	if t.nodes[id].kind == extNone {
		i := pos
		for i < len(glob) {
			c := glob[i]
			i++

			if scan.literal(c, i) {
				writeGlobRune(&acc, c)
				continue
			}

			if kind, ok := extKindOf(c); ok && !t.noext && i < len(glob) && glob[i] == '(' {
				t.pushText(id, acc.String())
				acc.Reset()

				ext := t.newNode(kind, id)
				i = t.parse(glob, ext, i)
				t.pushChild(id, ext)
				continue
			}

			writeGlobRune(&acc, c)
		}

		t.pushText(id, acc.String())
		return i
	}

	// Extglob body: pos points at "(".
	i := pos + 1
	alt := t.newNode(extNone, id)
	alts := make([]nodeID, 0, 2)

	for i < len(glob) {
		c := glob[i]
		i++

		if scan.literal(c, i) {
			writeGlobRune(&acc, c)
			continue
		}

		if kind, ok := extKindOf(c); ok && i < len(glob) && glob[i] == '(' {
			t.pushText(alt, acc.String())
			acc.Reset()

			ext := t.newNode(kind, alt)
			t.pushChild(alt, ext)
			i = t.parse(glob, ext, i)
			continue
		}

		switch c {
		case '|':
			t.pushText(alt, acc.String())
			acc.Reset()
			alts = append(alts, alt)
			alt = t.newNode(extNone, id)
			continue

		case ')':
			if acc.Len() == 0 && len(alts) == 0 && len(t.nodes[alt].parts) == 0 {
				t.nodes[id].emptyExt = true
			}

			t.pushText(alt, acc.String())
			alts = append(alts, alt)
			for _, a := range alts {
				t.pushChild(id, a)
			}

			return i
		}

		writeGlobRune(&acc, c)
	}

	// Unterminated: keep the raw text from the trigger character on.
	n := &t.nodes[id]
	n.kind = extNone
	n.emptyExt = false
	n.parts = []part{{text: encodeGlob(glob[pos-1:]), child: noNode}}

	return i
}

// bracketScanner tracks escapes and "[...]" spans while parsing, inside
// which extglob syntax is literal.
type bracketScanner struct {
	start    int
	escaping bool
	inClass  bool
	negated  bool
}

// literal consumes c (at position i-1) and reports whether it must be kept
// as plain text.
func (s *bracketScanner) literal(c rune, i int) bool {
	if s.escaping || c == '\\' {
		s.escaping = !s.escaping
		return true
	}

	if s.inClass {
		if i == s.start+1 {
			if c == '^' || c == '!' {
				s.negated = true
			}
		} else if c == ']' && !(i == s.start+2 && s.negated) {
			s.inClass = false
		}

		return true
	}

	if c == '[' {
		s.inClass = true
		s.start = i
		s.negated = false
		return true
	}

	return false
}

// finalize distributes negation context and demotes empty extglobs.
func (t *tree) finalize() {
	t.fillNegs()
	t.demoteEmptyExtglobs()
}

// fillNegs copies every sibling that follows a negation, up the chain of
// plain ancestors, into each of its alternatives. Only then does the
// negative lookahead see the rest of the segment.
func (t *tree) fillNegs() {
	t.filled = true

	for len(t.negs) > 0 {
		n := t.negs[len(t.negs)-1]
		t.negs = t.negs[:len(t.negs)-1]

		if t.nodes[n].kind != extNot {
			continue
		}

		alternatives := append([]part(nil), t.nodes[n].parts...)
		p := n
		for pp := t.nodes[p].parent; pp != noNode; pp = t.nodes[p].parent {
			if t.nodes[pp].kind == extNone {
				for i := t.nodes[p].index + 1; i < len(t.nodes[pp].parts); i++ {
					sibling := t.nodes[pp].parts[i]
					for _, alt := range alternatives {
						t.copyInto(alt.child, sibling)
					}
				}
			}

			p = pp
		}
	}
}

// copyInto appends a deep copy of p to dst.
func (t *tree) copyInto(dst nodeID, p part) {
	if p.child == noNode {
		t.pushText(dst, p.text)
		return
	}

	t.pushChild(dst, t.clone(p.child, dst))
}

// clone deep-copies src as a future child of parent.
func (t *tree) clone(src, parent nodeID) nodeID {
	c := t.newNode(t.nodes[src].kind, parent)
	t.nodes[c].emptyExt = t.nodes[src].emptyExt

	for _, p := range append([]part(nil), t.nodes[src].parts...) {
		t.copyInto(c, p)
	}

	return c
}

// demoteEmptyExtglobs turns "@()", "+(|)" and friends spanning the whole
// segment into literal text.
func (t *tree) demoteEmptyExtglobs() {
	for id := range t.nodes {
		n := nodeID(id)
		kind := t.nodes[n].kind
		if kind == extNone || kind == extNot {
			continue
		}

		if !t.isStart(n) || !t.isEnd(n) || !t.alternativesEmpty(n) {
			continue
		}

		text := t.String(n)
		t.nodes[n].kind = extNone
		t.nodes[n].parts = []part{{text: text, child: noNode}}
	}
}

// alternativesEmpty reports whether every alternative of n is empty.
func (t *tree) alternativesEmpty(n nodeID) bool {
	for _, p := range t.nodes[n].parts {
		if p.child != noNode && len(t.nodes[p.child].parts) > 0 {
			return false
		}
	}

	return true
}

// isStart reports whether id can begin the segment: everything before it is
// a negation group.
func (t *tree) isStart(id nodeID) bool {
	n := &t.nodes[id]
	if n.parent == noNode {
		return true
	}

	if !t.isStart(n.parent) {
		return false
	}

	parent := &t.nodes[n.parent]
	if parent.kind != extNone {
		return true
	}

	for i := 0; i < n.index; i++ {
		p := parent.parts[i]
		if p.child == noNode || t.nodes[p.child].kind != extNot {
			return false
		}
	}

	return true
}

// isEnd reports whether id reaches the end of the segment.
func (t *tree) isEnd(id nodeID) bool {
	n := &t.nodes[id]
	if n.parent == noNode {
		return true
	}

	parent := &t.nodes[n.parent]
	if parent.kind == extNot {
		return true
	}

	if !t.isEnd(n.parent) {
		return false
	}

	if n.kind == extNone {
		return true
	}

	return n.index == len(parent.parts)-1
}

// String renders node id back into glob syntax.
func (t *tree) String(id nodeID) string {
	var sb strings.Builder
	t.writeGlob(&sb, id)

	return sb.String()
}

// writeGlob writes the glob form of id to sb.
func (t *tree) writeGlob(sb *strings.Builder, id nodeID) {
	n := &t.nodes[id]
	if n.kind != extNone {
		sb.WriteString(n.kind.trigger())
		sb.WriteByte('(')
	}

	for i, p := range n.parts {
		if n.kind != extNone && i > 0 {
			sb.WriteByte('|')
		}

		if p.child == noNode {
			sb.WriteString(p.text)
		} else {
			t.writeGlob(sb, p.child)
		}
	}

	if n.kind != extNone {
		sb.WriteByte(')')
	}
}
