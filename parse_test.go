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

func TestParseRules(t *testing.T) {
	t.Parallel()

	rules, err := ParseRulesString(`
# comment
*.tmp
!keep.tmp
\#literal
\!bang
name\ 
trailing   
`)
	require.NoError(t, err)

	want := []Rule{
		{Action: ActionExclude, Pattern: "*.tmp", Line: 3},
		{Action: ActionInclude, Pattern: "keep.tmp", Line: 4},
		{Action: ActionExclude, Pattern: "#literal", Line: 5},
		{Action: ActionExclude, Pattern: "!bang", Line: 6},
		{Action: ActionExclude, Pattern: `name\ `, Line: 7},
		{Action: ActionExclude, Pattern: "trailing", Line: 8},
	}
	assert.Equal(t, want, rules)
}

func TestParseRulesCRLF(t *testing.T) {
	t.Parallel()

	rules, err := ParseRulesString("a/*\r\n!a/keep\r\n\r\n")
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "a/*", rules[0].Pattern)
	assert.Equal(t, "a/keep", rules[1].Pattern)
}

func TestParseRulesBareBang(t *testing.T) {
	t.Parallel()

	rules, err := ParseRulesString("!\n*.bin\n")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, 2, rules[0].Line)
}

func TestParseRulesTooLong(t *testing.T) {
	t.Parallel()

	_, err := ParseRulesString(strings.Repeat("a", MaxPatternLength+1) + "\n")
	require.ErrorIs(t, err, ErrInvalidRule)
	require.ErrorIs(t, err, ErrPatternTooLong)
}

func TestParsedEscapedSpaceMatches(t *testing.T) {
	t.Parallel()

	rules, err := ParseRulesString("name\\ \n")
	require.NoError(t, err)

	rs, err := NewRuleset(rules, RulesetOptions{})
	require.NoError(t, err)
	assert.True(t, rs.Excluded("name "))
	assert.False(t, rs.Excluded("name"))
}

func TestParseRulesBOM(t *testing.T) {
	t.Parallel()

	rules, err := ParseRulesString("\ufeff*.tmp\n")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "*.tmp", rules[0].Pattern)
}

func TestTrimTrailingSpaces(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"a  ":    "a",
		"a\t \t": "a",
		`a\ `:    `a\ `,
		`a\   `:  `a\ `,
		"   ":    "",
		`a\`:     `a\`,
		"a b":    "a b",
	} {
		assert.Equal(t, want, trimTrailingSpaces(in), "%q", in)
	}
}

func TestParseRulesLineBeyondBuffer(t *testing.T) {
	t.Parallel()

	src := "*.tmp\n# comment\n" + strings.Repeat("a", 2*MaxPatternLength) + "\n"
	_, err := ParseRulesString(src)
	require.ErrorIs(t, err, ErrInvalidRule)
	require.ErrorIs(t, err, ErrPatternTooLong)
	assert.Contains(t, err.Error(), "line 3")
}
