// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// utf8BOM is stripped from the first line of rules input.
const utf8BOM = "\ufeff"

// ParseRules parses rules from reader, one glob pattern per line.
//
// Line syntax:
//   - blank lines and "#" comments are skipped
//   - "!pattern" is an include rule, any other line an exclude rule
//   - "\#" and "\!" quote a leading "#" or "!"
//   - trailing blanks are trimmed unless the last one is escaped by "\"
//
// Each rule records its 1-based source line.
func ParseRules(r io.Reader) ([]Rule, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), MaxPatternLength+len(utf8BOM)+2)

	var rules []Rule
	lineNo := 1
	for ; s.Scan(); lineNo++ {
		text := s.Text()
		if lineNo == 1 {
			text = strings.TrimPrefix(text, utf8BOM)
		}

		action, pattern, ok := parseRuleLine(text)
		if !ok {
			continue
		}

		if len(pattern) > MaxPatternLength {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidRule, lineNo, ErrPatternTooLong)
		}

		rules = append(rules, Rule{Pattern: pattern, Action: action, Line: lineNo})
	}

	if err := s.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidRule, lineNo, ErrPatternTooLong)
		}

		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return rules, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Rule, error) {
	return ParseRules(strings.NewReader(src))
}

// parseRuleLine splits one line into action and pattern. It reports false
// for lines that carry no rule.
func parseRuleLine(line string) (Action, string, bool) {
	line = trimTrailingSpaces(strings.TrimSuffix(line, "\r"))

	action := ActionExclude
	switch {
	case line == "", line[0] == '#':
		return ActionUnknown, "", false
	case line[0] == '!':
		action, line = ActionInclude, line[1:]
	case strings.HasPrefix(line, `\#`), strings.HasPrefix(line, `\!`):
		line = line[1:]
	}

	return action, line, line != ""
}

// trimTrailingSpaces drops trailing blanks, keeping an escaped last one
// together with its "\".
func trimTrailingSpaces(s string) string {
	trimmed := strings.TrimRight(s, " \t")
	if len(trimmed) < len(s) && strings.HasSuffix(trimmed, `\`) {
		return s[:len(trimmed)+1]
	}

	return trimmed
}
