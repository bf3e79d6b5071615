// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"

	"github.com/samber/lo"
)

// Action represents a decision action of one rule.
type Action uint8

const (
	// ActionUnknown is unset/invalid action placeholder.
	ActionUnknown Action = iota
	// ActionExclude means matching path should be excluded.
	ActionExclude
	// ActionInclude means matching path should be included.
	ActionInclude
)

// String returns "include", "exclude" or "unknown".
func (a Action) String() string {
	switch a {
	case ActionExclude:
		return "exclude"
	case ActionInclude:
		return "include"
	default:
		return "unknown"
	}
}

// valid reports whether action value is supported.
func (a Action) valid() bool {
	return a == ActionExclude || a == ActionInclude
}

// Rule is one glob pattern with the action applied when it matches.
type Rule struct {
	// Pattern is a glob pattern; leading "!" and "#" are not special here
	// and a leading "/" is dropped, since candidates are relative.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Action is a decision action applied when the rule matches.
	Action Action `json:"action" yaml:"action"`
	// Line is the 1-based source line, zero when not parsed from text.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
}

// RulesetOptions controls ruleset behavior.
type RulesetOptions struct {
	// Options is used to compile every rule pattern.
	Options Options `json:"options" yaml:"options"`
	// DefaultAction is applied when no rule matched.
	DefaultAction Action `json:"default_action,omitempty" yaml:"default_action,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *RulesetOptions) applyDefaults() {
	if !opts.DefaultAction.valid() {
		opts.DefaultAction = ActionInclude
	}

	// Rule text already carries its own negation and comment syntax.
	opts.Options.NoNegate = true
	opts.Options.NoComment = true
}

// MatchResult is a deterministic decision produced by a ruleset.
type MatchResult struct {
	// Included reports final include decision.
	Included bool `json:"included" yaml:"included"`
	// Matched reports whether at least one rule matched.
	Matched bool `json:"matched" yaml:"matched"`
	// RuleIndex is the matched rule index in ruleset input order, -1 when no match.
	RuleIndex int `json:"rule_index" yaml:"rule_index"`
}

// compiledRule pairs a source rule with its compiled pattern.
type compiledRule struct {
	matcher *Matcher
	source  Rule
}

// Ruleset evaluates include/exclude decisions against ordered rules.
type Ruleset struct {
	compiled      []compiledRule
	defaultAction Action
}

// NewRuleset compiles ordered rules.
func NewRuleset(rules []Rule, opts RulesetOptions) (*Ruleset, error) {
	opts.applyDefaults()

	compiled := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		if !rule.Action.valid() {
			return nil, fmt.Errorf("%w: rule %d: unsupported action %d", ErrInvalidRule, i, rule.Action)
		}

		if rule.Pattern == "" {
			return nil, fmt.Errorf("%w: rule %d: empty", ErrInvalidPattern, i)
		}

		// Candidates are normalized to relative form, so a leading "/" only anchors.
		pattern := rule.Pattern
		if len(pattern) > 1 && pattern[0] == '/' {
			pattern = pattern[1:]
		}

		m, err := Compile(pattern, opts.Options)
		if err != nil {
			return nil, fmt.Errorf("compile rule %d (%q): %w", i, rule.Pattern, err)
		}

		compiled = append(compiled, compiledRule{matcher: m, source: rule})
	}

	return &Ruleset{
		compiled:      compiled,
		defaultAction: opts.DefaultAction,
	}, nil
}

// Decide returns deterministic include/exclude decision for one path.
//
// Decision policy:
// - last matched rule wins
// - if no rule matched, default action is used
func (r *Ruleset) Decide(path string) MatchResult {
	candidate := normalizePath(path)

	res := MatchResult{
		Included:  r.defaultAction == ActionInclude,
		Matched:   false,
		RuleIndex: -1,
	}

	for i := len(r.compiled) - 1; i >= 0; i-- {
		if !r.compiled[i].matcher.Match(candidate) {
			continue
		}

		res.Matched = true
		res.RuleIndex = i
		res.Included = r.compiled[i].source.Action == ActionInclude
		break
	}

	return res
}

// Included reports whether path is included by decision policy.
func (r *Ruleset) Included(path string) bool {
	return r.Decide(path).Included
}

// Excluded reports whether path is excluded by decision policy.
func (r *Ruleset) Excluded(path string) bool {
	return !r.Decide(path).Included
}

// Filter returns the included paths, in input order.
func (r *Ruleset) Filter(paths []string) []string {
	return lo.Filter(paths, func(p string, _ int) bool {
		return r.Included(p)
	})
}

// Rules returns the source rules in evaluation order.
func (r *Ruleset) Rules() []Rule {
	return lo.Map(r.compiled, func(cr compiledRule, _ int) Rule {
		return cr.source
	})
}

// MergeRules merges rule slices preserving input order.
func MergeRules(ruleSets ...[]Rule) []Rule {
	return lo.Flatten(ruleSets)
}
