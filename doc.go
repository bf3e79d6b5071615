// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

/*
Package pathglob implements shell-style glob matching of path strings.

Supported syntax: literals, `*`, `?`, bracket classes with POSIX names
(`[[:alpha:]]`), `**` globstar segments, extglob groups (`!(..)`, `?(..)`,
`+(..)`, `*(..)`, `@(..)`) and brace alternation (`{a,b}`, `{1..5}`,
`{a..e..2}`). Malformed syntax never fails; it degrades to literal text.

Basic flow:
  - compile a pattern (`Compile`)
  - ask for a decision (`Match` / `MatchPartial`)
  - optionally export one regular expression (`Regex`)
  - filter candidate lists (`Filter` / `FilterParallel`)

Package functions (`MatchOne`, `FilterList`, `MakeRe`, `HasMagic`) share a
bounded cache of compiled matchers.

Dotfiles are only matched by wildcards with `Options.Dot`, and `**` never
crosses `.` or `..` segments. On win32 candidate paths may use `\`
separators, and drive letters and `//?/` roots are reconciled
case-insensitively.

For ordered include/exclude policies, use `Ruleset`:
  - parse rules from text (`ParseRules`) or files (`LoadRulesFiles`)
  - optionally build extension-based include rules (`ParseExtensions`)
  - compile the ruleset (`NewRuleset`)
  - ask for a decision (`Decide` / `Included` / `Excluded`); the last matching rule wins

The engine only evaluates supplied strings; it never touches the filesystem.
*/
package pathglob
