// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"strings"

	"github.com/samber/lo"
)

// normalizeExtensions trims, lower-cases and dedupes extension values.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = asciiLower(ext)
		if ext == "" {
			continue
		}

		out = append(out, ext)
	}

	return lo.Uniq(out)
}

// ExtensionsPattern builds one glob matching any of exts, such as
// "*.{png,jpg}". It returns "" when no extension survives normalization.
//
// Extensions are escaped, so "c++" matches literally.
func ExtensionsPattern(exts []string) string {
	norm := lo.Map(normalizeExtensions(exts), func(ext string, _ int) string {
		return strings.ReplaceAll(Escape(ext, Options{}), ",", `\,`)
	})

	switch len(norm) {
	case 0:
		return ""
	case 1:
		return "*." + norm[0]
	default:
		return "*.{" + strings.Join(norm, ",") + "}"
	}
}

// ParseExtensions converts an extension list to a single include rule.
//
// Empty values are skipped and duplicates dropped. The pattern is
// lower-case; compile with NoCase to match any case. Returns nil when no
// extension is left.
func ParseExtensions(exts []string) []Rule {
	pattern := ExtensionsPattern(exts)
	if pattern == "" {
		return nil
	}

	return []Rule{{
		Action:  ActionInclude,
		Pattern: pattern,
	}}
}
