// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "regexp"

var (
	escapeRE        = regexp.MustCompile(`[?*()\[\]\\{}]`)
	escapeWindowsRE = regexp.MustCompile(`[?*()\[\]]`)

	unescapeClassRE        = regexp.MustCompile(`(^|[^\\\n])\[([^/\\])\]`)
	unescapeWindowsClassRE = regexp.MustCompile(`\[([^/\\])\]`)
	unescapeBackslashRE    = regexp.MustCompile(`\\([^/])`)
)

// Escape quotes glob syntax in s so it matches literally.
//
// With WindowsPathsNoEscape, where "\" is a separator, each special
// character is wrapped in a one-character class instead; braces cannot be
// quoted that way and are left as they are.
func Escape(s string, opts Options) string {
	if opts.WindowsPathsNoEscape {
		return escapeWindowsRE.ReplaceAllString(s, "[$0]")
	}

	return escapeRE.ReplaceAllString(s, `\$0`)
}

// Unescape removes glob quoting from s: "\x" becomes "x" and "[x]" becomes
// "x". Slashes are never unescaped.
func Unescape(s string, opts Options) string {
	if opts.WindowsPathsNoEscape {
		return unescapeWindowsClassRE.ReplaceAllString(s, "$1")
	}

	s = unescapeClassRE.ReplaceAllString(s, "${1}${2}")
	return unescapeBackslashRE.ReplaceAllString(s, "$1")
}
