// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "errors"

// Sentinel errors for pathglob operations.
var (
	// ErrInvalidPattern indicates a pattern that cannot be compiled at all.
	// Malformed glob syntax is never reported; it degrades to literal text.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrPatternTooLong indicates a pattern longer than MaxPatternLength.
	ErrPatternTooLong = errors.New("pattern is too long")
	// ErrInvalidOptions indicates an unsupported option value.
	ErrInvalidOptions = errors.New("invalid options")
	// ErrInvalidRule indicates malformed or unsupported rule input.
	ErrInvalidRule = errors.New("invalid rule")
)
