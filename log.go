// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"os"

	"github.com/charmbracelet/log"
)

// newLogger returns the logger selected by opts, or nil when logging is off.
func newLogger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}

	if !opts.Debug {
		return nil
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.DebugLevel,
		Prefix: "pathglob",
	})
}

// debug logs at debug level when logging is on.
func (m *Matcher) debug(msg string, keyvals ...any) {
	if m.log == nil {
		return
	}

	m.log.Debug(msg, keyvals...)
}
