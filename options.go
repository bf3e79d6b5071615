// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// MaxPatternLength is the longest pattern accepted by Compile.
const MaxPatternLength = 64 * 1024

// Platform selects path conventions used for matching.
type Platform string

const (
	// PlatformAuto resolves to PlatformWin32 on Windows and PlatformPOSIX elsewhere.
	PlatformAuto Platform = ""
	// PlatformPOSIX uses "/" separators and "\" as the escape character.
	PlatformPOSIX Platform = "posix"
	// PlatformWin32 additionally accepts "\" separators in candidate paths
	// and reconciles drive letters and UNC roots.
	PlatformWin32 Platform = "win32"
)

// OptimizationLevel controls how aggressively pattern segments are
// simplified before matching.
type OptimizationLevel uint8

const (
	// OptimizationDefault resolves to OptimizationBasic.
	OptimizationDefault OptimizationLevel = iota
	// OptimizationNone only collapses adjacent "**" segments (level 0).
	OptimizationNone
	// OptimizationBasic also resolves "<p>/.." pairs that do not follow "**" (level 1).
	OptimizationBasic
	// OptimizationAggressive also rewrites "**/.." and dedupes alternatives,
	// and cleans candidate paths before matching (level 2).
	OptimizationAggressive
)

// Options controls pattern compilation and matching.
//
// The zero value matches the conventional shell defaults: no dotfiles,
// case-sensitive, globstar, extglob and braces enabled.
type Options struct {
	// Logger receives debug traces; it overrides Debug when set.
	Logger *log.Logger `json:"-" yaml:"-"`
	// Platform selects separator and root handling.
	Platform Platform `json:"platform,omitempty" yaml:"platform,omitempty"`
	// OptimizationLevel selects segment preprocessing.
	OptimizationLevel OptimizationLevel `json:"optimization_level,omitempty" yaml:"optimization_level,omitempty"`
	// Dot lets wildcards match a leading "." in a path segment.
	Dot bool `json:"dot,omitempty" yaml:"dot,omitempty"`
	// NoCase enables case-insensitive matching.
	NoCase bool `json:"nocase,omitempty" yaml:"nocase,omitempty"`
	// NoGlobstar treats "**" like "*".
	NoGlobstar bool `json:"noglobstar,omitempty" yaml:"noglobstar,omitempty"`
	// MatchBase matches slash-free patterns against the last path segment.
	MatchBase bool `json:"match_base,omitempty" yaml:"match_base,omitempty"`
	// NoNegate disables leading "!" negation.
	NoNegate bool `json:"nonegate,omitempty" yaml:"nonegate,omitempty"`
	// NoComment disables leading "#" comments.
	NoComment bool `json:"nocomment,omitempty" yaml:"nocomment,omitempty"`
	// NoExt disables extglob groups such as "+(a|b)".
	NoExt bool `json:"noext,omitempty" yaml:"noext,omitempty"`
	// NoBrace disables "{a,b}" and "{1..3}" expansion.
	NoBrace bool `json:"nobrace,omitempty" yaml:"nobrace,omitempty"`
	// NoNull makes list filtering return the pattern itself when nothing matched.
	NoNull bool `json:"nonull,omitempty" yaml:"nonull,omitempty"`
	// FlipNegate reports negated patterns as true on a hit.
	FlipNegate bool `json:"flip_negate,omitempty" yaml:"flip_negate,omitempty"`
	// Partial accepts paths that could still match once more segments are appended.
	Partial bool `json:"partial,omitempty" yaml:"partial,omitempty"`
	// PreserveMultipleSlashes keeps empty segments produced by "//".
	PreserveMultipleSlashes bool `json:"preserve_multiple_slashes,omitempty" yaml:"preserve_multiple_slashes,omitempty"`
	// WindowsPathsNoEscape treats "\" in patterns as a path separator.
	WindowsPathsNoEscape bool `json:"windows_paths_no_escape,omitempty" yaml:"windows_paths_no_escape,omitempty"`
	// MagicalBraces makes HasMagic report true for patterns that expand to
	// more than one alternative.
	MagicalBraces bool `json:"magical_braces,omitempty" yaml:"magical_braces,omitempty"`
	// Debug enables debug logging to stderr when Logger is nil.
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`
}

// applyDefaults resolves zero-valued options to concrete values.
func (opts *Options) applyDefaults() {
	if opts.Platform == PlatformAuto {
		opts.Platform = PlatformPOSIX
		if runtime.GOOS == "windows" {
			opts.Platform = PlatformWin32
		}
	}

	if opts.OptimizationLevel == OptimizationDefault {
		opts.OptimizationLevel = OptimizationBasic
	}
}

// validate reports unsupported option values.
func (opts *Options) validate() error {
	switch opts.Platform {
	case PlatformAuto, PlatformPOSIX, PlatformWin32:
	default:
		return fmt.Errorf("%w: unsupported platform %q", ErrInvalidOptions, opts.Platform)
	}

	if opts.OptimizationLevel > OptimizationAggressive {
		return fmt.Errorf("%w: unsupported optimization level %d", ErrInvalidOptions, opts.OptimizationLevel)
	}

	return nil
}

// isWindows reports whether resolved options use win32 conventions.
func (opts *Options) isWindows() bool {
	return opts.Platform == PlatformWin32
}

// OptimizationLevelFromInt maps the numeric levels 0, 1 and 2.
func OptimizationLevelFromInt(n int) (OptimizationLevel, error) {
	switch n {
	case 0:
		return OptimizationNone, nil
	case 1:
		return OptimizationBasic, nil
	case 2:
		return OptimizationAggressive, nil
	default:
		return OptimizationDefault, fmt.Errorf("%w: unsupported optimization level %d", ErrInvalidOptions, n)
	}
}

// Int returns the numeric level, resolving the default to 1.
func (l OptimizationLevel) Int() int {
	switch l {
	case OptimizationNone:
		return 0
	case OptimizationAggressive:
		return 2
	default:
		return 1
	}
}

// String returns the numeric form of the level.
func (l OptimizationLevel) String() string {
	return strconv.Itoa(l.Int())
}

// MarshalText encodes the level as its numeric form.
func (l OptimizationLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText accepts "0", "1", "2", "none", "basic" and "aggressive".
func (l *OptimizationLevel) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "":
		*l = OptimizationDefault
	case "0", "none":
		*l = OptimizationNone
	case "1", "basic":
		*l = OptimizationBasic
	case "2", "aggressive":
		*l = OptimizationAggressive
	default:
		return fmt.Errorf("%w: unsupported optimization level %q", ErrInvalidOptions, text)
	}

	return nil
}

// UnmarshalJSON accepts both numeric and string levels.
func (l *OptimizationLevel) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	return l.UnmarshalText([]byte(strings.Trim(string(data), `"`)))
}

// UnmarshalYAML accepts both numeric and string levels.
func (l *OptimizationLevel) UnmarshalYAML(value *yaml.Node) error {
	return l.UnmarshalText([]byte(value.Value))
}
