// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// matcherCacheSize bounds the compiled matchers shared by package functions.
const matcherCacheSize = 256

// cacheKey identifies a compiled matcher.
type cacheKey struct {
	pattern string
	opts    Options
}

var matcherCache = newMatcherCache(matcherCacheSize)

// newMatcherCache panics only on a non-positive size.
func newMatcherCache(size int) *lru.Cache[cacheKey, *Matcher] {
	c, err := lru.New[cacheKey, *Matcher](size)
	if err != nil {
		panic(err)
	}

	return c
}

// compileCached compiles pattern or returns a previously compiled Matcher.
func compileCached(pattern string, opts Options) (*Matcher, error) {
	key := cacheKey{pattern: pattern, opts: opts}
	if m, ok := matcherCache.Get(key); ok {
		return m, nil
	}

	m, err := Compile(pattern, opts)
	if err != nil {
		return nil, err
	}

	matcherCache.Add(key, m)
	return m, nil
}

// MatchOne reports whether path matches pattern.
func MatchOne(path, pattern string, opts Options) (bool, error) {
	m, err := compileCached(pattern, opts)
	if err != nil {
		return false, err
	}

	return m.Match(path), nil
}

// FilterList returns the paths matching pattern, in input order.
func FilterList(paths []string, pattern string, opts Options) ([]string, error) {
	m, err := compileCached(pattern, opts)
	if err != nil {
		return nil, err
	}

	return m.Filter(paths), nil
}

// MakeRe compiles pattern into a whole-path regular expression. The boolean
// is false when the pattern has no viable alternative.
func MakeRe(pattern string, opts Options) (*Regex, bool, error) {
	m, err := compileCached(pattern, opts)
	if err != nil {
		return nil, false, err
	}

	re, ok := m.Regex()
	return re, ok, nil
}

// HasMagic reports whether pattern contains wildcard syntax after brace
// expansion.
func HasMagic(pattern string, opts Options) (bool, error) {
	m, err := compileCached(pattern, opts)
	if err != nil {
		return false, err
	}

	return m.HasMagic(), nil
}
