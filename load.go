// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRulesFile reads and parses rules from a file.
func LoadRulesFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rules, err := ParseRules(f)
	if err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	return rules, nil
}

// LoadRulesFiles reads and merges rules from files in the given order.
//
// Returned rules preserve file order and rule order inside each file.
func LoadRulesFiles(paths ...string) ([]Rule, error) {
	sets := make([][]Rule, 0, len(paths))
	for _, path := range paths {
		rules, err := LoadRulesFile(path)
		if err != nil {
			return nil, err
		}

		sets = append(sets, rules)
	}

	return MergeRules(sets...), nil
}

// LoadOptionsFile reads matching options from a YAML file.
func LoadOptionsFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("open options file: %w", err)
	}
	defer func() { _ = f.Close() }()

	opts, err := ParseOptions(f)
	if err != nil {
		return Options{}, fmt.Errorf("parse options file %s: %w", path, err)
	}

	return opts, nil
}

// ParseOptions decodes YAML options and validates them. Unknown keys are
// rejected; an empty document yields zero options.
func ParseOptions(r io.Reader) (Options, error) {
	var opts Options

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	if err := opts.validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}
