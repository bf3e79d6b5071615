// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

// Command pathglob filters candidate paths through a glob pattern or a
// ruleset. Paths come from arguments or, when none are given, from stdin.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/woozymasta/pathglob"
)

// errNoMatch reports that nothing matched; it maps to exit code 1.
var errNoMatch = errors.New("no match")

// boolFlag binds one boolean CLI flag to its Options field.
type boolFlag struct {
	field func(*pathglob.Options) *bool
	name  string
	usage string
}

// boolFlags lists one flag per boolean matching option.
var boolFlags = []boolFlag{
	{name: "dot", usage: "let wildcards match a leading dot", field: func(o *pathglob.Options) *bool { return &o.Dot }},
	{name: "nocase", usage: "match case-insensitively", field: func(o *pathglob.Options) *bool { return &o.NoCase }},
	{name: "noglobstar", usage: "treat ** like *", field: func(o *pathglob.Options) *bool { return &o.NoGlobstar }},
	{name: "match-base", usage: "match slash-free patterns against the basename", field: func(o *pathglob.Options) *bool { return &o.MatchBase }},
	{name: "nonegate", usage: "disable leading ! negation", field: func(o *pathglob.Options) *bool { return &o.NoNegate }},
	{name: "nocomment", usage: "disable leading # comments", field: func(o *pathglob.Options) *bool { return &o.NoComment }},
	{name: "noext", usage: "disable extglob groups", field: func(o *pathglob.Options) *bool { return &o.NoExt }},
	{name: "nobrace", usage: "disable brace expansion", field: func(o *pathglob.Options) *bool { return &o.NoBrace }},
	{name: "nonull", usage: "print the pattern when nothing matched", field: func(o *pathglob.Options) *bool { return &o.NoNull }},
	{name: "flip-negate", usage: "report negated patterns as true on a hit", field: func(o *pathglob.Options) *bool { return &o.FlipNegate }},
	{name: "partial", usage: "accept paths that could match with more segments", field: func(o *pathglob.Options) *bool { return &o.Partial }},
	{name: "preserve-multiple-slashes", usage: "keep empty segments from //", field: func(o *pathglob.Options) *bool { return &o.PreserveMultipleSlashes }},
	{name: "windows-paths-no-escape", usage: `treat \ in patterns as a separator`, field: func(o *pathglob.Options) *bool { return &o.WindowsPathsNoEscape }},
	{name: "magical-braces", usage: "count brace alternatives as magic", field: func(o *pathglob.Options) *bool { return &o.MagicalBraces }},
}

// cliOptions holds flags that are not matching options.
type cliOptions struct {
	config        string
	platform      string
	level         string
	defaultAction string
	rules         []string
	parallel      int
	printRegex    bool
	expand        bool
	debug         bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	switch {
	case err == nil:
	case errors.Is(err, errNoMatch):
		stop()
		os.Exit(1)
	default:
		log.Error("pathglob failed", "err", err)
		stop()
		os.Exit(2)
	}
}

// newRootCmd builds the pathglob command with all flags registered.
func newRootCmd() *cobra.Command {
	var cli cliOptions

	cmd := &cobra.Command{
		Use:   "pathglob [flags] PATTERN [PATH...]",
		Short: "Filter paths through a glob pattern",
		Long: `pathglob prints the candidate paths matching PATTERN, one per line.
With --rules, PATTERN is omitted and paths are filtered by the ruleset instead.
Paths are read from stdin when none are given. Exit status is 1 when nothing matched.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &cli, args)
		},
	}

	fs := cmd.Flags()
	for _, f := range boolFlags {
		fs.Bool(f.name, false, f.usage)
	}

	fs.StringVar(&cli.config, "config", "", "YAML options file; flags override it")
	fs.StringVar(&cli.platform, "platform", "", "path conventions: posix or win32")
	fs.StringVar(&cli.level, "optimization-level", "", "pattern optimization: 0, 1 or 2")
	fs.StringSliceVar(&cli.rules, "rules", nil, "rules files, evaluated in order")
	fs.StringVar(&cli.defaultAction, "default-action", "include", "ruleset action when no rule matched: include or exclude")
	fs.IntVar(&cli.parallel, "parallel", 1, "filter with N workers, 0 for one per CPU")
	fs.BoolVar(&cli.printRegex, "print-regex", false, "print the equivalent regular expression and exit")
	fs.BoolVar(&cli.expand, "expand", false, "print the brace expansion and exit")
	fs.BoolVar(&cli.debug, "debug", false, "log compilation and matching traces to stderr")

	return cmd
}

// run filters candidates through a pattern, or a ruleset when --rules is set.
func run(cmd *cobra.Command, cli *cliOptions, args []string) error {
	opts, err := resolveOptions(cmd, cli)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(cli.rules) > 0 {
		paths, err := candidates(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		return runRules(out, cli, opts, paths)
	}

	if len(args) == 0 {
		return errors.New("missing PATTERN")
	}

	pattern, rest := args[0], args[1:]

	if cli.expand {
		for _, glob := range pathglob.BraceExpand(pattern, opts) {
			_, _ = fmt.Fprintln(out, glob)
		}

		return nil
	}

	m, err := pathglob.Compile(pattern, opts)
	if err != nil {
		return err
	}

	if cli.printRegex {
		re, ok := m.Regex()
		if !ok {
			return errNoMatch
		}

		_, _ = fmt.Fprintln(out, re.String())
		return nil
	}

	paths, err := candidates(cmd.InOrStdin(), rest)
	if err != nil {
		return err
	}

	var matched []string
	if cli.parallel == 1 {
		matched = m.Filter(paths)
	} else {
		matched, err = m.FilterParallel(cmd.Context(), paths, cli.parallel)
		if err != nil {
			return err
		}
	}

	return printPaths(out, matched)
}

// runRules prints the paths included by the merged rules files.
func runRules(out io.Writer, cli *cliOptions, opts pathglob.Options, paths []string) error {
	rules, err := pathglob.LoadRulesFiles(cli.rules...)
	if err != nil {
		return err
	}

	action := pathglob.ActionInclude
	switch strings.ToLower(cli.defaultAction) {
	case "include":
	case "exclude":
		action = pathglob.ActionExclude
	default:
		return fmt.Errorf("%w: default action %q", pathglob.ErrInvalidRule, cli.defaultAction)
	}

	rs, err := pathglob.NewRuleset(rules, pathglob.RulesetOptions{Options: opts, DefaultAction: action})
	if err != nil {
		return err
	}

	return printPaths(out, rs.Filter(paths))
}

// resolveOptions layers changed flags over the optional config file.
func resolveOptions(cmd *cobra.Command, cli *cliOptions) (pathglob.Options, error) {
	var opts pathglob.Options
	if cli.config != "" {
		loaded, err := pathglob.LoadOptionsFile(cli.config)
		if err != nil {
			return pathglob.Options{}, err
		}

		opts = loaded
	}

	fs := cmd.Flags()
	for _, f := range boolFlags {
		if !fs.Changed(f.name) {
			continue
		}

		v, err := fs.GetBool(f.name)
		if err != nil {
			return pathglob.Options{}, err
		}

		*f.field(&opts) = v
	}

	if fs.Changed("platform") {
		opts.Platform = pathglob.Platform(cli.platform)
	}

	if fs.Changed("optimization-level") {
		if err := opts.OptimizationLevel.UnmarshalText([]byte(cli.level)); err != nil {
			return pathglob.Options{}, err
		}
	}

	if cli.debug {
		opts.Logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Level:  log.DebugLevel,
			Prefix: "pathglob",
		})
	}

	return opts, nil
}

// candidates returns args, or non-empty stdin lines when args is empty.
func candidates(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var paths []string
	s := bufio.NewScanner(in)
	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		if line != "" {
			paths = append(paths, line)
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}

	return paths, nil
}

// printPaths writes one path per line and returns errNoMatch for none.
func printPaths(out io.Writer, paths []string) error {
	if len(paths) == 0 {
		return errNoMatch
	}

	w := bufio.NewWriter(out)
	for _, p := range paths {
		_, _ = fmt.Fprintln(w, p)
	}

	return w.Flush()
}
