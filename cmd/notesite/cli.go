package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnknownCommand indicates an unrecognized subcommand.
var ErrUnknownCommand = errors.New("unknown command")

// run dispatches a command line and returns the process exit code.
// Without a command, or when the first argument is a flag, it generates.
func run(args []string, env *Environment) int {
	cmd := "generate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "generate":
		return runGenerateCmd(args, env)
	case "doctor":
		return runDoctorCmd(args, env)
	case "init":
		return reportError(env, runInit(args, env))
	case "version":
		fmt.Fprintf(env.Stdout, "notesite %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args, env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return exitCodeFor(fmt.Errorf("%w: %s", ErrUnknownCommand, cmd))
	}
}

func runGenerateCmd(args []string, env *Environment) int {
	flags, err := parseGenerateFlags(args, env)
	if err != nil {
		if errors.Is(err, errHelpRequested) {
			return ExitSuccess
		}
		return reportError(env, err)
	}

	logger := newLogger(env, flags.common)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return reportError(env, runGenerate(ctx, flags, env, logger))
}

// newLogger builds the stderr logger: info by default, debug with
// --verbose, errors only with --quiet.
func newLogger(env *Environment, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.quiet:
		level = slog.LevelError
	case f.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level}))
}

// reportError prints err with a hint, if any, and maps it to an exit code.
func reportError(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}
