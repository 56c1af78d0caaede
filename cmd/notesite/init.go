package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-notesite/internal/config"
	"github.com/alnah/go-notesite/internal/fileutil"
)

// Sentinel errors for the init command.
var (
	ErrConfigExists = errors.New("config file already exists")
	ErrWriteConfig  = errors.New("failed to write config file")
)

// defaultConfigFile is written by init when no path is given.
const defaultConfigFile = defaultConfigName + ".yaml"

// runInit writes the default configuration so it can be edited.
func runInit(args []string, env *Environment) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	var path string
	var force bool
	fs.StringVarP(&path, "config", "c", defaultConfigFile, "config file to write")
	fs.BoolVar(&force, "force", false, "overwrite an existing file")
	fs.Usage = func() { printInitUsage(env.Stderr) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if fileutil.FileExists(path) && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	}

	data, err := config.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(path, string(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteConfig, err)
	}

	fmt.Fprintf(env.Stdout, "Wrote %s\n", path)
	return nil
}
