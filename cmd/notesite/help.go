package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notesite [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Publish the Notion database as HTML (default)")
	fmt.Fprintln(w, "  doctor     Check credentials, index, output and browser")
	fmt.Fprintln(w, "  init       Write a default config file")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'notesite help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notesite [generate] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetch every page of the Notion database, write one HTML file per note")
	fmt.Fprintln(w, "and replace the notes section of the index.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -i, --index <path>        Index document (default personal_newsletter.html)")
	fmt.Fprintln(w, "      --notes-dir <dir>     Note directory, relative to the index (default notes)")
	fmt.Fprintln(w, "      --layout <s>          Layout: inline, flat, nested (default nested)")
	fmt.Fprintln(w, "      --pdf                 Also export each note to PDF")
	fmt.Fprintln(w, "      --highlight           Syntax highlight code blocks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default notesite.yaml if present)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  NOTION_TOKEN              Integration secret (required)")
	fmt.Fprintln(w, "  NOTION_DATABASE_ID        Source database (required unless in config)")
	fmt.Fprintln(w, "  NOTESITE_CONFIG, NOTESITE_INDEX, NOTESITE_NOTES_DIR, NOTESITE_LAYOUT")
	fmt.Fprintln(w, "  Variables are also read from ./.env")
}

func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notesite doctor [--config <name>] [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that a generate run can succeed.")
}

func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notesite init [--config <path>] [--force]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the default configuration to notesite.yaml.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: notesite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: notesite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
