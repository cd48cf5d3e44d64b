package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/colorstring"

	"github.com/ryanm101/organize/internal/organize"
)

// OutputConfig holds global output settings
type OutputConfig struct {
	JSON  bool
	Quiet bool
}

var outputCfg OutputConfig

// parseGlobalFlags extracts --json and --quiet from args, returns remaining args
func parseGlobalFlags(args []string) []string {
	var remaining []string
	for _, arg := range args {
		switch arg {
		case "--json":
			outputCfg.JSON = true
		case "--quiet", "-q":
			outputCfg.Quiet = true
		default:
			remaining = append(remaining, arg)
		}
	}
	return remaining
}

// PrintResult writes data as indented JSON to stdout
func PrintResult(data interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

// cprintf formats to stdout with color markup expanded in the format
// string only, so bracketed file names pass through untouched.
func cprintf(format string, args ...interface{}) {
	fmt.Printf(colorstring.Color(format), args...)
}

// cerrorf is cprintf for stderr.
func cerrorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, colorstring.Color(format), args...)
}

// printRunAction renders one organize notification
func printRunAction(a organize.MoveAction) {
	switch a.Status {
	case organize.StatusPreviewed:
		cprintf("[cyan]DRY-RUN[reset] would move: %s -> %s\n", a.Source, a.Dest)
	case organize.StatusMoved:
		cprintf("[green]moved[reset]: %s -> %s/%s\n",
			filepath.Base(a.Source),
			filepath.Base(filepath.Dir(a.Dest)),
			filepath.Base(a.Dest))
	}
}

// printUndoAction renders one undo notification
func printUndoAction(a organize.MoveAction) {
	switch a.Status {
	case organize.StatusMissing:
		cprintf("[red]missing[reset]: %s (skipping)\n", a.Source)
	case organize.StatusPreviewed:
		cprintf("[cyan]DRY-RUN[reset] would undo: %s -> %s\n", a.Source, a.Dest)
	case organize.StatusRestored:
		cprintf("[yellow]undid[reset]: %s -> %s\n", a.Source, a.Dest)
	}
}

func errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}
