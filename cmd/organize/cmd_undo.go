package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/ryanm101/organize/internal/organize"
)

func handleUndoCommand(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: organize undo <logfile> [--dry-run]")
		os.Exit(1)
	}

	logFile := args[0]
	var dryRun bool
	for _, arg := range args[1:] {
		switch arg {
		case "--dry-run":
			dryRun = true
		default:
			fmt.Printf("Unknown flag: %s\n", arg)
			fmt.Println("Usage: organize undo <logfile> [--dry-run]")
			os.Exit(1)
		}
	}

	opts := organize.UndoOptions{DryRun: dryRun}

	var bar *progressbar.ProgressBar
	switch {
	case outputCfg.JSON:
		// Actions are reported in the result document
	case outputCfg.Quiet:
		bar = progressbar.Default(-1, "Undoing")
		opts.OnAction = func(organize.MoveAction) { _ = bar.Add(1) }
	default:
		opts.OnAction = printUndoAction
	}

	result, err := organize.Undo(ctx, logFile, opts)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		switch {
		case errors.Is(err, organize.ErrLogNotFound):
			cerrorf("[red]Log file not found:[reset] %s\n", logFile)
		case errors.Is(err, organize.ErrMalformedLog):
			errorf("Error parsing log: %v\n", err)
		default:
			errorf("Error undoing: %v\n", err)
		}
		os.Exit(1)
	}

	if outputCfg.JSON {
		PrintResult(result)
		return
	}

	cprintf("[bold]%d restored, %d missing.[reset]\n", result.Restored, result.Missing)
}
