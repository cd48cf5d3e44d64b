package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/ryanm101/organize/internal/organize"
)

func handleRunCommand(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: organize run <folder> [--dry-run] [--recurse]")
		os.Exit(1)
	}

	folder := args[0]
	var dryRun, recurse bool
	for _, arg := range args[1:] {
		switch arg {
		case "--dry-run":
			dryRun = true
		case "--recurse":
			recurse = true
		default:
			fmt.Printf("Unknown flag: %s\n", arg)
			fmt.Println("Usage: organize run <folder> [--dry-run] [--recurse]")
			os.Exit(1)
		}
	}

	classifier := organize.NewClassifier(cfg.Categories)
	organizer := organize.NewOrganizer(classifier)

	opts := organize.Options{DryRun: dryRun, Recurse: recurse}

	var bar *progressbar.ProgressBar
	switch {
	case outputCfg.JSON:
		// Actions are reported in the result document
	case outputCfg.Quiet:
		bar = progressbar.Default(-1, "Organizing")
		opts.OnAction = func(organize.MoveAction) { _ = bar.Add(1) }
	default:
		opts.OnAction = printRunAction
	}

	result, err := organizer.Organize(ctx, folder, opts)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		if errors.Is(err, organize.ErrNotDirectory) {
			cerrorf("[red]Not a directory:[reset] %s\n", folder)
		} else {
			errorf("Error organizing: %v\n", err)
		}
		os.Exit(1)
	}

	if outputCfg.JSON {
		PrintResult(result)
		return
	}

	if result.LogPath != "" {
		cprintf("[bold]log saved:[reset] %s\n", result.LogPath)
	}
	cprintf("[bold]%d files processed.[reset]\n", result.Processed)
}
