package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ryanm101/organize/internal/config"
	"github.com/ryanm101/organize/internal/logging"
	"github.com/ryanm101/organize/internal/tracing"
)

var cfg *config.Config

func main() {
	ctx := context.Background()

	// Load config
	var err error
	cfg, err = config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// Setup Logging
	logging.Setup(logging.Config{
		Format: cfg.Logging.Format,
		Level:  cfg.Logging.Level,
	})

	// Setup Tracing
	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		logging.Error("failed to setup tracing", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logging.Error("failed to shutdown tracing", "error", err)
			}
		}()
	}

	// Parse global flags (--json, --quiet)
	args := parseGlobalFlags(os.Args[1:])

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "run":
		handleRunCommand(ctx, args[1:])
	case "undo":
		handleUndoCommand(ctx, args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("organize - sort files into category folders by extension")
	fmt.Println()
	fmt.Println("Usage: organize <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  run <folder> [--dry-run] [--recurse]   Organize files (preview with --dry-run)")
	fmt.Println("  undo <logfile> [--dry-run]             Undo a previous run using its log file")
	fmt.Println("  help                                   Show this help")
	fmt.Println()
	fmt.Println("Global flags:")
	fmt.Println("  --json        Machine-readable output")
	fmt.Println("  --quiet, -q   Suppress per-file output")
	fmt.Println()
	fmt.Println("Categories are configured in .organize.yaml or ~/.config/organize/config.yaml.")
}
