package organize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/ryanm101/organize/internal/logging"
	"github.com/ryanm101/organize/internal/metrics"
	"github.com/ryanm101/organize/internal/tracing"
)

// UndoOptions configures an undo operation.
type UndoOptions struct {
	DryRun bool // Preview restorations without moving anything

	// OnAction, if set, is called per record, including skipped ones.
	OnAction func(MoveAction)
}

// UndoResult summarizes one undo operation.
type UndoResult struct {
	Restored int          `json:"restored"`
	Missing  int          `json:"missing"`
	DryRun   bool         `json:"dry_run"`
	Actions  []MoveAction `json:"actions"`
}

// Undo replays a move log in reverse chronological order, restoring
// each file to where it came from. Reverse order matters: a later
// move's collision rename may have depended on an earlier move having
// already happened, so forward replay could pick the wrong file.
//
// Restoration is best-effort per record: a destination that no longer
// exists is reported and skipped. A record whose original source is now
// occupied by some other file is restored under a fresh collision-free
// name; nothing is ever overwritten. Undo writes no log of its own.
func Undo(ctx context.Context, logPath string, opts UndoOptions) (*UndoResult, error) {
	start := time.Now()

	if !pathExists(logPath) {
		return nil, fmt.Errorf("%w: %s", ErrLogNotFound, logPath)
	}

	// Parse completely before acting; a malformed log aborts the whole
	// undo rather than guessing at partial state.
	records, err := ParseLog(logPath)
	if err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "organize.Undo",
		tracing.WithAttributes(
			attribute.String("undo.log", logPath),
			attribute.Bool("undo.dry_run", opts.DryRun),
			attribute.Int("undo.records", len(records)),
		),
	)
	defer span.End()

	logging.Info("undo started", "log", logPath, "records", len(records), "dry_run", opts.DryRun)

	exec := NewExecutor(nil, opts.DryRun)
	result := &UndoResult{DryRun: opts.DryRun}
	status := StatusRestored
	if opts.DryRun {
		status = StatusPreviewed
	}

	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]

		if !pathExists(rec.Dest) {
			// The user may have touched files since the run; report
			// and keep going.
			logging.Warn("logged destination missing", "dest", rec.Dest)
			metrics.FilesProcessed.WithLabelValues("undo", string(StatusMissing)).Inc()
			action := MoveAction{Source: rec.Dest, Dest: rec.Source, Status: StatusMissing}
			result.Actions = append(result.Actions, action)
			result.Missing++
			if opts.OnAction != nil {
				opts.OnAction(action)
			}
			continue
		}

		target := rec.Source
		if pathExists(rec.Source) {
			// A new file occupies the original name; never overwrite.
			target = SafeDestination(filepath.Dir(rec.Source), filepath.Base(rec.Source))
			metrics.CollisionRenames.Inc()
		}

		action := MoveAction{Source: rec.Dest, Dest: target, Status: status}
		if err := exec.Execute(action); err != nil {
			tracing.RecordError(span, err)
			return result, err
		}

		if !opts.DryRun {
			// Drop the bucket folder once its last file leaves it.
			// Remove refuses non-empty directories, so anything still
			// holding files survives.
			_ = os.Remove(filepath.Dir(rec.Dest))
		}

		metrics.FilesProcessed.WithLabelValues("undo", string(status)).Inc()
		result.Actions = append(result.Actions, action)
		result.Restored++
		if opts.OnAction != nil {
			opts.OnAction(action)
		}
	}

	metrics.RecordRun("undo", opts.DryRun)
	metrics.RecordRunDuration("undo", start)
	tracing.AddSpanAttributes(span,
		attribute.Int("undo.restored", result.Restored),
		attribute.Int("undo.missing", result.Missing),
	)
	tracing.SetSpanOK(span)

	logging.Info("undo finished", "restored", result.Restored, "missing", result.Missing)
	return result, nil
}
