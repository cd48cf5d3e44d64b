package organize

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/ryanm101/organize/internal/logging"
	"github.com/ryanm101/organize/internal/metrics"
	"github.com/ryanm101/organize/internal/tracing"
)

// Options configures an organize run.
type Options struct {
	DryRun  bool // Preview without touching the filesystem
	Recurse bool // Include files at any depth, not just direct children

	// OnAction, if set, is called after each file is handled. Used by
	// the CLI for streaming notifications and progress reporting.
	OnAction func(MoveAction)
}

// Result summarizes one organize run.
type Result struct {
	Processed int          `json:"processed"`
	DryRun    bool         `json:"dry_run"`
	LogPath   string       `json:"log_path,omitempty"`
	Actions   []MoveAction `json:"actions"`
}

// Organizer plans and executes category moves under a root folder.
type Organizer struct {
	classifier *Classifier
}

// NewOrganizer creates an organizer using the given classifier.
func NewOrganizer(classifier *Classifier) *Organizer {
	return &Organizer{classifier: classifier}
}

// Organize moves every candidate file under root into root/<bucket>,
// recording each real move in a fresh move log. A dry run makes the
// same planning decisions but mutates nothing and creates no log.
//
// A failed move aborts the remainder of the run: every line already in
// the log corresponds to a completed move, so the partial log stays
// valid for undo, and continuing past an I/O failure would compromise
// that guarantee. The partial result is returned alongside the error.
func (o *Organizer) Organize(ctx context.Context, root string, opts Options) (*Result, error) {
	start := time.Now()

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, &OpError{Op: "resolve root", Source: root, Err: err}
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	ctx, span := tracing.StartSpan(ctx, "organize.Run",
		tracing.WithAttributes(
			attribute.String("run.root", root),
			attribute.Bool("run.dry_run", opts.DryRun),
			attribute.Bool("run.recurse", opts.Recurse),
		),
	)
	defer span.End()

	var log *MoveLog
	if !opts.DryRun {
		log, err = CreateLog(root, time.Now())
		if err != nil {
			tracing.RecordError(span, err)
			return nil, err
		}
	}

	result := &Result{DryRun: opts.DryRun}
	if log != nil {
		result.LogPath = log.Path()
	}

	// Snapshot candidates before moving anything so files relocated
	// into bucket folders are never rediscovered mid-run.
	candidates, err := listCandidates(root, opts.Recurse)
	if err != nil {
		tracing.RecordError(span, err)
		o.closeLog(log)
		return result, err
	}

	logging.Info("organize run started",
		"root", root, "dry_run", opts.DryRun, "recurse", opts.Recurse,
		"candidates", len(candidates))

	exec := NewExecutor(log, opts.DryRun)
	status := StatusMoved
	if opts.DryRun {
		status = StatusPreviewed
	}

	for _, path := range candidates {
		name := filepath.Base(path)
		bucket := o.classifier.PickBucket(fileExt(name))
		destDir := filepath.Join(root, bucket)
		dest := SafeDestination(destDir, name)
		if filepath.Base(dest) != name {
			metrics.CollisionRenames.Inc()
		}

		action := MoveAction{Source: path, Dest: dest, Bucket: bucket, Status: status}
		if err := exec.Execute(action); err != nil {
			tracing.RecordError(span, err)
			o.closeLog(log)
			return result, err
		}

		metrics.FilesProcessed.WithLabelValues("organize", string(status)).Inc()
		result.Actions = append(result.Actions, action)
		result.Processed++
		if opts.OnAction != nil {
			opts.OnAction(action)
		}
	}

	if log != nil {
		if err := log.Close(); err != nil {
			tracing.RecordError(span, err)
			return result, err
		}
	}

	metrics.RecordRun("organize", opts.DryRun)
	metrics.RecordRunDuration("organize", start)
	tracing.AddSpanAttributes(span, attribute.Int("run.processed", result.Processed))
	tracing.SetSpanOK(span)

	logging.Info("organize run finished", "processed", result.Processed, "log", result.LogPath)
	return result, nil
}

// closeLog closes the log on the abort path, where the original error
// takes precedence over any close failure.
func (o *Organizer) closeLog(log *MoveLog) {
	if log == nil {
		return
	}
	if err := log.Close(); err != nil {
		logging.Warn("failed to close move log", "log", log.Path(), "error", err)
	}
}

// listCandidates enumerates files eligible for organizing. Directories
// are never candidates, and anything named with the log prefix is
// skipped so the tool ignores its own logs, including earlier runs'.
func listCandidates(root string, recurse bool) ([]string, error) {
	var files []string

	if !recurse {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, &OpError{Op: "read dir", Source: root, Err: err}
		}
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), LogPrefix) {
				continue
			}
			path := filepath.Join(root, entry.Name())
			if isDir(path) {
				continue
			}
			files = append(files, path)
		}
		return files, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), LogPrefix) {
			return nil
		}
		if isDir(path) {
			// Symlink resolving to a directory
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, &OpError{Op: "walk dir", Source: root, Err: err}
	}
	return files, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
