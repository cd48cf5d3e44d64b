package organize

import (
	"os"
	"path/filepath"

	"github.com/ryanm101/organize/internal/logging"
)

// ActionStatus describes what happened to one planned action.
type ActionStatus string

const (
	StatusMoved     ActionStatus = "moved"
	StatusRestored  ActionStatus = "restored"
	StatusPreviewed ActionStatus = "previewed"
	StatusMissing   ActionStatus = "missing"
)

// MoveAction is one planned relocation, computed before any mutation.
// The same action value drives both preview and execution, so dry runs
// always report exactly what a real run would do.
type MoveAction struct {
	Source string       `json:"source"`
	Dest   string       `json:"dest"`
	Bucket string       `json:"bucket,omitempty"`
	Status ActionStatus `json:"status"`
}

// Executor applies move actions. In dry-run mode it mutates nothing and
// writes nothing. When a move log is attached, every real move appends
// exactly one record after the move succeeds.
type Executor struct {
	log    *MoveLog // nil during dry runs and undo
	dryRun bool
}

// NewExecutor creates an executor. log may be nil (dry runs, undo).
func NewExecutor(log *MoveLog, dryRun bool) *Executor {
	return &Executor{log: log, dryRun: dryRun}
}

// Execute performs a single relocation. The destination's parent is
// created if absent; the move itself uses rename semantics, so
// cross-device behavior is whatever the platform provides. An error
// leaves the file at its source.
func (e *Executor) Execute(action MoveAction) error {
	if e.dryRun {
		logging.Debug("dry-run move", "source", action.Source, "dest", action.Dest)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(action.Dest), 0o755); err != nil {
		return &OpError{Op: "create dir", Source: action.Source, Dest: action.Dest, Err: err}
	}
	if err := os.Rename(action.Source, action.Dest); err != nil {
		return &OpError{Op: "move", Source: action.Source, Dest: action.Dest, Err: err}
	}

	if e.log != nil {
		if err := e.log.Append(MoveRecord{Source: action.Source, Dest: action.Dest}); err != nil {
			return err
		}
	}

	logging.Debug("moved", "source", action.Source, "dest", action.Dest)
	return nil
}
