package organize

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	ErrNotDirectory = errors.New("not a directory")
	ErrLogNotFound  = errors.New("log file not found")
	ErrMalformedLog = errors.New("malformed log line")
)

// OpError provides path context for failed filesystem operations.
type OpError struct {
	Op     string // Operation that failed (e.g., "move", "create dir")
	Source string // Source path if applicable
	Dest   string // Destination path if applicable
	Err    error  // Underlying error
}

func (e *OpError) Error() string {
	switch {
	case e.Source != "" && e.Dest != "":
		return fmt.Sprintf("%s %s -> %s: %v", e.Op, e.Source, e.Dest, e.Err)
	case e.Dest != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Dest, e.Err)
	case e.Source != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *OpError) Unwrap() error {
	return e.Err
}
