package organize

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// LogPrefix is the reserved name prefix for move logs. Anything
	// carrying it is never treated as an organize candidate.
	LogPrefix = "_organize_log_"

	logTimeFormat = "20060102_150405"
	recordSep     = "||"
)

// MoveRecord is one completed relocation: the file's original absolute
// path and the absolute path it was moved to.
type MoveRecord struct {
	Source string
	Dest   string
}

// MoveLog is the append-only record of completed moves for one run.
// The run that created it is the sole writer; undo only reads it.
type MoveLog struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

// CreateLog creates a new move log directly inside root, named with the
// given timestamp at second precision.
func CreateLog(root string, now time.Time) (*MoveLog, error) {
	path := filepath.Join(root, LogPrefix+now.Format(logTimeFormat)+".txt")
	f, err := os.Create(path) // #nosec G304
	if err != nil {
		return nil, &OpError{Op: "create log", Dest: path, Err: err}
	}
	return &MoveLog{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

// Path returns the log file's location.
func (l *MoveLog) Path() string {
	return l.path
}

// Append writes one record. Callers must only append records for moves
// that have already completed.
func (l *MoveLog) Append(rec MoveRecord) error {
	if _, err := fmt.Fprintf(l.w, "%s%s%s\n", rec.Source, recordSep, rec.Dest); err != nil {
		return &OpError{Op: "append log", Dest: l.path, Err: err}
	}
	return nil
}

// Close flushes buffered records to durable storage and closes the file.
func (l *MoveLog) Close() error {
	if err := l.w.Flush(); err != nil {
		_ = l.f.Close()
		return &OpError{Op: "flush log", Dest: l.path, Err: err}
	}
	if err := l.f.Sync(); err != nil {
		_ = l.f.Close()
		return &OpError{Op: "sync log", Dest: l.path, Err: err}
	}
	if err := l.f.Close(); err != nil {
		return &OpError{Op: "close log", Dest: l.path, Err: err}
	}
	return nil
}

// ParseLog reads a move log fully into ordered records. Any line that
// does not split into exactly two path fields fails the whole parse; no
// partial recovery is attempted.
func ParseLog(path string) ([]MoveRecord, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, &OpError{Op: "open log", Source: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	var records []MoveRecord
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		// The tool writes LF only; tolerate CRLF in logs that passed
		// through a Windows editor or transfer rather than folding the
		// \r into the destination path.
		line := strings.TrimRight(scanner.Text(), "\r")
		parts := strings.Split(line, recordSep)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("%w: %s:%d", ErrMalformedLog, path, lineNo)
		}
		records = append(records, MoveRecord{Source: parts[0], Dest: parts[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, &OpError{Op: "read log", Source: path, Err: err}
	}

	return records, nil
}
