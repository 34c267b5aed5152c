// Package eventlog writes the date-named event and error log files.
package eventlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	apperrors "github.com/gohire/recruitment-service/internal/errors"
)

const (
	eventLogName = "eventlog.txt"
	errorLogName = "errorlog.txt"
)

// FileLog appends one timestamped entry per call to <dir>/<date>_eventlog.txt
// or <dir>/<date>_errorlog.txt. Every call opens and closes the file.
type FileLog struct {
	dir string
	now func() time.Time
	mu  sync.Mutex
}

func NewFileLog(dir string) *FileLog {
	return &FileLog{dir: dir, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (l *FileLog) WithClock(now func() time.Time) *FileLog {
	l.now = now
	return l
}

func (l *FileLog) LogEvent(message string) error {
	return l.append(eventLogName, message)
}

func (l *FileLog) LogError(err error) error {
	return l.append(errorLogName, fmt.Sprintf("%T: %v", err, err))
}

func (l *FileLog) append(logName, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	path := filepath.Join(l.dir, now.Format(time.DateOnly)+"_"+logName)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &apperrors.LoggingError{Path: path, Err: err}
	}

	line := now.Format(time.RFC3339Nano) + ": " + message + "\n"
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return &apperrors.LoggingError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &apperrors.LoggingError{Path: path, Err: err}
	}
	return nil
}
