package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/officehours/internal/domain"
	"github.com/bnema/officehours/internal/ports"
)

const (
	logDirMode  = 0o700
	logFileMode = 0o600
)

// Log is an append-only event log stored as one "<timestamp> <kind>" line
// per event.
type Log struct {
	path     string
	location *time.Location
	mu       *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.EventLog = (*Log)(nil)

func NewLog(path string, location *time.Location) (*Log, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("event log path is empty")
	}
	if location == nil {
		location = time.Local
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve event log path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Log{path: absPath, location: location, mu: lockForPath(absPath)}, nil
}

func (l *Log) Path() string {
	return l.path
}

// ReadAll returns every timepoint in file order. A missing file reads as an
// empty log.
func (l *Log) ReadAll(ctx context.Context) ([]domain.Timepoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open event log: %w", err)
	}
	defer f.Close()

	timepoints, err := domain.ParseLog(f, l.location)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}

	return timepoints, nil
}

func (l *Log) Append(ctx context.Context, timepoint domain.Timepoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !timepoint.Kind.Valid() {
		return fmt.Errorf("%w: unknown event kind %q", domain.ErrMalformedLogLine, timepoint.Kind)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), logDirMode); err != nil {
		return fmt.Errorf("create event log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode)
	if err != nil {
		return fmt.Errorf("open event log for append: %w", err)
	}

	line := timepoint.Instant.In(l.location).Format(domain.LogTimeLayout) + " " + string(timepoint.Kind) + "\n"
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("append event log line: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close event log: %w", err)
	}

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
