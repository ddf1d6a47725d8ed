package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/officehours/internal/domain"
	"github.com/bnema/officehours/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	historyPathKey    = "history.path"
	historyFileMode   = 0o600
	historyDirMode    = 0o700
	historyConfigDir  = ".officehours"
	historyConfigFile = "history.toml"
	tempFilePattern   = ".history-*.toml.tmp"
)

// Repository keeps closed daily reports in a single TOML file.
type Repository struct {
	historyPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ReportRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	historyPath := cfg.GetString(historyPathKey)
	if historyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		historyPath = filepath.Join(homeDir, historyConfigDir, historyConfigFile)
	}

	historyPath, err := normalizeHistoryPath(historyPath)
	if err != nil {
		return nil, err
	}

	return &Repository{historyPath: historyPath, mu: lockForPath(historyPath)}, nil
}

func (r *Repository) Save(ctx context.Context, report domain.DailyReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := time.Parse(domain.DayLayout, report.Date); err != nil {
		return fmt.Errorf("invalid report date %q: %w", report.Date, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(report)
	updated := false
	for i := range file.Reports {
		if file.Reports[i].Date == encoded.Date {
			file.Reports[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Reports = append(file.Reports, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByDate(ctx context.Context, date string) (domain.DailyReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.DailyReport{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.DailyReport{}, err
	}

	for _, entry := range file.Reports {
		if entry.Date == date {
			return fromSchema(entry), nil
		}
	}

	return domain.DailyReport{}, domain.ErrReportNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.DailyReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	reports := make([]domain.DailyReport, 0, len(file.Reports))
	for _, entry := range file.Reports {
		reports = append(reports, fromSchema(entry))
	}

	return reports, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.historyPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read history file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode history file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.historyPath), historyDirMode); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode history file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.historyPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return errors.Join(fmt.Errorf("write temp history file: %w", err), tempFile.Close())
	}

	if err := tempFile.Chmod(historyFileMode); err != nil {
		return errors.Join(fmt.Errorf("chmod temp history file: %w", err), tempFile.Close())
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp history file: %w", err)
	}

	if err := os.Rename(tempName, r.historyPath); err != nil {
		return fmt.Errorf("replace history file: %w", err)
	}

	cleanup = false

	return nil
}

func normalizeHistoryPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve history path: %w", err)
	}

	return filepath.Clean(absPath), nil
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

func toSchema(report domain.DailyReport) reportSchema {
	return reportSchema{
		Date:    report.Date,
		Start:   report.Report.Start,
		End:     report.Report.End,
		Total:   report.Report.Total,
		Working: report.Report.Working,
		Resting: report.Report.Resting,
		Events:  report.Events,
		SavedAt: formatTime(report.SavedAt),
	}
}

func fromSchema(entry reportSchema) domain.DailyReport {
	return domain.DailyReport{
		Date: entry.Date,
		Report: domain.Report{
			Start:   entry.Start,
			End:     entry.End,
			Total:   entry.Total,
			Working: entry.Working,
			Resting: entry.Resting,
		},
		Events:  entry.Events,
		SavedAt: parseTime(entry.SavedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
