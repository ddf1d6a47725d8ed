package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/bnema/officehours/internal/domain"
	"github.com/bnema/officehours/internal/ports"
	"github.com/rs/zerolog"
)

type Config struct {
	Schedule domain.Schedule
	// Location is used for timepoints recorded through Record.
	Location *time.Location
}

type Service struct {
	events   ports.EventLog
	history  ports.ReportRepository
	clock    ports.Clock
	schedule domain.Schedule
	location *time.Location
	logger   zerolog.Logger
}

func NewService(events ports.EventLog, history ports.ReportRepository, clock ports.Clock, cfg Config, logger zerolog.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if cfg.Schedule == nil {
		cfg.Schedule = domain.DefaultSchedule()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	return &Service{
		events:   events,
		history:  history,
		clock:    clock,
		schedule: cfg.Schedule,
		location: cfg.Location,
		logger:   logger.With().Str("component", "time-account").Logger(),
	}
}

// Account reads the whole event log and reconstructs its time account.
func (s *Service) Account(ctx context.Context) (domain.TimeAccount, error) {
	timepoints, err := s.events.ReadAll(ctx)
	if err != nil {
		return domain.TimeAccount{}, fmt.Errorf("read event log: %w", err)
	}

	return s.reconstruct(timepoints)
}

func (s *Service) Report(ctx context.Context) (domain.Report, error) {
	account, err := s.Account(ctx)
	if err != nil {
		return domain.Report{}, err
	}

	return account.Report(), nil
}

func (s *Service) Status(ctx context.Context) (Status, error) {
	account, err := s.Account(ctx)
	if err != nil {
		return Status{}, err
	}

	status := Status{
		Account: account,
		Report:  account.Report(),
		Open:    account.Open,
	}
	if !account.IsEmpty() {
		progress := progressFor(account, s.schedule)
		status.Progress = &progress
	}

	return status, nil
}

// Record appends an event stamped with the current minute.
func (s *Service) Record(ctx context.Context, kind domain.EventKind) (domain.Timepoint, error) {
	if !kind.Valid() {
		return domain.Timepoint{}, fmt.Errorf("%w: unknown event kind %q", domain.ErrMalformedLogLine, kind)
	}

	tp := domain.Timepoint{
		Instant: s.clock.Now().In(s.location).Truncate(time.Minute),
		Kind:    kind,
	}

	if err := s.events.Append(ctx, tp); err != nil {
		return domain.Timepoint{}, fmt.Errorf("append event: %w", err)
	}

	s.logger.Debug().Str("event", tp.String()).Msg("recorded event")

	return tp, nil
}

// SaveReport stores the current account in the history. Only closed days
// are saved: an open session would freeze a clock-dependent end.
func (s *Service) SaveReport(ctx context.Context) (domain.DailyReport, error) {
	account, err := s.Account(ctx)
	if err != nil {
		return domain.DailyReport{}, err
	}
	if account.IsEmpty() {
		return domain.DailyReport{}, domain.ErrEmptyLog
	}
	if account.Open {
		return domain.DailyReport{}, fmt.Errorf("save report: %w", domain.ErrSessionOpen)
	}

	daily := domain.DailyReport{
		Date:    account.Start.Format(domain.DayLayout),
		Report:  account.Report(),
		Events:  account.Events,
		SavedAt: s.clock.Now(),
	}

	if err := s.history.Save(ctx, daily); err != nil {
		return domain.DailyReport{}, fmt.Errorf("save daily report: %w", err)
	}

	s.logger.Info().Str("date", daily.Date).Msg("saved daily report")

	return daily, nil
}

func (s *Service) History(ctx context.Context) ([]domain.DailyReport, error) {
	reports, err := s.history.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list daily reports: %w", err)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Date < reports[j].Date
	})

	return reports, nil
}

func (s *Service) HistoryEntry(ctx context.Context, date string) (domain.DailyReport, error) {
	if _, err := time.Parse(domain.DayLayout, date); err != nil {
		return domain.DailyReport{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}

	report, err := s.history.GetByDate(ctx, date)
	if err != nil {
		return domain.DailyReport{}, fmt.Errorf("get daily report %s: %w", date, err)
	}

	return report, nil
}

func (s *Service) reconstruct(timepoints []domain.Timepoint) (domain.TimeAccount, error) {
	account, err := domain.Reconstruct(timepoints, s.clock.Now)
	if err != nil {
		if errors.Is(err, domain.ErrTimeAccountOverflow) {
			s.logger.Warn().Err(err).Int("events", len(timepoints)).Msg("event log spans more than a day")
		}
		return domain.TimeAccount{}, err
	}

	s.logger.Debug().
		Int("events", account.Events).
		Bool("open", account.Open).
		Dur("working", account.Working).
		Dur("resting", account.Resting).
		Msg("reconstructed time account")

	return account, nil
}

// ReportFromLines runs the engine over raw log lines, for callers that hold
// the log in memory instead of a file.
func ReportFromLines(lines []string, loc *time.Location, clock ports.Clock) (domain.Report, error) {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	timepoints, err := domain.ParseLines(lines, loc)
	if err != nil {
		return domain.Report{}, err
	}

	account, err := domain.Reconstruct(timepoints, clock.Now)
	if err != nil {
		return domain.Report{}, err
	}

	return account.Report(), nil
}
