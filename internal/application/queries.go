package application

import (
	"time"

	"github.com/bnema/officehours/internal/domain"
)

// Progress compares a day's working time with its scheduled target.
// Percent is working/target capped at 1, and zero when there is no target.
type Progress struct {
	Target       time.Duration
	Remaining    time.Duration
	Overtime     time.Duration
	ExpectedExit time.Time
	Percent      float64
}

type Status struct {
	Account  domain.TimeAccount
	Report   domain.Report
	Open     bool
	Progress *Progress
}

func (s Status) IsEmpty() bool {
	return s.Account.IsEmpty()
}

func progressFor(account domain.TimeAccount, schedule domain.Schedule) Progress {
	target := schedule.Target(account.Start.Weekday())

	progress := Progress{Target: target}
	if account.Working < target {
		progress.Remaining = target - account.Working
	} else {
		progress.Overtime = account.Working - target
	}
	progress.ExpectedExit = account.End.Add(progress.Remaining)

	if target > 0 {
		progress.Percent = float64(account.Working) / float64(target)
		if progress.Percent > 1 {
			progress.Percent = 1
		}
	}

	return progress
}
