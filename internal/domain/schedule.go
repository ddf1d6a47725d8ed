package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultWeekdayTarget = 8*time.Hour + 42*time.Minute
	DefaultFridayTarget  = 6*time.Hour + 30*time.Minute
)

// Schedule holds the expected working time per weekday.
type Schedule map[time.Weekday]time.Duration

func DefaultSchedule() Schedule {
	return Schedule{
		time.Monday:    DefaultWeekdayTarget,
		time.Tuesday:   DefaultWeekdayTarget,
		time.Wednesday: DefaultWeekdayTarget,
		time.Thursday:  DefaultWeekdayTarget,
		time.Friday:    DefaultFridayTarget,
		time.Saturday:  0,
		time.Sunday:    0,
	}
}

func (s Schedule) Target(day time.Weekday) time.Duration {
	return s[day]
}

func (s Schedule) Validate() error {
	for day, target := range s {
		if target < 0 {
			return fmt.Errorf("negative target %s for %s", target, day)
		}
		if target >= MaxAccountSpan {
			return fmt.Errorf("target %s for %s does not fit in a day", target, day)
		}
	}

	return nil
}

// ParseWeekday accepts full English weekday names in any case.
func ParseWeekday(raw string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.ToLower(day.String()) == name {
			return day, nil
		}
	}

	return 0, fmt.Errorf("unknown weekday %q", raw)
}
