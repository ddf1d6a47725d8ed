package domain

import (
	"fmt"
	"time"
)

// Report is the serialized form of a TimeAccount. The zero Report stands for
// "no data" and encodes as an empty mapping.
type Report struct {
	Start   string `json:"start,omitempty" yaml:"start,omitempty" toml:"start,omitempty"`
	End     string `json:"end,omitempty" yaml:"end,omitempty" toml:"end,omitempty"`
	Total   string `json:"total,omitempty" yaml:"total,omitempty" toml:"total,omitempty"`
	Working string `json:"working,omitempty" yaml:"working,omitempty" toml:"working,omitempty"`
	Resting string `json:"resting,omitempty" yaml:"resting,omitempty" toml:"resting,omitempty"`
}

func (r Report) IsEmpty() bool {
	return r == Report{}
}

func (a TimeAccount) Report() Report {
	if a.IsEmpty() {
		return Report{}
	}

	return Report{
		Start:   FormatClock(a.Start),
		End:     FormatClock(a.End),
		Total:   FormatDuration(a.Total),
		Working: FormatDuration(a.Working),
		Resting: FormatDuration(a.Resting),
	}
}

// FormatDuration renders d as zero-padded HH:MM. Seconds are truncated.
func FormatDuration(d time.Duration) string {
	sign := ""
	seconds := int64(d / time.Second)
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}

// FormatClock renders the hour and minute of day of t.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// DayLayout keys saved reports by the calendar day the account started on.
const DayLayout = "2006-01-02"

// DailyReport is a closed report kept in the local history.
type DailyReport struct {
	Date    string
	Report  Report
	Events  int
	SavedAt time.Time
}
