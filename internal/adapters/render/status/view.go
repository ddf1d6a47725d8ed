package status

import (
	"fmt"
	"time"

	"github.com/bnema/officehours/internal/application"
	"github.com/bnema/officehours/internal/domain"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// Now is shown as the "as of" time. Zero hides the line.
	Now time.Time
	// LogPath is shown under the title when set.
	LogPath string
}

func renderView(status application.Status, opts RenderOptions, s styles, bar progress.Model) string {
	lines := []string{s.title.Render("Office Hours")}
	if opts.LogPath != "" {
		lines = append(lines, s.header.Render("log: "+opts.LogPath))
	}

	if status.IsEmpty() {
		lines = append(lines, s.empty.Render("No events logged."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		s.section.Render(renderDay(status, opts, s)),
		s.section.Render(renderAccount(status.Report, s)),
	)
	if status.Progress != nil {
		lines = append(lines, s.section.Render(renderProgress(status, *status.Progress, s, bar)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderDay(status application.Status, opts RenderOptions, s styles) string {
	state := s.closed.Render("closed")
	endLabel := "ended"
	if status.Open {
		state = s.open.Render("session open")
		endLabel = "now"
	}

	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.value.Render(status.Account.Start.Format("Mon 02 Jan 2006")),
			" ",
			state,
		),
		field(s, "started", status.Report.Start),
		field(s, endLabel, status.Report.End),
		s.meta.Render(fmt.Sprintf("%d events", status.Account.Events)),
	}
	if !opts.Now.IsZero() {
		parts = append(parts, s.meta.Render("as of "+opts.Now.Format("15:04:05")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderAccount(report domain.Report, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		field(s, "working", report.Working),
		field(s, "resting", report.Resting),
		field(s, "total", report.Total),
	)
}

func renderProgress(status application.Status, p application.Progress, s styles, bar progress.Model) string {
	if p.Target == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			field(s, "target", "none (day off)"),
			lipgloss.JoinHorizontal(lipgloss.Top,
				s.label.Render("overtime"),
				s.overtime.Render(domain.FormatDuration(p.Overtime)),
			),
		)
	}

	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.label.Render("target"),
			s.value.Render(domain.FormatDuration(p.Target)),
			" ",
			bar.ViewAs(p.Percent),
			" ",
			s.meta.Render(fmt.Sprintf("%3.0f%%", p.Percent*100)),
		),
	}

	if p.Overtime > 0 {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
			s.label.Render("overtime"),
			s.overtime.Render(domain.FormatDuration(p.Overtime)),
		))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	parts = append(parts, field(s, "remaining", domain.FormatDuration(p.Remaining)))
	if status.Open {
		parts = append(parts, field(s, "exit at", domain.FormatClock(p.ExpectedExit)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func field(s styles, label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label), s.value.Render(value))
}
