package domain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// ParseLog reads one timepoint per line. Blank lines are skipped; any other
// line that does not parse aborts the read.
func ParseLog(r io.Reader, loc *time.Location) ([]Timepoint, error) {
	var timepoints []Timepoint

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		tp, ok, err := parseLogLine(lineNumber, scanner.Text(), loc)
		if err != nil {
			return nil, err
		}
		if ok {
			timepoints = append(timepoints, tp)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan event log: %w", err)
	}

	return timepoints, nil
}

// ParseLines is ParseLog over lines that were already split.
func ParseLines(lines []string, loc *time.Location) ([]Timepoint, error) {
	timepoints := make([]Timepoint, 0, len(lines))
	for i, line := range lines {
		tp, ok, err := parseLogLine(i+1, line, loc)
		if err != nil {
			return nil, err
		}
		if ok {
			timepoints = append(timepoints, tp)
		}
	}

	return timepoints, nil
}

func parseLogLine(lineNumber int, line string, loc *time.Location) (Timepoint, bool, error) {
	if strings.TrimSpace(line) == "" {
		return Timepoint{}, false, nil
	}

	tp, err := ParseTimepoint(line, loc)
	if err != nil {
		return Timepoint{}, false, fmt.Errorf("line %d: %w", lineNumber, err)
	}

	return tp, true, nil
}
