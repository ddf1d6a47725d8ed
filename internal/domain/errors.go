package domain

import "errors"

var (
	ErrMalformedLogLine    = errors.New("malformed log line")
	ErrTimeAccountOverflow = errors.New("time account exceeds a day")
	ErrTimepointOutOfOrder = errors.New("timepoint out of order")
	ErrEmptyLog            = errors.New("event log is empty")
	ErrSessionOpen         = errors.New("session is still open")
	ErrReportNotFound      = errors.New("report not found")
)
