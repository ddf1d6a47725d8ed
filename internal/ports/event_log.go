package ports

import (
	"context"

	"github.com/bnema/officehours/internal/domain"
)

// EventLog is the append-only source of lock/unlock and start/stop events.
type EventLog interface {
	ReadAll(ctx context.Context) ([]domain.Timepoint, error)
	Append(ctx context.Context, timepoint domain.Timepoint) error
}
