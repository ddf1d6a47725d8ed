package ports

import (
	"context"

	"github.com/bnema/officehours/internal/domain"
)

type ReportRepository interface {
	GetByDate(ctx context.Context, date string) (domain.DailyReport, error)
	List(ctx context.Context) ([]domain.DailyReport, error)
	Save(ctx context.Context, report domain.DailyReport) error
}
