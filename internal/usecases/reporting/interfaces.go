package reporting

import (
	"context"

	"github.com/vfg2006/seller-reports-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/reporter_mock.go -package=mocks

// Reporter is the reporting use case as seen by handlers and schedulers.
type Reporter interface {
	// ResolveViewState turns raw query values into a view state, applying the configured default preset.
	ResolveViewState(preset, channel, view string) domain.ViewState

	BusinessReport(ctx context.Context, req domain.ReportRequest) (*domain.BusinessReport, error)
	GlobalSnapshot(ctx context.Context, seed *int64) (*domain.GlobalSnapshot, error)
	Presets() []domain.PresetOption

	SaveSnapshot(ctx context.Context, report *domain.BusinessReport) (*domain.ReportSnapshot, error)
	ListSnapshots(ctx context.Context, preset domain.DatePreset, limit int) ([]*domain.ReportSnapshot, error)
	PruneSnapshots(ctx context.Context, retentionDays int) (int64, error)
}
