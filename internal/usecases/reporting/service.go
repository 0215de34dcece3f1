package reporting

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/seller-reports-api/infrastructure/repository"
	"github.com/vfg2006/seller-reports-api/internal/config"
	"github.com/vfg2006/seller-reports-api/internal/domain"
	"github.com/vfg2006/seller-reports-api/pkg/apiErrors"
	"github.com/vfg2006/seller-reports-api/pkg/log"
	"github.com/vfg2006/seller-reports-api/pkg/utils"
)

const defaultVariance = 0.15

type Service struct {
	cfg                *config.Config
	clock              Clock
	snapshotRepository repository.ReportSnapshotRepository
}

var _ Reporter = (*Service)(nil)

func NewService(cfg *config.Config, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock{}
	}

	return &Service{
		cfg:   cfg,
		clock: clock,
	}
}

// WithSnapshots enables persistence of generated reports.
func (s *Service) WithSnapshots(repo repository.ReportSnapshotRepository) *Service {
	s.snapshotRepository = repo
	return s
}

func (s *Service) ResolveViewState(preset, channel, view string) domain.ViewState {
	if strings.TrimSpace(preset) == "" && s.cfg != nil {
		preset = s.cfg.Reports.DefaultPreset
	}
	return domain.NewViewState(preset, channel, view)
}

func (s *Service) variance() float64 {
	if s.cfg == nil {
		return defaultVariance
	}
	return s.cfg.Reports.Variance
}

// now is the report instant in the configured timezone, so calendar days
// match the ones used to parse as_of.
func (s *Service) now(asOf *time.Time) time.Time {
	if asOf != nil {
		return utils.EndOfDay(*asOf)
	}
	return s.inLocation(s.clock.Now())
}

func (s *Service) inLocation(t time.Time) time.Time {
	if s.cfg == nil || s.cfg.App.Location == nil {
		return t
	}
	return t.In(s.cfg.App.Location)
}

func seedOrNew(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return NewSeed()
}

// BusinessReport synthesizes the current period for the applied preset and
// compares it against the preset's baselines. The same seed and as-of date
// always produce the same report.
func (s *Service) BusinessReport(ctx context.Context, req domain.ReportRequest) (*domain.BusinessReport, error) {
	logger := log.ForContext(ctx)

	now := s.now(req.AsOf)
	seed := seedOrNew(req.Seed)
	preset := req.View.AppliedPreset
	if !preset.IsValid() {
		preset = domain.DefaultPreset
	}

	rnd := NewSeededSource(seed)
	days := DaysForPreset(preset, now)

	current, err := NewSynthesizer(rnd).Generate(days, s.variance())
	if err != nil {
		return nil, errors.Wrapf(err, "generating current period for %s", preset)
	}

	rows, err := NewBuilder(rnd).Build(preset, current, now)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrInternalServer, "generating report id")
	}

	logger.WithFields(log.Fields{
		"preset": preset,
		"seed":   seed,
		"days":   days,
	}).Debug("business report generated")

	return &domain.BusinessReport{
		ID:                 id,
		Preset:             preset,
		PresetLabel:        PresetLabel(preset, now),
		Days:               days,
		FulfillmentChannel: req.View.FulfillmentChannel,
		ViewMode:           req.View.ViewMode,
		Seed:               seed,
		GeneratedAt:        now,
		Current:            current,
		Rows:               rows,
		Table:              BuildTable(rows),
		Insight:            Insight(current),
	}, nil
}

func (s *Service) GlobalSnapshot(ctx context.Context, seed *int64) (*domain.GlobalSnapshot, error) {
	now := s.now(nil)
	value := seedOrNew(seed)

	cards, err := buildGlobalSnapshot(NewSeededSource(value), s.variance(), now)
	if err != nil {
		return nil, errors.Wrap(err, "building global snapshot")
	}

	log.ForContext(ctx).WithField("seed", value).Debug("global snapshot generated")

	return &domain.GlobalSnapshot{
		Seed:        value,
		GeneratedAt: now,
		Cards:       cards,
	}, nil
}

func (s *Service) Presets() []domain.PresetOption {
	return PresetOptions(s.now(nil))
}

func (s *Service) SaveSnapshot(ctx context.Context, report *domain.BusinessReport) (*domain.ReportSnapshot, error) {
	if s.snapshotRepository == nil {
		return nil, NewReportError(ErrSnapshotsDisabled, apiErrors.ErrSnapshotsDisabled, "")
	}
	if report == nil {
		return nil, NewReportError(errors.New("nil report"), apiErrors.ErrInvalidRequest, "")
	}

	snapshot := &domain.ReportSnapshot{
		ID:          report.ID,
		Preset:      report.Preset,
		Seed:        report.Seed,
		GeneratedAt: report.GeneratedAt,
		Report:      report,
	}

	if err := s.snapshotRepository.Save(ctx, snapshot); err != nil {
		return nil, NewReportError(err, apiErrors.ErrDatabaseOperation, "saving report snapshot")
	}

	return snapshot, nil
}

// ListSnapshots returns the newest snapshots first. An empty preset lists all presets.
func (s *Service) ListSnapshots(ctx context.Context, preset domain.DatePreset, limit int) ([]*domain.ReportSnapshot, error) {
	if s.snapshotRepository == nil {
		return nil, NewReportError(ErrSnapshotsDisabled, apiErrors.ErrSnapshotsDisabled, "")
	}
	if preset != "" && !preset.IsValid() {
		return nil, NewReportError(ErrUnknownPreset, apiErrors.ErrInvalidFormat, string(preset))
	}

	snapshots, err := s.snapshotRepository.ListByPreset(ctx, preset, limit)
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrDatabaseOperation, "listing report snapshots")
	}

	return snapshots, nil
}

func (s *Service) PruneSnapshots(ctx context.Context, retentionDays int) (int64, error) {
	if s.snapshotRepository == nil {
		return 0, NewReportError(ErrSnapshotsDisabled, apiErrors.ErrSnapshotsDisabled, "")
	}

	deleted, err := s.snapshotRepository.DeleteOlderThan(ctx, retentionDays)
	if err != nil {
		return 0, NewReportError(err, apiErrors.ErrDatabaseOperation, "pruning report snapshots")
	}

	return deleted, nil
}
