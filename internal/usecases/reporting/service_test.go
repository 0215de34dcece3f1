package reporting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-reports-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-reports-api/internal/config"
	"github.com/vfg2006/seller-reports-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService() *Service {
	cfg := &config.Config{}
	cfg.Reports = config.Reports{DefaultPreset: "yesterday", Variance: 0.15}
	return NewService(cfg, fixedClock())
}

func seedPtr(seed int64) *int64 {
	return &seed
}

func TestService_BusinessReport(t *testing.T) {
	svc := newTestService()
	view := domain.NewViewState("yesterday", "amazon", "graph")

	report, err := svc.BusinessReport(context.Background(), domain.ReportRequest{View: view, Seed: seedPtr(42)})
	require.NoError(t, err)

	assert.Len(t, report.ID, 12)
	assert.Equal(t, domain.PresetYesterday, report.Preset)
	assert.Equal(t, "Yesterday - 3/14/2026", report.PresetLabel)
	assert.InDelta(t, 1, report.Days, 1e-9)
	assert.Equal(t, domain.ChannelAmazon, report.FulfillmentChannel)
	assert.Equal(t, domain.ViewModeGraph, report.ViewMode)
	assert.Equal(t, int64(42), report.Seed)
	assert.Equal(t, fixedNow, report.GeneratedAt)

	require.Len(t, report.Rows, 7)
	assert.Equal(t, report.Current, *report.Rows[0].Metrics)
	require.Len(t, report.Table.Rows, 7)
	assert.Equal(t, "Yesterday", report.Table.Rows[0].Label)
	assert.True(t, strings.HasPrefix(report.Insight, "Your store is showing strong performance"))
}

func TestService_BusinessReport_IsReproducible(t *testing.T) {
	svc := newTestService()
	req := domain.ReportRequest{View: domain.NewViewState("mtd", "", ""), Seed: seedPtr(2026)}

	first, err := svc.BusinessReport(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.BusinessReport(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Current, second.Current)
	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, first.Table, second.Table)

	other, err := svc.BusinessReport(context.Background(), domain.ReportRequest{View: req.View, Seed: seedPtr(2027)})
	require.NoError(t, err)
	assert.NotEqual(t, first.Current, other.Current)
	assert.Equal(t, labels(first.Rows), labels(other.Rows))
}

func TestService_BusinessReport_AsOf(t *testing.T) {
	svc := newTestService()
	asOf := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	report, err := svc.BusinessReport(context.Background(), domain.ReportRequest{
		View: domain.NewViewState("ytd", "", ""),
		Seed: seedPtr(1),
		AsOf: &asOf,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), report.GeneratedAt)
	assert.InDelta(t, 365, report.Days, 1e-9)
	assert.Equal(t, "Year to date - 12/31/2025", report.PresetLabel)
	assert.Len(t, report.Rows, 3)
}

func TestService_BusinessReport_CustomAndUnknownPresets(t *testing.T) {
	svc := newTestService()

	custom, err := svc.BusinessReport(context.Background(), domain.ReportRequest{View: domain.NewViewState("custom", "", "")})
	require.NoError(t, err)
	require.Len(t, custom.Rows, 1)
	assert.Equal(t, "Current period", custom.Rows[0].Label)

	invalid := domain.ViewState{AppliedPreset: domain.DatePreset("fortnight")}
	report, err := svc.BusinessReport(context.Background(), domain.ReportRequest{View: invalid})
	require.NoError(t, err)
	assert.Equal(t, domain.PresetToday, report.Preset)
	assert.Equal(t, "Today so far", report.Rows[0].Label)
}

func TestService_ResolveViewState(t *testing.T) {
	svc := newTestService()

	assert.Equal(t, domain.PresetYesterday, svc.ResolveViewState("", "", "").AppliedPreset)
	assert.Equal(t, domain.PresetYTD, svc.ResolveViewState("YTD", "", "").AppliedPreset)
	assert.Equal(t, domain.PresetToday, svc.ResolveViewState("bogus", "", "").AppliedPreset)

	view := svc.ResolveViewState("mtd", "seller", "graph")
	assert.Equal(t, domain.ChannelSeller, view.FulfillmentChannel)
	assert.Equal(t, domain.ViewModeGraph, view.ViewMode)
}

func TestService_GlobalSnapshot(t *testing.T) {
	svc := newTestService()

	snapshot, err := svc.GlobalSnapshot(context.Background(), seedPtr(9))
	require.NoError(t, err)

	require.Len(t, snapshot.Cards, 6)
	names := make([]string, 0, len(snapshot.Cards))
	for _, card := range snapshot.Cards {
		names = append(names, card.Label)
	}
	assert.Equal(t, []string{"Sales", "Open Orders", "Buyer Messages", "Featured Offer %", "Seller Feedback", "Payments"}, names)

	assert.True(t, strings.HasPrefix(snapshot.Cards[0].Value, "$"))
	assert.Equal(t, "Today so far", snapshot.Cards[0].Subtitle)
	assert.True(t, snapshot.Cards[1].Active)
	assert.Len(t, snapshot.Cards[1].Rows, 3)
	assert.True(t, strings.HasSuffix(snapshot.Cards[3].Value, "%"))
	assert.True(t, strings.HasSuffix(snapshot.Cards[3].Subtitle, "ago"))
	assert.True(t, strings.HasPrefix(snapshot.Cards[4].Subtitle, "Past Year ("))
	assert.Equal(t, "Total Balance", snapshot.Cards[5].Subtitle)

	again, err := svc.GlobalSnapshot(context.Background(), seedPtr(9))
	require.NoError(t, err)
	assert.Equal(t, snapshot.Cards, again.Cards)
}

func TestService_Presets(t *testing.T) {
	presets := newTestService().Presets()

	assert.Len(t, presets, 7)
	assert.Equal(t, "Month to date - 3/15/2026", presets[4].Label)
}

func TestService_Snapshots(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without repository", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.SaveSnapshot(ctx, &domain.BusinessReport{})
		assert.ErrorIs(t, err, ErrSnapshotsDisabled)
		_, err = svc.ListSnapshots(ctx, domain.PresetToday, 10)
		assert.ErrorIs(t, err, ErrSnapshotsDisabled)
		_, err = svc.PruneSnapshots(ctx, 30)
		assert.ErrorIs(t, err, ErrSnapshotsDisabled)
	})

	t.Run("save copies report identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockReportSnapshotRepository(ctrl)
		svc := newTestService().WithSnapshots(repo)

		report := &domain.BusinessReport{ID: "abc123def456", Preset: domain.PresetMTD, Seed: 5, GeneratedAt: fixedNow}
		repo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snapshot *domain.ReportSnapshot) error {
				assert.Equal(t, "abc123def456", snapshot.ID)
				assert.Equal(t, domain.PresetMTD, snapshot.Preset)
				assert.Equal(t, int64(5), snapshot.Seed)
				assert.Same(t, report, snapshot.Report)
				return nil
			})

		snapshot, err := svc.SaveSnapshot(ctx, report)
		require.NoError(t, err)
		assert.Equal(t, fixedNow, snapshot.GeneratedAt)
	})

	t.Run("list validates preset and wraps repository errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockReportSnapshotRepository(ctrl)
		svc := newTestService().WithSnapshots(repo)

		_, err := svc.ListSnapshots(ctx, domain.DatePreset("fortnight"), 10)
		assert.ErrorIs(t, err, ErrUnknownPreset)

		repo.EXPECT().ListByPreset(gomock.Any(), domain.PresetYTD, 10).Return(nil, errors.New("connection refused"))
		_, err = svc.ListSnapshots(ctx, domain.PresetYTD, 10)

		var reportErr *ReportError
		require.ErrorAs(t, err, &reportErr)
		assert.Equal(t, "SRV_002", reportErr.Code)

		repo.EXPECT().ListByPreset(gomock.Any(), domain.DatePreset(""), 5).Return([]*domain.ReportSnapshot{{ID: "a"}}, nil)
		snapshots, err := svc.ListSnapshots(ctx, "", 5)
		require.NoError(t, err)
		assert.Len(t, snapshots, 1)
	})

	t.Run("prune", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockReportSnapshotRepository(ctrl)
		svc := newTestService().WithSnapshots(repo)

		repo.EXPECT().DeleteOlderThan(gomock.Any(), 90).Return(int64(3), nil)

		deleted, err := svc.PruneSnapshots(ctx, 90)
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})
}

func TestService_UsesConfiguredTimezone(t *testing.T) {
	cfg := &config.Config{}
	cfg.Reports = config.Reports{Variance: 0.15}
	cfg.App.Location = time.FixedZone("UTC+14", 14*60*60)

	clock := ClockFunc(func() time.Time { return time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC) })
	svc := NewService(cfg, clock)

	report, err := svc.BusinessReport(context.Background(), domain.ReportRequest{
		View: domain.NewViewState("mtd", "", ""),
		Seed: seedPtr(1),
	})
	require.NoError(t, err)

	assert.Equal(t, "Month to date - 3/16/2026", report.PresetLabel)
	assert.InDelta(t, 16, report.Days, 1e-9)
	assert.Equal(t, cfg.App.Location, report.GeneratedAt.Location())

	presets := svc.Presets()
	require.NotEmpty(t, presets)
	assert.Equal(t, "Today - 3/16/2026", presets[0].Label)
}
