// Package scheduler holds the background jobs of the API.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-reports-api/internal/config"
	"github.com/vfg2006/seller-reports-api/internal/domain"
	"github.com/vfg2006/seller-reports-api/internal/usecases/reporting"
)

var ErrSyncInProgress = errors.New("report snapshot sync already running")

type ReportSnapshotSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	RetentionDays int
	Presets       []domain.DatePreset
}

// SyncResult summarizes one snapshot run.
type SyncResult struct {
	Saved   int   `json:"saved"`
	Failed  int   `json:"failed"`
	Pruned  int64 `json:"pruned"`
	Elapsed int64 `json:"elapsed_ms"`
}

// ReportSnapshotSyncService periodically stores one business report per
// configured preset and removes snapshots past the retention window.
type ReportSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.Reporter
	config              ReportSnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncResult      *SyncResult
}

func NewReportSnapshotSyncService(reporter reporting.Reporter, cfg *config.Config) *ReportSnapshotSyncService {
	syncConfig := ReportSnapshotSyncConfig{
		CronSchedule:  cfg.SnapshotSync.CronSchedule,
		SyncEnabled:   cfg.SnapshotSync.Enabled,
		RetentionDays: cfg.SnapshotSync.RetentionDays,
		Presets:       parsePresets(cfg.SnapshotSync.Presets),
	}

	location := cfg.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
		"presets":        syncConfig.Presets,
	}).Info("report snapshot sync configured")

	return &ReportSnapshotSyncService{
		scheduler: gocron.NewScheduler(location),
		reporter:  reporter,
		config:    syncConfig,
	}
}

func parsePresets(values []string) []domain.DatePreset {
	presets := make([]domain.DatePreset, 0, len(values))
	for _, value := range values {
		preset, ok := domain.ParseDatePreset(value)
		if !ok {
			logrus.WithField("preset", value).Warn("ignoring unknown snapshot preset")
			continue
		}
		presets = append(presets, preset)
	}
	return presets
}

func (s *ReportSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("report snapshot sync disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.SyncSnapshots(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("report snapshot sync failed")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling report snapshot sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping report snapshot sync")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncSnapshots generates and stores a report for every configured preset,
// then prunes old snapshots. A failing preset does not stop the others.
func (s *ReportSnapshotSyncService) SyncSnapshots(ctx context.Context) (*SyncResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return nil, ErrSyncInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	result := &SyncResult{}
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		result.Elapsed = s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).Milliseconds()
		s.lastSyncResult = result
		s.syncMutex.Unlock()
	}()

	for _, preset := range s.config.Presets {
		logger := logrus.WithField("preset", preset)

		report, err := s.reporter.BusinessReport(ctx, domain.ReportRequest{
			View: domain.ViewState{
				SelectedPreset:     preset,
				AppliedPreset:      preset,
				FulfillmentChannel: domain.ChannelBoth,
				ViewMode:           domain.ViewModeTable,
			},
		})
		if err != nil {
			logger.WithError(err).Error("generating report snapshot")
			result.Failed++
			continue
		}

		if _, err := s.reporter.SaveSnapshot(ctx, report); err != nil {
			logger.WithError(err).Error("saving report snapshot")
			result.Failed++
			continue
		}

		result.Saved++
	}

	if s.config.RetentionDays > 0 {
		pruned, err := s.reporter.PruneSnapshots(ctx, s.config.RetentionDays)
		if err != nil {
			return result, errors.Wrap(err, "pruning report snapshots")
		}
		result.Pruned = pruned
	}

	logrus.WithFields(logrus.Fields{
		"saved":  result.Saved,
		"failed": result.Failed,
		"pruned": result.Pruned,
	}).Info("report snapshot sync finished")

	return result, nil
}

// TriggerManualSync starts a run in the background unless one is in progress.
func (s *ReportSnapshotSyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		return ErrSyncInProgress
	}

	logrus.Info("manual report snapshot sync requested")
	go func() {
		if _, err := s.SyncSnapshots(context.Background()); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("manual report snapshot sync failed")
		}
	}()

	return nil
}

func (s *ReportSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"retention_days":         s.config.RetentionDays,
		"presets":                s.config.Presets,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_result":       s.lastSyncResult,
	}
}
