package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-reports-api/infrastructure/repository"
	"github.com/vfg2006/seller-reports-api/internal/api"
	"github.com/vfg2006/seller-reports-api/internal/api/handler"
	"github.com/vfg2006/seller-reports-api/internal/config"
	"github.com/vfg2006/seller-reports-api/internal/scheduler"
	"github.com/vfg2006/seller-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/seller-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-reports-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(log.Options{
		Level:      cfg.App.LogLevel,
		File:       cfg.App.LogFile,
		MaxSizeMB:  cfg.App.LogMaxSizeMB,
		MaxBackups: cfg.App.LogMaxBackups,
		MaxAgeDays: cfg.App.LogMaxAgeDays,
	})
	logrus.Infof("log level set to %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reportService := reporting.NewService(cfg, reporting.SystemClock{})

	deps := api.Dependencies{
		Reporter:     reportService,
		CronJobs:     handler.CronJobServices{},
		HealthChecks: map[string]handler.Pinger{},
	}

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		reportService.WithSnapshots(repository.NewReportSnapshotRepository(pgConn))
		deps.HealthChecks["postgres"] = pgConn

		snapshotSyncService := scheduler.NewReportSnapshotSyncService(reportService, cfg)
		if err := snapshotSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("error starting report snapshot sync")
		}
		deps.CronJobs[handler.CronJobTypeReportSnapshots] = snapshotSyncService
	}

	if cfg.Auth.Enabled {
		deps.Authenticator = authenticating.NewService(cfg.Auth)
	}

	server, err := api.New(cfg, deps)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("error applying database schema")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
