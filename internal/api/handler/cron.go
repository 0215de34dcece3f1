package handler

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/seller-reports-api/internal/scheduler"
	"github.com/vfg2006/seller-reports-api/pkg/apiErrors"
	"github.com/vfg2006/seller-reports-api/pkg/log"
)

const (
	CronJobTypeReportSnapshots = "report-snapshots"
	CronJobTypeAll             = "all"
)

// CronJob is a background job that can be triggered by hand.
type CronJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices maps a job type to its service.
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for name := range s {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type is required", nil)
			return
		}

		var jobs []string
		switch {
		case cronType == CronJobTypeAll:
			jobs = services.types()
		case services[cronType] != nil:
			jobs = []string{cronType}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "unknown cron job type", map[string]any{
				"accepted": append(services.types(), CronJobTypeAll),
			})
			return
		}

		for _, job := range jobs {
			if err := services[job].TriggerManualSync(); err != nil {
				if errors.Is(err, scheduler.ErrSyncInProgress) {
					apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, err.Error(), map[string]string{"type": job})
					return
				}
				writeServiceError(w, r, err, apiErrors.ErrInternalServer, "error starting cron job")
				return
			}
			log.ForContext(r.Context()).WithField("type", job).Info("cron job started manually")
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "cron job started",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, service := range services {
			status[name] = service.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
