package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/seller-reports-api/internal/domain"
	"github.com/vfg2006/seller-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-reports-api/pkg/apiErrors"
	"github.com/vfg2006/seller-reports-api/pkg/utils"
)

const (
	defaultSnapshotLimit = 20
	maxSnapshotLimit     = 100
)

type ReportSnapshotsResponse struct {
	Snapshots []*domain.ReportSnapshot `json:"snapshots"`
	Count     int                      `json:"count"`
}

// ListReportSnapshots lists stored reports, newest first. Without ?preset= every preset is listed.
func ListReportSnapshots(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		preset := domain.DatePreset(strings.ToLower(strings.TrimSpace(query.Get("preset"))))
		limit := utils.ParseLimit(query.Get("limit"), defaultSnapshotLimit, maxSnapshotLimit)

		snapshots, err := reporter.ListSnapshots(r.Context(), preset, limit)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "error listing report snapshots")
			return
		}

		writeJSON(w, r, http.StatusOK, ReportSnapshotsResponse{
			Snapshots: snapshots,
			Count:     len(snapshots),
		})
	}
}
