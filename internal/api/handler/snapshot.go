package handler

import (
	"net/http"

	"github.com/vfg2006/seller-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-reports-api/pkg/apiErrors"
	"github.com/vfg2006/seller-reports-api/pkg/utils"
)

// GetGlobalSnapshot serves the seller home overview cards.
func GetGlobalSnapshot(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seed, err := utils.ParseSeed(r.URL.Query().Get("seed"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "seed must be an integer", nil)
			return
		}

		snapshot, err := reporter.GlobalSnapshot(r.Context(), seed)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrInternalServer, "error generating global snapshot")
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	}
}
