package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/seller-reports-api/internal/domain"
	"github.com/vfg2006/seller-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-reports-api/pkg/apiErrors"
	"github.com/vfg2006/seller-reports-api/pkg/utils"
)

type PresetsResponse struct {
	Presets []domain.PresetOption `json:"presets"`
}

// GetBusinessReport serves the sales comparison for
// ?preset=&channel=&view=&seed=&as_of=YYYY-MM-DD. Unknown preset, channel and
// view values fall back to their defaults.
func GetBusinessReport(reporter reporting.Reporter, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		seed, err := utils.ParseSeed(query.Get("seed"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "seed must be an integer", nil)
			return
		}

		asOf, err := utils.ParseDate(query.Get("as_of"), loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "as_of must use the YYYY-MM-DD format", nil)
			return
		}

		view := reporter.ResolveViewState(query.Get("preset"), query.Get("channel"), query.Get("view"))

		report, err := reporter.BusinessReport(r.Context(), domain.ReportRequest{
			View: view,
			Seed: seed,
			AsOf: asOf,
		})
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrInternalServer, "error generating business report")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

func ListPresets(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, PresetsResponse{Presets: reporter.Presets()})
	}
}
