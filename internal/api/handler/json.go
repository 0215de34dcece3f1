package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/seller-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/seller-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-reports-api/pkg/apiErrors"
	"github.com/vfg2006/seller-reports-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("error encoding response")
	}
}

// writeServiceError maps use case errors to coded API errors. Errors without
// a code are logged and reported with fallbackCode.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallbackCode, message string) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		if apiErrors.StatusFor(reportErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error(message)
			apiErrors.WriteError(w, reportErr.Code, message, nil)
			return
		}
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteError(w, fallbackCode, message, nil)
}
