package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/seller-reports-api/internal/api/handler/router"
	"github.com/vfg2006/seller-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/seller-reports-api/internal/usecases/reporting"
)

type Middleware = func(http.Handler) http.Handler

func Healthcheck(dependencies map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dependencies),
		},
	}
}

func Authentication(service authenticating.Authenticator, middlewares ...Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/login",
			Method:      http.MethodPost,
			Handler:     Login(service),
			Middlewares: middlewares,
		},
	}
}

// Reports registers the report routes; middlewares (rate limiting) apply to each of them.
func Reports(reporter reporting.Reporter, loc *time.Location, middlewares ...Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/presets",
			Method:      http.MethodGet,
			Handler:     ListPresets(reporter),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/reports/business",
			Method:      http.MethodGet,
			Handler:     GetBusinessReport(reporter, loc),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/reports/snapshots",
			Method:      http.MethodGet,
			Handler:     ListReportSnapshots(reporter),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/snapshot",
			Method:      http.MethodGet,
			Handler:     GetGlobalSnapshot(reporter),
			Middlewares: middlewares,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
