package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger is implemented by dependencies the healthcheck should ping.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthcheckResponse struct {
	Status   string            `json:"status"`
	Time     time.Time         `json:"time"`
	Services map[string]string `json:"services,omitempty"`
}

func HealthcheckHandler(dependencies map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := HealthcheckResponse{
			Status: "ok",
			Time:   time.Now(),
		}
		status := http.StatusOK

		if len(dependencies) > 0 {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			response.Services = make(map[string]string, len(dependencies))
			for name, dependency := range dependencies {
				if err := dependency.Ping(ctx); err != nil {
					response.Services[name] = "down"
					response.Status = "degraded"
					status = http.StatusServiceUnavailable
					continue
				}
				response.Services[name] = "up"
			}
		}

		writeJSON(w, r, status, response)
	})
}
