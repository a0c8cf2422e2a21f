package api

import (
	"context"
	"net/http"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// HealthHandler returns the health check handler. A nil pinger skips the
// store probe.
func HealthHandler(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "healthy", Store: "ok"}

		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				resp.Store = "unreachable"
			}
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
