package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/GHutch55/exlog/api/v1/database"
	"github.com/rs/zerolog"
)

type healthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
}

const healthPingTimeout = 2 * time.Second

// HealthHandler reports whether the API and its database are reachable
func HealthHandler(db database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		response := healthResponse{
			Status:   "ok",
			Message:  "Exercise Log API is running",
			Database: "ok",
		}
		status := http.StatusOK

		if err := db.Ping(ctx); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("health check database ping failed")
			response.Status = "degraded"
			response.Database = "unreachable"
			status = http.StatusServiceUnavailable
		}

		SendJSON(w, response, status)
	}
}
