package handlers

import (
	"net/http"
)

const Version = "1.0.0"

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"name":    "Exercise Log API",
		"version": Version,
		"routes": map[string]string{
			"health":  "/health",
			"api":     "/api",
			"live":    "/live",
			"ready":   "/ready",
			"metrics": "/metrics",
		},
	}
	SendJSON(w, response, http.StatusOK)
}
