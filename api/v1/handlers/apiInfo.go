package handlers

import (
	"net/http"
)

func ApiInfoHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"message": "Exercise Log API v" + Version,
		"endpoints": map[string]string{
			"GET /api/users":                 "list users",
			"POST /api/users":                "create a user from {username}",
			"GET /api/users/{id}/logs":       "exercise log, optional from, to (YYYY-MM-DD) and limit",
			"POST /api/users/{id}/exercises": "log an exercise from {description, duration, date?}",
		},
	}
	SendJSON(w, response, http.StatusOK)
}
