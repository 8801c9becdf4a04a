package handlers

import (
	"net/http"

	"github.com/GHutch55/exlog/api/v1/database"
	"github.com/GHutch55/exlog/api/v1/middleware"
	"github.com/GHutch55/exlog/api/v1/models"
	"github.com/GHutch55/exlog/api/v1/validation"
	"github.com/go-chi/chi/v5"
)

// ExerciseHandler serves the per-user exercise routes
type ExerciseHandler struct {
	DB database.Pool
}

// CreateExercise logs one entry for the user in the path
func (h *ExerciseHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	in, err := bindExerciseInput(w, r)
	if err != nil {
		SendErrors(w, http.StatusBadRequest, CodeMalformedBody)
		return
	}

	entry, errs := validation.Exercise(userID, in)
	if len(errs) > 0 {
		SendErrors(w, http.StatusBadRequest, errs.Strings()...)
		return
	}

	user, exercise, err := database.CreateExercise(r.Context(), h.DB, entry)
	if err != nil {
		sendStoreError(w, r, err, false)
		return
	}

	middleware.ExercisesCreated.Inc()
	SendJSON(w, models.NewExerciseResponse(*user, *exercise), http.StatusOK)
}

// GetLog returns the user's entries filtered by from, to and limit
func (h *ExerciseHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	filter, errs := validation.LogQuery(bindLogQuery(r))
	if len(errs) > 0 {
		SendErrors(w, http.StatusBadRequest, errs.Strings()...)
		return
	}

	user, exercises, err := database.GetUserLog(r.Context(), h.DB, userID, filter)
	if err != nil {
		sendStoreError(w, r, err, false)
		return
	}

	SendJSON(w, models.NewLogResponse(*user, exercises), http.StatusOK)
}
