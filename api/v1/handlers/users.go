package handlers

import (
	"net/http"

	"github.com/GHutch55/exlog/api/v1/database"
	"github.com/GHutch55/exlog/api/v1/middleware"
	"github.com/GHutch55/exlog/api/v1/models"
	"github.com/GHutch55/exlog/api/v1/validation"
	"github.com/rs/zerolog"
)

// UserHandler holds the database connection
type UserHandler struct {
	DB database.Pool
	// ReportConflicts answers a taken username with 409 instead of 500.
	ReportConflicts bool
}

// ListUsers returns every registered user
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := database.ListUsers(r.Context(), h.DB)
	if err != nil {
		sendStoreError(w, r, err, h.ReportConflicts)
		return
	}

	SendJSON(w, models.NewUserResponses(users), http.StatusOK)
}

// CreateUser registers a new username
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	in, err := bindUserInput(w, r)
	if err != nil {
		SendErrors(w, http.StatusBadRequest, CodeMalformedBody)
		return
	}

	if errs := validation.User(in); len(errs) > 0 {
		SendErrors(w, http.StatusBadRequest, errs.Strings()...)
		return
	}

	user, err := database.CreateUser(r.Context(), h.DB, in.Username.Value)
	if err != nil {
		if database.IsUsernameExistsError(err) {
			zerolog.Ctx(r.Context()).Warn().Str("username", in.Username.Value).Msg("username already taken")
		}
		sendStoreError(w, r, err, h.ReportConflicts)
		return
	}

	middleware.UsersCreated.Inc()
	SendJSON(w, models.NewUserResponse(*user), http.StatusOK)
}
