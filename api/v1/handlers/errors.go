package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GHutch55/exlog/api/v1/database"
	"github.com/GHutch55/exlog/api/v1/models"
	"github.com/GHutch55/exlog/api/v1/validation"
	"github.com/rs/zerolog"
)

// Error codes that do not come out of request validation.
const (
	CodeIDNotFound          = "id_not_found"
	CodeUsernameTaken       = "username_taken"
	CodeMalformedBody       = "malformed_body"
	CodeNotFound            = "not_found"
	CodeInternalServerError = "internal_server_error"
)

// SendJSON writes data as a JSON response
func SendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// SendErrors writes the {"errors": [...]} body shared by every failure
func SendErrors(w http.ResponseWriter, statusCode int, codes ...string) {
	if codes == nil {
		codes = []string{}
	}
	SendJSON(w, models.ErrorResponse{Errors: codes}, statusCode)
}

// SendInternalError logs err with the request's logger and answers with the
// generic code; the detail never reaches the client.
func SendInternalError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
	SendErrors(w, http.StatusInternalServerError, CodeInternalServerError)
}

// NotFound answers requests for routes that do not exist
func NotFound(w http.ResponseWriter, r *http.Request) {
	SendErrors(w, http.StatusNotFound, CodeNotFound)
}

var invalidDateCodes = map[string]validation.Code{
	"date": validation.InvalidDate,
	"from": validation.InvalidDateFrom,
	"to":   validation.InvalidDateTo,
}

// sendStoreError maps an error from the database package onto a response.
func sendStoreError(w http.ResponseWriter, r *http.Request, err error, reportConflicts bool) {
	var dateErr *database.InvalidDateError

	switch {
	case errors.As(err, &dateErr):
		code, ok := invalidDateCodes[dateErr.Param]
		if !ok {
			code = validation.InvalidDate
		}
		SendErrors(w, http.StatusBadRequest, string(code))
	case database.IsUserNotFoundError(err):
		SendErrors(w, http.StatusBadRequest, CodeIDNotFound)
	case database.IsUsernameExistsError(err) && reportConflicts:
		SendErrors(w, http.StatusConflict, CodeUsernameTaken)
	case errors.Is(err, database.ErrValueTooLong):
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("input exceeds column width")
		SendErrors(w, http.StatusInternalServerError, CodeInternalServerError)
	case errors.Is(err, database.ErrDatabaseError):
		SendInternalError(w, r, err, "database operation failed")
	default:
		SendInternalError(w, r, err, "unexpected error")
	}
}
