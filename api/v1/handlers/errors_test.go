package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GHutch55/exlog/api/v1/database"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendStoreError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		reportConflicts bool
		status          int
		want            string
	}{
		{
			name:   "user not found",
			err:    fmt.Errorf("user %q: %w", "x", database.ErrUserNotFound),
			status: http.StatusBadRequest,
			want:   `{"errors":["id_not_found"]}`,
		},
		{
			name:   "invalid date",
			err:    &database.InvalidDateError{Param: "date", Value: "2024-02-30"},
			status: http.StatusBadRequest,
			want:   `{"errors":["invalid_date"]}`,
		},
		{
			name:   "invalid from",
			err:    &database.InvalidDateError{Param: "from", Value: "2024-02-30"},
			status: http.StatusBadRequest,
			want:   `{"errors":["invalid_date_from"]}`,
		},
		{
			name:   "invalid to",
			err:    &database.InvalidDateError{Param: "to", Value: "2024-02-30"},
			status: http.StatusBadRequest,
			want:   `{"errors":["invalid_date_to"]}`,
		},
		{
			name:   "conflict hidden",
			err:    database.ErrUsernameExists,
			status: http.StatusInternalServerError,
			want:   `{"errors":["internal_server_error"]}`,
		},
		{
			name:            "conflict reported",
			err:             database.ErrUsernameExists,
			reportConflicts: true,
			status:          http.StatusConflict,
			want:            `{"errors":["username_taken"]}`,
		},
		{
			name:   "value too long",
			err:    fmt.Errorf("%w: insert: %w", database.ErrDatabaseError, database.ErrValueTooLong),
			status: http.StatusInternalServerError,
			want:   `{"errors":["internal_server_error"]}`,
		},
		{
			name:   "database error",
			err:    fmt.Errorf("%w: boom", database.ErrDatabaseError),
			status: http.StatusInternalServerError,
			want:   `{"errors":["internal_server_error"]}`,
		},
		{
			name:   "unknown error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			want:   `{"errors":["internal_server_error"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			sendStoreError(rec, req, tt.err, tt.reportConflicts)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestSendStoreErrorLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{name: "value too long", err: fmt.Errorf("%w: %w", database.ErrDatabaseError, database.ErrValueTooLong), level: "warn"},
		{name: "database error", err: fmt.Errorf("%w: boom", database.ErrDatabaseError), level: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req = req.WithContext(logger.WithContext(req.Context()))

			sendStoreError(httptest.NewRecorder(), req, tt.err, false)

			var line map[string]any
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
			assert.Equal(t, tt.level, line["level"])
		})
	}
}

func TestSendErrorsNeverNull(t *testing.T) {
	rec := httptest.NewRecorder()
	SendErrors(rec, http.StatusBadRequest)

	assert.JSONEq(t, `{"errors":[]}`, rec.Body.String())
}
