package models

import "time"

// DateLayout renders a calendar date the way clients of this API have
// always received it, e.g. "Mon Jan 15 2024".
const DateLayout = "Mon Jan 02 2006"

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type ExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	Date        string `json:"date"`
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse reports Count as the user's lifetime counter, which can
// differ from len(Log) when the log was filtered or limited.
type LogResponse struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Count    int64      `json:"count"`
	Log      []LogEntry `json:"log"`
}

type ErrorResponse struct {
	Errors []string `json:"errors"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username}
}

func NewUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

func NewLogEntry(e Exercise) LogEntry {
	return LogEntry{
		Description: e.Description,
		Duration:    e.Duration,
		Date:        FormatDate(e.Date),
	}
}

// NewExerciseResponse combines the owner's identity with the new entry.
// The entry's own id is not part of the public contract.
func NewExerciseResponse(u User, e Exercise) ExerciseResponse {
	entry := NewLogEntry(e)
	return ExerciseResponse{
		ID:          u.ID,
		Username:    u.Username,
		Description: entry.Description,
		Duration:    entry.Duration,
		Date:        entry.Date,
	}
}

func NewLogResponse(u User, entries []Exercise) LogResponse {
	log := make([]LogEntry, 0, len(entries))
	for _, e := range entries {
		log = append(log, NewLogEntry(e))
	}
	return LogResponse{
		ID:       u.ID,
		Username: u.Username,
		Count:    u.ExerciseCount,
		Log:      log,
	}
}
