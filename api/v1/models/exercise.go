package models

import "time"

// Exercise is one logged entry. Date carries no time of day.
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int64
	Date        time.Time
}

// NewExercise is what the store needs to insert an entry. A nil Date lets
// the database assign its current date.
type NewExercise struct {
	UserID      string
	Description string
	Duration    int64
	Date        *string
}

// ExerciseInput is the body of POST /api/users/{id}/exercises.
type ExerciseInput struct {
	Description Field `json:"description" validate:"required"`
	Duration    Field `json:"duration" validate:"required,number"`
	Date        Field `json:"date" validate:"omitempty,datestr"`
}

// LogQuery holds the query string of GET /api/users/{id}/logs.
type LogQuery struct {
	From  Field `validate:"omitempty,datestr"`
	To    Field `validate:"omitempty,datestr"`
	Limit Field `validate:"omitempty,number"`
}

// LogFilter is a validated LogQuery. Empty bounds and a nil Limit mean
// "not given".
type LogFilter struct {
	From  string
	To    string
	Limit *int64
}
