package models

import "time"

type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	ExerciseCount int64     `json:"-"`
	CreatedAt     time.Time `json:"-"`
}

// UserInput is the body of POST /api/users.
type UserInput struct {
	Username Field `json:"username" validate:"required"`
}
