package database

import (
	"context"
	"fmt"
	"time"

	"github.com/GHutch55/exlog/api/v1/models"
	"github.com/jackc/pgx/v5"
)

// parseDate turns a YYYY-MM-DD string into a calendar date. The string has
// already passed the shape check, so a failure here means an impossible
// date such as 2024-02-30.
func parseDate(param, value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, &InvalidDateError{Param: param, Value: value, Err: err}
	}
	return t, nil
}

// CreateExercise bumps the owner's counter and inserts the entry in one
// transaction, then reads the owner back so the returned count includes the
// new entry. Either both writes land or neither does.
func CreateExercise(ctx context.Context, db Pool, in models.NewExercise) (*models.User, *models.Exercise, error) {
	var date *time.Time
	if in.Date != nil {
		d, err := parseDate("date", *in.Date)
		if err != nil {
			return nil, nil, err
		}
		date = &d
	}

	id, err := NewID()
	if err != nil {
		return nil, nil, err
	}

	exercise := models.Exercise{
		ID:          id,
		UserID:      in.UserID,
		Description: in.Description,
		Duration:    in.Duration,
	}

	err = withTx(ctx, db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, "UPDATE app_user SET exercise_count = exercise_count + 1 WHERE id = $1", in.UserID)
		if err != nil {
			return fmt.Errorf("%w: failed to update exercise count: %w", ErrDatabaseError, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("user %q: %w", in.UserID, ErrUserNotFound)
		}

		var row pgx.Row
		if date != nil {
			row = tx.QueryRow(ctx, `
				INSERT INTO exercise (id, user_id, description, duration, date)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING date`,
				exercise.ID, exercise.UserID, exercise.Description, exercise.Duration, *date)
		} else {
			row = tx.QueryRow(ctx, `
				INSERT INTO exercise (id, user_id, description, duration)
				VALUES ($1, $2, $3, $4)
				RETURNING date`,
				exercise.ID, exercise.UserID, exercise.Description, exercise.Duration)
		}

		if err := row.Scan(&exercise.Date); err != nil {
			if isDateError(pgErrorCode(err)) && in.Date != nil {
				return &InvalidDateError{Param: "date", Value: *in.Date, Err: err}
			}
			return wrapError(err, "failed to insert exercise")
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	user, err := GetUser(ctx, db, in.UserID)
	if err != nil {
		return nil, nil, err
	}

	return user, &exercise, nil
}

// GetUserLog returns the user and their entries, newest first, restricted
// by the filter's inclusive date bounds and row limit.
func GetUserLog(ctx context.Context, db Pool, userID string, filter models.LogFilter) (*models.User, []models.Exercise, error) {
	var from, to *time.Time
	if filter.From != "" {
		d, err := parseDate("from", filter.From)
		if err != nil {
			return nil, nil, err
		}
		from = &d
	}
	if filter.To != "" {
		d, err := parseDate("to", filter.To)
		if err != nil {
			return nil, nil, err
		}
		to = &d
	}

	user, err := GetUser(ctx, db, userID)
	if err != nil {
		return nil, nil, err
	}

	query, args := buildLogQuery(userID, from, to, filter.Limit)

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to get exercises: %w", ErrDatabaseError, err)
	}
	defer rows.Close()

	exercises := []models.Exercise{}
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date); err != nil {
			return nil, nil, fmt.Errorf("%w: failed to scan exercise: %w", ErrDatabaseError, err)
		}
		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to iterate exercises: %w", ErrDatabaseError, err)
	}

	return user, exercises, nil
}

func buildLogQuery(userID string, from, to *time.Time, limit *int64) (string, []any) {
	whereClause := "WHERE user_id = $1"
	args := []any{userID}

	argPosition := 2
	if from != nil {
		whereClause += fmt.Sprintf(" AND date >= $%d", argPosition)
		args = append(args, *from)
		argPosition++
	}
	if to != nil {
		whereClause += fmt.Sprintf(" AND date <= $%d", argPosition)
		args = append(args, *to)
		argPosition++
	}

	query := fmt.Sprintf("SELECT id, user_id, description, duration, date FROM exercise %s ORDER BY date DESC, id", whereClause)

	if limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", argPosition)
		args = append(args, *limit)
	}

	return query, args
}
