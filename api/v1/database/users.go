package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/GHutch55/exlog/api/v1/models"
	"github.com/jackc/pgx/v5"
)

// ListUsers returns every user in creation order. It never returns a nil
// slice.
func ListUsers(ctx context.Context, db Pool) ([]models.User, error) {
	query := `
		SELECT id, username, exercise_count, created_at
		FROM app_user
		ORDER BY created_at, id`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get users: %w", ErrDatabaseError, err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.ExerciseCount, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan user: %w", ErrDatabaseError, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate users: %w", ErrDatabaseError, err)
	}

	return users, nil
}

// CreateUser inserts a user with a fresh id and a zero exercise count. A
// taken username yields ErrUsernameExists.
func CreateUser(ctx context.Context, db Pool, username string) (*models.User, error) {
	id, err := NewID()
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO app_user (id, username)
		VALUES ($1, $2)`

	tag, err := db.Exec(ctx, query, id, username)
	if err != nil {
		return nil, wrapError(err, "failed to create user")
	}
	if tag.RowsAffected() != 1 {
		return nil, fmt.Errorf("%w: expected one inserted user, got %d", ErrDatabaseError, tag.RowsAffected())
	}

	return &models.User{ID: id, Username: username}, nil
}

func GetUser(ctx context.Context, db Pool, userID string) (*models.User, error) {
	query := `
		SELECT id, username, exercise_count, created_at
		FROM app_user
		WHERE id = $1`

	var user models.User
	err := db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Username, &user.ExerciseCount, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", userID, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%w: failed to retrieve user: %w", ErrDatabaseError, err)
	}

	return &user, nil
}
