package database

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/GHutch55/exlog/api/v1/models"
	"github.com/GHutch55/exlog/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestPool connects to EXLOG_TEST_DATABASE_URL and applies the schema.
// Tests using it are skipped when the variable is unset.
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("EXLOG_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("EXLOG_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	logger := zerolog.Nop()

	require.NoError(t, Migrate(ctx, url, logger))

	pool, err := Connect(ctx, config.DatabaseConfig{
		URL:             url,
		MaxConns:        4,
		MaxConnIdleTime: 30 * time.Second,
		ConnectTimeout:  2 * time.Second,
	}, false, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func uniqueUsername(t *testing.T) string {
	id, err := NewID()
	require.NoError(t, err)
	return "it-" + id
}

func TestIntegrationCreateAndListUser(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	name := uniqueUsername(t)

	created, err := CreateUser(ctx, pool, name)
	require.NoError(t, err)

	users, err := ListUsers(ctx, pool)
	require.NoError(t, err)

	matches := 0
	for _, u := range users {
		if u.Username == name {
			matches++
			assert.Equal(t, created.ID, u.ID)
			assert.Zero(t, u.ExerciseCount)
		}
	}
	assert.Equal(t, 1, matches)
}

func TestIntegrationDuplicateUsername(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	name := uniqueUsername(t)

	first, err := CreateUser(ctx, pool, name)
	require.NoError(t, err)

	_, err = CreateUser(ctx, pool, name)
	assert.True(t, IsUsernameExistsError(err))

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM app_user WHERE username = $1", name).Scan(&count))
	assert.Equal(t, 1, count)

	again, err := GetUser(ctx, pool, first.ID)
	require.NoError(t, err)
	assert.Equal(t, name, again.Username)
}

func TestIntegrationConcurrentExercises(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()

	alice, err := CreateUser(ctx, pool, uniqueUsername(t))
	require.NoError(t, err)
	bob, err := CreateUser(ctx, pool, uniqueUsername(t))
	require.NoError(t, err)

	const perUser = 10
	var wg sync.WaitGroup
	errs := make(chan error, 2*perUser)

	for i := 0; i < perUser; i++ {
		for _, id := range []string{alice.ID, bob.ID} {
			wg.Add(1)
			go func(userID string, n int) {
				defer wg.Done()
				_, _, err := CreateExercise(ctx, pool, models.NewExercise{
					UserID:      userID,
					Description: fmt.Sprintf("lap %d", n),
					Duration:    int64(n),
				})
				errs <- err
			}(id, i)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	for _, id := range []string{alice.ID, bob.ID} {
		user, exercises, err := GetUserLog(ctx, pool, id, models.LogFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(perUser), user.ExerciseCount)
		assert.Len(t, exercises, perUser)
	}
}

func TestIntegrationInsertFailureKeepsCounter(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, pool, uniqueUsername(t))
	require.NoError(t, err)

	// description exceeds the column width, so the insert fails after the
	// counter was bumped
	_, _, err = CreateExercise(ctx, pool, models.NewExercise{
		UserID:      user.ID,
		Description: strings.Repeat("x", 300),
		Duration:    10,
	})
	require.ErrorIs(t, err, ErrValueTooLong)

	after, err := GetUser(ctx, pool, user.ID)
	require.NoError(t, err)
	assert.Zero(t, after.ExerciseCount)
}

func TestIntegrationLogFilters(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, pool, uniqueUsername(t))
	require.NoError(t, err)

	for _, d := range []string{"2024-01-05", "2024-01-10", "2024-01-15", "2024-01-20", "2024-01-25"} {
		date := d
		_, _, err := CreateExercise(ctx, pool, models.NewExercise{
			UserID:      user.ID,
			Description: "run " + d,
			Duration:    30,
			Date:        &date,
		})
		require.NoError(t, err)
	}

	owner, exercises, err := GetUserLog(ctx, pool, user.ID, models.LogFilter{From: "2024-01-10", To: "2024-01-20"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), owner.ExerciseCount)
	require.Len(t, exercises, 3)
	assert.Equal(t, "2024-01-20", exercises[0].Date.Format(time.DateOnly))
	assert.Equal(t, "2024-01-10", exercises[2].Date.Format(time.DateOnly))

	limit := int64(2)
	_, limited, err := GetUserLog(ctx, pool, user.ID, models.LogFilter{From: "2024-01-10", To: "2024-01-20", Limit: &limit})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, exercises[:2], limited)
}
