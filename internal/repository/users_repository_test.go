package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/peachieglow/glow/internal/error_values"
	"github.com/peachieglow/glow/internal/repository"
	"github.com/peachieglow/glow/pkg/entity"
)

var userColumnNames = []string{"id", "email", "name", "age", "skin_type", "skin_concerns", "join_date", "last_active",
	"glow_score", "current_streak", "longest_streak", "total_days_active", "level", "xp"}

func testUser() entity.User {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return entity.User{
		ID:              "user-1",
		Email:           "demo@peachieglow.com",
		Name:            "Demo",
		Age:             28,
		SkinType:        entity.SkinCombination,
		SkinConcerns:    []string{"acne"},
		JoinDate:        now,
		LastActive:      now,
		GlowScore:       67,
		CurrentStreak:   12,
		LongestStreak:   25,
		TotalDaysActive: 28,
		Level:           3,
		XP:              1250,
	}
}

func userRow(u entity.User) []any {
	return []any{u.ID, u.Email, u.Name, u.Age, u.SkinType, u.SkinConcerns, u.JoinDate, u.LastActive,
		u.GlowScore, u.CurrentStreak, u.LongestStreak, u.TotalDaysActive, u.Level, u.XP}
}

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	user := testUser()
	query := regexp.QuoteMeta(`INSERT INTO users (`)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(userRow(user)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &user)
		assert.NoError(t, err)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(userRow(user)...).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(userRow(user)...).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &user)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("nil user", func(t *testing.T) {
		assert.Error(t, repo.Create(ctx, nil))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestGetUserByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := testUser()
	query := regexp.QuoteMeta(`FROM users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows(userColumnNames).AddRow(userRow(user)...))
		result, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, user.ID)
		assert.EqualError(t, err, "searching user by id error: db error")
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUpdateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := testUser()
	query := regexp.QuoteMeta(`UPDATE users SET`)
	args := []any{user.Email, user.Name, user.Age, user.SkinType, user.SkinConcerns, user.LastActive,
		user.GlowScore, user.CurrentStreak, user.LongestStreak, user.TotalDaysActive, user.Level, user.XP, user.ID}
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &user))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &user), errorvalues.ErrUserNotFound)
	})
	t.Run("email taken", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
		assert.ErrorIs(t, repo.Update(ctx, &user), errorvalues.ErrUserExists)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
