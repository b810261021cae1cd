package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/peachieglow/glow/internal/error_values"
	"github.com/peachieglow/glow/pkg/entity"
)

type UserAchievementsRepository struct {
	conn PgQuerier
}

func NewUserAchievementsRepoWithConn(conn PgQuerier) *UserAchievementsRepository {
	return &UserAchievementsRepository{
		conn: conn,
	}
}

func (uar *UserAchievementsRepository) Create(ctx context.Context, ua *entity.UserAchievement) error {
	_, err := uar.conn.Exec(ctx, `INSERT INTO user_achievements (id, user_id, achievement_id, unlocked_at, progress, is_unlocked)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		ua.ID, ua.UserID, ua.AchievementID, ua.UnlockedAt, ua.Progress, ua.IsUnlocked,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAchievementAlreadyUnlocked
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating user achievement error: " + err.Error())
	}
	return nil
}

func (uar *UserAchievementsRepository) Get(ctx context.Context, userID, achievementID string) (*entity.UserAchievement, error) {
	var ua entity.UserAchievement
	row := uar.conn.QueryRow(ctx, `SELECT id, user_id, achievement_id, unlocked_at, progress, is_unlocked
		FROM user_achievements WHERE user_id = $1 AND achievement_id = $2;`, userID, achievementID)
	if err := row.Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &ua.UnlockedAt, &ua.Progress, &ua.IsUnlocked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAchievementNotFound
		}
		return nil, errors.New("getting user achievement error: " + err.Error())
	}
	return &ua, nil
}

func (uar *UserAchievementsRepository) ListByUser(ctx context.Context, userID string) ([]entity.UserAchievement, error) {
	rows, err := uar.conn.Query(ctx, `SELECT id, user_id, achievement_id, unlocked_at, progress, is_unlocked
		FROM user_achievements WHERE user_id = $1 ORDER BY unlocked_at;`, userID)
	if err != nil {
		return nil, errors.New("listing user achievements error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.UserAchievement, 0)
	for rows.Next() {
		var ua entity.UserAchievement
		if err = rows.Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &ua.UnlockedAt, &ua.Progress, &ua.IsUnlocked); err != nil {
			return nil, errors.New("user achievement row parsing error: " + err.Error())
		}
		result = append(result, ua)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected user achievement rows error: " + err.Error())
	}
	return result, nil
}
