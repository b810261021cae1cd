package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/peachieglow/glow/internal/error_values"
	"github.com/peachieglow/glow/pkg/entity"
)

type UsersRepository struct {
	conn PgQuerier
}

func NewUsersRepoWithConn(conn PgQuerier) *UsersRepository {
	return &UsersRepository{
		conn: conn,
	}
}

const userColumns = `id, email, name, age, skin_type, skin_concerns, join_date, last_active,
	glow_score, current_streak, longest_streak, total_days_active, level, xp`

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
		user.ID, user.Email, user.Name, user.Age, user.SkinType, user.SkinConcerns, user.JoinDate, user.LastActive,
		user.GlowScore, user.CurrentStreak, user.LongestStreak, user.TotalDaysActive, user.Level, user.XP,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, id)
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Age, &user.SkinType, &user.SkinConcerns,
		&user.JoinDate, &user.LastActive, &user.GlowScore, &user.CurrentStreak, &user.LongestStreak,
		&user.TotalDaysActive, &user.Level, &user.XP)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET email = $1, name = $2, age = $3, skin_type = $4, skin_concerns = $5,
		last_active = $6, glow_score = $7, current_streak = $8, longest_streak = $9, total_days_active = $10,
		level = $11, xp = $12 WHERE id = $13;`,
		user.Email, user.Name, user.Age, user.SkinType, user.SkinConcerns, user.LastActive,
		user.GlowScore, user.CurrentStreak, user.LongestStreak, user.TotalDaysActive, user.Level, user.XP,
		user.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrUserExists
		}
		return errors.New("updating user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
