package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/peachieglow/glow/internal/error_values"
	"github.com/peachieglow/glow/pkg/entity"
)

type HabitEntriesRepository struct {
	conn PgQuerier
}

func NewHabitEntriesRepoWithConn(conn PgQuerier) *HabitEntriesRepository {
	return &HabitEntriesRepository{
		conn: conn,
	}
}

const habitEntryColumns = `id, user_id, entry_date, task_id, task_title, category, completed, completed_at, streak, xp_earned`

func (hr *HabitEntriesRepository) Create(ctx context.Context, entry *entity.HabitEntry) error {
	_, err := hr.conn.Exec(ctx, `INSERT INTO habit_entries (`+habitEntryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		entry.ID, entry.UserID, entry.Date, entry.TaskID, entry.TaskTitle, entry.Category,
		entry.Completed, entry.CompletedAt, entry.Streak, entry.XPEarned,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrConflict
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating habit entry error: " + err.Error())
	}
	return nil
}

func (hr *HabitEntriesRepository) Update(ctx context.Context, entry *entity.HabitEntry) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habit_entries SET task_title = $1, category = $2, completed = $3,
		completed_at = $4, streak = $5, xp_earned = $6 WHERE id = $7;`,
		entry.TaskTitle, entry.Category, entry.Completed, entry.CompletedAt, entry.Streak, entry.XPEarned, entry.ID,
	)
	if err != nil {
		return errors.New("updating habit entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitEntryNotFound
	}
	return nil
}

func scanHabitEntry(row pgx.Row) (*entity.HabitEntry, error) {
	var e entity.HabitEntry
	err := row.Scan(&e.ID, &e.UserID, &e.Date, &e.TaskID, &e.TaskTitle, &e.Category,
		&e.Completed, &e.CompletedAt, &e.Streak, &e.XPEarned)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (hr *HabitEntriesRepository) GetByTaskAndDate(ctx context.Context, userID, taskID string, day time.Time) (*entity.HabitEntry, error) {
	row := hr.conn.QueryRow(ctx, `SELECT `+habitEntryColumns+` FROM habit_entries
		WHERE user_id = $1 AND task_id = $2 AND entry_date = $3;`, userID, taskID, day)
	entry, err := scanHabitEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitEntryNotFound
		}
		return nil, errors.New("getting habit entry error: " + err.Error())
	}
	return entry, nil
}

func (hr *HabitEntriesRepository) ListByUser(ctx context.Context, userID string) ([]entity.HabitEntry, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitEntryColumns+` FROM habit_entries
		WHERE user_id = $1 ORDER BY entry_date DESC;`, userID)
	if err != nil {
		return nil, errors.New("listing habit entries error: " + err.Error())
	}
	return collectHabitEntries(rows)
}

func (hr *HabitEntriesRepository) ListByUserAndDate(ctx context.Context, userID string, day time.Time) ([]entity.HabitEntry, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitEntryColumns+` FROM habit_entries
		WHERE user_id = $1 AND entry_date = $2;`, userID, day)
	if err != nil {
		return nil, errors.New("listing habit entries of day error: " + err.Error())
	}
	return collectHabitEntries(rows)
}

func collectHabitEntries(rows pgx.Rows) ([]entity.HabitEntry, error) {
	defer rows.Close()
	result := make([]entity.HabitEntry, 0)
	for rows.Next() {
		entry, err := scanHabitEntry(rows)
		if err != nil {
			return nil, errors.New("habit entry row parsing error: " + err.Error())
		}
		result = append(result, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected habit entry rows error: " + err.Error())
	}
	return result, nil
}
