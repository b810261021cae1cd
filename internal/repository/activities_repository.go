package repository

import (
	"context"
	"errors"

	"github.com/peachieglow/glow/pkg/entity"
)

const DefaultActivityLimit = 10

type ActivitiesRepository struct {
	conn PgQuerier
}

func NewActivitiesRepoWithConn(conn PgQuerier) *ActivitiesRepository {
	return &ActivitiesRepository{
		conn: conn,
	}
}

func (ar *ActivitiesRepository) Append(ctx context.Context, activity *entity.UserActivity) error {
	_, err := ar.conn.Exec(ctx, `INSERT INTO user_activities (id, user_id, type, description, occurred_at, metadata)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		activity.ID, activity.UserID, activity.Type, activity.Description, activity.Timestamp, activity.Metadata,
	)
	if err != nil {
		return errors.New("appending activity error: " + err.Error())
	}
	return nil
}

func (ar *ActivitiesRepository) Recent(ctx context.Context, userID string, limit int) ([]entity.UserActivity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	rows, err := ar.conn.Query(ctx, `SELECT id, user_id, type, description, occurred_at, metadata
		FROM user_activities WHERE user_id = $1 ORDER BY occurred_at DESC, seq DESC LIMIT $2;`, userID, limit)
	if err != nil {
		return nil, errors.New("listing activities error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.UserActivity, 0, limit)
	for rows.Next() {
		var a entity.UserActivity
		if err = rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Description, &a.Timestamp, &a.Metadata); err != nil {
			return nil, errors.New("activity row parsing error: " + err.Error())
		}
		result = append(result, a)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected activity rows error: " + err.Error())
	}
	return result, nil
}
