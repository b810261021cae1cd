package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// PgUnlockIndex stores unlocks in the achievement_unlocks table.
type PgUnlockIndex struct {
	conn PgQuerier
}

func NewPgUnlockIndex(conn PgQuerier) *PgUnlockIndex {
	return &PgUnlockIndex{conn: conn}
}

func (idx *PgUnlockIndex) Add(ctx context.Context, achievementID, userID string) error {
	_, err := idx.conn.Exec(ctx, `INSERT INTO achievement_unlocks (achievement_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING;`, achievementID, userID)
	if err != nil {
		return errors.New("adding unlock error: " + err.Error())
	}
	return nil
}

func (idx *PgUnlockIndex) Count(ctx context.Context, achievementID string) (int, error) {
	var count int
	row := idx.conn.QueryRow(ctx, `SELECT COUNT(*) FROM achievement_unlocks WHERE achievement_id = $1;`, achievementID)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting unlocks error: " + err.Error())
	}
	return count, nil
}

// RedisUnlockIndex keeps one Redis set of user ids per achievement. SADD makes
// repeated adds harmless.
type RedisUnlockIndex struct {
	client redis.Cmdable
	prefix string
}

func NewRedisUnlockIndex(client redis.Cmdable) *RedisUnlockIndex {
	return &RedisUnlockIndex{
		client: client,
		prefix: "peachieglow:achievement:",
	}
}

func (idx *RedisUnlockIndex) key(achievementID string) string {
	return idx.prefix + achievementID + ":unlocked_by"
}

func (idx *RedisUnlockIndex) Add(ctx context.Context, achievementID, userID string) error {
	if err := idx.client.SAdd(ctx, idx.key(achievementID), userID).Err(); err != nil {
		return errors.New("redis unlock add error: " + err.Error())
	}
	return nil
}

func (idx *RedisUnlockIndex) Count(ctx context.Context, achievementID string) (int, error) {
	n, err := idx.client.SCard(ctx, idx.key(achievementID)).Result()
	if err != nil {
		return 0, errors.New("redis unlock count error: " + err.Error())
	}
	return int(n), nil
}
