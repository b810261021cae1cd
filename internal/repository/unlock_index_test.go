package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peachieglow/glow/internal/repository"
)

func TestPgUnlockIndex(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	idx := repository.NewPgUnlockIndex(mock)
	ctx := context.Background()
	t.Run("add", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO achievement_unlocks (achievement_id, user_id)`)).
			WithArgs("first-glow", "user-1").
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		assert.NoError(t, idx.Add(ctx, "first-glow", "user-1"))
	})
	t.Run("count", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM achievement_unlocks WHERE achievement_id = $1;`)).
			WithArgs("first-glow").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
		n, err := idx.Count(ctx, "first-glow")
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM achievement_unlocks`)).
			WithArgs("first-glow").
			WillReturnError(errors.New("db error"))
		_, err := idx.Count(ctx, "first-glow")
		assert.EqualError(t, err, "counting unlocks error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

// fakeSetClient implements the two set commands the index uses.
type fakeSetClient struct {
	redis.Cmdable
	sets map[string]map[string]struct{}
	err  error
}

func (f *fakeSetClient) SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "sadd", key)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	set, ok := f.sets[key]
	if !ok {
		set = make(map[string]struct{})
		f.sets[key] = set
	}
	var added int64
	for _, m := range members {
		s := m.(string)
		if _, ok := set[s]; !ok {
			set[s] = struct{}{}
			added++
		}
	}
	cmd.SetVal(added)
	return cmd
}

func (f *fakeSetClient) SCard(ctx context.Context, key string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "scard", key)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	cmd.SetVal(int64(len(f.sets[key])))
	return cmd
}

func TestRedisUnlockIndex(t *testing.T) {
	client := &fakeSetClient{sets: make(map[string]map[string]struct{})}
	idx := repository.NewRedisUnlockIndex(client)
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, "first-glow", "user-1"))
	require.NoError(t, idx.Add(ctx, "first-glow", "user-1"))
	require.NoError(t, idx.Add(ctx, "first-glow", "user-2"))

	n, err := idx.Count(ctx, "first-glow")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, client.sets, "peachieglow:achievement:first-glow:unlocked_by")

	n, err = idx.Count(ctx, "glow-legend")
	require.NoError(t, err)
	assert.Zero(t, n)

	client.err = errors.New("connection refused")
	assert.EqualError(t, idx.Add(ctx, "first-glow", "user-3"), "redis unlock add error: connection refused")
	_, err = idx.Count(ctx, "first-glow")
	assert.Error(t, err)
}
