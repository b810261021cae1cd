package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peachieglow/glow/pkg/cleanup"
)

// PostgresStorage implements Storage on top of a pgx pool.
type PostgresStorage struct {
	conn    PgConnection
	unlocks UnlockIndexI
}

func NewPostgresStorage(cfg DBConfig) *PostgresStorage {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for postgres storage error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for postgres storage: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return NewPostgresStorageWithConn(pool)
}

func NewPostgresStorageWithConn(conn PgConnection) *PostgresStorage {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for postgres storage: " + err.Error())
	}
	return &PostgresStorage{
		conn:    conn,
		unlocks: NewPgUnlockIndex(conn),
	}
}

// SetUnlockIndex replaces the table-backed unlock index, e.g. with a Redis one.
func (ps *PostgresStorage) SetUnlockIndex(idx UnlockIndexI) {
	ps.unlocks = idx
}

func (ps *PostgresStorage) Users() UsersRepositoryI {
	return NewUsersRepoWithConn(ps.conn)
}

func (ps *PostgresStorage) Habits() HabitEntriesRepositoryI {
	return NewHabitEntriesRepoWithConn(ps.conn)
}

func (ps *PostgresStorage) UserAchievements() UserAchievementsRepositoryI {
	return NewUserAchievementsRepoWithConn(ps.conn)
}

func (ps *PostgresStorage) Activities() ActivitiesRepositoryI {
	return NewActivitiesRepoWithConn(ps.conn)
}

func (ps *PostgresStorage) Unlocks() UnlockIndexI {
	return ps.unlocks
}

func (ps *PostgresStorage) Ping(ctx context.Context) error {
	return ps.conn.Ping(ctx)
}

func (ps *PostgresStorage) WithinTx(ctx context.Context, fn func(tx Storage) error) error {
	tx, err := ps.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	unlocks := ps.unlocks
	if _, tableBacked := unlocks.(*PgUnlockIndex); tableBacked {
		unlocks = NewPgUnlockIndex(tx)
	}
	err = fn(&pgTxStorage{tx: tx, unlocks: unlocks})
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(err, errors.New("rollback error: "+rbErr.Error()))
		}
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}

// pgTxStorage is the view of PostgresStorage handed to WithinTx callbacks.
type pgTxStorage struct {
	tx      PgQuerier
	unlocks UnlockIndexI
}

func (ts *pgTxStorage) Users() UsersRepositoryI {
	return NewUsersRepoWithConn(ts.tx)
}

func (ts *pgTxStorage) Habits() HabitEntriesRepositoryI {
	return NewHabitEntriesRepoWithConn(ts.tx)
}

func (ts *pgTxStorage) UserAchievements() UserAchievementsRepositoryI {
	return NewUserAchievementsRepoWithConn(ts.tx)
}

func (ts *pgTxStorage) Activities() ActivitiesRepositoryI {
	return NewActivitiesRepoWithConn(ts.tx)
}

func (ts *pgTxStorage) Unlocks() UnlockIndexI {
	return ts.unlocks
}

// Nested transactions are flattened into the outer one.
func (ts *pgTxStorage) WithinTx(ctx context.Context, fn func(tx Storage) error) error {
	return fn(ts)
}

func (ts *pgTxStorage) Ping(ctx context.Context) error {
	return nil
}
