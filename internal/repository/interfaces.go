package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/peachieglow/glow/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user. Fails with ErrUserExists on duplicate id or email
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by id. Returns ErrUserNotFound when absent
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// Overwrites the stored snapshot of user (ID is necessary)
	Update(ctx context.Context, user *entity.User) error
}

type HabitEntriesRepositoryI interface {
	Create(ctx context.Context, entry *entity.HabitEntry) error
	// Updates completion state of entry by ID
	Update(ctx context.Context, entry *entity.HabitEntry) error
	// Searches the entry of taskID on the given day. Returns ErrHabitEntryNotFound when absent
	GetByTaskAndDate(ctx context.Context, userID, taskID string, day time.Time) (*entity.HabitEntry, error)
	// Lists every entry of the user, most recent day first
	ListByUser(ctx context.Context, userID string) ([]entity.HabitEntry, error)
	// Lists the user's entries of one day
	ListByUserAndDate(ctx context.Context, userID string, day time.Time) ([]entity.HabitEntry, error)
}

type UserAchievementsRepositoryI interface {
	// Fails with ErrAchievementAlreadyUnlocked when the pair already exists
	Create(ctx context.Context, ua *entity.UserAchievement) error
	Get(ctx context.Context, userID, achievementID string) (*entity.UserAchievement, error)
	ListByUser(ctx context.Context, userID string) ([]entity.UserAchievement, error)
}

type ActivitiesRepositoryI interface {
	Append(ctx context.Context, activity *entity.UserActivity) error
	// Most recent first, at most limit entries
	Recent(ctx context.Context, userID string, limit int) ([]entity.UserActivity, error)
}

// UnlockIndexI tracks which users unlocked each achievement, apart from the
// catalog definitions.
type UnlockIndexI interface {
	// Idempotent
	Add(ctx context.Context, achievementID, userID string) error
	Count(ctx context.Context, achievementID string) (int, error)
}

// Storage is the capability set services work against. Backends are
// interchangeable and chosen at startup.
type Storage interface {
	Users() UsersRepositoryI
	Habits() HabitEntriesRepositoryI
	UserAchievements() UserAchievementsRepositoryI
	Activities() ActivitiesRepositoryI
	Unlocks() UnlockIndexI
	// Runs fn against a transactional view. Either every write in fn is kept or none is
	WithinTx(ctx context.Context, fn func(tx Storage) error) error
	Ping(ctx context.Context) error
}

type DBConfig interface {
	ConnString() string
}

// PgQuerier is satisfied by pools, connections and transactions alike.
type PgQuerier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	PgQuerier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

// MigrationURL is the connection string in the form the migrate pgx/v5 driver expects.
func (pgcfg *PGCfg) MigrationURL() string {
	return fmt.Sprintf("pgx5://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

// DayStart truncates t to the start of its UTC calendar day.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
