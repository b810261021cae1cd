package repository

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	errorvalues "github.com/peachieglow/glow/internal/error_values"
	"github.com/peachieglow/glow/pkg/entity"
)

type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	// Upper bound for all attempts of one call
	MaxElapsedTime time.Duration
	// Zero means bounded by MaxElapsedTime only
	MaxRetries uint64
	// How long writes are refused after one exhausted its retries
	DegradedCooldown time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		InitialInterval:  50 * time.Millisecond,
		MaxInterval:      time.Second,
		MaxElapsedTime:   3 * time.Second,
		MaxRetries:       5,
		DegradedCooldown: 30 * time.Second,
	}
}

type StorageObserver interface {
	StorageRetry(op string)
	StorageDegraded(degraded bool)
}

type noopObserver struct{}

func (noopObserver) StorageRetry(string)  {}
func (noopObserver) StorageDegraded(bool) {}

// ResilientStorage decorates a Storage with bounded exponential retries.
// A write that still fails after its retries switches the storage into a
// read-only mode for DegradedCooldown; reads keep going to the backend.
type ResilientStorage struct {
	inner    Storage
	policy   RetryPolicy
	observer StorageObserver
	now      func() time.Time

	mu            sync.Mutex
	degraded      bool
	degradedUntil time.Time
}

func NewResilientStorage(inner Storage, policy RetryPolicy, observer StorageObserver) *ResilientStorage {
	if observer == nil {
		observer = noopObserver{}
	}
	return &ResilientStorage{
		inner:    inner,
		policy:   policy,
		observer: observer,
		now:      time.Now,
	}
}

// Degraded reports whether writes are currently refused.
func (rs *ResilientStorage) Degraded() bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.degraded && rs.now().Before(rs.degradedUntil)
}

func isPermanent(err error) bool {
	return errors.Is(err, errorvalues.ErrNotFound) ||
		errors.Is(err, errorvalues.ErrConflict) ||
		errors.Is(err, errorvalues.ErrValidation) ||
		errors.Is(err, errorvalues.ErrStorageDegraded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (rs *ResilientStorage) newBackOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = rs.policy.InitialInterval
	exp.MaxInterval = rs.policy.MaxInterval
	exp.MaxElapsedTime = rs.policy.MaxElapsedTime
	var b backoff.BackOff = exp
	if rs.policy.MaxRetries > 0 {
		b = backoff.WithMaxRetries(b, rs.policy.MaxRetries)
	}
	return backoff.WithContext(b, ctx)
}

func (rs *ResilientStorage) retry(ctx context.Context, op string, fn func() error) error {
	return backoff.RetryNotify(func() error {
		err := fn()
		if err != nil && isPermanent(err) {
			return backoff.Permanent(err)
		}
		return err
	}, rs.newBackOff(ctx), func(err error, next time.Duration) {
		slog.Warn("storage call failed, retrying",
			slog.String("op", op),
			slog.Duration("next_attempt_in", next),
			slog.String("error", err.Error()),
		)
		rs.observer.StorageRetry(op)
	})
}

func (rs *ResilientStorage) read(ctx context.Context, op string, fn func() error) error {
	return rs.retry(ctx, op, fn)
}

func (rs *ResilientStorage) write(ctx context.Context, op string, fn func() error) error {
	if rs.Degraded() {
		return errorvalues.ErrStorageDegraded
	}
	err := rs.retry(ctx, op, fn)
	switch {
	case err == nil:
		rs.setDegraded(false)
	case !isPermanent(err):
		rs.setDegraded(true)
	}
	return err
}

func (rs *ResilientStorage) setDegraded(degraded bool) {
	rs.mu.Lock()
	changed := rs.degraded != degraded
	rs.degraded = degraded
	if degraded {
		rs.degradedUntil = rs.now().Add(rs.policy.DegradedCooldown)
	}
	rs.mu.Unlock()
	if !changed {
		return
	}
	if degraded {
		slog.Error("storage entered read-only mode", slog.Duration("cooldown", rs.policy.DegradedCooldown))
	} else {
		slog.Info("storage left read-only mode")
	}
	rs.observer.StorageDegraded(degraded)
}

func readValue[T any](rs *ResilientStorage, ctx context.Context, op string, fn func() (T, error)) (T, error) {
	var result T
	err := rs.read(ctx, op, func() error {
		var err error
		result, err = fn()
		return err
	})
	return result, err
}

func (rs *ResilientStorage) Users() UsersRepositoryI {
	return &resilientUsers{rs: rs, inner: rs.inner.Users()}
}

func (rs *ResilientStorage) Habits() HabitEntriesRepositoryI {
	return &resilientHabits{rs: rs, inner: rs.inner.Habits()}
}

func (rs *ResilientStorage) UserAchievements() UserAchievementsRepositoryI {
	return &resilientUserAchievements{rs: rs, inner: rs.inner.UserAchievements()}
}

func (rs *ResilientStorage) Activities() ActivitiesRepositoryI {
	return &resilientActivities{rs: rs, inner: rs.inner.Activities()}
}

func (rs *ResilientStorage) Unlocks() UnlockIndexI {
	return &resilientUnlocks{rs: rs, inner: rs.inner.Unlocks()}
}

// WithinTx retries the whole transaction. Callbacks get the backend's own
// transactional view, so nothing inside is retried twice.
func (rs *ResilientStorage) WithinTx(ctx context.Context, fn func(tx Storage) error) error {
	return rs.write(ctx, "tx", func() error {
		return rs.inner.WithinTx(ctx, fn)
	})
}

func (rs *ResilientStorage) Ping(ctx context.Context) error {
	return rs.inner.Ping(ctx)
}

type resilientUsers struct {
	rs    *ResilientStorage
	inner UsersRepositoryI
}

func (r *resilientUsers) Create(ctx context.Context, user *entity.User) error {
	return r.rs.write(ctx, "users.create", func() error { return r.inner.Create(ctx, user) })
}

func (r *resilientUsers) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return readValue(r.rs, ctx, "users.get", func() (*entity.User, error) { return r.inner.GetByID(ctx, id) })
}

func (r *resilientUsers) Update(ctx context.Context, user *entity.User) error {
	return r.rs.write(ctx, "users.update", func() error { return r.inner.Update(ctx, user) })
}

type resilientHabits struct {
	rs    *ResilientStorage
	inner HabitEntriesRepositoryI
}

func (r *resilientHabits) Create(ctx context.Context, entry *entity.HabitEntry) error {
	return r.rs.write(ctx, "habits.create", func() error { return r.inner.Create(ctx, entry) })
}

func (r *resilientHabits) Update(ctx context.Context, entry *entity.HabitEntry) error {
	return r.rs.write(ctx, "habits.update", func() error { return r.inner.Update(ctx, entry) })
}

func (r *resilientHabits) GetByTaskAndDate(ctx context.Context, userID, taskID string, day time.Time) (*entity.HabitEntry, error) {
	return readValue(r.rs, ctx, "habits.get", func() (*entity.HabitEntry, error) {
		return r.inner.GetByTaskAndDate(ctx, userID, taskID, day)
	})
}

func (r *resilientHabits) ListByUser(ctx context.Context, userID string) ([]entity.HabitEntry, error) {
	return readValue(r.rs, ctx, "habits.list", func() ([]entity.HabitEntry, error) {
		return r.inner.ListByUser(ctx, userID)
	})
}

func (r *resilientHabits) ListByUserAndDate(ctx context.Context, userID string, day time.Time) ([]entity.HabitEntry, error) {
	return readValue(r.rs, ctx, "habits.list_day", func() ([]entity.HabitEntry, error) {
		return r.inner.ListByUserAndDate(ctx, userID, day)
	})
}

type resilientUserAchievements struct {
	rs    *ResilientStorage
	inner UserAchievementsRepositoryI
}

func (r *resilientUserAchievements) Create(ctx context.Context, ua *entity.UserAchievement) error {
	return r.rs.write(ctx, "user_achievements.create", func() error { return r.inner.Create(ctx, ua) })
}

func (r *resilientUserAchievements) Get(ctx context.Context, userID, achievementID string) (*entity.UserAchievement, error) {
	return readValue(r.rs, ctx, "user_achievements.get", func() (*entity.UserAchievement, error) {
		return r.inner.Get(ctx, userID, achievementID)
	})
}

func (r *resilientUserAchievements) ListByUser(ctx context.Context, userID string) ([]entity.UserAchievement, error) {
	return readValue(r.rs, ctx, "user_achievements.list", func() ([]entity.UserAchievement, error) {
		return r.inner.ListByUser(ctx, userID)
	})
}

type resilientActivities struct {
	rs    *ResilientStorage
	inner ActivitiesRepositoryI
}

func (r *resilientActivities) Append(ctx context.Context, activity *entity.UserActivity) error {
	return r.rs.write(ctx, "activities.append", func() error { return r.inner.Append(ctx, activity) })
}

func (r *resilientActivities) Recent(ctx context.Context, userID string, limit int) ([]entity.UserActivity, error) {
	return readValue(r.rs, ctx, "activities.recent", func() ([]entity.UserActivity, error) {
		return r.inner.Recent(ctx, userID, limit)
	})
}

type resilientUnlocks struct {
	rs    *ResilientStorage
	inner UnlockIndexI
}

func (r *resilientUnlocks) Add(ctx context.Context, achievementID, userID string) error {
	return r.rs.write(ctx, "unlocks.add", func() error { return r.inner.Add(ctx, achievementID, userID) })
}

func (r *resilientUnlocks) Count(ctx context.Context, achievementID string) (int, error) {
	return readValue(r.rs, ctx, "unlocks.count", func() (int, error) { return r.inner.Count(ctx, achievementID) })
}
