package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/peachieglow/glow/internal/error_values"
	"github.com/peachieglow/glow/internal/metrics"
	"github.com/peachieglow/glow/internal/progression"
	"github.com/peachieglow/glow/internal/repository"
	"github.com/peachieglow/glow/pkg/entity"
	"github.com/peachieglow/glow/pkg/keylock"
)

// Every streakMilestoneEvery-th day of a user's streak gets its own activity.
const streakMilestoneEvery = 7

type HabitsService struct {
	storage      repository.Storage
	achievements *AchievementsService
	locks        *keylock.KeyedMutex
	now          func() time.Time
	metrics      metrics.Recorder
}

func NewHabitsService(storage repository.Storage, achievements *AchievementsService, locks *keylock.KeyedMutex, opts ...Option) *HabitsService {
	if storage == nil || achievements == nil || locks == nil {
		log.Fatal("on habits service provided nil dependencies")
	}
	o := buildOptions(opts)
	return &HabitsService{
		storage:      storage,
		achievements: achievements,
		locks:        locks,
		now:          o.now,
		metrics:      o.metrics,
	}
}

// carriedStreak is the per-task streak a completion today builds on.
func (hs *HabitsService) carriedStreak(ctx context.Context, userID, taskID string, day time.Time) (int, error) {
	prev, err := hs.storage.Habits().GetByTaskAndDate(ctx, userID, taskID, day.AddDate(0, 0, -1))
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitEntryNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if !prev.Completed {
		return 0, nil
	}
	return prev.Streak, nil
}

func (hs *HabitsService) RecordHabit(ctx context.Context, req *RecordHabitRequest) (*RecordHabitResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	release := hs.locks.Lock(req.UserID)
	defer release()

	now := hs.now().UTC()
	day := repository.DayStart(now)
	user, err := hs.storage.Users().GetByID(ctx, req.UserID)
	if err != nil {
		return nil, passStorageErr(err, "users repository error")
	}

	isNew := false
	entry, err := hs.storage.Habits().GetByTaskAndDate(ctx, req.UserID, req.TaskID, day)
	switch {
	case errors.Is(err, errorvalues.ErrHabitEntryNotFound):
		isNew = true
		entry = &entity.HabitEntry{
			ID:        uuid.NewString(),
			UserID:    req.UserID,
			Date:      day,
			TaskID:    req.TaskID,
			TaskTitle: req.TaskTitle,
			Category:  req.Category,
		}
	case err != nil:
		return nil, passStorageErr(err, "habit entries repository error")
	case entry.Completed == req.Completed:
		// Nothing toggles, so nothing is awarded or written.
		return &RecordHabitResult{
			Habit:           *entry,
			NewGlowScore:    user.GlowScore,
			NewStreak:       user.CurrentStreak,
			NewAchievements: []entity.UserAchievement{},
			XPEarned:        0,
		}, nil
	}

	oldGlowScore := user.GlowScore
	oldLongestStreak := user.LongestStreak
	xpEarned := 0
	entry.TaskTitle = req.TaskTitle
	entry.Category = req.Category
	entry.Completed = req.Completed
	if req.Completed {
		carried, err := hs.carriedStreak(ctx, req.UserID, req.TaskID, day)
		if err != nil {
			return nil, passStorageErr(err, "habit entries repository error")
		}
		completedAt := now
		entry.CompletedAt = &completedAt
		entry.Streak = max(entry.Streak, carried) + 1
		entry.XPEarned = progression.HabitCompletionXP
		xpEarned = progression.HabitCompletionXP

		user.CurrentStreak++
		user.TotalDaysActive++
		progression.AwardXP(user, progression.HabitCompletionXP)
	} else {
		entry.CompletedAt = nil
		entry.Streak = max(0, entry.Streak-1)
		entry.XPEarned = 0
		if !isNew {
			user.CurrentStreak = max(0, user.CurrentStreak-1)
		}
	}
	user.LongestStreak = max(user.LongestStreak, user.CurrentStreak)
	user.LastActive = now

	ledger, err := hs.storage.Habits().ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, passStorageErr(err, "habit entries repository error")
	}
	user.GlowScore = progression.ComputeGlowScore(user, withEntry(ledger, *entry), now)

	existing, err := hs.storage.UserAchievements().ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, passStorageErr(err, "user achievements repository error")
	}
	unlocks := hs.achievements.plan(user, unlockedSet(existing), now)

	activities := habitActivities(user, entry, oldGlowScore, oldLongestStreak, now)
	err = hs.storage.WithinTx(ctx, func(tx repository.Storage) error {
		var err error
		if isNew {
			err = tx.Habits().Create(ctx, entry)
		} else {
			err = tx.Habits().Update(ctx, entry)
		}
		if err != nil {
			return err
		}
		if err = tx.Users().Update(ctx, user); err != nil {
			return err
		}
		for i := range activities {
			if err = tx.Activities().Append(ctx, &activities[i]); err != nil {
				return err
			}
		}
		return persistUnlocks(ctx, tx, unlocks)
	})
	if err != nil {
		return nil, passStorageErr(err, "recording habit error")
	}

	hs.metrics.RecordHabit(req.Completed)
	hs.metrics.RecordXP(xpEarned)
	hs.achievements.recordUnlocks(unlocks)
	return &RecordHabitResult{
		Habit:           *entry,
		NewGlowScore:    user.GlowScore,
		NewStreak:       user.CurrentStreak,
		NewAchievements: records(unlocks),
		XPEarned:        xpEarned,
	}, nil
}

// withEntry returns the ledger with entry replacing its stored version.
func withEntry(ledger []entity.HabitEntry, entry entity.HabitEntry) []entity.HabitEntry {
	for i := range ledger {
		if ledger[i].ID == entry.ID {
			ledger[i] = entry
			return ledger
		}
	}
	return append(ledger, entry)
}

// habitActivities builds the feed entries of a completion. A streak milestone
// is logged only when the streak reaches it for the first time, so toggling a
// task off and on again does not repeat it.
func habitActivities(user *entity.User, entry *entity.HabitEntry, oldGlowScore, oldLongestStreak int, now time.Time) []entity.UserActivity {
	if !entry.Completed {
		return nil
	}
	activities := []entity.UserActivity{{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Type:        entity.ActivityHabitCompleted,
		Description: "Completed " + entry.TaskTitle,
		Timestamp:   now,
		Metadata: entity.ActivityMetadata{
			HabitID:         entry.TaskID,
			StreakDays:      entry.Streak,
			GlowScoreChange: user.GlowScore - oldGlowScore,
		},
	}}
	if user.CurrentStreak > oldLongestStreak && user.CurrentStreak%streakMilestoneEvery == 0 {
		activities = append(activities, entity.UserActivity{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			Type:        entity.ActivityStreakMilestone,
			Description: "Reached a " + strconv.Itoa(user.CurrentStreak) + "-day streak",
			Timestamp:   now,
			Metadata: entity.ActivityMetadata{
				StreakDays: user.CurrentStreak,
			},
		})
	}
	return activities
}

func (hs *HabitsService) GetHabits(ctx context.Context, userID string, date *time.Time) (*HabitsOverview, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	user, err := hs.storage.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, passStorageErr(err, "users repository error")
	}
	target := hs.now().UTC()
	var habits []entity.HabitEntry
	if date != nil {
		target = repository.DayStart(*date)
		habits, err = hs.storage.Habits().ListByUserAndDate(ctx, userID, target)
	} else {
		habits, err = hs.storage.Habits().ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, passStorageErr(err, "habit entries repository error")
	}
	return &HabitsOverview{
		Habits: habits,
		Date:   target,
		User: UserSnapshot{
			GlowScore:     user.GlowScore,
			CurrentStreak: user.CurrentStreak,
			Level:         user.Level,
			XP:            user.XP,
		},
	}, nil
}
