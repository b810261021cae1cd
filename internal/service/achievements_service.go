package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/peachieglow/glow/internal/error_values"
	"github.com/peachieglow/glow/internal/metrics"
	"github.com/peachieglow/glow/internal/progression"
	"github.com/peachieglow/glow/internal/repository"
	"github.com/peachieglow/glow/pkg/entity"
	"github.com/peachieglow/glow/pkg/keylock"
)

const recentUnlocksLimit = 3

type AchievementsService struct {
	storage repository.Storage
	catalog *progression.Catalog
	locks   *keylock.KeyedMutex
	now     func() time.Time
	metrics metrics.Recorder
}

func NewAchievementsService(storage repository.Storage, catalog *progression.Catalog, locks *keylock.KeyedMutex, opts ...Option) *AchievementsService {
	if storage == nil || catalog == nil || locks == nil {
		log.Fatal("on achievements service provided nil dependencies")
	}
	o := buildOptions(opts)
	return &AchievementsService{
		storage: storage,
		catalog: catalog,
		locks:   locks,
		now:     o.now,
		metrics: o.metrics,
	}
}

// unlock is one Locked to Unlocked transition waiting to be persisted.
type unlock struct {
	achievement entity.Achievement
	record      entity.UserAchievement
}

func unlockedSet(records []entity.UserAchievement) map[string]bool {
	set := make(map[string]bool, len(records))
	for _, r := range records {
		if r.IsUnlocked {
			set[r.AchievementID] = true
		}
	}
	return set
}

// plan scans the catalog once against the user's current counters. XP of every
// new unlock is added to user, level included.
func (as *AchievementsService) plan(user *entity.User, unlocked map[string]bool, now time.Time) []unlock {
	var result []unlock
	for _, a := range as.catalog.All() {
		if unlocked[a.ID] || !progression.Satisfies(user, a.Requirements) {
			continue
		}
		result = append(result, unlock{
			achievement: a,
			record: entity.UserAchievement{
				ID:            uuid.NewString(),
				UserID:        user.ID,
				AchievementID: a.ID,
				UnlockedAt:    now,
				Progress:      100,
				IsUnlocked:    true,
			},
		})
	}
	for _, u := range result {
		progression.AwardXP(user, u.achievement.XPReward)
	}
	return result
}

func persistUnlocks(ctx context.Context, tx repository.Storage, unlocks []unlock) error {
	for _, u := range unlocks {
		record := u.record
		if err := tx.UserAchievements().Create(ctx, &record); err != nil {
			return err
		}
		if err := tx.Unlocks().Add(ctx, record.AchievementID, record.UserID); err != nil {
			return err
		}
		err := tx.Activities().Append(ctx, &entity.UserActivity{
			ID:          uuid.NewString(),
			UserID:      record.UserID,
			Type:        entity.ActivityAchievementUnlocked,
			Description: "Unlocked achievement: " + u.achievement.Title,
			Timestamp:   record.UnlockedAt,
			Metadata: entity.ActivityMetadata{
				AchievementID: record.AchievementID,
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (as *AchievementsService) recordUnlocks(unlocks []unlock) {
	for _, u := range unlocks {
		as.metrics.RecordUnlock(u.achievement.ID)
		as.metrics.RecordXP(u.achievement.XPReward)
	}
}

func records(unlocks []unlock) []entity.UserAchievement {
	result := make([]entity.UserAchievement, 0, len(unlocks))
	for _, u := range unlocks {
		result = append(result, u.record)
	}
	return result
}

func (as *AchievementsService) Evaluate(ctx context.Context, userID string) ([]entity.UserAchievement, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	release := as.locks.Lock(userID)
	defer release()

	user, err := as.storage.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, passStorageErr(err, "users repository error")
	}
	existing, err := as.storage.UserAchievements().ListByUser(ctx, userID)
	if err != nil {
		return nil, passStorageErr(err, "user achievements repository error")
	}
	unlocks := as.plan(user, unlockedSet(existing), as.now().UTC())
	if len(unlocks) == 0 {
		return []entity.UserAchievement{}, nil
	}
	err = as.storage.WithinTx(ctx, func(tx repository.Storage) error {
		if err := tx.Users().Update(ctx, user); err != nil {
			return err
		}
		return persistUnlocks(ctx, tx, unlocks)
	})
	if err != nil {
		return nil, passStorageErr(err, "persisting unlocks error")
	}
	as.recordUnlocks(unlocks)
	return records(unlocks), nil
}

func (as *AchievementsService) ListAchievements(ctx context.Context, userID string) (*AchievementsOverview, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	user, err := as.storage.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, passStorageErr(err, "users repository error")
	}
	userAchievements, err := as.storage.UserAchievements().ListByUser(ctx, userID)
	if err != nil {
		return nil, passStorageErr(err, "user achievements repository error")
	}
	byID := make(map[string]entity.UserAchievement, len(userAchievements))
	for _, ua := range userAchievements {
		byID[ua.AchievementID] = ua
	}

	catalog := as.catalog.All()
	views := make([]AchievementView, 0, len(catalog))
	summary := AchievementsSummary{Total: len(catalog)}
	for _, a := range catalog {
		totalUnlocked, err := as.storage.Unlocks().Count(ctx, a.ID)
		if err != nil {
			return nil, passStorageErr(err, "unlock index error")
		}
		view := AchievementView{
			Achievement: a,
			GlobalStats: GlobalStats{
				TotalUnlocked:    totalUnlocked,
				RarityPercentage: progression.RarityPercentage(a.Rarity),
			},
		}
		if ua, ok := byID[a.ID]; ok && ua.IsUnlocked {
			unlockedAt := ua.UnlockedAt
			view.UserProgress = UserProgress{Progress: 100, IsUnlocked: true, UnlockedAt: &unlockedAt}
			summary.Unlocked++
			summary.TotalXP += a.XPReward
		} else {
			view.UserProgress = UserProgress{
				Progress:     progression.Progress(user, a.Requirements),
				DaysToUnlock: progression.Remaining(user, a.Requirements),
			}
		}
		views = append(views, view)
	}
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].UserProgress.IsUnlocked != views[j].UserProgress.IsUnlocked {
			return views[i].UserProgress.IsUnlocked
		}
		return progression.RarityRank(views[i].Rarity) < progression.RarityRank(views[j].Rarity)
	})
	summary.RecentUnlocks = recentUnlocks(userAchievements, recentUnlocksLimit)
	return &AchievementsOverview{
		Achievements: views,
		Summary:      summary,
	}, nil
}

// recentUnlocks returns up to limit unlocked records, newest first.
func recentUnlocks(userAchievements []entity.UserAchievement, limit int) []entity.UserAchievement {
	result := make([]entity.UserAchievement, 0, len(userAchievements))
	for _, ua := range userAchievements {
		if ua.IsUnlocked {
			result = append(result, ua)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UnlockedAt.After(result[j].UnlockedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

func (as *AchievementsService) UnlockManually(ctx context.Context, req *UnlockRequest) (*UnlockResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	achievement, ok := as.catalog.Get(req.AchievementID)
	if !ok {
		return nil, errorvalues.ErrAchievementNotFound
	}
	release := as.locks.Lock(req.UserID)
	defer release()

	user, err := as.storage.Users().GetByID(ctx, req.UserID)
	if err != nil {
		return nil, passStorageErr(err, "users repository error")
	}
	existing, err := as.storage.UserAchievements().Get(ctx, req.UserID, req.AchievementID)
	switch {
	case err == nil && existing.IsUnlocked:
		return &UnlockResult{
			Achievement: *existing,
			XPEarned:    0,
			Message:     "Achievement already unlocked",
		}, nil
	case err != nil && !errors.Is(err, errorvalues.ErrAchievementNotFound):
		return nil, passStorageErr(err, "user achievements repository error")
	}

	u := unlock{
		achievement: achievement,
		record: entity.UserAchievement{
			ID:            uuid.NewString(),
			UserID:        user.ID,
			AchievementID: achievement.ID,
			UnlockedAt:    as.now().UTC(),
			Progress:      100,
			IsUnlocked:    true,
		},
	}
	progression.AwardXP(user, achievement.XPReward)
	err = as.storage.WithinTx(ctx, func(tx repository.Storage) error {
		if err := tx.Users().Update(ctx, user); err != nil {
			return err
		}
		return persistUnlocks(ctx, tx, []unlock{u})
	})
	if err != nil {
		return nil, passStorageErr(err, "persisting unlock error")
	}
	as.recordUnlocks([]unlock{u})
	return &UnlockResult{
		Achievement: u.record,
		XPEarned:    achievement.XPReward,
		Message:     "Achievement unlocked successfully!",
	}, nil
}
