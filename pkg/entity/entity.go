package entity

import (
	"time"
)

type SkinType string

const (
	SkinOily        SkinType = "oily"
	SkinDry         SkinType = "dry"
	SkinCombination SkinType = "combination"
	SkinSensitive   SkinType = "sensitive"
	SkinNormal      SkinType = "normal"
)

type HabitCategory string

const (
	CategoryMorning HabitCategory = "morning"
	CategoryEvening HabitCategory = "evening"
	CategoryAnytime HabitCategory = "anytime"
)

type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Age             int       `json:"age,omitempty"`
	SkinType        SkinType  `json:"skinType"`
	SkinConcerns    []string  `json:"skinConcerns"`
	JoinDate        time.Time `json:"joinDate"`
	LastActive      time.Time `json:"lastActive"`
	GlowScore       int       `json:"glowScore"`
	CurrentStreak   int       `json:"currentStreak"`
	LongestStreak   int       `json:"longestStreak"`
	TotalDaysActive int       `json:"totalDaysActive"`
	Level           int       `json:"level"`
	XP              int       `json:"xp"`
}

// HabitEntry is one task's completion state for one user on one calendar day.
// Date is always truncated to the start of the UTC day.
type HabitEntry struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	Date        time.Time     `json:"date"`
	TaskID      string        `json:"taskId"`
	TaskTitle   string        `json:"taskTitle"`
	Category    HabitCategory `json:"category"`
	Completed   bool          `json:"completed"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
	Streak      int           `json:"streak"`
	XPEarned    int           `json:"xpEarned"`
}

type AchievementCategory string

const (
	AchievementConsistency AchievementCategory = "consistency"
	AchievementMilestone   AchievementCategory = "milestone"
	AchievementImprovement AchievementCategory = "improvement"
	AchievementSocial      AchievementCategory = "social"
	AchievementAI          AchievementCategory = "ai"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

type RequirementType string

const (
	RequirementStreak RequirementType = "streak"
	RequirementDays   RequirementType = "days"
	RequirementScore  RequirementType = "score"
)

type Requirement struct {
	Type        RequirementType `json:"type"`
	Value       int             `json:"value"`
	Description string          `json:"description"`
}

// Achievement is a static catalog definition. Who unlocked it is tracked
// separately by the unlock index.
type Achievement struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Category     AchievementCategory `json:"category"`
	Rarity       Rarity              `json:"rarity"`
	Icon         string              `json:"icon"`
	XPReward     int                 `json:"xpReward"`
	Requirements Requirement         `json:"requirements"`
}

type UserAchievement struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	AchievementID string    `json:"achievementId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
	Progress      int       `json:"progress"`
	IsUnlocked    bool      `json:"isUnlocked"`
}

type ActivityType string

const (
	ActivityHabitCompleted      ActivityType = "habit_completed"
	ActivityAchievementUnlocked ActivityType = "achievement_unlocked"
	ActivityAnalysisCompleted   ActivityType = "analysis_completed"
	ActivityStreakMilestone     ActivityType = "streak_milestone"
)

type ActivityMetadata struct {
	HabitID         string `json:"habitId,omitempty"`
	AchievementID   string `json:"achievementId,omitempty"`
	StreakDays      int    `json:"streakDays,omitempty"`
	GlowScoreChange int    `json:"glowScoreChange,omitempty"`
}

// UserActivity is a write-once audit entry shown in feeds. Nothing reads it
// to make decisions.
type UserActivity struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId"`
	Type        ActivityType     `json:"type"`
	Description string           `json:"description"`
	Timestamp   time.Time        `json:"timestamp"`
	Metadata    ActivityMetadata `json:"metadata"`
}
