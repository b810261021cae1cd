package progression

import (
	"github.com/peachieglow/glow/pkg/entity"
)

// Catalog is the immutable set of achievement definitions. It is built once at
// startup and shared read-only between requests.
type Catalog struct {
	ordered []entity.Achievement
	byID    map[string]entity.Achievement
}

func NewCatalog(achievements []entity.Achievement) *Catalog {
	c := &Catalog{
		ordered: make([]entity.Achievement, 0, len(achievements)),
		byID:    make(map[string]entity.Achievement, len(achievements)),
	}
	for _, a := range achievements {
		if _, dup := c.byID[a.ID]; dup {
			continue
		}
		c.ordered = append(c.ordered, a)
		c.byID[a.ID] = a
	}
	return c
}

// All returns a copy of the definitions in declaration order.
func (c *Catalog) All() []entity.Achievement {
	out := make([]entity.Achievement, len(c.ordered))
	copy(out, c.ordered)
	return out
}

func (c *Catalog) Get(id string) (entity.Achievement, bool) {
	a, ok := c.byID[id]
	return a, ok
}

func (c *Catalog) Len() int {
	return len(c.ordered)
}

var rarityPercentages = map[entity.Rarity]int{
	entity.RarityCommon:    60,
	entity.RarityRare:      25,
	entity.RarityEpic:      12,
	entity.RarityLegendary: 3,
}

// RarityPercentage is the advertised share of players holding a given rarity.
func RarityPercentage(r entity.Rarity) int {
	if p, ok := rarityPercentages[r]; ok {
		return p
	}
	return 50
}

var rarityOrder = map[entity.Rarity]int{
	entity.RarityLegendary: 0,
	entity.RarityEpic:      1,
	entity.RarityRare:      2,
	entity.RarityCommon:    3,
}

// RarityRank orders rarities from legendary (0) to common (3).
func RarityRank(r entity.Rarity) int {
	if rank, ok := rarityOrder[r]; ok {
		return rank
	}
	return len(rarityOrder)
}

func DefaultAchievements() []entity.Achievement {
	return []entity.Achievement{
		{
			ID:           "first-glow",
			Title:        "First Glow",
			Description:  "Complete your very first skincare task",
			Category:     entity.AchievementMilestone,
			Rarity:       entity.RarityCommon,
			Icon:         "✨",
			XPReward:     25,
			Requirements: entity.Requirement{Type: entity.RequirementDays, Value: 1, Description: "1 active day"},
		},
		{
			ID:           "consistency-week",
			Title:        "Week Warrior",
			Description:  "Complete your routine for 7 days straight",
			Category:     entity.AchievementConsistency,
			Rarity:       entity.RarityCommon,
			Icon:         "🗓️",
			XPReward:     100,
			Requirements: entity.Requirement{Type: entity.RequirementStreak, Value: 7, Description: "7-day streak"},
		},
		{
			ID:           "two-week-glow",
			Title:        "Fortnight Glow",
			Description:  "Keep your streak alive for 14 days",
			Category:     entity.AchievementConsistency,
			Rarity:       entity.RarityRare,
			Icon:         "🌤️",
			XPReward:     200,
			Requirements: entity.Requirement{Type: entity.RequirementStreak, Value: 14, Description: "14-day streak"},
		},
		{
			ID:           "monthly-master",
			Title:        "Monthly Master",
			Description:  "Hold a 30-day streak",
			Category:     entity.AchievementConsistency,
			Rarity:       entity.RarityEpic,
			Icon:         "🏆",
			XPReward:     500,
			Requirements: entity.Requirement{Type: entity.RequirementStreak, Value: 30, Description: "30-day streak"},
		},
		{
			ID:           "ai-chat-master",
			Title:        "GlowBot Best Friend",
			Description:  "Stay active for 50 days",
			Category:     entity.AchievementAI,
			Rarity:       entity.RarityRare,
			Icon:         "🤖",
			XPReward:     250,
			Requirements: entity.Requirement{Type: entity.RequirementDays, Value: 50, Description: "50 active days"},
		},
		{
			ID:           "century-club",
			Title:        "Century Club",
			Description:  "Stay active for 100 days",
			Category:     entity.AchievementMilestone,
			Rarity:       entity.RarityEpic,
			Icon:         "💯",
			XPReward:     500,
			Requirements: entity.Requirement{Type: entity.RequirementDays, Value: 100, Description: "100 active days"},
		},
		{
			ID:           "glow-rising",
			Title:        "Glow Rising",
			Description:  "Reach a GlowScore of 50",
			Category:     entity.AchievementImprovement,
			Rarity:       entity.RarityCommon,
			Icon:         "🌅",
			XPReward:     50,
			Requirements: entity.Requirement{Type: entity.RequirementScore, Value: 50, Description: "GlowScore 50+"},
		},
		{
			ID:           "glow-legend",
			Title:        "Glow Legend",
			Description:  "Reach GlowScore of 100",
			Category:     entity.AchievementMilestone,
			Rarity:       entity.RarityLegendary,
			Icon:         "👑",
			XPReward:     1000,
			Requirements: entity.Requirement{Type: entity.RequirementScore, Value: 100, Description: "GlowScore 100+"},
		},
	}
}
