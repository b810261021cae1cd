package progression

import (
	"math"

	"github.com/peachieglow/glow/pkg/entity"
)

const (
	XPPerLevel        = 500
	HabitCompletionXP = 10
)

func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// AwardXP adds xp to the user and keeps Level in step with it.
func AwardXP(user *entity.User, xp int) {
	user.XP += xp
	if user.XP < 0 {
		user.XP = 0
	}
	user.Level = LevelForXP(user.XP)
}

// CurrentValue selects the user field a requirement is measured against.
func CurrentValue(user *entity.User, t entity.RequirementType) int {
	switch t {
	case entity.RequirementStreak:
		return user.CurrentStreak
	case entity.RequirementDays:
		return user.TotalDaysActive
	case entity.RequirementScore:
		return user.GlowScore
	}
	return 0
}

func Satisfies(user *entity.User, req entity.Requirement) bool {
	return CurrentValue(user, req.Type) >= req.Value
}

// Progress is the percentage towards req, rounded and capped at 100.
func Progress(user *entity.User, req entity.Requirement) int {
	if req.Value <= 0 {
		return 100
	}
	p := int(math.Round(100 * float64(CurrentValue(user, req.Type)) / float64(req.Value)))
	return max(0, min(p, 100))
}

// Remaining is how far the user is from req, never negative.
func Remaining(user *entity.User, req entity.Requirement) int {
	return max(0, req.Value-CurrentValue(user, req.Type))
}
