// Package progression holds the pure scoring rules: GlowScore, levels,
// requirement progress and the static achievement catalog.
package progression

import (
	"math"
	"time"

	"github.com/peachieglow/glow/pkg/entity"
)

const (
	ScoreWindow        = 30 * 24 * time.Hour
	consistencyWeight  = 50.0
	streakBonusPerDay  = 2
	streakBonusCap     = 30
	levelBonusPerLevel = 5
	maxGlowScore       = 100
	minGlowScore       = 0
)

// ComputeGlowScore blends the trailing-window completion rate, the user's
// current streak and level into a score clamped to [0, 100].
func ComputeGlowScore(user *entity.User, entries []entity.HabitEntry, now time.Time) int {
	var windowed, completed int
	for _, e := range entries {
		if now.Sub(e.Date) > ScoreWindow {
			continue
		}
		windowed++
		if e.Completed {
			completed++
		}
	}
	consistency := 0.0
	if windowed > 0 {
		consistency = float64(completed) / float64(windowed) * consistencyWeight
	}
	streakBonus := min(user.CurrentStreak*streakBonusPerDay, streakBonusCap)
	levelBonus := user.Level * levelBonusPerLevel

	score := int(math.Round(consistency + float64(streakBonus) + float64(levelBonus)))
	return max(minGlowScore, min(score, maxGlowScore))
}
