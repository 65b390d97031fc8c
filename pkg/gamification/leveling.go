// Package gamification maintains the companion's leveling and streak
// counters. All functions are pure mutations of types.Progress; persistence
// is the caller's job.
package gamification

import (
	"time"

	"github.com/mochihq/mochi/pkg/types"
)

// LevelUpCoins is the currency bonus granted for each level gained.
const LevelUpCoins = 10

// RequiredXP returns the XP threshold to clear the given level.
func RequiredXP(level int) int {
	if level < 1 {
		level = 1
	}
	return level*50 + level*level*2
}

// AddXP grants a reward and renormalizes CurrentXP against the
// level-dependent threshold, repeating until it drops below threshold
// again. A single large reward can cross several levels in one pass. It
// returns the number of levels gained.
func AddXP(p *types.Progress, amount int) int {
	if amount <= 0 {
		return 0
	}
	if p.Level < 1 {
		p.Level = 1
	}
	p.CurrentXP += amount
	p.TotalXP += amount

	gained := 0
	for p.CurrentXP >= RequiredXP(p.Level) {
		p.CurrentXP -= RequiredXP(p.Level)
		p.Level++
		p.Coins += LevelUpCoins
		gained++
	}
	return gained
}

// RecordActivity updates the streak for the given day. Consecutive days
// extend the streak, a gap resets it to one, and repeated calls within the
// same day are no-ops.
func RecordActivity(p *types.Progress, day time.Time) {
	d := truncateToDay(day)
	if p.LastActive != nil {
		last := truncateToDay(*p.LastActive)
		switch {
		case !d.After(last):
			// Same day, or a clock that went backwards; leave the streak alone.
			return
		case d.Equal(last.AddDate(0, 0, 1)):
			p.StreakDays++
		default:
			p.StreakDays = 1
		}
	} else {
		p.StreakDays = 1
	}
	p.LastActive = &d
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
