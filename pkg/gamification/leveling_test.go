package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mochihq/mochi/pkg/types"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRequiredXP(t *testing.T) {
	assert.Equal(t, 52, RequiredXP(1))
	assert.Equal(t, 108, RequiredXP(2))
	assert.Equal(t, 168, RequiredXP(3))
	assert.Equal(t, 700, RequiredXP(10))
}

func TestAddXPExactThreshold(t *testing.T) {
	// Clearing exactly the threshold always lands on the next level with
	// zero XP, whatever the starting XP within range.
	for _, start := range []int{0, 1, 25, RequiredXP(3) - 1} {
		p := types.Progress{Level: 3, CurrentXP: start}
		gained := AddXP(&p, RequiredXP(3)-start)
		assert.Equal(t, 1, gained, "start=%d", start)
		assert.Equal(t, 4, p.Level, "start=%d", start)
		assert.Equal(t, 0, p.CurrentXP, "start=%d", start)
	}
}

func TestAddXPMultiLevelRollover(t *testing.T) {
	p := types.Progress{Level: 1}
	// Enough to clear level 1 and level 2 with 5 XP left over.
	reward := RequiredXP(1) + RequiredXP(2) + 5
	gained := AddXP(&p, reward)

	assert.Equal(t, 2, gained)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 5, p.CurrentXP)
	assert.Less(t, p.CurrentXP, RequiredXP(p.Level))
	assert.Equal(t, reward, p.TotalXP)
	assert.Equal(t, 2*LevelUpCoins, p.Coins)
}

func TestAddXPBelowThreshold(t *testing.T) {
	p := types.Progress{Level: 2, CurrentXP: 10, TotalXP: 100, Coins: 3}
	gained := AddXP(&p, 20)

	assert.Equal(t, 0, gained)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 30, p.CurrentXP)
	assert.Equal(t, 120, p.TotalXP)
	assert.Equal(t, 3, p.Coins)
}

func TestAddXPIgnoresNonPositive(t *testing.T) {
	p := types.Progress{Level: 2, CurrentXP: 10, TotalXP: 100}
	assert.Zero(t, AddXP(&p, 0))
	assert.Zero(t, AddXP(&p, -5))
	assert.Equal(t, 100, p.TotalXP, "TotalXP is monotonic")
}

func TestRecordActivity(t *testing.T) {
	t.Run("first activity starts the streak", func(t *testing.T) {
		p := types.DefaultProgress()
		RecordActivity(&p, day("2026-02-10"))
		assert.Equal(t, 1, p.StreakDays)
	})

	t.Run("consecutive day extends", func(t *testing.T) {
		p := types.DefaultProgress()
		RecordActivity(&p, day("2026-02-10"))
		RecordActivity(&p, day("2026-02-11"))
		assert.Equal(t, 2, p.StreakDays)
	})

	t.Run("same day is a no-op", func(t *testing.T) {
		p := types.DefaultProgress()
		RecordActivity(&p, day("2026-02-10"))
		RecordActivity(&p, day("2026-02-10"))
		assert.Equal(t, 1, p.StreakDays)
	})

	t.Run("gap resets to one", func(t *testing.T) {
		p := types.DefaultProgress()
		RecordActivity(&p, day("2026-02-10"))
		RecordActivity(&p, day("2026-02-14"))
		assert.Equal(t, 1, p.StreakDays)
	})
}
