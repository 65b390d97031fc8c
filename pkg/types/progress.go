package types

import "time"

// Progress holds the gamification counters persisted in state/mochi.md.
//
// Invariants maintained by the gamification package: Level >= 1, CurrentXP
// is always renormalized below the level threshold, TotalXP never decreases.
type Progress struct {
	Level      int
	CurrentXP  int
	TotalXP    int
	Coins      int
	StreakDays int
	LastActive *time.Time // date-only, no time component
}

// DefaultProgress returns the fresh-state counters for a new user.
func DefaultProgress() Progress {
	return Progress{Level: 1}
}
