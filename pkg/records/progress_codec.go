package records

import (
	"github.com/mochihq/mochi/pkg/types"
)

const (
	progressTitle   = "Mochi"
	progressHeading = "Mochi"
)

// Gamification file keys.
const (
	keyLevel      = "niveau"
	keyCurrentXP  = "xp_actuel"
	keyTotalXP    = "xp_total"
	keyCoins      = "pieces"
	keyStreakDays = "serie_jours"
	keyLastActive = "derniere_activite"
)

// DecodeProgress decodes the singleton gamification record. Any absent
// field falls back to the fresh-state default.
func DecodeProgress(text string) types.Progress {
	p := types.DefaultProgress()
	recs := Parse(text)
	if len(recs) == 0 {
		return p
	}
	r := recs[0]

	p.Level = r.Int(keyLevel, p.Level)
	if p.Level < 1 {
		p.Level = 1
	}
	p.CurrentXP = r.Int(keyCurrentXP, 0)
	p.TotalXP = r.Int(keyTotalXP, 0)
	p.Coins = r.Int(keyCoins, 0)
	p.StreakDays = r.Int(keyStreakDays, 0)
	p.LastActive = r.Date(keyLastActive)
	return p
}

// EncodeProgress renders the gamification counters as a single record.
func EncodeProgress(p types.Progress) string {
	b := newBuilder(progressTitle)
	b.record(progressHeading)
	b.intProp(keyLevel, p.Level)
	b.intProp(keyCurrentXP, p.CurrentXP)
	b.intProp(keyTotalXP, p.TotalXP)
	b.intProp(keyCoins, p.Coins)
	b.intProp(keyStreakDays, p.StreakDays)
	b.optDateProp(keyLastActive, p.LastActive)
	b.endRecord()
	return b.text()
}
