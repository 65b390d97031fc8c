package records

import (
	"github.com/mochihq/mochi/pkg/types"
)

const configHeading = "Configuration"

// Configuration file keys. These are a compatibility surface shared with
// every client that has ever written a config.md; do not rename.
const (
	keyCompanionName  = "nom_compagnon"
	keyPersonality    = "personnalite"
	keyColor          = "couleur"
	keyOnboarding     = "onboarding_complete"
	keyUserName       = "nom_utilisateur"
	keyUserOccupation = "occupation"
	keyUserGoal       = "objectif"
	keyNotifyFreq     = "frequence_notifications"
	keyBriefing       = "briefing_matinal"
	keyBriefingHour   = "heure_briefing"
	keyWeekend        = "weekend_protege"
	keyShortcut       = "raccourci_global"
	keyDaysOff        = "jours_off"
	keyMeetingWatch   = "surveillance_reunions"
	keyMeetingIntv    = "intervalle_reunions"
)

// DecodeConfig decodes the singleton configuration record. Missing fields
// keep their DefaultConfig value; an empty blob decodes to DefaultConfig.
func DecodeConfig(text string) types.Config {
	c := types.DefaultConfig()
	recs := Parse(text)
	if len(recs) == 0 {
		return c
	}
	r := recs[0]

	c.CompanionName = r.String(keyCompanionName, c.CompanionName)
	c.Personality = r.String(keyPersonality, c.Personality)
	c.Color = r.String(keyColor, c.Color)
	c.OnboardingComplete = r.Bool(keyOnboarding)
	c.UserName = r.String(keyUserName, "")
	c.UserOccupation = r.String(keyUserOccupation, "")
	c.UserGoal = r.String(keyUserGoal, "")
	if v, ok := r.Get(keyNotifyFreq); ok {
		c.NotificationFrequency = types.ParseNotificationFrequency(v)
	}
	c.MorningBriefing = r.Bool(keyBriefing)
	c.BriefingHour = r.Int(keyBriefingHour, c.BriefingHour)
	c.ProtectedWeekend = r.Bool(keyWeekend)
	c.GlobalShortcut = r.String(keyShortcut, "")
	c.DaysOff = r.Ints(keyDaysOff)
	c.MeetingWatchEnabled = r.Bool(keyMeetingWatch)
	c.MeetingWatchInterval = r.Int(keyMeetingIntv, c.MeetingWatchInterval)
	return c
}

// EncodeConfig renders the configuration as a single top-level record.
// Unset optional strings are omitted rather than written empty.
func EncodeConfig(c types.Config) string {
	b := newBuilder(configHeading)
	b.record(configHeading)
	b.prop(keyCompanionName, c.CompanionName)
	b.prop(keyPersonality, c.Personality)
	b.prop(keyColor, c.Color)
	b.boolProp(keyOnboarding, c.OnboardingComplete)
	b.optStrProp(keyUserName, c.UserName)
	b.optStrProp(keyUserOccupation, c.UserOccupation)
	b.optStrProp(keyUserGoal, c.UserGoal)
	b.prop(keyNotifyFreq, string(types.ParseNotificationFrequency(string(c.NotificationFrequency))))
	b.boolProp(keyBriefing, c.MorningBriefing)
	b.intProp(keyBriefingHour, c.BriefingHour)
	b.boolProp(keyWeekend, c.ProtectedWeekend)
	b.optStrProp(keyShortcut, c.GlobalShortcut)
	if len(c.DaysOff) > 0 {
		b.intsProp(keyDaysOff, c.DaysOff)
	}
	b.boolProp(keyMeetingWatch, c.MeetingWatchEnabled)
	b.intProp(keyMeetingIntv, c.MeetingWatchInterval)
	b.endRecord()
	return b.text()
}
