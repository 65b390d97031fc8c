package types

// NotificationFrequency controls how often the companion is allowed to
// notify the user.
type NotificationFrequency string

const (
	NotifyNever    NotificationFrequency = "jamais"
	NotifyRare     NotificationFrequency = "rare"
	NotifyNormal   NotificationFrequency = "normale"
	NotifyFrequent NotificationFrequency = "frequente"
)

// ParseNotificationFrequency maps a stored value to its enum constant.
// Unknown values resolve to NotifyNormal.
func ParseNotificationFrequency(s string) NotificationFrequency {
	switch NotificationFrequency(s) {
	case NotifyNever, NotifyRare, NotifyNormal, NotifyFrequent:
		return NotificationFrequency(s)
	default:
		return NotifyNormal
	}
}

// Config is the singleton user configuration persisted in config.md.
// There is always exactly one record; an absent file decodes to
// DefaultConfig().
type Config struct {
	CompanionName      string
	Personality        string
	Color              string
	OnboardingComplete bool

	UserName       string
	UserOccupation string
	UserGoal       string

	NotificationFrequency NotificationFrequency
	MorningBriefing       bool
	BriefingHour          int
	ProtectedWeekend      bool
	GlobalShortcut        string
	DaysOff               []int

	MeetingWatchEnabled  bool
	MeetingWatchInterval int // minutes between calendar scans
}

// DefaultConfig returns the configuration used before the user has saved
// anything.
func DefaultConfig() Config {
	return Config{
		CompanionName:         "Mochi",
		Personality:           "amical",
		Color:                 "rose",
		NotificationFrequency: NotifyNormal,
		BriefingHour:          9,
		MeetingWatchInterval:  15,
	}
}
