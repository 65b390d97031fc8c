package types

import (
	"errors"
	"time"
)

// ErrAlreadyDecided is returned when a suggested task's acceptance is set a
// second time. Review is one-shot per task.
var ErrAlreadyDecided = errors.New("types: suggested task already accepted or declined")

// MeetingStatus tracks whether the user has reviewed a meeting proposal.
type MeetingStatus string

const (
	MeetingPending  MeetingStatus = "en_attente"
	MeetingReviewed MeetingStatus = "examinee"
)

// ParseMeetingStatus maps a stored status value to its enum constant.
// Unknown values resolve to MeetingPending so the proposal resurfaces for
// review rather than silently disappearing.
func ParseMeetingStatus(s string) MeetingStatus {
	switch MeetingStatus(s) {
	case MeetingPending, MeetingReviewed:
		return MeetingStatus(s)
	default:
		return MeetingPending
	}
}

// SuggestedTask is a task candidate attached to a meeting proposal.
// Accepted is a tri-state: nil means the user has not decided yet.
type SuggestedTask struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Accepted    *bool
}

// SetAccepted records the user's decision. Once the tri-state has left
// "unset" it cannot change.
func (s *SuggestedTask) SetAccepted(v bool) error {
	if s.Accepted != nil {
		return ErrAlreadyDecided
	}
	s.Accepted = &v
	return nil
}

// MeetingProposal is a calendar meeting discovered by the watcher together
// with the tasks suggested for it, persisted in state/meetings.md.
type MeetingProposal struct {
	ID             string
	MeetingID      string
	Title          string
	Start          *time.Time
	End            *time.Time
	Status         MeetingStatus
	ReviewedAt     *time.Time
	SuggestedTasks []SuggestedTask
}

// MarkReviewed closes the proposal at the given instant.
func (m *MeetingProposal) MarkReviewed(now time.Time) {
	m.Status = MeetingReviewed
	m.ReviewedAt = &now
}
