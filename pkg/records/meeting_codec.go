package records

import (
	"github.com/mochihq/mochi/pkg/types"
)

const meetingsTitle = "Réunions"

// Meeting proposal file keys.
const (
	keyMeetingRecID  = "id"
	keyMeetingExtID  = "meeting_id"
	keyMeetingStart  = "debut"
	keyMeetingEnd    = "fin"
	keyMeetingStatus = "statut"
	keyMeetingReview = "examinee_le"

	keySuggestedID       = "id"
	keySuggestedDesc     = "description"
	keySuggestedPriority = "priorite"
	keySuggestedAccepted = "acceptee"
)

// DecodeMeetings decodes one proposal per top-level record. Nested records
// become suggested tasks, in source order, with properties scoped to the
// sub-record they appear under.
func DecodeMeetings(text string) []types.MeetingProposal {
	recs := Parse(text)
	proposals := make([]types.MeetingProposal, 0, len(recs))
	for _, r := range recs {
		m := types.MeetingProposal{
			ID:         idOrFresh(r.String(keyMeetingRecID, "")),
			MeetingID:  r.String(keyMeetingExtID, ""),
			Title:      r.Heading,
			Start:      r.Instant(keyMeetingStart),
			End:        r.Instant(keyMeetingEnd),
			Status:     types.ParseMeetingStatus(r.String(keyMeetingStatus, "")),
			ReviewedAt: r.Instant(keyMeetingReview),
		}
		for _, c := range r.Children {
			st := types.SuggestedTask{
				ID:          idOrFresh(c.String(keySuggestedID, "")),
				Title:       c.Heading,
				Description: c.String(keySuggestedDesc, ""),
				Priority:    types.ParsePriority(c.String(keySuggestedPriority, "")),
			}
			if v, ok := c.Get(keySuggestedAccepted); ok {
				accepted := v == "true"
				st.Accepted = &accepted
			}
			m.SuggestedTasks = append(m.SuggestedTasks, st)
		}
		proposals = append(proposals, m)
	}
	return proposals
}

// EncodeMeetings renders proposals with their suggested tasks as nested
// records. The acceptance tri-state is only written once decided.
func EncodeMeetings(proposals []types.MeetingProposal) string {
	b := newBuilder(meetingsTitle)
	for _, m := range proposals {
		b.record(m.Title)
		b.prop(keyMeetingRecID, m.ID)
		b.optStrProp(keyMeetingExtID, m.MeetingID)
		b.optInstantProp(keyMeetingStart, m.Start)
		b.optInstantProp(keyMeetingEnd, m.End)
		b.prop(keyMeetingStatus, string(types.ParseMeetingStatus(string(m.Status))))
		b.optInstantProp(keyMeetingReview, m.ReviewedAt)
		for _, st := range m.SuggestedTasks {
			b.child(st.Title)
			b.prop(keySuggestedID, st.ID)
			b.optStrProp(keySuggestedDesc, st.Description)
			b.prop(keySuggestedPriority, string(types.ParsePriority(string(st.Priority))))
			if st.Accepted != nil {
				b.boolProp(keySuggestedAccepted, *st.Accepted)
			}
		}
		b.endRecord()
	}
	return b.text()
}
