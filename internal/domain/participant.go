package domain

import "time"

// Participant is keyed by (UserID, EventID); there is no surrogate id.
type Participant struct {
	UserID        int64
	EventID       int64
	RSVPDate      time.Time
	PaymentStatus bool
}

type ParticipantPatch struct {
	RSVPDate      *time.Time
	PaymentStatus *bool
}

func (p ParticipantPatch) Empty() bool {
	return p.RSVPDate == nil && p.PaymentStatus == nil
}

func (p *Participant) ApplyPatch(patch ParticipantPatch) {
	if patch.RSVPDate != nil {
		p.RSVPDate = patch.RSVPDate.UTC()
	}
	if patch.PaymentStatus != nil {
		p.PaymentStatus = *patch.PaymentStatus
	}
}
