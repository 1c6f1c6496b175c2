package domain

import "strings"

type EventState string

const (
	StatePublished EventState = "PUBLISHED"
	StateDraft     EventState = "DRAFT"
	StateCancelled EventState = "CANCELLED"
)

func (s EventState) Valid() bool {
	return s == StatePublished || s == StateDraft || s == StateCancelled
}

// ParseEventState accepts any casing ("published", "Draft").
func ParseEventState(v string) (EventState, bool) {
	s := EventState(strings.ToUpper(strings.TrimSpace(v)))
	return s, s.Valid()
}

// CanTransition encodes DRAFT <-> PUBLISHED, {DRAFT,PUBLISHED} -> CANCELLED.
// CANCELLED is terminal.
func (s EventState) CanTransition(to EventState) bool {
	switch s {
	case StateDraft:
		return to == StatePublished || to == StateCancelled
	case StatePublished:
		return to == StateDraft || to == StateCancelled
	default:
		return false
	}
}
