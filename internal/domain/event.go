package domain

import (
	"strings"
	"time"
)

type Event struct {
	ID           int64
	UserID       int64
	Name         string
	Description  string
	Date         time.Time
	EndTime      *time.Time
	Location     string
	PricingInfo  float64
	ThumbnailURL string
	Capacity     int // 0 = unlimited
	State        EventState
	Categories   []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewEventInput struct {
	UserID       int64
	Name         string
	Description  string
	Date         time.Time
	EndTime      *time.Time
	Location     string
	PricingInfo  float64
	ThumbnailURL string
	Capacity     int
	State        EventState // "" means DRAFT
	Categories   []string
}

// EventPatch only applies non-nil fields. State is deliberately absent:
// it changes through Transition only.
type EventPatch struct {
	Name         *string
	Description  *string
	Date         *time.Time
	EndTime      *time.Time
	ClearEndTime bool // sets end_time back to NULL; wins over EndTime
	Location     *string
	PricingInfo  *float64
	ThumbnailURL *string
	Capacity     *int
	Categories   *[]string
}

func NewEvent(in NewEventInput, now time.Time) (*Event, error) {
	if in.UserID <= 0 {
		return nil, ErrInvalidField("user_id", "must be a positive integer")
	}
	name := strings.TrimSpace(in.Name)
	if err := validateEventName(name); err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		return nil, ErrMissingField("date")
	}
	if in.EndTime != nil && in.EndTime.Before(in.Date) {
		return nil, ErrInvalidField("end_time", "must not be before date")
	}
	if in.PricingInfo < 0 {
		return nil, ErrInvalidField("pricing_info", "must be >= 0")
	}
	if in.Capacity < 0 {
		return nil, ErrInvalidField("capacity", "must be >= 0 (0 means unlimited)")
	}

	state := in.State
	if state == "" {
		state = StateDraft
	}
	if state != StateDraft && state != StatePublished {
		return nil, ErrInvalidField("state", "new events must be DRAFT or PUBLISHED")
	}

	cats, err := NormalizeCategoryNames(in.Categories)
	if err != nil {
		return nil, err
	}

	e := &Event{
		UserID:       in.UserID,
		Name:         name,
		Description:  in.Description,
		Date:         in.Date.UTC(),
		Location:     strings.TrimSpace(in.Location),
		PricingInfo:  in.PricingInfo,
		ThumbnailURL: strings.TrimSpace(in.ThumbnailURL),
		Capacity:     in.Capacity,
		State:        state,
		Categories:   cats,
		CreatedAt:    now.UTC(),
		UpdatedAt:    now.UTC(),
	}
	if in.EndTime != nil {
		t := in.EndTime.UTC()
		e.EndTime = &t
	}
	return e, nil
}

func (e *Event) ApplyPatch(p EventPatch, now time.Time) error {
	if e.State == StateCancelled {
		return ErrInvalidState("cancelled event cannot be updated")
	}

	if p.Name != nil {
		v := strings.TrimSpace(*p.Name)
		if err := validateEventName(v); err != nil {
			return err
		}
		e.Name = v
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		if p.Date.IsZero() {
			return ErrInvalidField("date", "must be a valid time")
		}
		e.Date = p.Date.UTC()
	}
	switch {
	case p.ClearEndTime:
		e.EndTime = nil
	case p.EndTime != nil:
		t := p.EndTime.UTC()
		e.EndTime = &t
	}
	if (p.Date != nil || p.EndTime != nil) && e.EndTime != nil && e.EndTime.Before(e.Date) {
		return ErrInvalidField("end_time", "must not be before date")
	}
	if p.Location != nil {
		e.Location = strings.TrimSpace(*p.Location)
	}
	if p.PricingInfo != nil {
		if *p.PricingInfo < 0 {
			return ErrInvalidField("pricing_info", "must be >= 0")
		}
		e.PricingInfo = *p.PricingInfo
	}
	if p.ThumbnailURL != nil {
		e.ThumbnailURL = strings.TrimSpace(*p.ThumbnailURL)
	}
	if p.Capacity != nil {
		if *p.Capacity < 0 {
			return ErrInvalidField("capacity", "must be >= 0 (0 means unlimited)")
		}
		e.Capacity = *p.Capacity
	}
	if p.Categories != nil {
		cats, err := NormalizeCategoryNames(*p.Categories)
		if err != nil {
			return err
		}
		e.Categories = cats
	}
	e.UpdatedAt = now.UTC()
	return nil
}

// Transition moves the event along the state machine. See EventState.CanTransition.
func (e *Event) Transition(to EventState, now time.Time) error {
	if !to.Valid() {
		return ErrInvalidField("state", "must be one of PUBLISHED, DRAFT, CANCELLED")
	}
	if e.State == to {
		return ErrInvalidState("event is already " + string(to))
	}
	if !e.State.CanTransition(to) {
		return ErrInvalidState("cannot move event from " + string(e.State) + " to " + string(to))
	}
	e.State = to
	e.UpdatedAt = now.UTC()
	return nil
}

func validateEventName(v string) error {
	if v == "" {
		return ErrMissingField("name")
	}
	if len(v) > 200 {
		return ErrInvalidField("name", "must be <= 200 chars")
	}
	return nil
}
