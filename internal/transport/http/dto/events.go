package dto

import (
	"encoding/json"
	"time"
)

type CreateEventReq struct {
	Name         string     `json:"name" validate:"required,max=200"`
	Description  string     `json:"description"`
	Date         *time.Time `json:"date" validate:"required"`
	EndTime      *time.Time `json:"end_time"`
	Location     string     `json:"location"`
	PricingInfo  *float64   `json:"pricing_info" validate:"omitempty,gte=0"`
	ThumbnailURL string     `json:"thumbnail_url" validate:"omitempty,url"`
	Capacity     *int       `json:"capacity" validate:"omitempty,gte=0"`
	State        string     `json:"state" validate:"omitempty,oneof=DRAFT PUBLISHED"`
	Categories   []string   `json:"categories" validate:"omitempty,dive,required,max=100"`
}

// UpdateEventReq is a partial update. State is accepted only to be rejected with a
// pointer to the transition endpoints.
type UpdateEventReq struct {
	Name         *string      `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string      `json:"description,omitempty"`
	Date         *time.Time   `json:"date,omitempty"`
	EndTime      NullableTime `json:"end_time"`
	Location     *string      `json:"location,omitempty"`
	PricingInfo  *float64     `json:"pricing_info,omitempty" validate:"omitempty,gte=0"`
	ThumbnailURL *string      `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	Capacity     *int         `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Categories   *[]string    `json:"categories,omitempty" validate:"omitempty,dive,required,max=100"`
	State        *string      `json:"state,omitempty"`
}

// NullableTime tells an absent field apart from an explicit null.
// Set is false when the key is missing; Set with a nil Value means null.
type NullableTime struct {
	Set   bool
	Value *time.Time
}

func (n *NullableTime) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(b, &t); err != nil {
		return err
	}
	n.Value = &t
	return nil
}
