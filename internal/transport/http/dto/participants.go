package dto

import "time"

type CreateRSVPReq struct {
	EventID       int64      `json:"event_id" validate:"required,gt=0"`
	RSVPDate      *time.Time `json:"rsvp_date"`
	PaymentStatus bool       `json:"payment_status"`
}

type UpdateRSVPReq struct {
	RSVPDate      *time.Time `json:"rsvp_date,omitempty"`
	PaymentStatus *bool      `json:"payment_status,omitempty"`
}
