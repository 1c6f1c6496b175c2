package dto

import "time"

// EventResp is the stable API response model.
// NOTE: ended/joinable are computed at read time, not stored.
type EventResp struct {
	EventID int64 `json:"event_id"`
	UserID  int64 `json:"user_id"`

	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Date         time.Time  `json:"date"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Location     string     `json:"location"`
	PricingInfo  float64    `json:"pricing_info"`
	ThumbnailURL string     `json:"thumbnail_url"`

	// 0 means unlimited
	Capacity int `json:"capacity"`

	State      string   `json:"state"`
	Categories []string `json:"categories"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Derived
	Ended    bool `json:"ended"`
	Joinable bool `json:"joinable"`
}

// UserResp never carries the password hash.
type UserResp struct {
	UserID            int64             `json:"user_id"`
	Username          string            `json:"username"`
	Email             string            `json:"email"`
	FirstName         string            `json:"first_name"`
	LastName          string            `json:"last_name"`
	Bio               string            `json:"bio"`
	ProfilePictureURL string            `json:"profile_picture_url"`
	SocialLinks       map[string]string `json:"social_links"`
	Address           string            `json:"address"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

type CategoryResp struct {
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
}

type ParticipantResp struct {
	UserID        int64     `json:"user_id"`
	EventID       int64     `json:"event_id"`
	RSVPDate      time.Time `json:"rsvp_date"`
	PaymentStatus bool      `json:"payment_status"`
}

type PageResp[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}
