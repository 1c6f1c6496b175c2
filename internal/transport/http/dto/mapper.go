package dto

import (
	"time"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

func ToEventResp(e *domain.Event, now time.Time) EventResp {
	finish := e.Date
	if e.EndTime != nil {
		finish = *e.EndTime
	}
	ended := finish.Before(now)

	cats := e.Categories
	if cats == nil {
		cats = []string{}
	}

	return EventResp{
		EventID:      e.ID,
		UserID:       e.UserID,
		Name:         e.Name,
		Description:  e.Description,
		Date:         e.Date,
		EndTime:      e.EndTime,
		Location:     e.Location,
		PricingInfo:  e.PricingInfo,
		ThumbnailURL: e.ThumbnailURL,
		Capacity:     e.Capacity,
		State:        string(e.State),
		Categories:   cats,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,

		Ended:    ended,
		Joinable: e.State == domain.StatePublished && !ended,
	}
}

func ToEventResps(items []*domain.Event, now time.Time) []EventResp {
	out := make([]EventResp, 0, len(items))
	for _, it := range items {
		out = append(out, ToEventResp(it, now))
	}
	return out
}

func ToUserResp(u *domain.User) UserResp {
	links := u.SocialLinks
	if links == nil {
		links = map[string]string{}
	}
	return UserResp{
		UserID:            u.ID,
		Username:          u.Username,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Bio:               u.Bio,
		ProfilePictureURL: u.ProfilePictureURL,
		SocialLinks:       links,
		Address:           u.Address,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func ToCategoryResps(items []*domain.Category) []CategoryResp {
	out := make([]CategoryResp, 0, len(items))
	for _, c := range items {
		out = append(out, CategoryResp{CategoryID: c.ID, Name: c.Name})
	}
	return out
}

func ToParticipantResp(p *domain.Participant) ParticipantResp {
	return ParticipantResp{
		UserID:        p.UserID,
		EventID:       p.EventID,
		RSVPDate:      p.RSVPDate,
		PaymentStatus: p.PaymentStatus,
	}
}

func ToParticipantResps(items []*domain.Participant) []ParticipantResp {
	out := make([]ParticipantResp, 0, len(items))
	for _, p := range items {
		out = append(out, ToParticipantResp(p))
	}
	return out
}

// ToEventPatch maps the request onto the domain patch. State is handled by the caller.
func (r UpdateEventReq) ToEventPatch() domain.EventPatch {
	return domain.EventPatch{
		Name:         r.Name,
		Description:  r.Description,
		Date:         r.Date,
		EndTime:      r.EndTime.Value,
		ClearEndTime: r.EndTime.Set && r.EndTime.Value == nil,
		Location:     r.Location,
		PricingInfo:  r.PricingInfo,
		ThumbnailURL: r.ThumbnailURL,
		Capacity:     r.Capacity,
		Categories:   r.Categories,
	}
}

// ToUserPatch leaves the password out; it is hashed by the service.
func (r UpdateUserReq) ToUserPatch() domain.UserPatch {
	return domain.UserPatch{
		Username:          r.Username,
		Email:             r.Email,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Bio:               r.Bio,
		ProfilePictureURL: r.ProfilePictureURL,
		SocialLinks:       r.SocialLinks,
		Address:           r.Address,
	}
}

func (r RegisterUserReq) Profile() domain.Profile {
	return domain.Profile{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Bio:               r.Bio,
		ProfilePictureURL: r.ProfilePictureURL,
		SocialLinks:       r.SocialLinks,
		Address:           r.Address,
	}
}
