package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string

	FirstName         string
	LastName          string
	Bio               string
	ProfilePictureURL string
	SocialLinks       map[string]string
	Address           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile carries the optional user fields shared by register and update.
type Profile struct {
	FirstName         string
	LastName          string
	Bio               string
	ProfilePictureURL string
	SocialLinks       map[string]string
	Address           string
}

// UserPatch only applies non-nil fields.
type UserPatch struct {
	Username          *string
	Email             *string
	PasswordHash      *string
	FirstName         *string
	LastName          *string
	Bio               *string
	ProfilePictureURL *string
	SocialLinks       *map[string]string
	Address           *string
}

func (p UserPatch) Empty() bool {
	return p.Username == nil && p.Email == nil && p.PasswordHash == nil &&
		p.FirstName == nil && p.LastName == nil && p.Bio == nil &&
		p.ProfilePictureURL == nil && p.SocialLinks == nil && p.Address == nil
}

func NewUser(username, email, passwordHash string, p Profile, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, ErrMissingField("password")
	}

	return &User{
		Username:          username,
		Email:             email,
		PasswordHash:      passwordHash,
		FirstName:         strings.TrimSpace(p.FirstName),
		LastName:          strings.TrimSpace(p.LastName),
		Bio:               p.Bio,
		ProfilePictureURL: strings.TrimSpace(p.ProfilePictureURL),
		SocialLinks:       cloneLinks(p.SocialLinks),
		Address:           strings.TrimSpace(p.Address),
		CreatedAt:         now.UTC(),
		UpdatedAt:         now.UTC(),
	}, nil
}

func (u *User) ApplyPatch(p UserPatch, now time.Time) error {
	if p.Username != nil {
		v := strings.TrimSpace(*p.Username)
		if err := validateUsername(v); err != nil {
			return err
		}
		u.Username = v
	}
	if p.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*p.Email))
		if err := validateEmail(v); err != nil {
			return err
		}
		u.Email = v
	}
	if p.PasswordHash != nil {
		if *p.PasswordHash == "" {
			return ErrInvalidField("password", "must not be empty")
		}
		u.PasswordHash = *p.PasswordHash
	}
	if p.FirstName != nil {
		u.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		u.LastName = strings.TrimSpace(*p.LastName)
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.ProfilePictureURL != nil {
		u.ProfilePictureURL = strings.TrimSpace(*p.ProfilePictureURL)
	}
	if p.SocialLinks != nil {
		u.SocialLinks = cloneLinks(*p.SocialLinks)
	}
	if p.Address != nil {
		u.Address = strings.TrimSpace(*p.Address)
	}
	u.UpdatedAt = now.UTC()
	return nil
}

func validateUsername(v string) error {
	if v == "" {
		return ErrMissingField("username")
	}
	if len(v) > 50 {
		return ErrInvalidField("username", "must be <= 50 chars")
	}
	return nil
}

func validateEmail(v string) error {
	if v == "" {
		return ErrMissingField("email")
	}
	if len(v) > 254 || !strings.Contains(v, "@") {
		return ErrInvalidField("email", "invalid email format")
	}
	return nil
}

func cloneLinks(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
