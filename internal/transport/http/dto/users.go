package dto

type RegisterUserReq struct {
	Username          string            `json:"username" validate:"required,max=50,username_format"`
	Email             string            `json:"email" validate:"required,email,max=255"`
	Password          string            `json:"password" validate:"required,min=6,max=72"`
	FirstName         string            `json:"first_name" validate:"max=100"`
	LastName          string            `json:"last_name" validate:"max=100"`
	Bio               string            `json:"bio"`
	ProfilePictureURL string            `json:"profile_picture_url" validate:"omitempty,url"`
	SocialLinks       map[string]string `json:"social_links" validate:"omitempty,dive,keys,required,endkeys,url"`
	Address           string            `json:"address"`
}

type UpdateUserReq struct {
	Username          *string            `json:"username,omitempty" validate:"omitempty,max=50,username_format"`
	Email             *string            `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password          *string            `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	FirstName         *string            `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName          *string            `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Bio               *string            `json:"bio,omitempty"`
	ProfilePictureURL *string            `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
	SocialLinks       *map[string]string `json:"social_links,omitempty" validate:"omitempty,dive,keys,required,endkeys,url"`
	Address           *string            `json:"address,omitempty"`
}
