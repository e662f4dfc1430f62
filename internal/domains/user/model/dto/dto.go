package dto

import (
	"frontdesk/internal/domains/user/model"
	gDto "frontdesk/shared/dto"
)

type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Role      string  `json:"role"`
	Theme     string  `json:"theme"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Role = model.Role
	r.Theme = model.Theme
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type UpdateThemeRequest struct {
	Theme string `db:"theme" json:"theme" validate:"required,oneof=light dark"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}
