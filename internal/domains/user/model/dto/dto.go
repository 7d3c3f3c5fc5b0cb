package dto

import (
	"trimly/internal/domains/user/model"
)

type UserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = model.Role
}

type UpdateProfileRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"required,max=100"`
}
