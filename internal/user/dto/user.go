package dto

import (
	"authkit-backend/internal/auth/domain"
	"authkit-backend/pkg/paging"
)

type UpdateUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
}

type ListUsersResponse struct {
	Paging  paging.Result  `json:"paging"`
	Results []*domain.User `json:"results"`
}
