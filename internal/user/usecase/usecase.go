package usecase

import (
	"context"

	"authkit-backend/internal/auth/domain"
	userdto "authkit-backend/internal/user/dto"
)

// UserUsecase is the user-record CRUD surface. Role and ownership checks
// happen at the delivery boundary; these operations assume an authorized
// caller.
type UserUsecase interface {
	GetAll(ctx context.Context, page, limit, sort string) (*userdto.ListUsersResponse, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, req *userdto.UpdateUserRequest) (*domain.User, error)
	ChangePassword(ctx context.Context, id, oldPassword, newPassword string) (bool, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
