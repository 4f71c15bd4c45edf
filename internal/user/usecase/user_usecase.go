package usecase

import (
	"context"

	"authkit-backend/internal/apperror"
	"authkit-backend/internal/auth/domain"
	"authkit-backend/internal/auth/repository"
	userdto "authkit-backend/internal/user/dto"
	"authkit-backend/pkg/hash"
	"authkit-backend/pkg/paging"
)

// userUsecase implements UserUsecase
type userUsecase struct {
	userRepo repository.UserRepository
	hasher   *hash.Service
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository, hasher *hash.Service) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func (u *userUsecase) GetAll(ctx context.Context, page, limit, sort string) (*userdto.ListUsersResponse, error) {
	args := paging.GetArgs(page, limit, sort)

	users, total, err := u.userRepo.GetAllAndCount(ctx, args)
	if err != nil {
		return nil, err
	}

	return &userdto.ListUsersResponse{
		Paging:  paging.GetResult(args, total),
		Results: users,
	}, nil
}

func (u *userUsecase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found", map[string]any{"id": id})
	}
	return user, nil
}

func (u *userUsecase) Update(ctx context.Context, id string, req *userdto.UpdateUserRequest) (*domain.User, error) {
	update := repository.UserUpdate{FirstName: &req.FirstName}
	if req.LastName != "" {
		update.LastName = &req.LastName
	}

	updated, err := u.userRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("User not found", map[string]any{"id": id})
	}
	return updated, nil
}

func (u *userUsecase) ChangePassword(ctx context.Context, id, oldPassword, newPassword string) (bool, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, apperror.Validation("Bad credentials", nil, map[string]any{"id": id})
	}

	if !u.hasher.Compare(oldPassword, user.Password) {
		return false, apperror.Validation("Old password does not match", nil, map[string]any{"id": id})
	}

	hashedPassword, err := u.hasher.Hash(newPassword)
	if err != nil {
		return false, err
	}
	if err := u.userRepo.UpdatePassword(ctx, id, hashedPassword); err != nil {
		return false, err
	}

	return true, nil
}

func (u *userUsecase) Delete(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := u.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperror.NotFound("User not found", map[string]any{"id": id})
	}
	return deleted, nil
}
