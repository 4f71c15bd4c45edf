package usecase

import (
	"context"
	"strings"

	"authkit-backend/internal/auth/domain"
	"authkit-backend/internal/auth/repository"
	"authkit-backend/pkg/hash"
)

// EnsureAdminUser creates the bootstrap admin account when it does not exist
// yet. Called once at startup with the ADMIN_EMAIL/ADMIN_PASSWORD env values.
func EnsureAdminUser(ctx context.Context, userRepo repository.UserRepository, hasher *hash.Service, email, password string) error {
	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	return userRepo.Create(ctx, &domain.User{
		Email:           email,
		Username:        strings.SplitN(email, "@", 2)[0],
		Password:        hashedPassword,
		FirstName:       "Admin",
		Role:            domain.RoleAdmin,
		IsEmailVerified: true,
	})
}
