package repository

import (
	"context"
	"time"

	"authkit-backend/internal/auth/domain"
	"authkit-backend/pkg/paging"
	"authkit-backend/pkg/token"
)

// UserFilter is a typed lookup filter. Set fields are combined with AND.
type UserFilter struct {
	ID       string
	Email    string
	Username string
}

// UserUpdate holds the mutable user fields. Nil fields are left untouched.
type UserUpdate struct {
	FirstName       *string
	LastName        *string
	IsEmailVerified *bool
}

// UserRepository is the persistence boundary for user records. Lookups return
// (nil, nil) when no record matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetAllAndCount(ctx context.Context, args paging.Args) ([]*domain.User, int64, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, hashedPassword string) error
	Delete(ctx context.Context, id string) (*domain.User, error)
}

// CreateTokenArgs describe a refresh-token grant to mint and persist.
type CreateTokenArgs struct {
	Payload   token.Payload
	SecretKey string
	ExpiresIn time.Duration
	UserID    string
	TokenType string
}

// RefreshTokenRepository persists refresh-token records. Create signs the
// token itself so the stored record and the embedded expiry always agree.
// DeleteByToken reports whether a record existed; deleting an absent token is
// not an error.
type RefreshTokenRepository interface {
	Create(ctx context.Context, args CreateTokenArgs) (*domain.RefreshToken, error)
	GetByToken(ctx context.Context, tokenString string) (*domain.RefreshToken, error)
	DeleteByToken(ctx context.Context, tokenString string) (bool, error)
	DeleteByUserID(ctx context.Context, userID string) (bool, error)
}
