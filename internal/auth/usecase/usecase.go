package usecase

import (
	"context"

	"authkit-backend/internal/auth/dto"
)

// AuthUsecase is the authentication/session lifecycle: credential
// verification, token issuance and renewal, revocation, and the email
// verification and password-reset sub-flows.
type AuthUsecase interface {
	SignUp(ctx context.Context, req *dto.RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	VerifyEmail(ctx context.Context, tokenString string) (bool, error)
	ForgotPassword(ctx context.Context, email string) (bool, error)
	ResetPassword(ctx context.Context, tokenString, newPassword string) (bool, error)
	ResendVerificationEmail(ctx context.Context, email string) (bool, error)
	RenewAccessToken(ctx context.Context, refreshToken string) (*dto.RenewTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) (bool, error)
}
