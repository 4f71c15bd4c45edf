package usecase

import (
	"context"
	"log"
	"strings"

	"authkit-backend/internal/apperror"
	"authkit-backend/internal/auth/domain"
	"authkit-backend/internal/auth/dto"
	"authkit-backend/internal/auth/repository"
	"authkit-backend/internal/mailer"
	"authkit-backend/pkg/config"
	"authkit-backend/pkg/hash"
	"authkit-backend/pkg/token"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.RefreshTokenRepository
	hasher    *hash.Service
	codec     *token.Codec
	mailQueue mailer.Queue
	config    *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(
	userRepo repository.UserRepository,
	tokenRepo repository.RefreshTokenRepository,
	hasher *hash.Service,
	codec *token.Codec,
	mailQueue mailer.Queue,
	cfg *config.Config,
) AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		hasher:    hasher,
		codec:     codec,
		mailQueue: mailQueue,
		config:    cfg,
	}
}

// badCredentials is deliberately identical for an unknown email and a wrong
// password so the response never reveals which part was wrong.
func badCredentials(email string) error {
	return apperror.Validation("Bad credentials", nil, map[string]any{"email": email})
}

func invalidToken() error {
	return apperror.Validation("Invalid Token", nil, nil)
}

func (u *authUsecase) SignUp(ctx context.Context, req *dto.RegisterRequest) (string, error) {
	existing, err := u.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", apperror.Conflict("User already exists", map[string]any{"email": req.Email})
	}

	username := req.Username
	if username != "" {
		existing, err := u.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return "", err
		}
		if existing != nil {
			return "", apperror.Conflict("User already exists", map[string]any{"username": username})
		}
	} else {
		// Derive a username from the email local part
		username = strings.SplitN(req.Email, "@", 2)[0]
	}

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Email:           req.Email,
		Username:        username,
		Password:        hashedPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Role:            domain.RoleUser,
		IsEmailVerified: false,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	// Fire-and-forget: the mail worker picks this up and sends the
	// verification email with a freshly minted token.
	u.mailQueue.Enqueue(mailer.Event{Kind: mailer.EventSignUp, Email: user.Email})

	return user.ID, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, badCredentials(email)
	}

	if !u.hasher.Compare(password, user.Password) {
		return nil, badCredentials(email)
	}

	payload := token.Payload{UserID: user.ID, Role: user.Role}

	accessToken, err := u.codec.Generate(payload, u.config.SecretKey, u.config.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	refreshRecord, err := u.tokenRepo.Create(ctx, repository.CreateTokenArgs{
		Payload:   payload,
		SecretKey: u.config.RefreshTokenSecretKey,
		ExpiresIn: u.config.RefreshTokenExpiry,
		UserID:    user.ID,
		TokenType: domain.TokenTypeRefresh,
	})
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		ID:           user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshRecord.Token,
		Role:         user.Role,
	}, nil
}

func (u *authUsecase) VerifyEmail(ctx context.Context, tokenString string) (bool, error) {
	payload, err := u.codec.Verify(tokenString, u.config.SecretKey)
	if err != nil {
		return false, invalidToken()
	}
	if payload.Email == "" {
		return false, invalidToken()
	}

	user, err := u.userRepo.GetByEmail(ctx, payload.Email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, apperror.NotFound("User not found", map[string]any{"email": payload.Email})
	}

	// Re-applying the same flag with a still-valid token is harmless.
	verified := true
	if _, err := u.userRepo.Update(ctx, user.ID, repository.UserUpdate{IsEmailVerified: &verified}); err != nil {
		return false, err
	}

	return true, nil
}

func (u *authUsecase) ForgotPassword(ctx context.Context, email string) (bool, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, apperror.NotFound("User not found", map[string]any{"email": email})
	}

	resetToken, err := u.codec.Generate(
		token.Payload{UserID: user.ID},
		u.config.SecretKey,
		u.config.ResetTokenExpiry,
	)
	if err != nil {
		return false, err
	}

	// Best-effort: delivery failures are logged by the mail worker, never
	// surfaced to the caller.
	u.mailQueue.Enqueue(mailer.Event{Kind: mailer.EventPasswordReset, Email: user.Email, Token: resetToken})

	return true, nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, tokenString, newPassword string) (bool, error) {
	payload, err := u.codec.Verify(tokenString, u.config.SecretKey)
	if err != nil {
		return false, invalidToken()
	}

	// A payload without a user id silently does nothing.
	if payload.UserID == "" {
		return false, nil
	}

	user, err := u.userRepo.GetByID(ctx, payload.UserID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, apperror.NotFound("User not found", map[string]any{"id": payload.UserID})
	}

	hashedPassword, err := u.hasher.Hash(newPassword)
	if err != nil {
		return false, err
	}
	if err := u.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return false, err
	}

	return true, nil
}

func (u *authUsecase) ResendVerificationEmail(ctx context.Context, email string) (bool, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, apperror.NotFound("User not found", map[string]any{"email": email})
	}

	u.mailQueue.Enqueue(mailer.Event{Kind: mailer.EventSignUp, Email: user.Email})

	return true, nil
}

func (u *authUsecase) RenewAccessToken(ctx context.Context, refreshToken string) (*dto.RenewTokenResponse, error) {
	record, err := u.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if record == nil {
		// Revoked or never issued.
		return nil, invalidToken()
	}

	payload, err := u.codec.Verify(record.Token, u.config.RefreshTokenSecretKey)
	if err != nil {
		log.Printf("[Auth] Invalid refresh token: %v", err)
		return nil, invalidToken()
	}

	// The refresh record is not rotated; only a new access token is issued.
	accessToken, err := u.codec.Generate(
		token.Payload{UserID: payload.UserID, Role: payload.Role},
		u.config.SecretKey,
		u.config.AccessTokenExpiry,
	)
	if err != nil {
		return nil, err
	}

	return &dto.RenewTokenResponse{
		ID:          payload.UserID,
		AccessToken: accessToken,
		Role:        payload.Role,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, refreshToken string) (bool, error) {
	return u.tokenRepo.DeleteByToken(ctx, refreshToken)
}
