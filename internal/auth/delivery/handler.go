package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authkit-backend/internal/apperror"
	"authkit-backend/internal/auth/dto"
	"authkit-backend/internal/auth/usecase"
	"authkit-backend/pkg/config"
)

// AuthHandler exposes the auth/session lifecycle over HTTP. The refresh token
// travels in an httpOnly cookie for browser clients; refresh and logout also
// accept it in the body as a fallback.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindJSON(c, &req); err != nil {
		apperror.Respond(c, err)
		return
	}

	id, err := h.authUsecase.SignUp(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration successful",
		"data":    dto.RegisterResponse{ID: id},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindJSON(c, &req); err != nil {
		apperror.Respond(c, err)
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	h.setRefreshCookie(c, resp.RefreshToken, int(h.config.RefreshTokenExpiry.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    resp,
	})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := BindJSON(c, &req); err != nil {
		apperror.Respond(c, err)
		return
	}

	ok, err := h.authUsecase.VerifyEmail(c.Request.Context(), req.Token)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email verification successful",
		"data":    ok,
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := BindJSON(c, &req); err != nil {
		apperror.Respond(c, err)
		return
	}

	ok, err := h.authUsecase.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Forgot password email sent",
		"data":    ok,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := BindJSON(c, &req); err != nil {
		apperror.Respond(c, err)
		return
	}

	ok, err := h.authUsecase.ResetPassword(c.Request.Context(), req.Token, req.Password)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password reset successful",
		"data":    ok,
	})
}

func (h *AuthHandler) ResendVerificationEmail(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if err := BindJSON(c, &req); err != nil {
		apperror.Respond(c, err)
		return
	}

	ok, err := h.authUsecase.ResendVerificationEmail(c.Request.Context(), req.Email)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification email resent",
		"data":    ok,
	})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken := h.refreshTokenFromRequest(c)
	if refreshToken == "" {
		apperror.Respond(c, apperror.Validation("Invalid Token", nil, nil))
		return
	}

	resp, err := h.authUsecase.RenewAccessToken(c.Request.Context(), refreshToken)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refresh successful",
		"data":    resp,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken := h.refreshTokenFromRequest(c)
	if refreshToken == "" {
		// Logging out without a session is not an error.
		c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
		return
	}

	deleted, err := h.authUsecase.Logout(c.Request.Context(), refreshToken)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	h.setRefreshCookie(c, "", -1)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
		"data":    deleted,
	})
}

// refreshTokenFromRequest prefers the cookie and falls back to the body for
// non-browser clients.
func (h *AuthHandler) refreshTokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(h.config.RefreshTokenCookieName); err == nil && cookie != "" {
		return cookie
	}

	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, value string, maxAge int) {
	c.SetCookie(h.config.RefreshTokenCookieName, value, maxAge, "/", "", h.config.CookieSecure, true)
}
