package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authkit-backend/internal/auth/delivery"
	"authkit-backend/internal/auth/domain"
	authUsecase "authkit-backend/internal/auth/usecase"
	userDelivery "authkit-backend/internal/user/delivery"
	userUsecase "authkit-backend/internal/user/usecase"
	"authkit-backend/pkg/config"
	"authkit-backend/pkg/token"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, codec *token.Codec, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUc, cfg)
	userHandler := userDelivery.NewUserHandler(userUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/verify-email", authHandler.VerifyEmail)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.POST("/resend-email-verification", authHandler.ResendVerificationEmail)
			auth.POST("/logout", authHandler.Logout)
		}

		// Token routes
		tokens := api.Group("/token")
		{
			tokens.POST("/refresh", authHandler.RefreshToken)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(delivery.Authenticate(codec, cfg))
		{
			users.GET("", delivery.Authorize(domain.RoleAdmin), userHandler.List)
			users.GET("/:id", delivery.Authorize(domain.RoleUser, domain.RoleAdmin), userHandler.Get)
			users.PUT("/:id", delivery.Authorize(domain.RoleUser, domain.RoleAdmin), userHandler.Update)
			users.PUT("/:id/password", delivery.Authorize(domain.RoleUser, domain.RoleAdmin), userHandler.ChangePassword)
			users.DELETE("/:id", delivery.Authorize(domain.RoleAdmin), userHandler.Delete)
		}
	}
}
