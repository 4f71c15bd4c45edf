package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUsecase "authkit-backend/internal/auth/usecase"
	userUsecase "authkit-backend/internal/user/usecase"
	"authkit-backend/pkg/config"
	"authkit-backend/pkg/token"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	userUsecase userUsecase.UserUsecase
	codec       *token.Codec
	config      *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, codec *token.Codec, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase: authUc,
		userUsecase: userUc,
		codec:       codec,
		config:      cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(corsMiddleware(h.config.Origins))

	SetupRoutes(r, h.authUsecase, h.userUsecase, h.codec, h.config)

	return r.Run(addr)
}

// corsMiddleware allows the configured origins with credentials so the
// refresh-token cookie survives cross-origin requests.
func corsMiddleware(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	for _, origin := range origins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
