package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authkit-backend/internal/apperror"
	authdelivery "authkit-backend/internal/auth/delivery"
	"authkit-backend/internal/auth/domain"
	userdto "authkit-backend/internal/user/dto"
	"authkit-backend/internal/user/usecase"
)

// UserHandler exposes role- and ownership-gated user CRUD. An actor may always
// read or update its own record regardless of role; deleting your own account
// is never allowed.
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	result, err := h.userUsecase.GetAll(
		c.Request.Context(),
		c.Query("page"),
		c.Query("limit"),
		c.Query("sort"),
	)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Users listed successfully",
		"data":    result,
	})
}

func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !h.canAccess(c, id) {
		apperror.Respond(c, apperror.Forbidden("Forbidden", map[string]any{"id": id}))
		return
	}

	user, err := h.userUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User listed successfully",
		"data":    user,
	})
}

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !h.canAccess(c, id) {
		apperror.Respond(c, apperror.Forbidden("Forbidden", map[string]any{"id": id}))
		return
	}

	var req userdto.UpdateUserRequest
	if err := authdelivery.BindJSON(c, &req); err != nil {
		apperror.Respond(c, err)
		return
	}

	user, err := h.userUsecase.Update(c.Request.Context(), id, &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"data":    user,
	})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	id := c.Param("id")
	if c.GetString(authdelivery.ContextUserID) != id {
		apperror.Respond(c, apperror.Forbidden("Forbidden", map[string]any{"id": id}))
		return
	}

	var req userdto.ChangePasswordRequest
	if err := authdelivery.BindJSON(c, &req); err != nil {
		apperror.Respond(c, err)
		return
	}

	ok, err := h.userUsecase.ChangePassword(c.Request.Context(), id, req.OldPassword, req.Password)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password changed successfully",
		"data":    ok,
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if c.GetString(authdelivery.ContextUserID) == id {
		apperror.Respond(c, apperror.Forbidden("You cannot delete your own account", map[string]any{"id": id}))
		return
	}

	user, err := h.userUsecase.Delete(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
		"data":    user,
	})
}

// canAccess reports whether the caller is an admin or the owner of the record.
func (h *UserHandler) canAccess(c *gin.Context, id string) bool {
	if c.GetString(authdelivery.ContextRole) == domain.RoleAdmin {
		return true
	}
	return c.GetString(authdelivery.ContextUserID) == id
}
