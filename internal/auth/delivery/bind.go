package delivery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"authkit-backend/internal/apperror"
)

// BindJSON decodes the request body and translates binding failures into a
// Validation error with one detail per violated field, in declaration order.
func BindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return apperror.Validation("Validation error", details, nil)
	}

	return apperror.Validation("Invalid request body", nil, nil)
}
