package apperror

import "github.com/gin-gonic/gin"

// Respond writes the error as a {message, details, data} body with the status
// code derived from its kind. Anything unclassified is surfaced as a 500.
func Respond(c *gin.Context, err error) {
	appErr := From(err)
	details := appErr.Details
	if details == nil {
		details = []string{}
	}
	c.JSON(appErr.StatusCode(), gin.H{
		"message": appErr.Message,
		"details": details,
		"data":    appErr.Data,
	})
}
