package middleware

import (
	"DineWheel/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware handles errors pushed onto the context globally
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			// CustomError carries its own status code
			if customErr, ok := err.(*utils.CustomError); ok {
				utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
				return
			}

			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
