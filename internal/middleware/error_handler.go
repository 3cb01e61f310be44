package middleware

import (
	"net/http"
	"urbankicks/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler converts anything that escapes a handler into a status
// code plus message; nothing crashes the process.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err)
	}

	if err := c.JSON(code, errorResponse{Message: message}); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
