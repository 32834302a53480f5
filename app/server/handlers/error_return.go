package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type ErrorMessage struct {
	Message string `json:"message"`
}

func (a *App) er(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return c.JSON(statusCode, &ErrorMessage{
		Message: message,
	})
}
