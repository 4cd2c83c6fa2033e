package utils

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// GetUsernameFromContext reads the username placed in the context by the
// JWT middleware.
func GetUsernameFromContext(c echo.Context) (string, error) {
	username, ok := c.Get("username").(string)
	if !ok || username == "" {
		return "", errors.New("no authenticated user in context")
	}
	return username, nil
}
