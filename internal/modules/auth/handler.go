package auth

import (
	"errors"
	"net/http"

	"commute-notice/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	service  ServiceInterface
	validate *validator.Validate
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	authResponse, err := h.service.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid username or password"})
		}
		if errors.Is(err, models.ErrCredentialsUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Message: "Login is not configured on this server"})
		}
		c.Logger().Error("Handler.Login: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to log in"})
	}

	return c.JSON(http.StatusOK, authResponse)
}
