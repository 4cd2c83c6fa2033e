package notify

import (
	"errors"
	"net/http"

	"commute-notice/internal/models"
	"commute-notice/pkg/utils"

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

// Send handles POST /notifications.
func (h *Handler) Send(c echo.Context) error {
	username, err := utils.GetUsernameFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: err.Error()})
	}

	var req models.NotificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	resp, err := h.service.Send(c.Request().Context(), username, req)
	if err != nil {
		if errors.Is(err, models.ErrCredentialsUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Message: "Mail transport is not configured on this server"})
		}
		c.Logger().Error("Handler.Send: ", err)
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{Message: "Failed to send the notification email"})
	}

	return c.JSON(http.StatusOK, resp)
}
