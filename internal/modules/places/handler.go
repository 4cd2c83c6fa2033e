package places

import (
	"errors"
	"net/http"

	"commute-notice/internal/models"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// List handles GET /places and returns the sorted municipality names for
// the two selection dropdowns.
func (h *Handler) List(c echo.Context) error {
	names, err := h.service.ListNames()
	if err != nil {
		if errors.Is(err, models.ErrMalformedSchema) {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "The municipality table is missing or malformed"})
		}
		c.Logger().Error("Handler.List: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to load municipality table"})
	}
	return c.JSON(http.StatusOK, names)
}

// Get handles GET /places/:name.
func (h *Handler) Get(c echo.Context) error {
	rec, err := h.service.Lookup(c.Param("name"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Municipality not found"})
		}
		if errors.Is(err, models.ErrMalformedSchema) {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "The municipality table is missing or malformed"})
		}
		c.Logger().Error("Handler.Get: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to load municipality table"})
	}
	return c.JSON(http.StatusOK, rec)
}

// Reload handles POST /places/reload, the explicit cache-clear hook.
func (h *Handler) Reload(c echo.Context) error {
	if err := h.service.Reload(); err != nil {
		if errors.Is(err, models.ErrMalformedSchema) {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "The municipality table is missing or malformed"})
		}
		c.Logger().Error("Handler.Reload: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to reload municipality table"})
	}
	return c.NoContent(http.StatusNoContent)
}
