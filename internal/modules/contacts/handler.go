package contacts

import (
	"errors"
	"net/http"

	"commute-notice/internal/models"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	repo RepositoryInterface
}

func NewHandler(repo RepositoryInterface) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /contacts with an optional ?province= filter.
func (h *Handler) List(c echo.Context) error {
	contacts, err := h.repo.List(c.QueryParam("province"))
	if err != nil {
		if errors.Is(err, models.ErrMalformedSchema) {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "The contacts table is missing or malformed"})
		}
		c.Logger().Error("Handler.List: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to load contacts"})
	}
	return c.JSON(http.StatusOK, contacts)
}
