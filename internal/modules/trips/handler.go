package trips

import (
	"errors"
	"net/http"

	"commute-notice/internal/models"
	"commute-notice/internal/modules/routing"

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

// AssessTable handles POST /trips/table.
func (h *Handler) AssessTable(c echo.Context) error {
	var req models.TableTripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	assessment, err := h.service.AssessFromTable(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Municipality not found in the reference table"})
		}
		if errors.Is(err, models.ErrMalformedSchema) {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "The municipality table is missing or malformed"})
		}
		c.Logger().Error("Handler.AssessTable: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to calculate the trip"})
	}
	return c.JSON(http.StatusOK, assessment)
}

// AssessRoute handles POST /trips/route. When the pair fails, both legs'
// errors are reported independently; there is no partial result and
// nothing is retried server-side.
func (h *Handler) AssessRoute(c echo.Context) error {
	var req models.RouteTripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Please fill in all four addresses"})
	}

	assessment, err := h.service.AssessFromRoute(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrCredentialsUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Message: "Routing provider is not configured"})
		}
		var pairErr *routing.PairError
		if errors.As(err, &pairErr) {
			resp := models.RouteErrorResponse{Message: "Route calculation failed"}
			if pairErr.In != nil {
				resp.LegInError = pairErr.In.Error()
			}
			if pairErr.Out != nil {
				resp.LegOutError = pairErr.Out.Error()
			}
			status := http.StatusNotFound
			if errors.Is(err, models.ErrProvider) {
				status = http.StatusBadGateway
			}
			return c.JSON(status, resp)
		}
		c.Logger().Error("Handler.AssessRoute: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to calculate the trip"})
	}
	return c.JSON(http.StatusOK, assessment)
}
