package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"spotter/internal/delivery/http/response"
	domainerrors "spotter/internal/domain/errors"
	"spotter/internal/usecase"
)

// SpotHandler holds dependencies for the spot catalogue endpoints.
type SpotHandler struct {
	spotUsecase usecase.SpotUsecase
	logger      *slog.Logger
}

// NewSpotHandler is the constructor for SpotHandler, injected by Fx.
func NewSpotHandler(spotUsecase usecase.SpotUsecase, logger *slog.Logger) *SpotHandler {
	return &SpotHandler{spotUsecase: spotUsecase, logger: logger}
}

// List handles GET /spots.
func (h *SpotHandler) List(c echo.Context) error {
	page, pageSize := paging(c)

	result, err := h.spotUsecase.ListActive(c.Request().Context(), page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Spots(c, result.Total, result.Spots)
}

// ListNonActive handles GET /spots/non-active.
func (h *SpotHandler) ListNonActive(c echo.Context) error {
	page, pageSize := paging(c)

	result, err := h.spotUsecase.ListNonActive(c.Request().Context(), page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Spots(c, result.Total, result.Spots)
}

// Create handles POST /spots.
func (h *SpotHandler) Create(c echo.Context) error {
	var input usecase.CreateSpotInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed spot payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	spot, err := h.spotUsecase.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Spot(c, http.StatusCreated, spot)
}

// paging reads page/pageSize query parameters; out-of-range values are
// clamped further down the stack.
func paging(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	return page, pageSize
}
