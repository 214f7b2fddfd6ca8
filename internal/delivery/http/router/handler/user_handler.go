package handler

import (
	"io"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "spotter/internal/delivery/context"
	"spotter/internal/delivery/http/response"
	domainerrors "spotter/internal/domain/errors"
	"spotter/internal/usecase"
)

// maxImageBytes caps profile image uploads at 5 MiB.
const maxImageBytes = 5 << 20

// UserHandler holds dependencies for the user profile endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	logger      *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUsecase usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUsecase: userUsecase, logger: logger}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("no authenticated user on context")
	}

	user, err := h.userUsecase.Me(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.User(c, user)
}

// UpdateImage handles POST /users/me/image with a multipart "image" part.
func (h *UserHandler) UpdateImage(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("no authenticated user on context")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("image part missing")
	}
	if fileHeader.Size > maxImageBytes {
		return domainerrors.ErrValidationFailed.WrapMessage("image exceeds size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded image")
	}

	user, err := h.userUsecase.UpdateImage(c.Request().Context(), userID,
		fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.User(c, user)
}
