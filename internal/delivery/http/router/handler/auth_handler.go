// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"spotter/internal/delivery/http/cookie"
	"spotter/internal/delivery/http/response"
	domainerrors "spotter/internal/domain/errors"
	"spotter/internal/domain/service"
	"spotter/internal/usecase"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	tokenSvc    service.TokenService
	cookies     *cookie.Manager
	logger      *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUsecase usecase.AuthUsecase, tokenSvc service.TokenService, cookies *cookie.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		tokenSvc:    tokenSvc,
		cookies:     cookies,
		logger:      logger,
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed registration payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUsecase.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.openSession(c, output)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed login payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUsecase.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.openSession(c, output)
}

// GoogleSignIn handles POST /auth/google.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var input usecase.GoogleSignInInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed google sign-in payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUsecase.GoogleSignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.openSession(c, output)
}

// Refresh handles POST /auth/refresh. The refresh token travels only in the
// httpOnly cookie, never in the body.
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken := cookie.ReadRefreshToken(c)
	if refreshToken == "" {
		return domainerrors.ErrUnauthorized.WrapMessage("refresh cookie missing")
	}

	output, err := h.authUsecase.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetRefreshToken(c, output.Tokens.RefreshToken, h.tokenSvc.RefreshTokenTTL())

	return response.Token(c, output.Tokens.AccessToken)
}

// Logout handles POST /auth/logout. It always clears the cookie and always
// succeeds, whether or not a live session existed.
func (h *AuthHandler) Logout(c echo.Context) error {
	if refreshToken := cookie.ReadRefreshToken(c); refreshToken != "" {
		if err := h.authUsecase.Logout(c.Request().Context(), refreshToken); err != nil {
			return errors.WithStack(err)
		}
	}

	h.cookies.ClearRefreshToken(c)

	return response.OK(c)
}

func (h *AuthHandler) openSession(c echo.Context, output *usecase.AuthOutput) error {
	h.cookies.SetRefreshToken(c, output.Tokens.RefreshToken, h.tokenSvc.RefreshTokenTTL())

	return response.Auth(c, http.StatusOK, output.User, output.Tokens.AccessToken)
}
