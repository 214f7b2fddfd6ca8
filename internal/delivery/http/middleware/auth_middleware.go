package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "spotter/internal/delivery/context"
	"spotter/internal/delivery/http/cookie"
	"spotter/internal/domain/service"
	"spotter/internal/usecase"
)

// HeaderXAccessToken carries a silently rotated access token back to the
// client alongside the protected response.
const HeaderXAccessToken = "X-Access-Token"

// AuthMiddleware guards protected routes. It resolves the caller from the
// access token and, when that token has expired, silently rotates the
// session off the refresh token cookie instead of failing the request.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
	tokenSvc    service.TokenService
	cookies     *cookie.Manager
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase, tokenSvc service.TokenService, cookies *cookie.Manager) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase, tokenSvc: tokenSvc, cookies: cookies}
}

// Authenticate validates the caller's credentials and stores the user ID on
// the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		accessToken := bearerToken(c)
		if accessToken == "" {
			accessToken = cookie.ReadAccessToken(c)
		}
		refreshToken := cookie.ReadRefreshToken(c)

		decision, err := m.authUsecase.Authenticate(c.Request().Context(), accessToken, refreshToken)
		if err != nil {
			return errors.WithStack(err)
		}

		// A silent refresh minted a new pair: hand both halves back before
		// running the handler.
		if decision.Rotated != nil {
			m.cookies.SetRefreshToken(c, decision.Rotated.RefreshToken, m.tokenSvc.RefreshTokenTTL())
			c.Response().Header().Set(HeaderXAccessToken, decision.Rotated.AccessToken)
		}

		deliverycontext.SetUserID(c, decision.UserID)

		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return ""
	}

	return token
}
