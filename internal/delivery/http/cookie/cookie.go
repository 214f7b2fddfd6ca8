// Package cookie manages the auth cookies shared between handlers and the
// authentication middleware.
package cookie

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"spotter/config"
)

const (
	// RefreshTokenName is the httpOnly cookie carrying the refresh token.
	RefreshTokenName = "refreshToken"

	// AccessTokenName is the optional cookie fallback for clients that do
	// not send an Authorization header.
	AccessTokenName = "accessToken"
)

// Manager builds cookies with environment-dependent flags: Secure and
// SameSite=Strict in production, Lax otherwise so local HTTP clients work.
type Manager struct {
	secure   bool
	sameSite http.SameSite
}

// NewManager is the constructor for Manager.
func NewManager(cfg *config.Config) *Manager {
	if cfg.IsProduction() {
		return &Manager{secure: true, sameSite: http.SameSiteStrictMode}
	}

	return &Manager{secure: false, sameSite: http.SameSiteLaxMode}
}

// SetRefreshToken attaches the refresh token cookie to the response.
func (m *Manager) SetRefreshToken(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     RefreshTokenName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}

// ClearRefreshToken expires the refresh token cookie.
func (m *Manager) ClearRefreshToken(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     RefreshTokenName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}

// ReadRefreshToken returns the refresh token cookie's value, or "" when the
// cookie is absent.
func ReadRefreshToken(c echo.Context) string {
	return readCookie(c, RefreshTokenName)
}

// ReadAccessToken returns the access token cookie's value, or "".
func ReadAccessToken(c echo.Context) string {
	return readCookie(c, AccessTokenName)
}

func readCookie(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}
