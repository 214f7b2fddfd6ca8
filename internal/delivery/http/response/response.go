// Package response defines the JSON shapes returned to clients.
package response

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"spotter/internal/domain/entity"
)

// ErrorBody is the error half of the envelope.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorEnvelope is the uniform failure response:
// {"success":false,"error":{"message":...,"status":...}}.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// Error writes the failure envelope for a status and message.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorEnvelope{
		Success: false,
		Error:   ErrorBody{Message: message, Status: status},
	})
}

// UserView is the public projection of a user. Credential material never
// appears here.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserView projects a user entity for responses.
func NewUserView(user *entity.User) UserView {
	return UserView{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role.String(),
		ImageURL:  user.ImageURL,
		CreatedAt: user.CreatedAt,
	}
}

// SpotView is the public projection of a spot.
type SpotView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewSpotViews projects a slice of spot entities.
func NewSpotViews(spots []*entity.Spot) []SpotView {
	views := make([]SpotView, 0, len(spots))
	for _, spot := range spots {
		views = append(views, SpotView{
			ID:          spot.ID,
			Title:       spot.Title,
			Description: spot.Description,
			Latitude:    spot.Latitude,
			Longitude:   spot.Longitude,
			ImageURL:    spot.ImageURL,
			IsActive:    spot.IsActive,
			CreatedAt:   spot.CreatedAt,
		})
	}

	return views
}

// AuthEnvelope is the success shape for register, login and Google sign-in.
type AuthEnvelope struct {
	Success     bool     `json:"success"`
	User        UserView `json:"user"`
	AccessToken string   `json:"accessToken"`
}

// Auth writes the session-opened envelope.
func Auth(c echo.Context, status int, user *entity.User, accessToken string) error {
	return c.JSON(status, AuthEnvelope{
		Success:     true,
		User:        NewUserView(user),
		AccessToken: accessToken,
	})
}

// TokenEnvelope is the success shape for refresh.
type TokenEnvelope struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
}

// Token writes a fresh access token.
func Token(c echo.Context, accessToken string) error {
	return c.JSON(http.StatusOK, TokenEnvelope{Success: true, AccessToken: accessToken})
}

// UserEnvelope is the success shape for profile reads and updates.
type UserEnvelope struct {
	Success bool     `json:"success"`
	User    UserView `json:"user"`
}

// User writes a user projection.
func User(c echo.Context, user *entity.User) error {
	return c.JSON(http.StatusOK, UserEnvelope{Success: true, User: NewUserView(user)})
}

// SpotsEnvelope is the success shape for spot listings.
type SpotsEnvelope struct {
	Success bool       `json:"success"`
	Total   int64      `json:"total"`
	Spots   []SpotView `json:"spots"`
}

// Spots writes one page of spots with the total matching count.
func Spots(c echo.Context, total int64, spots []*entity.Spot) error {
	return c.JSON(http.StatusOK, SpotsEnvelope{
		Success: true,
		Total:   total,
		Spots:   NewSpotViews(spots),
	})
}

// SpotEnvelope is the success shape for a single spot.
type SpotEnvelope struct {
	Success bool     `json:"success"`
	Spot    SpotView `json:"spot"`
}

// Spot writes a single spot projection.
func Spot(c echo.Context, status int, spot *entity.Spot) error {
	views := NewSpotViews([]*entity.Spot{spot})

	return c.JSON(status, SpotEnvelope{Success: true, Spot: views[0]})
}

// OK writes the bare success envelope.
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
