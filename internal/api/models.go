package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jvanloon/bingo-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh
// endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateGameRequest defines the payload for the game creation endpoint.
// Either a topic, an image data URL, or both must be provided.
type CreateGameRequest struct {
	Topic string `json:"topic" validate:"max=500"`

	// Count is the number of bingo items to generate. Zero means the server
	// default.
	Count int `json:"count" validate:"omitempty,min=1,max=64"`

	// Image is an optional data URL (e.g. "data:image/png;base64,...") with
	// source material for the items.
	Image string `json:"image"`

	// Mode selects between extracting items exactly as they appear in the
	// image and generating similar ones. Empty selects the default.
	Mode string `json:"mode" validate:"omitempty,oneof=exact similar"`
}

// GameResponse defines the representation of a game returned by the API.
type GameResponse struct {
	ID        uuid.UUID       `json:"id"`
	Topic     string          `json:"topic,omitempty"`
	Subject   string          `json:"subject"`
	IsMath    bool            `json:"isMath"`
	Mode      string          `json:"mode"`
	Items     json.RawMessage `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// GameListResponse defines the paginated game list payload.
type GameListResponse struct {
	Games []GameResponse `json:"games"`
}

// NewGameResponse converts a domain game to its API representation.
func NewGameResponse(game *domain.Game) GameResponse {
	return GameResponse{
		ID:        game.ID,
		Topic:     game.Topic,
		Subject:   game.Subject,
		IsMath:    game.IsMath,
		Mode:      string(game.Mode),
		Items:     game.Items,
		CreatedAt: game.CreatedAt,
	}
}
