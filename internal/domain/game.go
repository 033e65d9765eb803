package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Game-specific validation errors
var (
	// ErrGameIDEmpty is returned when a game ID is empty or nil.
	ErrGameIDEmpty = errors.New("game ID cannot be empty")

	// ErrGameUserIDEmpty is returned when a game's user ID is empty or nil.
	ErrGameUserIDEmpty = errors.New("game user ID cannot be empty")

	// ErrGameSubjectEmpty is returned when a game's subject is empty.
	ErrGameSubjectEmpty = errors.New("game subject cannot be empty")

	// ErrGameItemsEmpty is returned when a game has no items.
	ErrGameItemsEmpty = errors.New("game items cannot be empty")

	// ErrGameItemsInvalid is returned when a game's items are not valid JSON.
	ErrGameItemsInvalid = errors.New("game items must be valid JSON")
)

// Game is a persisted generation batch: one subject-detection result plus
// the ordered pool of bingo items generated for it. Items are stored as a
// JSONB document so the card layout can evolve without schema churn.
type Game struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Topic     string          `json:"topic"`
	Subject   string          `json:"subject"`
	IsMath    bool            `json:"is_math"`
	Mode      GenerationMode  `json:"mode"`
	Items     json.RawMessage `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewGame creates a Game owned by userID from a detection result and the
// generated item batch. It generates a new UUID for the game ID and sets the
// creation/update timestamps. Returns an error if validation fails.
func NewGame(
	userID uuid.UUID,
	topic string,
	subject SubjectContext,
	mode GenerationMode,
	items []BingoItem,
) (*Game, error) {
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	game := &Game{
		ID:        uuid.New(),
		UserID:    userID,
		Topic:     topic,
		Subject:   subject.Subject,
		IsMath:    subject.IsMath,
		Mode:      mode,
		Items:     itemsJSON,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := game.Validate(); err != nil {
		return nil, err
	}

	return game, nil
}

// Validate checks if the Game has valid data.
// Returns an error if any field fails validation.
func (g *Game) Validate() error {
	if g.ID == uuid.Nil {
		return ErrGameIDEmpty
	}

	if g.UserID == uuid.Nil {
		return ErrGameUserIDEmpty
	}

	if g.Subject == "" {
		return ErrGameSubjectEmpty
	}

	if err := g.Mode.Validate(); err != nil {
		return err
	}

	if len(g.Items) == 0 {
		return ErrGameItemsEmpty
	}

	var js []BingoItem
	if err := json.Unmarshal(g.Items, &js); err != nil {
		return ErrGameItemsInvalid
	}
	if len(js) == 0 {
		return ErrGameItemsEmpty
	}

	return nil
}

// ItemList decodes the stored items back into their typed form.
func (g *Game) ItemList() ([]BingoItem, error) {
	var items []BingoItem
	if err := json.Unmarshal(g.Items, &items); err != nil {
		return nil, ErrGameItemsInvalid
	}
	return items, nil
}
