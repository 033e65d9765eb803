package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jvanloon/bingo-api/internal/domain"
)

// GameStore defines the interface for generated-game persistence.
type GameStore interface {
	// Create saves a new game with its item batch.
	// Returns validation errors from the domain Game if data is invalid.
	Create(ctx context.Context, game *domain.Game) error

	// GetByID retrieves a game by its unique ID.
	// Returns ErrGameNotFound if the game does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error)

	// ListByUser retrieves the games owned by the given user, most recent
	// first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Game, error)

	// Delete removes a game from the store by its ID.
	// Returns ErrGameNotFound if the game does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new GameStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) GameStore
}
