package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jvanloon/bingo-api/internal/domain"
	"github.com/jvanloon/bingo-api/internal/store"
)

// GameStore implements the store.GameStore interface using a PostgreSQL
// database as the storage backend. Items travel as a JSONB column.
type GameStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewGameStore creates a new PostgreSQL implementation of the GameStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
func NewGameStore(db store.DBTX, logger *slog.Logger) *GameStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GameStore{
		db:     db,
		logger: logger.With(slog.String("component", "game_store")),
	}
}

// Ensure GameStore implements store.GameStore interface
var _ store.GameStore = (*GameStore)(nil)

// Create implements store.GameStore.Create.
func (s *GameStore) Create(ctx context.Context, game *domain.Game) error {
	if err := game.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO games (id, user_id, topic, subject, is_math, mode, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query,
		game.ID, game.UserID, game.Topic, game.Subject, game.IsMath,
		string(game.Mode), []byte(game.Items), game.CreatedAt, game.UpdatedAt)
	if err != nil {
		return MapError(err)
	}

	s.logger.DebugContext(ctx, "created game",
		slog.String("game_id", game.ID.String()),
		slog.String("subject", game.Subject))
	return nil
}

// GetByID implements store.GameStore.GetByID.
func (s *GameStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	query := `
		SELECT id, user_id, topic, subject, is_math, mode, items, created_at, updated_at
		FROM games
		WHERE id = $1`

	var game domain.Game
	var mode string
	var items []byte
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&game.ID, &game.UserID, &game.Topic, &game.Subject, &game.IsMath,
		&mode, &items, &game.CreatedAt, &game.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrGameNotFound
		}
		return nil, MapError(err)
	}

	game.Mode = domain.GenerationMode(mode)
	game.Items = items
	return &game, nil
}

// ListByUser implements store.GameStore.ListByUser.
func (s *GameStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Game, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, user_id, topic, subject, is_math, mode, items, created_at, updated_at
		FROM games
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	games := make([]*domain.Game, 0)
	for rows.Next() {
		var game domain.Game
		var mode string
		var items []byte
		if err := rows.Scan(
			&game.ID, &game.UserID, &game.Topic, &game.Subject, &game.IsMath,
			&mode, &items, &game.CreatedAt, &game.UpdatedAt); err != nil {
			return nil, MapError(err)
		}
		game.Mode = domain.GenerationMode(mode)
		game.Items = items
		games = append(games, &game)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return games, nil
}

// Delete implements store.GameStore.Delete.
func (s *GameStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, "game")
}

// WithTx implements store.GameStore.WithTx.
func (s *GameStore) WithTx(tx *sql.Tx) store.GameStore {
	return &GameStore{
		db:     tx,
		logger: s.logger,
	}
}
