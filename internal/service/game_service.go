package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jvanloon/bingo-api/internal/domain"
	"github.com/jvanloon/bingo-api/internal/generation"
	"github.com/jvanloon/bingo-api/internal/store"
)

const (
	// DefaultItemCount is used when a create request omits the count.
	DefaultItemCount = 9

	// MaxItemCount caps a single generation request.
	MaxItemCount = 64
)

// CreateGameParams carries the inputs for generating and persisting a game.
type CreateGameParams struct {
	Topic string
	Count int
	Image *domain.ImageData
	Mode  domain.GenerationMode
}

// GameService provides bingo game operations.
type GameService interface {
	// CreateGame generates bingo items for the given topic and/or image and
	// persists the resulting game for the user.
	CreateGame(ctx context.Context, userID uuid.UUID, params CreateGameParams) (*domain.Game, error)

	// GetGame retrieves a game by ID. Returns ErrNotOwned if the game belongs
	// to a different user.
	GetGame(ctx context.Context, userID, gameID uuid.UUID) (*domain.Game, error)

	// ListGames retrieves the user's games, newest first.
	ListGames(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Game, error)

	// DeleteGame removes a game. Returns ErrNotOwned if the game belongs
	// to a different user.
	DeleteGame(ctx context.Context, userID, gameID uuid.UUID) error
}

// GameServiceImpl implements the GameService interface
type GameServiceImpl struct {
	generator generation.Generator
	gameStore store.GameStore
	db        *sql.DB
	logger    *slog.Logger
}

var _ GameService = (*GameServiceImpl)(nil)

// NewGameService creates a new GameService. db may be nil, in which case
// writes run outside an explicit transaction.
func NewGameService(
	generator generation.Generator,
	gameStore store.GameStore,
	db *sql.DB,
	logger *slog.Logger,
) *GameServiceImpl {
	return &GameServiceImpl{
		generator: generator,
		gameStore: gameStore,
		db:        db,
		logger:    logger.With("component", "game_service"),
	}
}

// CreateGame runs subject detection first and feeds its result into item
// generation. The two calls are strictly sequential: the item prompt depends
// on the detected subject.
func (s *GameServiceImpl) CreateGame(
	ctx context.Context,
	userID uuid.UUID,
	params CreateGameParams,
) (*domain.Game, error) {
	count := params.Count
	if count == 0 {
		count = DefaultItemCount
	}
	if count < 1 || count > MaxItemCount {
		return nil, fmt.Errorf("%w: %d (allowed 1-%d)", ErrInvalidCount, count, MaxItemCount)
	}

	mode := params.Mode
	if mode == "" {
		mode = domain.ModeSimilar
	}
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	subjectCtx, err := s.generator.DetectSubject(ctx, params.Topic, params.Image)
	if err != nil {
		s.logger.Error("subject detection failed",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to detect subject: %w", err)
	}

	s.logger.Debug("detected subject",
		"subject", subjectCtx.Subject,
		"is_math", subjectCtx.IsMath,
		"user_id", userID)

	items, err := s.generator.GenerateItems(ctx, generation.ItemRequest{
		Context: subjectCtx,
		Topic:   params.Topic,
		Count:   count,
		Image:   params.Image,
		Mode:    mode,
	})
	if err != nil {
		s.logger.Error("item generation failed",
			"error", err,
			"subject", subjectCtx.Subject,
			"user_id", userID)
		return nil, fmt.Errorf("failed to generate items: %w", err)
	}

	game, err := domain.NewGame(userID, params.Topic, subjectCtx, mode, items)
	if err != nil {
		return nil, fmt.Errorf("failed to build game: %w", err)
	}

	if err := s.saveGame(ctx, game); err != nil {
		s.logger.Error("failed to persist game",
			"error", err,
			"game_id", game.ID,
			"user_id", userID)
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	s.logger.Info("created game",
		"game_id", game.ID,
		"user_id", userID,
		"subject", game.Subject,
		"item_count", len(items))

	return game, nil
}

// saveGame persists the game, inside a transaction when a database handle is
// available.
func (s *GameServiceImpl) saveGame(ctx context.Context, game *domain.Game) error {
	if s.db == nil {
		return s.gameStore.Create(ctx, game)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.gameStore.WithTx(tx).Create(ctx, game)
	})
}

// GetGame retrieves a game and enforces ownership.
func (s *GameServiceImpl) GetGame(
	ctx context.Context,
	userID, gameID uuid.UUID,
) (*domain.Game, error) {
	game, err := s.gameStore.GetByID(ctx, gameID)
	if err != nil {
		if !errors.Is(err, store.ErrGameNotFound) {
			s.logger.Error("failed to retrieve game",
				"error", err,
				"game_id", gameID)
		}
		return nil, fmt.Errorf("failed to retrieve game: %w", err)
	}

	if game.UserID != userID {
		s.logger.Warn("game access denied",
			"game_id", gameID,
			"owner_id", game.UserID,
			"user_id", userID)
		return nil, ErrNotOwned
	}

	return game, nil
}

// DeleteGame removes a game after enforcing ownership.
func (s *GameServiceImpl) DeleteGame(ctx context.Context, userID, gameID uuid.UUID) error {
	game, err := s.gameStore.GetByID(ctx, gameID)
	if err != nil {
		if !errors.Is(err, store.ErrGameNotFound) {
			s.logger.Error("failed to retrieve game",
				"error", err,
				"game_id", gameID)
		}
		return fmt.Errorf("failed to retrieve game: %w", err)
	}

	if game.UserID != userID {
		s.logger.Warn("game delete denied",
			"game_id", gameID,
			"owner_id", game.UserID,
			"user_id", userID)
		return ErrNotOwned
	}

	if err := s.gameStore.Delete(ctx, gameID); err != nil {
		s.logger.Error("failed to delete game",
			"error", err,
			"game_id", gameID)
		return fmt.Errorf("failed to delete game: %w", err)
	}

	s.logger.Info("deleted game",
		"game_id", gameID,
		"user_id", userID)
	return nil
}

// ListGames retrieves the user's games, newest first.
func (s *GameServiceImpl) ListGames(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Game, error) {
	games, err := s.gameStore.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list games",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}
