package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jvanloon/bingo-api/internal/domain"
	"github.com/jvanloon/bingo-api/internal/store"
)

// MockGameStore implements store.GameStore for testing
type MockGameStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, game *domain.Game) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Game, error)
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation, keyed by game ID
	mu    sync.Mutex
	Games map[uuid.UUID]*domain.Game

	CreateError error
}

var _ store.GameStore = (*MockGameStore)(nil)

// NewMockGameStore creates a new mock store with initialized defaults
func NewMockGameStore() *MockGameStore {
	return &MockGameStore{
		Games: make(map[uuid.UUID]*domain.Game),
	}
}

// Create implements the GameStore interface
func (m *MockGameStore) Create(ctx context.Context, game *domain.Game) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, game)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.mu.Lock()
	m.Games[game.ID] = game
	m.mu.Unlock()
	return nil
}

// GetByID implements the GameStore interface
func (m *MockGameStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	game, exists := m.Games[id]
	if !exists {
		return nil, store.ErrGameNotFound
	}
	return game, nil
}

// ListByUser implements the GameStore interface
func (m *MockGameStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Game, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID, limit, offset)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var games []*domain.Game
	for _, game := range m.Games {
		if game.UserID == userID {
			games = append(games, game)
		}
	}
	sort.Slice(games, func(i, j int) bool {
		return games[i].CreatedAt.After(games[j].CreatedAt)
	})

	if offset >= len(games) {
		return nil, nil
	}
	games = games[offset:]
	if limit > 0 && limit < len(games) {
		games = games[:limit]
	}
	return games, nil
}

// Delete implements the GameStore interface
func (m *MockGameStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Games[id]; !exists {
		return store.ErrGameNotFound
	}
	delete(m.Games, id)
	return nil
}

// WithTx implements the GameStore interface. The mock ignores the transaction
// and returns itself.
func (m *MockGameStore) WithTx(tx *sql.Tx) store.GameStore {
	return m
}
