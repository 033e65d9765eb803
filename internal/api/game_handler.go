package api

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/jvanloon/bingo-api/internal/api/shared"
	"github.com/jvanloon/bingo-api/internal/domain"
	"github.com/jvanloon/bingo-api/internal/platform/gemini"
	"github.com/jvanloon/bingo-api/internal/service"
)

const (
	defaultGameListLimit = 20
	maxGameListLimit     = 100
)

// GameHandler handles bingo game API requests.
type GameHandler struct {
	gameService service.GameService
	validator   *validator.Validate
}

// NewGameHandler creates a new GameHandler with the given dependencies.
func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		validator:   validator.New(),
	}
}

// CreateGame handles POST /games. It generates a batch of bingo items for
// the submitted topic and/or image and persists the resulting game.
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreateGameRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if req.Topic == "" && req.Image == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "A topic or an image is required")
		return
	}

	var image *domain.ImageData
	if req.Image != "" {
		parsed := gemini.ParseDataURL(req.Image)
		image = &parsed
	}

	game, err := h.gameService.CreateGame(r.Context(), userID, service.CreateGameParams{
		Topic: req.Topic,
		Count: req.Count,
		Image: image,
		Mode:  domain.GenerationMode(req.Mode),
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewGameResponse(game))
}

// GetGame handles GET /games/{id}. Only the game's owner may fetch it.
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	userID, gameID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	game, err := h.gameService.GetGame(r.Context(), userID, gameID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewGameResponse(game))
}

// DeleteGame handles DELETE /games/{id}. Only the game's owner may delete it.
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	userID, gameID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.gameService.DeleteGame(r.Context(), userID, gameID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListGames handles GET /games. It returns the caller's games, newest first.
// Supports limit and offset query parameters.
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	limit := queryInt(r, "limit", defaultGameListLimit)
	if limit > maxGameListLimit {
		limit = maxGameListLimit
	}
	offset := queryInt(r, "offset", 0)

	games, err := h.gameService.ListGames(r.Context(), userID, limit, offset)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := GameListResponse{Games: make([]GameResponse, 0, len(games))}
	for _, game := range games {
		resp.Games = append(resp.Games, NewGameResponse(game))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// queryInt reads an integer query parameter, falling back to def on absent
// or malformed values.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
