package service

import (
	"fmt"

	"github.com/benbeisheim/chessington-backend/internal/model"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) AvailableMoves(gameID string, sq model.Square) (model.AvailableMoves, error) {
	moves, err := gs.gameManager.AvailableMoves(gameID, sq)
	if err != nil {
		return model.AvailableMoves{}, fmt.Errorf("game %s: %w", gameID, err)
	}
	return moves, nil
}

func (gs *GameService) HandleMove(gameID string, move model.MoveRequest) error {
	if err := gs.gameManager.MakeMove(gameID, move); err != nil {
		return fmt.Errorf("game %s: %w", gameID, err)
	}

	return nil
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, conn model.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, clientID string, conn model.Conn) {
	gs.gameManager.UnregisterConnection(gameID, clientID, conn)
}
