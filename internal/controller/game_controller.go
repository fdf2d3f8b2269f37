package controller

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/benbeisheim/chessington-backend/internal/model"
	"github.com/benbeisheim/chessington-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"gameId":  gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(gameState)
}

// AvailableMoves answers GET /:gameId/moves?row=&col=.
func (gc *GameController) AvailableMoves(c *fiber.Ctx) error {
	sq, err := squareFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	moves, err := gc.gameService.AvailableMoves(c.Params("gameId"), sq)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(moves)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move model.MoveRequest
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}

	if err := gc.gameService.HandleMove(c.Params("gameId"), move); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Move made",
		"move":    move,
	})
}

func squareFromQuery(c *fiber.Ctx) (model.Square, error) {
	row, err := strconv.Atoi(c.Query("row"))
	if err != nil {
		return model.Square{}, errors.New("row must be an integer")
	}
	col, err := strconv.Atoi(c.Query("col"))
	if err != nil {
		return model.Square{}, errors.New("col must be an integer")
	}
	sq := model.At(row, col)
	if !sq.OnBoard() {
		return model.Square{}, fmt.Errorf("square %s: %w", sq, model.ErrOffBoard)
	}
	return sq, nil
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrOffBoard):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrIllegalMove), errors.Is(err, model.ErrEmptySquare):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
