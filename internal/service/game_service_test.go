package service

import (
	"errors"
	"testing"

	"github.com/benbeisheim/chessington-backend/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestCreateGame(t *testing.T) {
	gs := NewGameService(NewGameManager())

	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if _, err := uuid.Parse(gameID); err != nil {
		t.Errorf("game ID %q is not a UUID: %v", gameID, err)
	}

	state, err := gs.GetGameState(gameID)
	if err != nil {
		t.Fatalf("GetGameState: %v", err)
	}
	if state.ID != gameID {
		t.Errorf("state.ID = %q; want %q", state.ID, gameID)
	}
}

func TestGameManagerDuplicateGame(t *testing.T) {
	gm := NewGameManager()
	if err := gm.CreateGame("g1"); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if err := gm.CreateGame("g1"); !errors.Is(err, ErrGameExists) {
		t.Errorf("second CreateGame err = %v; want ErrGameExists", err)
	}
}

func TestUnknownGame(t *testing.T) {
	gs := NewGameService(NewGameManager())

	if _, err := gs.GetGameState("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GetGameState err = %v; want ErrGameNotFound", err)
	}
	if _, err := gs.AvailableMoves("missing", model.At(1, 1)); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("AvailableMoves err = %v; want ErrGameNotFound", err)
	}
	if err := gs.HandleMove("missing", model.MoveRequest{}); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("HandleMove err = %v; want ErrGameNotFound", err)
	}
	// Unregistering from an unknown game is a no-op.
	gs.UnregisterConnection("missing", "alice", nil)
}

func TestMovesThroughService(t *testing.T) {
	gm := NewGameManager()
	board := model.NewBoard()
	pawn := model.NewPawn(model.Black)
	if err := board.SetPiece(model.At(6, 2), pawn); err != nil {
		t.Fatal(err)
	}
	if err := gm.AddGame(model.NewGameWithBoard("custom", board)); err != nil {
		t.Fatalf("AddGame: %v", err)
	}
	gs := NewGameService(gm)

	moves, err := gs.AvailableMoves("custom", model.At(6, 2))
	if err != nil {
		t.Fatalf("AvailableMoves: %v", err)
	}
	want := []model.Square{model.At(5, 2), model.At(4, 2)}
	if diff := cmp.Diff(want, moves.Moves); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}

	if err := gs.HandleMove("custom", model.MoveRequest{From: model.At(6, 2), To: model.At(4, 2)}); err != nil {
		t.Fatalf("HandleMove: %v", err)
	}
	err = gs.HandleMove("custom", model.MoveRequest{From: model.At(4, 2), To: model.At(2, 2)})
	if !errors.Is(err, model.ErrIllegalMove) {
		t.Errorf("second double step err = %v; want ErrIllegalMove", err)
	}
}
