package controller

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/benbeisheim/chessington-backend/internal/model"
	"github.com/benbeisheim/chessington-backend/internal/service"
	"github.com/benbeisheim/chessington-backend/internal/ws"
	"github.com/google/go-cmp/cmp"
)

func newTestController(t *testing.T) (*WebSocketController, string) {
	t.Helper()
	gs := service.NewGameService(service.NewGameManager())
	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	return NewWebSocketController(gs), gameID
}

func mustMessage(t *testing.T, typ ws.MessageType, payload interface{}) ws.Message {
	t.Helper()
	msg, err := ws.NewMessage(typ, payload)
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	return msg
}

func TestHandleAvailableMovesMessage(t *testing.T) {
	wsc, gameID := newTestController(t)

	reply, err := wsc.handleMessage(gameID, mustMessage(t, ws.MessageTypeAvailableMoves, model.At(1, 6)))
	if err != nil {
		t.Fatalf("handleMessage: %v", err)
	}
	if reply == nil || reply.Type != ws.MessageTypeAvailableMoves {
		t.Fatalf("reply = %+v; want availableMoves", reply)
	}

	var got model.AvailableMoves
	if err := json.Unmarshal(reply.Payload, &got); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	want := []model.Square{model.At(2, 6), model.At(3, 6)}
	if diff := cmp.Diff(want, got.Moves); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleMoveMessage(t *testing.T) {
	wsc, gameID := newTestController(t)

	move := model.MoveRequest{From: model.At(6, 6), To: model.At(5, 6)}
	reply, err := wsc.handleMessage(gameID, mustMessage(t, ws.MessageTypeMove, move))
	if err != nil {
		t.Fatalf("handleMessage: %v", err)
	}
	if reply != nil {
		t.Errorf("reply = %+v; want none, the state is broadcast", reply)
	}

	illegal := model.MoveRequest{From: model.At(5, 6), To: model.At(3, 6)}
	if _, err := wsc.handleMessage(gameID, mustMessage(t, ws.MessageTypeMove, illegal)); !errors.Is(err, model.ErrIllegalMove) {
		t.Errorf("illegal move err = %v; want ErrIllegalMove", err)
	}
}

func TestHandleUnknownMessage(t *testing.T) {
	wsc, gameID := newTestController(t)

	if _, err := wsc.handleMessage(gameID, ws.Message{Type: "resign"}); err == nil {
		t.Error("unknown message type accepted")
	}
	if _, err := wsc.handleMessage("missing", ws.Message{Type: ws.MessageTypeGameState}); !errors.Is(err, service.ErrGameNotFound) {
		t.Errorf("unknown game err = %v; want ErrGameNotFound", err)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrGameNotFound, 404},
		{model.ErrOffBoard, 400},
		{model.ErrIllegalMove, 422},
		{model.ErrEmptySquare, 422},
		{errors.New("boom"), 500},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d; want %d", tt.err, got, tt.want)
		}
	}
}
