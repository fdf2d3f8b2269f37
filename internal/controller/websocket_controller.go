package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessington-backend/internal/model"
	"github.com/benbeisheim/chessington-backend/internal/service"
	"github.com/benbeisheim/chessington-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// syncConn serializes writes; a websocket connection allows one writer at a
// time, and game states are written by the game's writer goroutine while
// replies are written from the read loop.
type syncConn struct {
	mu   sync.Mutex
	conn model.Conn
}

func (s *syncConn) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	clientID, _ := c.Locals("playerID").(string)
	conn := &syncConn{conn: c}

	if err := wsc.gameService.RegisterConnection(gameID, clientID, conn); err != nil {
		log.Warnf("failed to register connection for client %s in game %s: %v", clientID, gameID, err)
		if errors.Is(err, model.ErrDuplicateConnection) {
			c.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, err.Error()))
		}
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("read error for client %s: %v", clientID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(conn, fmt.Sprintf("malformed message: %v", err))
			continue
		}

		reply, err := wsc.handleMessage(gameID, msg)
		if err != nil {
			wsc.sendError(conn, err.Error())
			continue
		}
		if reply != nil {
			if err := conn.WriteJSON(reply); err != nil {
				log.Warnf("write error for client %s: %v", clientID, err)
				break
			}
		}
	}

	wsc.gameService.UnregisterConnection(gameID, clientID, conn)
}

// handleMessage dispatches one incoming message. Moves are answered by the
// game's state broadcast, so only queries produce a direct reply.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) (*ws.Message, error) {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return nil, err
		}
		return nil, wsc.gameService.HandleMove(gameID, move)

	case ws.MessageTypeAvailableMoves:
		var sq model.Square
		if err := json.Unmarshal(msg.Payload, &sq); err != nil {
			return nil, err
		}
		moves, err := wsc.gameService.AvailableMoves(gameID, sq)
		if err != nil {
			return nil, err
		}
		reply, err := ws.NewMessage(ws.MessageTypeAvailableMoves, moves)
		if err != nil {
			return nil, err
		}
		return &reply, nil

	case ws.MessageTypeGameState:
		state, err := wsc.gameService.GetGameState(gameID)
		if err != nil {
			return nil, err
		}
		reply, err := ws.NewMessage(ws.MessageTypeGameState, state)
		if err != nil {
			return nil, err
		}
		return &reply, nil

	default:
		return nil, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(conn model.Conn, errorMsg string) {
	msg, err := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: errorMsg})
	if err != nil {
		return
	}
	if err := conn.WriteJSON(msg); err != nil {
		log.Warnf("failed to send error message: %v", err)
	}
}
