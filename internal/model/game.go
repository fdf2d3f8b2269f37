package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessington-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

var ErrDuplicateConnection = errors.New("connection already exists")

// Conn is the part of a websocket connection a game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
}

// outboundQueueSize bounds how far a connection may fall behind before it
// is dropped.
const outboundQueueSize = 16

// The connections for a specific game
type GameConnections struct {
	connections map[string]*subscriber // clientID -> subscriber
	mu          sync.RWMutex
}

// subscriber delivers queued messages to one connection in order, from a
// single writer goroutine.
type subscriber struct {
	clientID string
	conn     Conn
	out      chan ws.Message
}

// Game is one shared board and the clients watching it. Every read and write
// of the board goes through mu, so moves are serialized.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	history     []Ply
	captured    CapturedPieces
	lastMove    *MoveRequest
	connections *GameConnections
}

type GameState struct {
	ID             string         `json:"id"`
	Board          [][]*PieceView `json:"board"`
	MoveHistory    []Ply          `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	LastMove       *MoveRequest   `json:"lastMove"` // nil before the first move
}

// CapturedPieces lists pieces taken by each player.
type CapturedPieces struct {
	White []PieceView `json:"white"`
	Black []PieceView `json:"black"`
}

// AvailableMoves is the answer to "where can the piece on Square go".
type AvailableMoves struct {
	Square Square   `json:"square"`
	Moves  []Square `json:"moves"`
}

func NewGame(id string) *Game {
	return NewGameWithBoard(id, NewStartingBoard())
}

// NewGameWithBoard starts a game from an arbitrary position.
func NewGameWithBoard(id string, board *Board) *Game {
	return &Game{
		ID:          id,
		board:       board,
		history:     make([]Ply, 0),
		captured:    newCapturedPieces(),
		connections: NewGameConnections(),
	}
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*subscriber),
	}
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]PieceView, 0),
		Black: make([]PieceView, 0),
	}
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.stateLocked()
}

func (g *Game) stateLocked() GameState {
	history := make([]Ply, len(g.history))
	copy(history, g.history)
	return GameState{
		ID:          g.ID,
		Board:       g.board.Snapshot(),
		MoveHistory: history,
		CapturedPieces: CapturedPieces{
			White: append([]PieceView{}, g.captured.White...),
			Black: append([]PieceView{}, g.captured.Black...),
		},
		LastMove: g.lastMove,
	}
}

// AvailableMoves returns the destinations of the piece standing on sq.
func (g *Game) AvailableMoves(sq Square) (AvailableMoves, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !sq.OnBoard() {
		return AvailableMoves{}, fmt.Errorf("available moves from %s: %w", sq, ErrOffBoard)
	}
	piece, ok := g.board.GetPiece(sq)
	if !ok {
		return AvailableMoves{}, fmt.Errorf("available moves from %s: %w", sq, ErrEmptySquare)
	}
	moves, err := piece.AvailableMoves(g.board)
	if err != nil {
		return AvailableMoves{}, err
	}
	return AvailableMoves{Square: sq, Moves: moves}, nil
}

// MakeMove plays req if its destination is one of the moving piece's
// available moves. Turn order is not enforced.
func (g *Game) MakeMove(req MoveRequest) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	log.Debugf("game %s: move %s -> %s", g.ID, req.From, req.To)

	if !req.From.OnBoard() || !req.To.OnBoard() {
		return fmt.Errorf("move %s to %s: %w", req.From, req.To, ErrOffBoard)
	}
	piece, ok := g.board.GetPiece(req.From)
	if !ok {
		return fmt.Errorf("move from %s: %w", req.From, ErrEmptySquare)
	}
	if err := g.validateMove(piece, req); err != nil {
		return err
	}

	captured, _ := g.board.GetPiece(req.To)
	if err := MoveTo(piece, g.board, req.To); err != nil {
		return err
	}

	g.history = append(g.history, newPly(piece, captured, req.From, req.To))
	if captured != nil {
		view := PieceView{Type: captured.Type(), Player: captured.Player()}
		switch piece.Player() {
		case White:
			g.captured.White = append(g.captured.White, view)
		case Black:
			g.captured.Black = append(g.captured.Black, view)
		}
	}
	last := req
	g.lastMove = &last

	g.broadcastState(g.stateLocked())
	return nil
}

func (g *Game) validateMove(piece Piece, req MoveRequest) error {
	moves, err := piece.AvailableMoves(g.board)
	if err != nil {
		return err
	}
	for _, sq := range moves {
		if sq == req.To {
			return nil
		}
	}
	return fmt.Errorf("%s %s from %s to %s: %w", piece.Player(), piece.Type(), req.From, req.To, ErrIllegalMove)
}

// RegisterConnection subscribes conn to state broadcasts for clientID and
// queues the current state for conn alone.
func (g *Game) RegisterConnection(clientID string, conn Conn) error {
	// Holding g.mu keeps the initial state ahead of any later move's state.
	g.mu.Lock()
	defer g.mu.Unlock()

	msg, err := stateMessage(g.stateLocked())
	if err != nil {
		return fmt.Errorf("game %s: marshal state: %w", g.ID, err)
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	if _, exists := g.connections.connections[clientID]; exists {
		// Keep the existing connection; the caller closes the new one.
		return ErrDuplicateConnection
	}
	sub := &subscriber{clientID: clientID, conn: conn, out: make(chan ws.Message, outboundQueueSize)}
	sub.out <- msg
	g.connections.connections[clientID] = sub
	log.Infof("game %s: registered connection for client %s", g.ID, clientID)

	go g.writeLoop(sub)
	return nil
}

// UnregisterConnection removes clientID's subscription if it still belongs to
// conn. A stale connection never evicts the client's newer one.
func (g *Game) UnregisterConnection(clientID string, conn Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if sub, exists := g.connections.connections[clientID]; exists && sub.conn == conn {
		g.removeLocked(sub)
	}
}

// removeSubscriber drops sub unless clientID has since been re-registered.
func (g *Game) removeSubscriber(sub *subscriber) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if current, exists := g.connections.connections[sub.clientID]; exists && current == sub {
		g.removeLocked(sub)
	}
}

// removeLocked requires g.connections.mu. Messages are only queued under that
// lock, so closing out here never races a send.
func (g *Game) removeLocked(sub *subscriber) {
	log.Infof("game %s: unregistering connection for client %s", g.ID, sub.clientID)
	delete(g.connections.connections, sub.clientID)
	close(sub.out)
}

func (g *Game) writeLoop(sub *subscriber) {
	for msg := range sub.out {
		if err := sub.conn.WriteJSON(msg); err != nil {
			log.Warnf("game %s: failed to send state to client %s: %v", g.ID, sub.clientID, err)
			g.removeSubscriber(sub)
			return
		}
	}
}

func stateMessage(state GameState) (ws.Message, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return ws.Message{}, err
	}
	return ws.Message{Type: ws.MessageTypeGameState, Payload: payload}, nil
}

// broadcastState queues state for every subscriber. Callers hold g.mu, so
// states are queued in the order moves were made.
func (g *Game) broadcastState(state GameState) {
	msg, err := stateMessage(state)
	if err != nil {
		log.Errorf("game %s: failed to marshal state: %v", g.ID, err)
		return
	}

	var lagging []*subscriber
	g.connections.mu.RLock()
	for _, sub := range g.connections.connections {
		select {
		case sub.out <- msg:
		default:
			lagging = append(lagging, sub)
		}
	}
	g.connections.mu.RUnlock()

	for _, sub := range lagging {
		log.Warnf("game %s: client %s fell behind, dropping connection", g.ID, sub.clientID)
		g.removeSubscriber(sub)
	}
}
