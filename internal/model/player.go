package model

import (
	"encoding/json"
	"fmt"
)

// Player is the side a piece belongs to. It is fixed when the piece is created.
type Player int

const (
	White Player = iota
	Black
)

func (p Player) String() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

// forward is the row delta a pawn of this player advances by.
func (p Player) forward() int {
	if p == White {
		return 1
	}
	return -1
}

func (p Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Player) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "white":
		*p = White
	case "black":
		*p = Black
	default:
		return fmt.Errorf("unknown player %q", s)
	}
	return nil
}
