package models

import (
	"errors"
	"time"
)

var ErrEmptyPlayerName = errors.New("both player names are required")

// GameSession is the per-couple game state bound to one opaque session
// token. CurrentTurn is always one of PlayerA or PlayerB.
type GameSession struct {
	Token       string    `json:"-"`
	PlayerA     string    `json:"person1"`
	PlayerB     string    `json:"person2"`
	CurrentTurn string    `json:"current_turn"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewGameSession starts a game with player A to move first.
func NewGameSession(token, playerA, playerB string) (*GameSession, error) {
	if playerA == "" || playerB == "" {
		return nil, ErrEmptyPlayerName
	}
	return &GameSession{
		Token:       token,
		PlayerA:     playerA,
		PlayerB:     playerB,
		CurrentTurn: playerA,
		CreatedAt:   time.Now(),
	}, nil
}

// SwitchTurn flips the current player and returns the new one.
func (g *GameSession) SwitchTurn() string {
	if g.CurrentTurn == g.PlayerA {
		g.CurrentTurn = g.PlayerB
	} else {
		g.CurrentTurn = g.PlayerA
	}
	return g.CurrentTurn
}
