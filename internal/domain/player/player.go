package player

import (
	"errors"

	"cachequest/internal/domain/cache"
	"cachequest/internal/domain/geo"
)

var ErrEmptyInventory = errors.New("inventory is empty")

// State is the player's side of the session: a LIFO token inventory, the
// current position, and the movement history driven by every position
// change. It is mutated only through the engine's command handlers.
type State struct {
	inventory []cache.Token
	position  geo.Point
	history   []geo.Point
}

func NewState(origin geo.Point) *State {
	return &State{
		position: origin,
		history:  []geo.Point{origin},
	}
}

func (s *State) Position() geo.Point {
	return s.position
}

// SetPosition moves the player and records the new position in the
// movement history.
func (s *State) SetPosition(p geo.Point) {
	s.position = p
	s.history = append(s.history, p)
}

// Push places a token on top of the inventory.
func (s *State) Push(tok cache.Token) {
	s.inventory = append(s.inventory, tok)
}

// Pop removes and returns the top inventory token. An empty inventory
// reports ErrEmptyInventory and is left untouched.
func (s *State) Pop() (cache.Token, error) {
	if len(s.inventory) == 0 {
		return cache.Token{}, ErrEmptyInventory
	}
	top := s.inventory[len(s.inventory)-1]
	s.inventory = s.inventory[:len(s.inventory)-1]
	return top, nil
}

func (s *State) InventorySize() int {
	return len(s.inventory)
}

// Tokens returns a copy of the inventory, bottom first.
func (s *State) Tokens() []cache.Token {
	out := make([]cache.Token, len(s.inventory))
	copy(out, s.inventory)
	return out
}

// History returns a copy of the movement history, oldest first.
func (s *State) History() []geo.Point {
	out := make([]geo.Point, len(s.history))
	copy(out, s.history)
	return out
}

// Reset returns the player to the origin with nothing collected and a
// history containing only the origin.
func (s *State) Reset(origin geo.Point) {
	s.inventory = nil
	s.position = origin
	s.history = []geo.Point{origin}
}

// Restore overwrites the state with persisted session data. The restored
// position is appended to the history only if the history is empty, so a
// loaded session resumes its recorded trail exactly.
func (s *State) Restore(tokens []cache.Token, position geo.Point, history []geo.Point) {
	s.inventory = make([]cache.Token, len(tokens))
	copy(s.inventory, tokens)
	s.position = position
	if len(history) == 0 {
		history = []geo.Point{position}
	}
	s.history = make([]geo.Point, len(history))
	copy(s.history, history)
}
