package cache

import (
	"encoding/json"
	"errors"
	"fmt"

	"cachequest/internal/domain/geo"
)

// maxInitialTokens scales the generator output into a token count, so a
// freshly spawned cache holds between 0 and 99 tokens.
const maxInitialTokens = 100

var ErrEmptyCache = errors.New("cache is empty")

// Cache owns the ordered token stack for one grid cell. The most recently
// deposited token is collected first.
type Cache struct {
	location *geo.Cell
	tokens   []Token
}

// Memento is the portable snapshot of a cache, used both for archiving and
// for session persistence.
type Memento struct {
	Location geo.Cell `json:"location"`
	Tokens   []Token  `json:"tokens"`
}

// PopulationSeed is the generator seed deciding a cell's initial token
// count: the cell key with the "initialValue" suffix.
func PopulationSeed(c *geo.Cell) string {
	return fmt.Sprintf("%s,initialValue", c.Key())
}

// New builds the cache for a cell that has never been archived. The token
// count and every token key are pure functions of the cell coordinates, so
// two caches built for the same cell always start identical.
func New(cell *geo.Cell, gen geo.Generator) *Cache {
	count := int(gen(PopulationSeed(cell)) * maxInitialTokens)
	tokens := make([]Token, 0, count)
	for ordinal := 0; ordinal < count; ordinal++ {
		tokens = append(tokens, Token{Key: TokenKey(cell.I, cell.J, ordinal)})
	}
	return &Cache{location: cell, tokens: tokens}
}

// Restored builds a cache from an archived memento string. The grid
// re-canonicalizes the stored location so the result holds the same *Cell
// every other consumer does.
func Restored(memento string, grid *geo.Grid) (*Cache, error) {
	c := &Cache{}
	if err := c.RestoreFromMemento(memento, grid); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cache) Location() *geo.Cell {
	return c.location
}

// Key returns the "i,j" identity of the cache, shared with its cell.
func (c *Cache) Key() string {
	return c.location.Key()
}

func (c *Cache) Len() int {
	return len(c.tokens)
}

// Tokens returns a copy of the stack, bottom first.
func (c *Cache) Tokens() []Token {
	out := make([]Token, len(c.tokens))
	copy(out, c.tokens)
	return out
}

// Collect pops the top token. An empty cache reports ErrEmptyCache and is
// left untouched.
func (c *Cache) Collect() (Token, error) {
	if len(c.tokens) == 0 {
		return Token{}, ErrEmptyCache
	}
	top := c.tokens[len(c.tokens)-1]
	c.tokens = c.tokens[:len(c.tokens)-1]
	return top, nil
}

// Deposit pushes a token onto the stack.
func (c *Cache) Deposit(tok Token) {
	c.tokens = append(c.tokens, tok)
}

// ToMemento serializes the current {location, tokens} verbatim.
func (c *Cache) ToMemento() (string, error) {
	m := Memento{
		Location: *c.location,
		Tokens:   c.tokens,
	}
	if m.Tokens == nil {
		m.Tokens = []Token{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal cache memento: %w", err)
	}
	return string(b), nil
}

// RestoreFromMemento overwrites the cache with the memento's contents. The
// payload is parsed in full before anything is assigned, so a malformed
// memento leaves the cache exactly as it was.
func (c *Cache) RestoreFromMemento(memento string, grid *geo.Grid) error {
	var m Memento
	if err := json.Unmarshal([]byte(memento), &m); err != nil {
		return fmt.Errorf("unmarshal cache memento: %w", err)
	}
	tokens := make([]Token, len(m.Tokens))
	copy(tokens, m.Tokens)
	c.location = grid.Canonicalize(m.Location.I, m.Location.J)
	c.tokens = tokens
	return nil
}
