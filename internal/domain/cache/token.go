package cache

import "fmt"

// Token is an immutable collectible. Its key encodes the cell it spawned in
// and its ordinal within that cell's initial population; only a token's
// container membership ever changes.
type Token struct {
	Key string `json:"key"`
}

// TokenKey builds the "i:<i>j:<j>$<ordinal>" key. The format is distinct
// from the "i,j" cache key on purpose and must stay byte-compatible with
// previously stored sessions.
func TokenKey(i, j, ordinal int) string {
	return fmt.Sprintf("i:%dj:%d$%d", i, j, ordinal)
}
