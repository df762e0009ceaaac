package geo

import "hash/fnv"

// Generator maps a seed string to a value in [0,1). Implementations must be
// pure: the same seed always yields the same value, across calls and across
// process restarts.
type Generator func(seed string) float64

// HashGenerator is the default Generator. It hashes the seed with FNV-1a
// and scales the top 53 bits into the unit interval, so the result is exact
// in a float64 and uniform enough for spawn decisions.
func HashGenerator(seed string) float64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return float64(h.Sum64()>>11) / float64(uint64(1)<<53)
}
