package action

import (
	"cachequest/internal/domain/cache"
	"cachequest/internal/domain/geo"
)

type IntentType string

const (
	IntentMove        IntentType = "move"
	IntentSetPosition IntentType = "set_position"
	IntentCollect     IntentType = "collect"
	IntentDeposit     IntentType = "deposit"
)

type Intent struct {
	Type      IntentType `json:"type"`
	Direction string     `json:"direction,omitempty"`
	CacheKey  string     `json:"cache_key,omitempty"`
	Pos       *geo.Point `json:"pos,omitempty"`
}

type Request struct {
	Intent Intent
}

type ResultCode string

const (
	ResultOK   ResultCode = "OK"
	ResultNoop ResultCode = "NOOP"
)

type Response struct {
	Result           ResultCode   `json:"result"`
	Position         geo.Point    `json:"position"`
	Token            *cache.Token `json:"token,omitempty"`
	CacheKey         string       `json:"cache_key,omitempty"`
	InventoryCount   int          `json:"inventory_count"`
	ActiveCacheCount int          `json:"active_cache_count"`
}
