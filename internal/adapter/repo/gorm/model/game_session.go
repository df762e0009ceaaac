package model

import "time"

// GameSession is the persisted session row: one snapshot document per
// player key. Data holds the session snapshot JSON verbatim.
type GameSession struct {
	PlayerID  string    `gorm:"column:player_id;primaryKey"`
	Data      string    `gorm:"column:data;type:jsonb"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}
