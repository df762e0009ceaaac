package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cachequest/internal/adapter/repo/gorm/model"
	"cachequest/internal/domain/session"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepo is the durable persistence gateway: one snapshot JSON
// document per player key, upserted in place.
type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepo {
	return SessionRepo{db: db}
}

func (r SessionRepo) Get(ctx context.Context, playerID string) (session.Snapshot, bool, error) {
	var row model.GameSession
	err := r.db.WithContext(ctx).Where("player_id = ?", playerID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session.Snapshot{}, false, nil
		}
		return session.Snapshot{}, false, err
	}
	var snap session.Snapshot
	if err := json.Unmarshal([]byte(row.Data), &snap); err != nil {
		return session.Snapshot{}, false, fmt.Errorf("decode session %s: %w", playerID, err)
	}
	return snap, true, nil
}

func (r SessionRepo) Save(ctx context.Context, playerID string, snap session.Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", playerID, err)
	}
	row := model.GameSession{
		PlayerID:  playerID,
		Data:      string(b),
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}

func (r SessionRepo) Delete(ctx context.Context, playerID string) error {
	return r.db.WithContext(ctx).Where("player_id = ?", playerID).Delete(&model.GameSession{}).Error
}
