package session

import (
	"context"

	"cachequest/internal/app/engine"
	"cachequest/internal/app/ports"
)

// UseCase covers the session lifecycle commands: persist, restore, and
// wipe. Load reports Restored=false for a first run; that is not an error.
type UseCase struct {
	Engine  *engine.Engine
	Metrics ports.CommandMetrics
}

func (u UseCase) Save(ctx context.Context) (SaveResponse, error) {
	if err := u.Engine.Save(ctx); err != nil {
		u.recordFailure("save")
		return SaveResponse{}, err
	}
	u.recordSuccess("save")
	return SaveResponse{Saved: true}, nil
}

func (u UseCase) Load(ctx context.Context) (LoadResponse, error) {
	restored, err := u.Engine.Load(ctx)
	if err != nil {
		u.recordFailure("load")
		return LoadResponse{}, err
	}
	u.recordSuccess("load")
	return LoadResponse{Restored: restored}, nil
}

func (u UseCase) Reset(ctx context.Context) (ResetResponse, error) {
	if err := u.Engine.Reset(ctx); err != nil {
		u.recordFailure("reset")
		return ResetResponse{}, err
	}
	u.recordSuccess("reset")
	return ResetResponse{Reset: true}, nil
}

func (u UseCase) recordSuccess(command string) {
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(command)
	}
}

func (u UseCase) recordFailure(command string) {
	if u.Metrics != nil {
		u.Metrics.RecordFailure(command)
	}
}
