package action

import (
	"context"
	"errors"
	"strings"

	"cachequest/internal/app/engine"
	"cachequest/internal/app/ports"
	"cachequest/internal/domain/cache"
	"cachequest/internal/domain/player"
)

var (
	ErrInvalidRequest      = errors.New("invalid action request")
	ErrInvalidActionParams = errors.New("invalid action params")
)

// UseCase dispatches game intents to the engine. Empty-source collect and
// deposit come back as NOOP responses; invalid input is an error.
type UseCase struct {
	Engine  *engine.Engine
	Metrics ports.CommandMetrics
}

func (u UseCase) Execute(_ context.Context, req Request) (Response, error) {
	req.Intent.Type = IntentType(strings.TrimSpace(string(req.Intent.Type)))
	if !isSupportedIntentType(req.Intent.Type) {
		return Response{}, ErrInvalidRequest
	}
	if !hasValidIntentParams(req.Intent) {
		return Response{}, ErrInvalidActionParams
	}

	command := string(req.Intent.Type)
	resp, err := u.execute(req.Intent)
	switch {
	case err == nil:
		u.record(func(m ports.CommandMetrics) { m.RecordSuccess(command) })
		return resp, nil
	case errors.Is(err, cache.ErrEmptyCache), errors.Is(err, player.ErrEmptyInventory):
		u.record(func(m ports.CommandMetrics) { m.RecordNoop(command) })
		view := u.Engine.View()
		return Response{
			Result:           ResultNoop,
			Position:         view.Position,
			CacheKey:         req.Intent.CacheKey,
			InventoryCount:   len(view.Inventory),
			ActiveCacheCount: len(view.ActiveCaches),
		}, nil
	default:
		u.record(func(m ports.CommandMetrics) { m.RecordFailure(command) })
		return Response{}, err
	}
}

func (u UseCase) execute(intent Intent) (Response, error) {
	switch intent.Type {
	case IntentMove:
		if _, err := u.Engine.Move(engine.Direction(intent.Direction)); err != nil {
			return Response{}, err
		}
		return u.okResponse("", nil), nil
	case IntentSetPosition:
		if _, err := u.Engine.SetPosition(*intent.Pos); err != nil {
			return Response{}, err
		}
		return u.okResponse("", nil), nil
	case IntentCollect:
		tok, err := u.Engine.Collect(intent.CacheKey)
		if err != nil {
			return Response{}, err
		}
		return u.okResponse(intent.CacheKey, &tok), nil
	case IntentDeposit:
		tok, err := u.Engine.Deposit(intent.CacheKey)
		if err != nil {
			return Response{}, err
		}
		return u.okResponse(intent.CacheKey, &tok), nil
	default:
		return Response{}, ErrInvalidRequest
	}
}

func (u UseCase) okResponse(cacheKey string, tok *cache.Token) Response {
	view := u.Engine.View()
	return Response{
		Result:           ResultOK,
		Position:         view.Position,
		Token:            tok,
		CacheKey:         cacheKey,
		InventoryCount:   len(view.Inventory),
		ActiveCacheCount: len(view.ActiveCaches),
	}
}

func (u UseCase) record(fn func(ports.CommandMetrics)) {
	if u.Metrics != nil {
		fn(u.Metrics)
	}
}

func isSupportedIntentType(t IntentType) bool {
	switch t {
	case IntentMove, IntentSetPosition, IntentCollect, IntentDeposit:
		return true
	default:
		return false
	}
}

func hasValidIntentParams(intent Intent) bool {
	switch intent.Type {
	case IntentMove:
		return strings.TrimSpace(intent.Direction) != ""
	case IntentSetPosition:
		return intent.Pos != nil
	case IntentCollect, IntentDeposit:
		return strings.TrimSpace(intent.CacheKey) != ""
	default:
		return false
	}
}
