package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"cachequest/internal/app/action"
	"cachequest/internal/app/engine"
	"cachequest/internal/app/observe"
	"cachequest/internal/app/session"
	"cachequest/internal/domain/geo"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	ActionUC  action.UseCase
	ObserveUC observe.UseCase
	SessionUC session.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	game := s.Group("/api/game")
	game.POST("/move", h.move)
	game.POST("/position", h.position)
	game.POST("/collect", h.collect)
	game.POST("/deposit", h.deposit)
	game.GET("/observe", h.observe)

	sess := s.Group("/api/session")
	sess.POST("/save", h.save)
	sess.POST("/load", h.load)
	sess.POST("/reset", h.reset)

	s.GET("/ops/kpi", h.kpi)
}

type moveRequest struct {
	Direction string `json:"direction"`
}

type positionRequest struct {
	Pos *geo.Point `json:"pos"`
}

type cacheRequest struct {
	CacheKey string `json:"cache_key"`
}

func (h Handler) move(c context.Context, ctx *app.RequestContext) {
	var body moveRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.execute(c, ctx, action.Intent{Type: action.IntentMove, Direction: body.Direction})
}

func (h Handler) position(c context.Context, ctx *app.RequestContext) {
	var body positionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.execute(c, ctx, action.Intent{Type: action.IntentSetPosition, Pos: body.Pos})
}

func (h Handler) collect(c context.Context, ctx *app.RequestContext) {
	var body cacheRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.execute(c, ctx, action.Intent{Type: action.IntentCollect, CacheKey: body.CacheKey})
}

func (h Handler) deposit(c context.Context, ctx *app.RequestContext) {
	var body cacheRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.execute(c, ctx, action.Intent{Type: action.IntentDeposit, CacheKey: body.CacheKey})
}

func (h Handler) execute(c context.Context, ctx *app.RequestContext, intent action.Intent) {
	resp, err := h.ActionUC.Execute(c, action.Request{Intent: intent})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ObserveUC.Execute(c, observe.Request{})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SessionUC.Save(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) load(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SessionUC.Load(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SessionUC.Reset(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, action.ErrInvalidActionParams):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_action_params", err.Error())
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, engine.ErrInvalidDirection):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, engine.ErrCacheNotActive):
		writeErrorBody(ctx, consts.StatusNotFound, "cache_not_active", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
