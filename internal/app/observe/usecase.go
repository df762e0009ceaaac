package observe

import (
	"context"

	"cachequest/internal/app/engine"
)

type UseCase struct {
	Engine *engine.Engine
}

func (u UseCase) Execute(_ context.Context, _ Request) (Response, error) {
	view := u.Engine.View()
	return Response{
		Position:        view.Position,
		Inventory:       view.Inventory,
		InventoryCount:  len(view.Inventory),
		MovementHistory: view.MovementHistory,
		ActiveCaches:    view.ActiveCaches,
		View: ViewMeta{
			TileWidth:          view.TileWidth,
			NeighborhoodRadius: view.NeighborhoodRadius,
		},
	}, nil
}
