package queries

import (
	"context"
)

// GetBoardQueryHandler serves the board view from the store's current snapshot.
//
// Example:
//
//	handler := NewGetBoardQueryHandler(store)
//	view, err := handler.Handle(ctx, NewGetBoardQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d assigned, %d unassigned\n", view.Stats.AssignedOrders, view.Stats.UnassignedOrders)
type GetBoardQueryHandler struct {
	store BoardReader
}

func NewGetBoardQueryHandler(store BoardReader) GetBoardQueryHandler {
	return GetBoardQueryHandler{store: store}
}

func (h GetBoardQueryHandler) Handle(ctx context.Context, query GetBoardQuery) (BoardView, error) {
	if err := query.Validate(); err != nil {
		return BoardView{}, err
	}

	b, err := h.store.Get(ctx)
	if err != nil {
		return BoardView{}, err
	}

	return NewBoardView(b), nil
}
