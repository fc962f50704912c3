package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetInstructionQueryIsNotConstructed = errors.New(
	"GetInstructionQuery must be created via NewGetInstructionQuery constructor",
)

// GetInstructionQuery reads the published instruction sheet of a route.
type GetInstructionQuery struct {
	routeID string

	guard guard.ConstructorGuard
}

func NewGetInstructionQuery(routeID string) (GetInstructionQuery, error) {
	if routeID == "" {
		return GetInstructionQuery{}, errs.NewValueIsRequiredError("routeId")
	}
	return GetInstructionQuery{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInstructionQuery) Validate() error {
	return q.guard.Validate(ErrGetInstructionQueryIsNotConstructed)
}

func (q GetInstructionQuery) RouteID() string {
	return q.routeID
}
