package http

import (
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
)

// ReassignmentRequest is the outcome of one drag-and-drop gesture as sent by the board.
// Destination is null when the item was dropped outside every collection.
type ReassignmentRequest struct {
	Source           string  `json:"source" validate:"required"`
	Destination      *string `json:"destination"`
	DraggableID      string  `json:"draggableId" validate:"required"`
	DestinationIndex *int    `json:"destinationIndex" validate:"required"`
}

// ToCommand parses the location descriptors and builds the reassignment command.
func (r ReassignmentRequest) ToCommand() (commands.ReassignOrderCommand, error) {
	source, err := kernel.ParseLocation(r.Source)
	if err != nil {
		return commands.ReassignOrderCommand{}, err
	}

	var destination *kernel.Location
	if r.Destination != nil {
		parsed, parseErr := kernel.ParseLocation(*r.Destination)
		if parseErr != nil {
			return commands.ReassignOrderCommand{}, parseErr
		}
		destination = &parsed
	}

	return commands.NewReassignOrderCommand(r.DraggableID, source, destination, *r.DestinationIndex)
}

// PublishedResponse acknowledges a hand-off write.
type PublishedResponse struct {
	Key         string `json:"key"`
	GeneratedAt string `json:"generatedAt"`
}
