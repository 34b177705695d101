package i

import (
	"context"

	"github.com/beka-birhanu/torus-maze/maze"
	"github.com/google/uuid"
)

// MapView is a stored map rendered in the text format.
type MapView struct {
	ID        uuid.UUID
	MapString string
}

// MazeService manages stored maps and solves them.
type MazeService interface {
	Create(text string) (*MapView, error)
	List() []MapView
	Get(id uuid.UUID) (*MapView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Solve returns a solved copy of the map. The stored map is left as is.
	Solve(ctx context.Context, id uuid.UUID, start, end maze.Point) (*Solution, error)
}
