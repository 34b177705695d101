package i

import (
	"errors"

	"github.com/beka-birhanu/torus-maze/maze"
	"github.com/google/uuid"
)

// ErrMapNotFound is returned by MapRepo implementations for unknown IDs.
var ErrMapNotFound = errors.New("map not found")

// MapRecord is a stored maze layout together with its identifier.
type MapRecord struct {
	ID   uuid.UUID
	Grid *maze.Grid
}

// MapRepo defines the interface for maze layout storage.
type MapRepo interface {
	// Save inserts the grid under the given ID, replacing any previous grid.
	Save(id uuid.UUID, grid *maze.Grid) error

	// ByID returns a copy of the stored grid.
	// Returns an error if the map is not found.
	ByID(id uuid.UUID) (*maze.Grid, error)

	// All returns copies of every stored grid in insertion order.
	All() []MapRecord

	// Delete removes the map. Returns an error if the map is not found.
	Delete(id uuid.UUID) error
}
