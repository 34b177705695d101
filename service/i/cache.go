package i

import (
	"context"

	"github.com/beka-birhanu/torus-maze/maze"
	"github.com/google/uuid"
)

// SolutionKey identifies a solve request on a stored map.
type SolutionKey struct {
	MapID uuid.UUID
	Start maze.Point
	End   maze.Point
}

// Solution is the rendered result of a solve request.
type Solution struct {
	SolutionMap string `json:"solution_map"`
	PathFound   bool   `json:"path_found"`
	Steps       int    `json:"steps"`
}

// SolutionCache keeps rendered solutions so repeated requests skip the search.
type SolutionCache interface {
	// Get returns the cached solution and whether it was present.
	Get(ctx context.Context, key SolutionKey) (*Solution, bool, error)

	// Set stores a solution.
	Set(ctx context.Context, key SolutionKey, s *Solution) error

	// Invalidate drops every cached solution of a map.
	Invalidate(ctx context.Context, mapID uuid.UUID) error
}
