// Package mazeapi exposes stored maze maps and their solutions over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/torus-maze/maze"
	"github.com/google/uuid"
)

// Response wraps every successful payload.
type Response[T any] struct {
	Data T `json:"data"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// CreateMapRequest carries a map in the text format.
type CreateMapRequest struct {
	MapString *string `json:"map_string" binding:"required"`
}

// MapResponse is a stored map.
type MapResponse struct {
	ID        uuid.UUID `json:"id"`
	MapString string    `json:"map_string"`
}

// SolveQuery holds the solve endpoints. X is the row and Y the column.
type SolveQuery struct {
	StartX  *int `form:"start_x" binding:"required,min=0"`
	StartY  *int `form:"start_y" binding:"required,min=0"`
	FinishX *int `form:"finish_x" binding:"required,min=0"`
	FinishY *int `form:"finish_y" binding:"required,min=0"`
}

// Points converts the query into start and end points.
func (q *SolveQuery) Points() (maze.Point, maze.Point) {
	return maze.Point{X: *q.StartX, Y: *q.StartY}, maze.Point{X: *q.FinishX, Y: *q.FinishY}
}

// SolveResponse is a solved copy of a stored map.
type SolveResponse struct {
	SolutionMap string `json:"solution_map"`
	PathFound   bool   `json:"path_found"`
	Steps       int    `json:"steps"`
}
