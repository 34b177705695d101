package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/torus-maze/maze"
	"github.com/beka-birhanu/torus-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxMapCells = 10000
)

// Maze service errors.
var (
	ErrMapNotFound  = i.ErrMapNotFound
	ErrInvalidStart = errors.New("start position is invalid")
	ErrInvalidEnd   = errors.New("end position is invalid")
	ErrMapTooLarge  = errors.New("map is too large")
	ErrNilRepo      = errors.New("nil map repository")
	ErrNilLogger    = errors.New("nil logger")
)

// MazeService stores maze layouts and answers solve requests on copies of them.
type MazeService struct {
	repo        i.MapRepo
	cache       i.SolutionCache
	logger      i.Logger
	maxMapCells int
}

var _ i.MazeService = &MazeService{}

// Config holds the dependencies of a MazeService.
// Cache is optional; MaxMapCells falls back to 10000 when not positive.
type Config struct {
	Repo        i.MapRepo
	Cache       i.SolutionCache
	Logger      i.Logger
	MaxMapCells int
}

// NewMazeService creates a MazeService from c.
func NewMazeService(c *Config) (*MazeService, error) {
	if c.Repo == nil {
		return nil, ErrNilRepo
	}
	if c.Logger == nil {
		return nil, ErrNilLogger
	}

	maxCells := c.MaxMapCells
	if maxCells <= 0 {
		maxCells = defaultMaxMapCells
	}

	return &MazeService{
		repo:        c.Repo,
		cache:       c.Cache,
		logger:      c.Logger,
		maxMapCells: maxCells,
	}, nil
}

// Create decodes text and stores the resulting layout under a new ID.
func (s *MazeService) Create(text string) (*i.MapView, error) {
	grid, err := maze.Decode(text)
	if err != nil {
		return nil, err
	}
	if grid.Rows*grid.Cols > s.maxMapCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrMapTooLarge, grid.Rows, grid.Cols, s.maxMapCells)
	}

	id := uuid.New()
	if err := s.repo.Save(id, grid); err != nil {
		s.logger.Error(fmt.Sprintf("saving map %s: %s", id, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("created map %s (%dx%d)", id, grid.Rows, grid.Cols))
	return &i.MapView{ID: id, MapString: maze.Encode(grid)}, nil
}

// List returns every stored map.
func (s *MazeService) List() []i.MapView {
	records := s.repo.All()
	views := make([]i.MapView, 0, len(records))
	for _, r := range records {
		views = append(views, i.MapView{ID: r.ID, MapString: maze.Encode(r.Grid)})
	}
	return views
}

// Get returns a single stored map.
func (s *MazeService) Get(id uuid.UUID) (*i.MapView, error) {
	grid, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}
	return &i.MapView{ID: id, MapString: maze.Encode(grid)}, nil
}

// Delete removes a map and its cached solutions.
func (s *MazeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			s.logger.Warning(fmt.Sprintf("dropping cached solutions of map %s: %s", id, err))
		}
	}

	s.logger.Info(fmt.Sprintf("deleted map %s", id))
	return nil
}

// Solve marks the shortest path between start and end on a copy of the
// stored map and returns the rendered copy. start and end must be inside
// the map and not on a wall.
func (s *MazeService) Solve(ctx context.Context, id uuid.UUID, start, end maze.Point) (*i.Solution, error) {
	grid, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	if err := maze.Validate(grid, "start", start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStart, err)
	}
	if err := maze.Validate(grid, "end", end); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnd, err)
	}

	key := i.SolutionKey{MapID: id, Start: start, End: end}
	if cached := s.cachedSolution(ctx, key); cached != nil {
		return cached, nil
	}

	path, found, err := maze.ShortestPath(grid, start, end)
	if err != nil {
		return nil, err
	}

	solution := &i.Solution{PathFound: found}
	if found {
		maze.Mark(grid, path)
		solution.Steps = len(path) - 1
	}
	solution.SolutionMap = maze.Encode(grid)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, solution); err != nil {
			s.logger.Warning(fmt.Sprintf("caching solution of map %s: %s", id, err))
		}
	}

	s.logger.Info(fmt.Sprintf("solved map %s from %v to %v: found=%t steps=%d", id, start, end, found, solution.Steps))
	return solution, nil
}

func (s *MazeService) cachedSolution(ctx context.Context, key i.SolutionKey) *i.Solution {
	if s.cache == nil {
		return nil
	}

	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("reading cached solution of map %s: %s", key.MapID, err))
		return nil
	}
	if !ok {
		return nil
	}
	return cached
}
