package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/beka-birhanu/torus-maze/infrastruture/repo"
	"github.com/beka-birhanu/torus-maze/maze"
	"github.com/beka-birhanu/torus-maze/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

type fakeCache struct {
	entries     map[i.SolutionKey]*i.Solution
	gets, sets  int
	invalidated []uuid.UUID
	err         error
	sync.Mutex
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[i.SolutionKey]*i.Solution)}
}

func (c *fakeCache) Get(_ context.Context, key i.SolutionKey) (*i.Solution, bool, error) {
	c.Lock()
	defer c.Unlock()
	c.gets++
	if c.err != nil {
		return nil, false, c.err
	}
	s, ok := c.entries[key]
	return s, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key i.SolutionKey, s *i.Solution) error {
	c.Lock()
	defer c.Unlock()
	c.sets++
	if c.err != nil {
		return c.err
	}
	c.entries[key] = s
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, id uuid.UUID) error {
	c.Lock()
	defer c.Unlock()
	c.invalidated = append(c.invalidated, id)
	for k := range c.entries {
		if k.MapID == id {
			delete(c.entries, k)
		}
	}
	return c.err
}

func newService(t *testing.T, cache i.SolutionCache) *MazeService {
	t.Helper()
	svc, err := NewMazeService(&Config{
		Repo:        repo.NewMapRepo(),
		Cache:       cache,
		Logger:      nopLogger{},
		MaxMapCells: 100,
	})
	require.NoError(t, err)
	return svc
}

func TestNewMazeService(t *testing.T) {
	_, err := NewMazeService(&Config{Logger: nopLogger{}})
	assert.ErrorIs(t, err, ErrNilRepo)

	_, err = NewMazeService(&Config{Repo: repo.NewMapRepo()})
	assert.ErrorIs(t, err, ErrNilLogger)

	svc, err := NewMazeService(&Config{Repo: repo.NewMapRepo(), Logger: nopLogger{}})
	require.NoError(t, err)
	assert.Equal(t, defaultMaxMapCells, svc.maxMapCells)
}

func TestMazeServiceMaps(t *testing.T) {
	t.Run("Create, get and list", func(t *testing.T) {
		svc := newService(t, nil)

		created, err := svc.Create("# #\n # ")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, "# #\n # ", created.MapString)

		got, err := svc.Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)

		second, err := svc.Create("  \n  \n")
		require.NoError(t, err)
		assert.Equal(t, "  \n  ", second.MapString)

		list := svc.List()
		require.Len(t, list, 2)
		assert.Equal(t, created.ID, list[0].ID)
		assert.Equal(t, second.ID, list[1].ID)
	})

	t.Run("Reject invalid text", func(t *testing.T) {
		svc := newService(t, nil)

		_, err := svc.Create("invalid map")
		var fe *maze.FormatError
		assert.True(t, errors.As(err, &fe))
		assert.Empty(t, svc.List())
	})

	t.Run("Reject oversized maps", func(t *testing.T) {
		svc := newService(t, nil)

		_, err := svc.Create(strings.Repeat(" ", 101))
		assert.ErrorIs(t, err, ErrMapTooLarge)

		_, err = svc.Create(strings.Repeat(" ", 100))
		assert.NoError(t, err)
	})

	t.Run("Unknown map", func(t *testing.T) {
		svc := newService(t, nil)

		_, err := svc.Get(uuid.New())
		assert.ErrorIs(t, err, ErrMapNotFound)
		assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), ErrMapNotFound)
		_, err = svc.Solve(context.Background(), uuid.New(), maze.Point{}, maze.Point{})
		assert.ErrorIs(t, err, ErrMapNotFound)
	})

	t.Run("Delete drops the map and its solutions", func(t *testing.T) {
		cache := newFakeCache()
		svc := newService(t, cache)
		ctx := context.Background()

		created, err := svc.Create("   \n   ")
		require.NoError(t, err)
		_, err = svc.Solve(ctx, created.ID, maze.Point{X: 0, Y: 0}, maze.Point{X: 1, Y: 1})
		require.NoError(t, err)
		require.Len(t, cache.entries, 1)

		require.NoError(t, svc.Delete(ctx, created.ID))
		_, err = svc.Get(created.ID)
		assert.ErrorIs(t, err, ErrMapNotFound)
		assert.Equal(t, []uuid.UUID{created.ID}, cache.invalidated)
		assert.Empty(t, cache.entries)
	})
}

func TestMazeServiceSolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Solve a copy", func(t *testing.T) {
		svc := newService(t, nil)
		created, err := svc.Create("   \n   \n   ")
		require.NoError(t, err)

		s, err := svc.Solve(ctx, created.ID, maze.Point{X: 0, Y: 0}, maze.Point{X: 2, Y: 2})
		require.NoError(t, err)
		assert.True(t, s.PathFound)
		assert.Equal(t, 2, s.Steps)
		assert.Equal(t, "i  \n   \n. O", s.SolutionMap)

		stored, err := svc.Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "   \n   \n   ", stored.MapString)
	})

	t.Run("No path", func(t *testing.T) {
		svc := newService(t, nil)
		created, err := svc.Create("# #\n###\n ##")
		require.NoError(t, err)

		s, err := svc.Solve(ctx, created.ID, maze.Point{X: 0, Y: 1}, maze.Point{X: 2, Y: 0})
		require.NoError(t, err)
		assert.False(t, s.PathFound)
		assert.Equal(t, 0, s.Steps)
		assert.Equal(t, "# #\n###\n ##", s.SolutionMap)
	})

	t.Run("Invalid endpoints", func(t *testing.T) {
		svc := newService(t, nil)
		created, err := svc.Create("# # #\n# # #\n# # #")
		require.NoError(t, err)

		_, err = svc.Solve(ctx, created.ID, maze.Point{X: 0, Y: 0}, maze.Point{X: 2, Y: 1})
		assert.ErrorIs(t, err, ErrInvalidStart)
		assert.ErrorIs(t, err, maze.ErrOnWall)

		_, err = svc.Solve(ctx, created.ID, maze.Point{X: 0, Y: 1}, maze.Point{X: 3, Y: 1})
		assert.ErrorIs(t, err, ErrInvalidEnd)
		assert.ErrorIs(t, err, maze.ErrOutOfBounds)

		_, err = svc.Solve(ctx, created.ID, maze.Point{X: -1, Y: 1}, maze.Point{X: 0, Y: 0})
		assert.ErrorIs(t, err, ErrInvalidStart)
	})

	t.Run("Serve repeated requests from the cache", func(t *testing.T) {
		cache := newFakeCache()
		svc := newService(t, cache)
		created, err := svc.Create("    \n    ")
		require.NoError(t, err)

		first, err := svc.Solve(ctx, created.ID, maze.Point{X: 0, Y: 0}, maze.Point{X: 1, Y: 2})
		require.NoError(t, err)
		second, err := svc.Solve(ctx, created.ID, maze.Point{X: 0, Y: 0}, maze.Point{X: 1, Y: 2})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 2, cache.gets)
		assert.Equal(t, 1, cache.sets)
	})

	t.Run("Cache failures do not fail the solve", func(t *testing.T) {
		cache := newFakeCache()
		cache.err = errors.New("connection refused")
		svc := newService(t, cache)
		created, err := svc.Create("  ")
		require.NoError(t, err)

		s, err := svc.Solve(ctx, created.ID, maze.Point{X: 0, Y: 0}, maze.Point{X: 0, Y: 1})
		require.NoError(t, err)
		assert.True(t, s.PathFound)
		assert.Equal(t, "iO", s.SolutionMap)

		assert.NoError(t, svc.Delete(ctx, created.ID))
	})

	t.Run("Concurrent solves leave the stored map intact", func(t *testing.T) {
		svc := newService(t, nil)
		created, err := svc.Create("     \n # # \n     ")
		require.NoError(t, err)

		var wg sync.WaitGroup
		for n := 0; n < 16; n++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, _ = svc.Solve(ctx, created.ID, maze.Point{X: 0, Y: n % 5}, maze.Point{X: 2, Y: 4 - n%5})
			}(n)
		}
		wg.Wait()

		stored, err := svc.Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "     \n # # \n     ", stored.MapString)
	})
}
