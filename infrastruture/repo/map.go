package repo

import (
	"sync"

	"github.com/beka-birhanu/torus-maze/maze"
	"github.com/beka-birhanu/torus-maze/service/i"
	"github.com/google/uuid"
)

// MapRepo keeps maze layouts in memory.
// Grids go in and come out as copies, so callers may mutate what they get
// without touching the stored layout.
type MapRepo struct {
	grids map[uuid.UUID]*maze.Grid
	order []uuid.UUID
	sync.RWMutex
}

var _ i.MapRepo = &MapRepo{}

// NewMapRepo creates an empty MapRepo.
func NewMapRepo() *MapRepo {
	return &MapRepo{
		grids: make(map[uuid.UUID]*maze.Grid),
	}
}

// Save inserts or replaces the grid stored under id.
func (r *MapRepo) Save(id uuid.UUID, grid *maze.Grid) error {
	stored := grid.Clone()

	r.Lock()
	defer r.Unlock()
	if _, ok := r.grids[id]; !ok {
		r.order = append(r.order, id)
	}
	r.grids[id] = stored
	return nil
}

// ByID returns a copy of the grid stored under id.
func (r *MapRepo) ByID(id uuid.UUID) (*maze.Grid, error) {
	r.RLock()
	grid, ok := r.grids[id]
	r.RUnlock()
	if !ok {
		return nil, i.ErrMapNotFound
	}

	// Stored grids are never mutated in place, so copying outside the lock is safe.
	return grid.Clone(), nil
}

// All returns copies of all grids in insertion order.
func (r *MapRepo) All() []i.MapRecord {
	r.RLock()
	records := make([]i.MapRecord, 0, len(r.order))
	for _, id := range r.order {
		records = append(records, i.MapRecord{ID: id, Grid: r.grids[id]})
	}
	r.RUnlock()

	for idx := range records {
		records[idx].Grid = records[idx].Grid.Clone()
	}
	return records
}

// Delete removes the grid stored under id.
func (r *MapRepo) Delete(id uuid.UUID) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.grids[id]; !ok {
		return i.ErrMapNotFound
	}

	delete(r.grids, id)
	for idx, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored maps.
func (r *MapRepo) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.grids)
}
