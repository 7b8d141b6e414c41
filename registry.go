package main

import (
	"math"

	"github.com/google/uuid"
)

type listenerCellKey struct {
	X int
	Y int
}

type listenerEntry struct {
	listener *Listener
	pos      Vec3
	cell     listenerCellKey
}

// ListenerRegistry maps entity IDs to their listener capability and keeps a
// uniform-cell spatial hash over listener positions, so candidate discovery
// for an emission never scans the whole world.
type ListenerRegistry struct {
	cellSize    float64
	invCellSize float64
	cells       map[listenerCellKey][]uuid.UUID
	entries     map[uuid.UUID]*listenerEntry
}

func NewListenerRegistry(cellSize float64) *ListenerRegistry {
	if cellSize <= 0 {
		cellSize = listenerCellSize
	}
	return &ListenerRegistry{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cells:       make(map[listenerCellKey][]uuid.UUID),
		entries:     make(map[uuid.UUID]*listenerEntry),
	}
}

func (r *ListenerRegistry) cellFor(pos Vec3) listenerCellKey {
	return listenerCellKey{
		X: int(math.Floor(pos.X * r.invCellSize)),
		Y: int(math.Floor(pos.Y * r.invCellSize)),
	}
}

// Add registers a listener at a position and returns its entity ID.
func (r *ListenerRegistry) Add(l *Listener, pos Vec3) uuid.UUID {
	id := uuid.New()
	cell := r.cellFor(pos)
	r.entries[id] = &listenerEntry{listener: l, pos: pos, cell: cell}
	r.cells[cell] = append(r.cells[cell], id)
	return id
}

// Move updates a listener's position, rehashing it if it crossed a cell
// boundary. Unknown IDs are ignored.
func (r *ListenerRegistry) Move(id uuid.UUID, pos Vec3) {
	entry, ok := r.entries[id]
	if !ok {
		return
	}
	entry.pos = pos
	cell := r.cellFor(pos)
	if cell == entry.cell {
		return
	}
	r.removeFromCell(id, entry.cell)
	entry.cell = cell
	r.cells[cell] = append(r.cells[cell], id)
}

// Remove unregisters a listener. Unknown IDs are ignored.
func (r *ListenerRegistry) Remove(id uuid.UUID) {
	entry, ok := r.entries[id]
	if !ok {
		return
	}
	r.removeFromCell(id, entry.cell)
	delete(r.entries, id)
}

// Len returns the number of registered listeners.
func (r *ListenerRegistry) Len() int {
	return len(r.entries)
}

func (r *ListenerRegistry) removeFromCell(id uuid.UUID, cell listenerCellKey) {
	bucket := r.cells[cell]
	for i := range bucket {
		if bucket[i] != id {
			continue
		}
		bucket[i] = bucket[len(bucket)-1]
		bucket = bucket[:len(bucket)-1]
		break
	}
	if len(bucket) == 0 {
		delete(r.cells, cell)
	} else {
		r.cells[cell] = bucket
	}
}

// ListenersWithin appends every listener within radius of center to buf and
// returns the extended slice. Only the cells overlapping the query sphere are
// visited.
func (r *ListenerRegistry) ListenersWithin(center Vec3, radius float64, buf []ListenerHit) []ListenerHit {
	if radius <= 0 {
		return buf
	}
	minCell := r.cellFor(Vec3{X: center.X - radius, Y: center.Y - radius})
	maxCell := r.cellFor(Vec3{X: center.X + radius, Y: center.Y + radius})
	radiusSq := radius * radius
	for cy := minCell.Y; cy <= maxCell.Y; cy++ {
		for cx := minCell.X; cx <= maxCell.X; cx++ {
			for _, id := range r.cells[listenerCellKey{X: cx, Y: cy}] {
				entry := r.entries[id]
				d := entry.pos.Sub(center)
				if d.X*d.X+d.Y*d.Y+d.Z*d.Z > radiusSq {
					continue
				}
				buf = append(buf, ListenerHit{Listener: entry.listener, Pos: entry.pos})
			}
		}
	}
	return buf
}
