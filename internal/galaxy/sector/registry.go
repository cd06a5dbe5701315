// Package sector buckets admitted custom systems by their coarse galaxy grid
// cell. The registry is the single point of admission for both ingestion
// paths.
package sector

import "github.com/louisbranch/stellarforge/internal/galaxy/system"

// Coord addresses one sector of the galaxy grid.
type Coord struct {
	X, Y, Z int
}

// emptySystems is the shared result for sectors with no custom systems, so
// lookups never allocate a bucket.
var emptySystems []*system.System

// Registry maps sector coordinates to the ordered custom systems admitted
// into them. It exclusively owns admitted records. Not safe for concurrent
// use; all admissions happen on the single load-pass goroutine.
type Registry struct {
	buckets map[Coord][]*system.System
	last    *system.System
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{buckets: make(map[Coord][]*system.System)}
}

// Admit stores sys in the coordinate's bucket, assigns its intra-sector
// index from the bucket's current size, and records it as the most recently
// admitted system. Indices are never renumbered after insertion.
func (r *Registry) Admit(c Coord, sys *system.System) {
	sys.SystemIndex = len(r.buckets[c])
	r.buckets[c] = append(r.buckets[c], sys)
	r.last = sys
}

// Systems returns the ordered systems admitted into the coordinate, or a
// shared empty collection when none exist. Callers must treat the result as
// read-only.
func (r *Registry) Systems(c Coord) []*system.System {
	if bucket, ok := r.buckets[c]; ok {
		return bucket
	}
	return emptySystems
}

// LastAdmitted returns the most recently admitted system, or nil when
// nothing has been admitted since the last reset.
func (r *Registry) LastAdmitted() *system.System {
	return r.last
}

// ResetLastAdmitted clears the last-admitted slot ahead of a single-file
// load query.
func (r *Registry) ResetLastAdmitted() {
	r.last = nil
}

// Count returns the total number of admitted systems across all sectors.
func (r *Registry) Count() int {
	total := 0
	for _, bucket := range r.buckets {
		total += len(bucket)
	}
	return total
}

// Coords returns the coordinates with at least one admitted system.
func (r *Registry) Coords() []Coord {
	coords := make([]Coord, 0, len(r.buckets))
	for c := range r.buckets {
		coords = append(coords, c)
	}
	return coords
}

// Clear drops every bucket and the last-admitted slot.
func (r *Registry) Clear() {
	r.buckets = make(map[Coord][]*system.System)
	r.last = nil
}
