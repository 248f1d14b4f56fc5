package graphstore

// AddVertex inserts a new vertex with the given coordinates and returns its
// id. Ids are handed out monotonically starting at 1 (property P7).
//
// Complexity: O(1) amortized; grows the vertex and coordinate tables by
// vertexGrowthStep when full.
// Concurrency: none — caller must hold exclusive access (see package doc).
func (s *Store) AddVertex(lat, lon float32) VertexID {
	if int(s.nextVertexID) >= len(s.vertexHead) {
		s.growVertices()
	}

	id := s.nextVertexID
	s.coords[id] = coordinate{Lat: lat, Lon: lon}
	s.vertexHead[id] = none
	s.nextVertexID++

	return id
}

// growVertices extends vertexHead and coords by vertexGrowthStep entries,
// initializing the new head slots to none.
func (s *Store) growVertices() {
	grown := make([]uint32, len(s.vertexHead)+vertexGrowthStep)
	copy(grown, s.vertexHead)
	fillNone(grown[len(s.vertexHead):])
	s.vertexHead = grown

	grownCoords := make([]coordinate, len(s.coords)+vertexGrowthStep)
	copy(grownCoords, s.coords)
	s.coords = grownCoords
}

// SetVertex overwrites the coordinates of an existing vertex.
//
// Returns ErrOutOfRange if v was never returned by AddVertex.
// Complexity: O(1).
func (s *Store) SetVertex(v VertexID, lat, lon float32) error {
	if v >= s.nextVertexID {
		return ErrOutOfRange
	}
	s.coords[v] = coordinate{Lat: lat, Lon: lon}

	return nil
}

// GetVertex returns the coordinates of v, or ok == false if v is unknown.
//
// Complexity: O(1).
func (s *Store) GetVertex(v VertexID) (lat, lon float32, ok bool) {
	if v == 0 || v >= s.nextVertexID {
		return 0, 0, false
	}
	c := s.coords[v]

	return c.Lat, c.Lon, true
}

// VertexCount returns nextVertexID - 1. Because Compress only reclaims a
// trailing run of unused ids, this is not necessarily the number of
// vertices with at least one edge — interior isolated vertices still
// count.
//
// Complexity: O(1).
func (s *Store) VertexCount() uint32 {
	return s.nextVertexID - 1
}

// EdgeArenaUsage reports the edge arena's packing: live is the number of
// in-use edge records within the arena's used range, capacity is the total
// number of edge record slots currently allocated. A live/capacity ratio
// well below 1 signals that Compress would reclaim a meaningful amount of
// space.
//
// Complexity: O(nextEdgeSlot / edgeRecordWidth).
func (s *Store) EdgeArenaUsage() (live, capacity uint32) {
	capacity = uint32(len(s.edgeSlots)) / edgeRecordWidth
	for e := uint32(0); e < s.nextEdgeSlot; e += edgeRecordWidth {
		if s.edgeSlots[e+nodeA] != none {
			live++
		}
	}
	return live, capacity
}
